package dungeons

import (
	"strconv"

	"github.com/lutefd/skyblock-facade/internal/domain/skyblock"
	"github.com/lutefd/skyblock-facade/internal/humanize"
)

type Score struct {
	Value float64 `json:"value"`
	Score string  `json:"score"`
}

type Time struct {
	Time    string  `json:"time"`
	Seconds float64 `json:"seconds"`
}

// TierKey maps an upstream tier key to its report key: "0" is the entrance,
// numbered floors become "tier_n". Keys that are not numbers pass through.
func TierKey(raw string) string {
	if raw == "0" {
		return "entrance"
	}
	if _, err := strconv.Atoi(raw); err != nil {
		return raw
	}
	return "tier_" + raw
}

// Counts reindexes a stats group without touching its values.
func Counts(group skyblock.StatsGroup) map[string]float64 {
	out := make(map[string]float64, len(group))
	for k, v := range group {
		out[TierKey(k)] = v
	}
	return out
}

func Scores(group skyblock.StatsGroup) map[string]Score {
	out := make(map[string]Score, len(group))
	for k, v := range group {
		out[TierKey(k)] = Score{Value: v, Score: Grade(v)}
	}
	return out
}

// Times converts millisecond run times into seconds and readable text.
func Times(group skyblock.StatsGroup) map[string]Time {
	out := make(map[string]Time, len(group))
	for k, ms := range group {
		seconds := ms / 1000
		out[TierKey(k)] = Time{Time: humanize.Duration(seconds), Seconds: seconds}
	}
	return out
}
