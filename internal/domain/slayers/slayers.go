package slayers

import (
	"math"

	"github.com/lutefd/skyblock-facade/internal/domain/leveling"
	"github.com/lutefd/skyblock-facade/internal/domain/skyblock"
)

type Boss int

const (
	Revenant Boss = iota
	Tarantula
	Sven
	Enderman
)

var Bosses = []Boss{Revenant, Tarantula, Sven, Enderman}

type bossConfig struct {
	name       string
	payloadKey string
	divider    float64
	modifier   float64
}

var bosses = [...]bossConfig{
	Revenant:  {name: "revenant", payloadKey: "zombie", divider: 2208, modifier: 0.15},
	Tarantula: {name: "tarantula", payloadKey: "spider", divider: 2118, modifier: 0.08},
	Sven:      {name: "sven", payloadKey: "wolf", divider: 1962, modifier: 0.015},
	Enderman:  {name: "enderman", payloadKey: "enderman", divider: 1430, modifier: 0.017},
}

func (b Boss) String() string {
	if b < 0 || int(b) >= len(bosses) {
		return "unknown"
	}
	return bosses[b].name
}

const (
	MaxLevel = 9

	// WeightCap is the experience at which boss weight stops growing and
	// overflow begins.
	WeightCap = 1_000_000
)

// coinsPerTier is the cost of one kill for tiers 0 through 4.
var coinsPerTier = [5]float64{100, 2000, 10000, 50000, 100000}

type Kills struct {
	Tier1 float64 `json:"tier_1"`
	Tier2 float64 `json:"tier_2"`
	Tier3 float64 `json:"tier_3"`
	Tier4 float64 `json:"tier_4"`
	Tier5 float64 `json:"tier_5"`
}

type BossStats struct {
	leveling.Progress
	leveling.Weight
	Kills Kills `json:"kills"`
}

type BossReport struct {
	Revenant  BossStats `json:"revenant"`
	Tarantula BossStats `json:"tarantula"`
	Sven      BossStats `json:"sven"`
	Enderman  BossStats `json:"enderman"`
}

func (r *BossReport) Get(b Boss) BossStats {
	if f := r.field(b); f != nil {
		return *f
	}
	return BossStats{}
}

func (r *BossReport) field(b Boss) *BossStats {
	switch b {
	case Revenant:
		return &r.Revenant
	case Tarantula:
		return &r.Tarantula
	case Sven:
		return &r.Sven
	case Enderman:
		return &r.Enderman
	}
	return nil
}

type Report struct {
	TotalCoinsSpent float64 `json:"total_coins_spent"`
	TotalExperience float64 `json:"total_experience"`
	leveling.Weight
	Bosses BossReport `json:"bosses"`
}

// Build computes the slayer report from the raw boss map keyed by upstream
// identifiers. A nil map means the member never touched slayers and yields a
// nil report; bosses missing from the map report zeroes. Totals cover every
// boss in the map, while weight only comes from the bosses with a curve.
func Build(raw map[string]skyblock.Slayer) *Report {
	if raw == nil {
		return nil
	}

	report := &Report{}
	for _, b := range Bosses {
		stats := Calculate(b, raw[bosses[b].payloadKey])
		*report.Bosses.field(b) = stats
		report.Weight = report.Weight.Add(stats.Weight)
	}
	for _, slayer := range raw {
		report.TotalExperience += slayer.XP
		report.TotalCoinsSpent += CoinsSpent(slayer)
	}
	return report
}

func Calculate(b Boss, slayer skyblock.Slayer) BossStats {
	return BossStats{
		Progress: leveling.Progress{Level: LevelOf(slayer.XP), Experience: slayer.XP},
		Weight:   WeightOf(b, slayer.XP),
		Kills: Kills{
			Tier1: slayer.BossKillsTier0,
			Tier2: slayer.BossKillsTier1,
			Tier3: slayer.BossKillsTier2,
			Tier4: slayer.BossKillsTier3,
			Tier5: slayer.BossKillsTier4,
		},
	}
}

// LevelOf interpolates between the cumulative slayer breakpoints.
func LevelOf(experience float64) float64 {
	for level, requirement := range leveling.SlayerBreakpoints {
		if experience < requirement {
			var previous float64
			if level > 0 {
				previous = leveling.SlayerBreakpoints[level-1]
			}
			return float64(level) + (experience-previous)/(requirement-previous)
		}
	}
	return MaxLevel
}

// WeightOf is linear up to WeightCap. Past it, every further million
// experience is worth less than the one before, as the divisor grows by the
// boss modifier per chunk.
func WeightOf(b Boss, experience float64) leveling.Weight {
	cfg := bosses[b]
	if experience <= WeightCap {
		if experience == 0 {
			return leveling.Weight{}
		}
		return leveling.Weight{Weight: experience / cfg.divider}
	}

	remaining := experience - WeightCap
	modifier := cfg.modifier
	var overflow float64
	for remaining > 0 {
		chunk := math.Min(remaining, WeightCap)
		overflow += math.Pow(chunk/(cfg.divider*(1.5+modifier)), 0.942)
		modifier += cfg.modifier
		remaining -= chunk
	}

	return leveling.Weight{Weight: WeightCap / cfg.divider, Overflow: overflow}
}

func CoinsSpent(slayer skyblock.Slayer) float64 {
	kills := [5]float64{
		slayer.BossKillsTier0,
		slayer.BossKillsTier1,
		slayer.BossKillsTier2,
		slayer.BossKillsTier3,
		slayer.BossKillsTier4,
	}
	var total float64
	for tier, n := range kills {
		total += n * coinsPerTier[tier]
	}
	return total
}
