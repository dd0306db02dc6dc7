package profiles

import (
	"cmp"
	"slices"
	"strings"
)

type Strategy int

const (
	ByWeight Strategy = iota
	BySelected
	BySkills
	BySlayers
	ByCatacombs
)

var strategyAliases = map[string]Strategy{
	"we":      ByWeight,
	"weight":  ByWeight,
	"weights": ByWeight,

	"save":         BySelected,
	"saved":        BySelected,
	"latest":       BySelected,
	"last_save":    BySelected,
	"last_saved":   BySelected,
	"last_save_at": BySelected,
	"selected":     BySelected,

	"skill":  BySkills,
	"skills": BySkills,

	"slayer":  BySlayers,
	"slayers": BySlayers,

	"cata":      ByCatacombs,
	"dungeon":   ByCatacombs,
	"dungeons":  ByCatacombs,
	"catacomb":  ByCatacombs,
	"catacombs": ByCatacombs,
}

// ParseStrategy resolves a strategy keyword or one of its aliases.
func ParseStrategy(keyword string) (Strategy, bool) {
	s, ok := strategyAliases[strings.ToLower(keyword)]
	return s, ok
}

func (s Strategy) String() string {
	switch s {
	case ByWeight:
		return "weight"
	case BySelected:
		return "selected"
	case BySkills:
		return "skills"
	case BySlayers:
		return "slayers"
	case ByCatacombs:
		return "catacombs"
	}
	return "unknown"
}

// Score is the value a strategy ranks profiles by.
func (s Strategy) Score(p Stats) float64 {
	switch s {
	case ByWeight:
		return p.Weight.Total()
	case BySelected:
		if p.Selected {
			return 1
		}
	case BySkills:
		if p.Skills != nil {
			return p.Skills.AverageSkills
		}
	case BySlayers:
		if p.Slayers != nil {
			return p.Slayers.TotalExperience
		}
	case ByCatacombs:
		if p.Dungeons != nil {
			return p.Dungeons.Types.Catacombs.Experience
		}
	}
	return 0
}

// Select picks one profile. Strategy keywords pick the highest scoring
// profile, the earliest one on ties; any other keyword is matched against
// profile names ignoring case.
func Select(set Set, keyword string) (Stats, error) {
	if len(set) == 0 {
		return Stats{}, ErrNoProfiles
	}

	if strategy, ok := ParseStrategy(keyword); ok {
		return slices.MaxFunc(set, func(a, b Stats) int {
			return cmp.Compare(strategy.Score(a), strategy.Score(b))
		}), nil
	}

	for _, p := range set {
		if strings.EqualFold(p.Name, keyword) {
			return p, nil
		}
	}
	return Stats{}, ErrProfileNotFound
}

// Ranked returns a copy of the set ordered by the strategy, best first.
// Equal scores keep their upstream order.
func Ranked(set Set, strategy Strategy) Set {
	out := slices.Clone(set)
	slices.SortStableFunc(out, func(a, b Stats) int {
		return cmp.Compare(strategy.Score(b), strategy.Score(a))
	})
	return out
}
