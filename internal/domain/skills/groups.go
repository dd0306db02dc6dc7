package skills

import "github.com/lutefd/skyblock-facade/internal/domain/leveling"

type Skill int

const (
	Mining Skill = iota
	Foraging
	Enchanting
	Farming
	Combat
	Fishing
	Alchemy
	Taming
	Carpentry
	Runecrafting
)

// All lists every skill in report order; the first eight carry weight.
var All = []Skill{Mining, Foraging, Enchanting, Farming, Combat, Fishing, Alchemy, Taming, Carpentry, Runecrafting}

var names = [...]string{
	Mining:       "mining",
	Foraging:     "foraging",
	Enchanting:   "enchanting",
	Farming:      "farming",
	Combat:       "combat",
	Fishing:      "fishing",
	Alchemy:      "alchemy",
	Taming:       "taming",
	Carpentry:    "carpentry",
	Runecrafting: "runecrafting",
}

func (s Skill) String() string {
	if s < 0 || int(s) >= len(names) {
		return "unknown"
	}
	return names[s]
}

const (
	Level50Experience = 55172425
	Level60Experience = 111672425
)

// Group holds the weight curve of one skill. Skills without a weight curve
// only report level and experience.
type Group struct {
	Exponent float64
	Divider  float64
	MaxLevel int
	Weighted bool
	Table    leveling.Table
}

// CapExperience is the experience at which the skill stops earning base
// weight and starts earning overflow.
func (g Group) CapExperience() float64 {
	if g.MaxLevel == 60 {
		return Level60Experience
	}
	return Level50Experience
}

var groups = [...]Group{
	// 1,750 points at level 60.
	Mining: {Exponent: 1.18207448, Divider: 259634, MaxLevel: 60, Weighted: true, Table: leveling.SkillTable},
	// 850 points at level 50.
	Foraging: {Exponent: 1.232826, Divider: 259634, MaxLevel: 50, Weighted: true, Table: leveling.SkillTable},
	// 450 points at level 60.
	Enchanting: {Exponent: 0.96976583, Divider: 882758, MaxLevel: 60, Weighted: true, Table: leveling.SkillTable},
	// 2,200 points at level 60.
	Farming: {Exponent: 1.217848139, Divider: 220689, MaxLevel: 60, Weighted: true, Table: leveling.SkillTable},
	// 1,500 points at level 60.
	Combat: {Exponent: 1.15797687265, Divider: 275862, MaxLevel: 60, Weighted: true, Table: leveling.SkillTable},
	// 2,500 points at level 50.
	Fishing: {Exponent: 1.406418, Divider: 88274, MaxLevel: 50, Weighted: true, Table: leveling.SkillTable},
	// 200 points at level 50.
	Alchemy: {Exponent: 1.0, Divider: 1103448, MaxLevel: 50, Weighted: true, Table: leveling.SkillTable},
	// 500 points at level 50.
	Taming:       {Exponent: 1.14744, Divider: 441379, MaxLevel: 50, Weighted: true, Table: leveling.SkillTable},
	Carpentry:    {MaxLevel: 50, Table: leveling.SkillTable},
	Runecrafting: {MaxLevel: 25, Table: leveling.RunecraftingTable},
}

func GroupOf(s Skill) Group {
	return groups[s]
}
