package dungeons

import (
	"math"

	"github.com/lutefd/skyblock-facade/internal/domain/leveling"
)

type Class int

const (
	Healer Class = iota
	Mage
	Berserker
	Archer
	Tank
)

var Classes = []Class{Healer, Mage, Berserker, Archer, Tank}

var classNames = [...]string{
	Healer:    "healer",
	Mage:      "mage",
	Berserker: "berserker",
	Archer:    "archer",
	Tank:      "tank",
}

// payloadKeys are the class identifiers used by the upstream API.
var payloadKeys = [...]string{
	Healer:    "healer",
	Mage:      "mage",
	Berserker: "berserk",
	Archer:    "archer",
	Tank:      "tank",
}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "unknown"
	}
	return classNames[c]
}

const (
	MaxLevel = 50

	// Level50Experience is the overflow threshold for every dungeon
	// category, classes and catacombs alike.
	Level50Experience = 569809640

	CatacombsModifier = 0.0002149604615
	ClassModifier     = 0.0000045254834
)

// WeightOf applies the dungeon weight curve shared by classes and dungeon
// types; only the percentage modifier differs between them.
func WeightOf(modifier, level, experience float64) leveling.Weight {
	base := math.Pow(level, 4.5) * modifier
	if experience <= Level50Experience {
		return leveling.Weight{Weight: base}
	}

	remaining := experience - Level50Experience
	splitter := (4 * Level50Experience) / base
	return leveling.Weight{
		Weight:   math.Floor(base),
		Overflow: math.Pow(remaining/splitter, 0.968),
	}
}

// Grade buckets a dungeon run score into its letter grade.
func Grade(score float64) string {
	switch {
	case score >= 300:
		return "S+"
	case score >= 270:
		return "S"
	case score >= 240:
		return "A"
	case score >= 175:
		return "B"
	default:
		return "C"
	}
}
