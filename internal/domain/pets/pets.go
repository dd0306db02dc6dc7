package pets

import (
	"encoding/json"
	"math"

	"github.com/lutefd/skyblock-facade/internal/domain/leveling"
	"github.com/lutefd/skyblock-facade/internal/domain/skyblock"
)

const MaxLevel = 100

// tierOffsets is where each rarity starts reading leveling.PetTable.
// Unknown rarities read from the start, like COMMON.
var tierOffsets = map[string]int{
	"COMMON":    0,
	"UNCOMMON":  6,
	"RARE":      11,
	"EPIC":      16,
	"LEGENDARY": 20,
	"MYTHIC":    20,
}

// HeldItem is either a catalogued item or the raw identifier of one the
// catalog does not know. The zero value encodes as null.
type HeldItem struct {
	Item *Item
	Raw  string
}

func (h HeldItem) MarshalJSON() ([]byte, error) {
	switch {
	case h.Item != nil:
		return json.Marshal(h.Item)
	case h.Raw != "":
		return json.Marshal(h.Raw)
	default:
		return []byte("null"), nil
	}
}

type Pet struct {
	Type      string   `json:"type"`
	Tier      string   `json:"tier"`
	Level     float64  `json:"level"`
	XP        float64  `json:"xp"`
	HeldItem  HeldItem `json:"heldItem"`
	CandyUsed float64  `json:"candyUsed"`
	Active    bool     `json:"active"`
}

// Build converts every raw pet. It never returns nil so the report always
// encodes as an array.
func Build(raw []skyblock.Pet) []Pet {
	out := make([]Pet, 0, len(raw))
	for _, p := range raw {
		out = append(out, Pet{
			Type:      p.Type,
			Tier:      p.Tier,
			Level:     LevelOf(p.Tier, p.Exp),
			XP:        p.Exp,
			HeldItem:  ResolveItem(p.HeldItem),
			CandyUsed: p.CandyUsed,
			Active:    p.Active,
		})
	}
	return out
}

func ResolveItem(id *string) HeldItem {
	if id == nil || *id == "" {
		return HeldItem{}
	}
	if item, ok := Catalog[*id]; ok {
		return HeldItem{Item: &item}
	}
	return HeldItem{Raw: *id}
}

// LevelOf returns the pet level for a rarity. Pets start at level 1, so
// unlike other categories zero experience is level 1, not 0.
func LevelOf(tier string, experience float64) float64 {
	offset := tierOffsets[tier]
	end := min(offset+MaxLevel-1, len(leveling.PetTable))
	levels := leveling.PetTable[offset:end]

	level := 1
	var total float64
	for _, required := range levels {
		if total+required > experience {
			break
		}
		total += required
		level++
	}

	if level >= MaxLevel || level > len(levels) {
		return float64(min(level, MaxLevel))
	}

	current := math.Floor(experience - total)
	next := math.Ceil(levels[level-1])
	return float64(level) + math.Max(0, math.Min(current/next, 1))
}
