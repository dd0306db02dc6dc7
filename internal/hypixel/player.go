package hypixel

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/lutefd/skyblock-facade/internal/domain/skyblock"
)

// ParsePlayer reads the handful of fields needed from a /player response.
// The document is large and mostly irrelevant, so it is queried rather than
// decoded.
func ParsePlayer(body []byte) (skyblock.Player, error) {
	if !gjson.ValidBytes(body) {
		return skyblock.Player{}, fmt.Errorf("%w: malformed player document", ErrUpstream)
	}

	player := gjson.GetBytes(body, "player")
	if !player.Exists() || player.Type == gjson.Null {
		return skyblock.Player{}, ErrPlayerNotFound
	}

	a := player.Get("achievements")
	return skyblock.Player{
		Username: player.Get("displayname").String(),
		SkillLevels: skyblock.SkillAchievements{
			Mining:     int(a.Get("skyblock_excavator").Int()),
			Foraging:   int(a.Get("skyblock_gatherer").Int()),
			Enchanting: int(a.Get("skyblock_augmentation").Int()),
			Farming:    int(a.Get("skyblock_harvester").Int()),
			Combat:     int(a.Get("skyblock_combat").Int()),
			Fishing:    int(a.Get("skyblock_angler").Int()),
			Alchemy:    int(a.Get("skyblock_concoctor").Int()),
			Taming:     int(a.Get("skyblock_domesticator").Int()),
		},
		SecretsFound: int(a.Get("skyblock_treasure_hunter").Int()),
	}, nil
}
