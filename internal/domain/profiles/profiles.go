package profiles

import (
	"errors"
	"strings"

	"github.com/lutefd/skyblock-facade/internal/domain/dungeons"
	"github.com/lutefd/skyblock-facade/internal/domain/leveling"
	"github.com/lutefd/skyblock-facade/internal/domain/pets"
	"github.com/lutefd/skyblock-facade/internal/domain/skills"
	"github.com/lutefd/skyblock-facade/internal/domain/skyblock"
	"github.com/lutefd/skyblock-facade/internal/domain/slayers"
)

var (
	ErrNoProfiles      = errors.New("player has no played skyblock profiles")
	ErrProfileNotFound = errors.New("no profile matches the selection strategy")
)

// Coins keeps Bank nil for profiles without a bank account (co-op banks are
// only visible once the API setting is enabled).
type Coins struct {
	Total float64  `json:"total"`
	Bank  *float64 `json:"bank"`
	Purse *float64 `json:"purse"`
}

type Stats struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Selected bool   `json:"selected"`
	leveling.Weight
	FairySouls float64          `json:"fairy_souls"`
	Skills     *skills.Report   `json:"skills"`
	Slayers    *slayers.Report  `json:"slayers"`
	Dungeons   *dungeons.Report `json:"dungeons"`
	Pets       []pets.Pet       `json:"pets"`
	Coins      Coins            `json:"coins"`
}

// Set holds one player's profiles in upstream order.
type Set []Stats

// Aggregate builds the stats of one member of a profile. Missing categories
// stay nil and add nothing to the profile weight.
func Aggregate(player skyblock.Player, profile skyblock.Profile, member skyblock.Member) Stats {
	stats := Stats{
		ID:         profile.ProfileID,
		Name:       profile.CuteName,
		Username:   player.Username,
		Selected:   profile.Selected,
		FairySouls: member.FairySoulsCollected,
		Skills:     skills.Build(skillExperience(member), achievementLevels(player.SkillLevels)),
		Slayers:    slayers.Build(member.SlayerBosses),
		Dungeons:   dungeons.Build(member.Dungeons),
		Pets:       pets.Build(member.Pets),
		Coins:      coinsOf(profile, member),
	}

	if stats.Skills != nil {
		stats.Weight = stats.Weight.Add(stats.Skills.Weight)
	}
	if stats.Slayers != nil {
		stats.Weight = stats.Weight.Add(stats.Slayers.Weight)
	}
	if stats.Dungeons != nil {
		stats.Dungeons.SecretsFound = player.SecretsFound
		stats.Weight = stats.Weight.Add(stats.Dungeons.Weight)
	}
	return stats
}

// BuildSet aggregates every profile the player has actually played. Profiles
// the player was only invited to are skipped; if nothing is left the player
// is reported as having no profiles.
func BuildSet(player skyblock.Player, playerUUID string, raw []skyblock.Profile) (Set, error) {
	key := MemberKey(playerUUID)

	set := make(Set, 0, len(raw))
	for _, profile := range raw {
		member, ok := profile.Members[key]
		if !ok || !member.HasPlayed() {
			continue
		}
		set = append(set, Aggregate(player, profile, member))
	}

	if len(set) == 0 {
		return nil, ErrNoProfiles
	}
	return set, nil
}

// MemberKey is the form of a player UUID used to key profile members.
func MemberKey(playerUUID string) string {
	return strings.ToLower(strings.ReplaceAll(playerUUID, "-", ""))
}

func skillExperience(m skyblock.Member) skills.Experience {
	return skills.Experience{
		skills.Mining:       m.ExperienceSkillMining,
		skills.Foraging:     m.ExperienceSkillForaging,
		skills.Enchanting:   m.ExperienceSkillEnchanting,
		skills.Farming:      m.ExperienceSkillFarming,
		skills.Combat:       m.ExperienceSkillCombat,
		skills.Fishing:      m.ExperienceSkillFishing,
		skills.Alchemy:      m.ExperienceSkillAlchemy,
		skills.Taming:       m.ExperienceSkillTaming,
		skills.Carpentry:    m.ExperienceSkillCarpentry,
		skills.Runecrafting: m.ExperienceSkillRunecrafting,
	}
}

func achievementLevels(a skyblock.SkillAchievements) skills.Levels {
	return skills.Levels{
		skills.Mining:     a.Mining,
		skills.Foraging:   a.Foraging,
		skills.Enchanting: a.Enchanting,
		skills.Farming:    a.Farming,
		skills.Combat:     a.Combat,
		skills.Fishing:    a.Fishing,
		skills.Alchemy:    a.Alchemy,
		skills.Taming:     a.Taming,
	}
}

func coinsOf(profile skyblock.Profile, member skyblock.Member) Coins {
	coins := Coins{Total: member.CoinPurse}
	if member.CoinPurse != 0 {
		purse := member.CoinPurse
		coins.Purse = &purse
	}
	if profile.Banking != nil {
		bank := profile.Banking.Balance
		coins.Bank = &bank
		coins.Total += bank
	}
	return coins
}
