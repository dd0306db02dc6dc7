package profiles

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lutefd/skyblock-facade/internal/domain/leveling"
	"github.com/lutefd/skyblock-facade/internal/domain/skills"
	"github.com/lutefd/skyblock-facade/internal/domain/skyblock"
	"github.com/lutefd/skyblock-facade/internal/domain/slayers"
)

const (
	playerUUID = "7f1a0b2c-3d4e-4f56-8a9b-0c1d2e3f4a5b"
	memberKey  = "7f1a0b2c3d4e4f568a9b0c1d2e3f4a5b"
)

func int64Ptr(v int64) *int64 { return &v }

func TestMemberKey(t *testing.T) {
	assert.Equal(t, memberKey, MemberKey(playerUUID))
	assert.Equal(t, memberKey, MemberKey("7F1A0B2C3D4E4F568A9B0C1D2E3F4A5B"))
}

func TestBuildSetSkipsUnplayedProfiles(t *testing.T) {
	raw := []skyblock.Profile{
		{
			ProfileID: "invited",
			CuteName:  "Apple",
			Members:   map[string]skyblock.Member{memberKey: {}},
		},
		{
			ProfileID: "played",
			CuteName:  "Banana",
			Members: map[string]skyblock.Member{memberKey: {
				Pets:                  []skyblock.Pet{},
				ExperienceSkillMining: skills.Level50Experience,
			}},
		},
	}

	set, err := BuildSet(skyblock.Player{Username: "Senither"}, playerUUID, raw)
	require.NoError(t, err)
	require.Len(t, set, 1)
	assert.Equal(t, "played", set[0].ID)
	assert.Equal(t, "Senither", set[0].Username)
}

func TestBuildSetAcceptsLastSaveAsEvidence(t *testing.T) {
	raw := []skyblock.Profile{{
		ProfileID: "saved",
		Members:   map[string]skyblock.Member{memberKey: {LastSave: int64Ptr(1600000000000)}},
	}}

	set, err := BuildSet(skyblock.Player{}, playerUUID, raw)
	require.NoError(t, err)
	assert.Len(t, set, 1)
}

func TestBuildSetFailsWhenNothingWasPlayed(t *testing.T) {
	raw := []skyblock.Profile{
		{ProfileID: "other", Members: map[string]skyblock.Member{"someoneelse": {Pets: []skyblock.Pet{}}}},
		{ProfileID: "invited", Members: map[string]skyblock.Member{memberKey: {}}},
	}

	_, err := BuildSet(skyblock.Player{}, playerUUID, raw)
	assert.True(t, errors.Is(err, ErrNoProfiles))

	_, err = BuildSet(skyblock.Player{}, playerUUID, nil)
	assert.ErrorIs(t, err, ErrNoProfiles)
}

func TestAggregateFallsBackToAchievementLevels(t *testing.T) {
	player := skyblock.Player{SkillLevels: skyblock.SkillAchievements{Mining: 25, Combat: 20}}
	profile := skyblock.Profile{ProfileID: "p"}
	member := skyblock.Member{Pets: []skyblock.Pet{}}

	stats := Aggregate(player, profile, member)
	require.NotNil(t, stats.Skills)
	assert.False(t, stats.Skills.APIEnabled)
	assert.Equal(t, 25.0, stats.Skills.Mining.Level)
	assert.Equal(t, 20.0, stats.Skills.Combat.Level)
	assert.Nil(t, stats.Slayers)
	assert.Nil(t, stats.Dungeons)
	assert.NotNil(t, stats.Pets)
	assert.InDelta(t, stats.Skills.Weight.Weight, stats.Weight.Weight, 1e-9)
}

func TestAggregateSumsCategoryWeights(t *testing.T) {
	profile := skyblock.Profile{
		ProfileID: "p",
		CuteName:  "Mango",
		Selected:  true,
		Banking:   &skyblock.Banking{Balance: 1000},
	}
	member := skyblock.Member{
		FairySoulsCollected:     190,
		CoinPurse:               250.5,
		ExperienceSkillForaging: skills.Level50Experience + 259634,
		SlayerBosses:            map[string]skyblock.Slayer{"zombie": {XP: 2_000_000}},
	}

	stats := Aggregate(skyblock.Player{}, profile, member)
	require.NotNil(t, stats.Skills)
	require.NotNil(t, stats.Slayers)

	want := stats.Skills.Weight.Add(stats.Slayers.Weight)
	assert.InDelta(t, want.Weight, stats.Weight.Weight, 1e-9)
	assert.InDelta(t, want.Overflow, stats.Overflow, 1e-9)
	assert.Greater(t, stats.Overflow, 0.0)

	assert.Equal(t, 190.0, stats.FairySouls)
	require.NotNil(t, stats.Coins.Bank)
	assert.Equal(t, 1000.0, *stats.Coins.Bank)
	assert.Equal(t, 1250.5, stats.Coins.Total)
	require.NotNil(t, stats.Coins.Purse)
	assert.Equal(t, 250.5, *stats.Coins.Purse)
}

func TestAggregateEmptyPurseIsNull(t *testing.T) {
	profile := skyblock.Profile{ProfileID: "p", Banking: &skyblock.Banking{Balance: 40}}

	stats := Aggregate(skyblock.Player{}, profile, skyblock.Member{CoinPurse: 0})
	assert.Nil(t, stats.Coins.Purse)
	assert.Equal(t, 40.0, stats.Coins.Total)

	raw, err := json.Marshal(stats.Coins)
	require.NoError(t, err)
	assert.JSONEq(t, `{"total": 40, "bank": 40, "purse": null}`, string(raw))
}

func TestAggregateCarriesSecretsIntoDungeons(t *testing.T) {
	experience := 500.0
	member := skyblock.Member{
		Dungeons: &skyblock.Dungeons{
			PlayerClasses: map[string]skyblock.PlayerClass{},
			DungeonTypes: &skyblock.DungeonTypes{
				Catacombs: &skyblock.DungeonType{
					Experience:      &experience,
					TierCompletions: skyblock.StatsGroup{},
				},
			},
		},
	}

	stats := Aggregate(skyblock.Player{SecretsFound: 1234}, skyblock.Profile{ProfileID: "p"}, member)
	require.NotNil(t, stats.Dungeons)
	assert.Equal(t, 1234, stats.Dungeons.SecretsFound)

	raw, err := json.Marshal(stats.Dungeons)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, 1234.0, decoded["secrets_found"])

	withoutDungeons := Aggregate(skyblock.Player{SecretsFound: 1234}, skyblock.Profile{ProfileID: "p"}, skyblock.Member{})
	assert.Nil(t, withoutDungeons.Dungeons)
}

func TestStatsJSONShape(t *testing.T) {
	stats := Aggregate(skyblock.Player{Username: "x"}, skyblock.Profile{ProfileID: "p", CuteName: "Kiwi"}, skyblock.Member{})

	raw, err := json.Marshal(stats)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	for _, key := range []string{"id", "name", "username", "selected", "weight", "weight_overflow", "fairy_souls", "skills", "slayers", "dungeons", "pets", "coins"} {
		assert.Contains(t, decoded, key)
	}
	assert.Nil(t, decoded["skills"])
	assert.Equal(t, []any{}, decoded["pets"])
	assert.Equal(t, map[string]any{"total": 0.0, "bank": nil, "purse": nil}, decoded["coins"])
}

func withWeight(name string, weight float64) Stats {
	return Stats{ID: name, Name: name, Weight: leveling.Weight{Weight: weight}}
}

func TestSelectByWeightIsStable(t *testing.T) {
	set := Set{withWeight("a", 5), withWeight("b", 10), withWeight("c", 10)}

	got, err := Select(set, "weight")
	require.NoError(t, err)
	assert.Equal(t, "b", got.ID)
	assert.Equal(t, []string{"a", "b", "c"}, ids(set), "input must not be reordered")
}

func TestSelectStrategies(t *testing.T) {
	set := Set{
		{ID: "first", Name: "Apple", Weight: leveling.Weight{Weight: 10, Overflow: 100}},
		{
			ID:       "second",
			Name:     "Banana",
			Selected: true,
			Weight:   leveling.Weight{Weight: 50},
			Skills:   &skills.Report{AverageSkills: 30},
		},
		{
			ID:      "third",
			Name:    "Coconut",
			Slayers: &slayers.Report{TotalExperience: 1_000_000},
		},
	}

	tests := []struct {
		keyword string
		want    string
	}{
		{"we", "first"},
		{"WEIGHTS", "first"},
		{"latest", "second"},
		{"last_save_at", "second"},
		{"skills", "second"},
		{"slayer", "third"},
		{"cata", "first"},
		{"coconut", "third"},
		{"Banana", "second"},
	}

	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			got, err := Select(set, tt.keyword)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.ID)
		})
	}
}

func TestSelectUnknownName(t *testing.T) {
	_, err := Select(Set{withWeight("Apple", 1)}, "durian")
	assert.ErrorIs(t, err, ErrProfileNotFound)

	_, err = Select(nil, "weight")
	assert.ErrorIs(t, err, ErrNoProfiles)
}

func TestRanked(t *testing.T) {
	set := Set{withWeight("a", 5), withWeight("b", 10), withWeight("c", 10), withWeight("d", 7)}
	assert.Equal(t, []string{"b", "c", "d", "a"}, ids(Ranked(set, ByWeight)))
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(set))
}

func ids(set Set) []string {
	out := make([]string, len(set))
	for i, p := range set {
		out[i] = p.ID
	}
	return out
}
