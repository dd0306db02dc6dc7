package skyblock

// Profile is one save slot as returned by the profiles endpoint. Members are
// keyed by the dashless player UUID.
type Profile struct {
	ProfileID string            `json:"profile_id"`
	CuteName  string            `json:"cute_name"`
	Selected  bool              `json:"selected"`
	Members   map[string]Member `json:"members"`
	Banking   *Banking          `json:"banking,omitempty"`
}

type Banking struct {
	Balance float64 `json:"balance"`
}

// Member is one player's progress inside a profile. Numeric fields that are
// missing from the payload decode to zero; Pets and LastSave stay nil when
// the player never loaded the profile.
type Member struct {
	LastSave            *int64  `json:"last_save,omitempty"`
	FirstJoin           int64   `json:"first_join"`
	FairySoulsCollected float64 `json:"fairy_souls_collected"`
	CoinPurse           float64 `json:"coin_purse"`

	ExperienceSkillMining       float64 `json:"experience_skill_mining"`
	ExperienceSkillForaging     float64 `json:"experience_skill_foraging"`
	ExperienceSkillEnchanting   float64 `json:"experience_skill_enchanting"`
	ExperienceSkillFarming      float64 `json:"experience_skill_farming"`
	ExperienceSkillCombat       float64 `json:"experience_skill_combat"`
	ExperienceSkillFishing      float64 `json:"experience_skill_fishing"`
	ExperienceSkillAlchemy      float64 `json:"experience_skill_alchemy"`
	ExperienceSkillTaming       float64 `json:"experience_skill_taming"`
	ExperienceSkillCarpentry    float64 `json:"experience_skill_carpentry"`
	ExperienceSkillRunecrafting float64 `json:"experience_skill_runecrafting"`

	SlayerBosses map[string]Slayer `json:"slayer_bosses,omitempty"`
	Dungeons     *Dungeons         `json:"dungeons,omitempty"`
	Pets         []Pet             `json:"pets"`
}

// HasPlayed reports whether the member ever loaded the profile. Invited
// players who never accepted show up as members without either field.
func (m Member) HasPlayed() bool {
	return m.Pets != nil || m.LastSave != nil
}

type Slayer struct {
	XP             float64 `json:"xp"`
	BossKillsTier0 float64 `json:"boss_kills_tier_0"`
	BossKillsTier1 float64 `json:"boss_kills_tier_1"`
	BossKillsTier2 float64 `json:"boss_kills_tier_2"`
	BossKillsTier3 float64 `json:"boss_kills_tier_3"`
	BossKillsTier4 float64 `json:"boss_kills_tier_4"`
}

type Dungeons struct {
	SelectedDungeonClass string                 `json:"selected_dungeon_class"`
	PlayerClasses        map[string]PlayerClass `json:"player_classes,omitempty"`
	DungeonTypes         *DungeonTypes          `json:"dungeon_types,omitempty"`
}

type PlayerClass struct {
	Experience float64 `json:"experience"`
}

type DungeonTypes struct {
	Catacombs       *DungeonType `json:"catacombs,omitempty"`
	MasterCatacombs *DungeonType `json:"master_catacombs,omitempty"`
}

// StatsGroup maps a raw tier key ("0" for the entrance, "1".."7" for floors)
// to a value.
type StatsGroup map[string]float64

type DungeonType struct {
	Experience           *float64   `json:"experience,omitempty"`
	HighestTierCompleted float64    `json:"highest_tier_completed"`
	TimesPlayed          StatsGroup `json:"times_played,omitempty"`
	TierCompletions      StatsGroup `json:"tier_completions,omitempty"`
	BestScore            StatsGroup `json:"best_score,omitempty"`
	FastestTime          StatsGroup `json:"fastest_time,omitempty"`
	FastestTimeSPlus     StatsGroup `json:"fastest_time_s_plus,omitempty"`
	MobsKilled           StatsGroup `json:"mobs_killed,omitempty"`
	MostMobsKilled       StatsGroup `json:"most_mobs_killed,omitempty"`
}

type Pet struct {
	Type      string  `json:"type"`
	Tier      string  `json:"tier"`
	Exp       float64 `json:"exp"`
	HeldItem  *string `json:"heldItem"`
	CandyUsed float64 `json:"candyUsed"`
	Active    bool    `json:"active"`
}
