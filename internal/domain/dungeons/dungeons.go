package dungeons

import (
	"github.com/lutefd/skyblock-facade/internal/domain/leveling"
	"github.com/lutefd/skyblock-facade/internal/domain/skyblock"
)

type ClassStats struct {
	leveling.Progress
	leveling.Weight
}

type ClassReport struct {
	Healer    ClassStats `json:"healer"`
	Mage      ClassStats `json:"mage"`
	Berserker ClassStats `json:"berserker"`
	Archer    ClassStats `json:"archer"`
	Tank      ClassStats `json:"tank"`
}

func (c *ClassReport) Get(class Class) ClassStats {
	if f := c.field(class); f != nil {
		return *f
	}
	return ClassStats{}
}

func (c *ClassReport) field(class Class) *ClassStats {
	switch class {
	case Healer:
		return &c.Healer
	case Mage:
		return &c.Mage
	case Berserker:
		return &c.Berserker
	case Archer:
		return &c.Archer
	case Tank:
		return &c.Tank
	}
	return nil
}

// MasterMode mirrors the normal mode statistics. It has no level of its
// own and adds nothing to the catacombs weight.
type MasterMode struct {
	HighestTierCompleted float64            `json:"highest_tier_completed"`
	TierCompletions      map[string]float64 `json:"tier_completions"`
	BestScore            map[string]Score   `json:"best_score"`
	FastestTime          map[string]Time    `json:"fastest_time"`
	FastestTimeSPlus     map[string]Time    `json:"fastest_time_s_plus"`
	MobsKilled           map[string]float64 `json:"mobs_killed"`
	MostMobsKilled       map[string]float64 `json:"most_mobs_killed"`
}

type Catacombs struct {
	leveling.Progress
	leveling.Weight
	HighestTierCompleted float64            `json:"highest_tier_completed"`
	TimesPlayed          map[string]float64 `json:"times_played"`
	TierCompletions      map[string]float64 `json:"tier_completions"`
	BestScore            map[string]Score   `json:"best_score"`
	FastestTime          map[string]Time    `json:"fastest_time"`
	FastestTimeSPlus     map[string]Time    `json:"fastest_time_s_plus"`
	MobsKilled           map[string]float64 `json:"mobs_killed"`
	MostMobsKilled       map[string]float64 `json:"most_mobs_killed"`
	MasterMode           MasterMode         `json:"master_mode"`
}

type Types struct {
	Catacombs Catacombs `json:"catacombs"`
}

// Report is the dungeon section of a profile. SecretsFound is filled in from
// the player's achievements, not from the profile payload.
type Report struct {
	SelectedClass string `json:"selected_class"`
	SecretsFound  int    `json:"secrets_found"`
	leveling.Weight
	Classes ClassReport `json:"classes"`
	Types   Types       `json:"types"`
}

// Build computes the dungeon report, or returns nil when the payload lacks
// class data or the catacombs experience and completions. A partially
// populated dungeon report is never produced.
func Build(raw *skyblock.Dungeons) *Report {
	if !hasDungeonData(raw) {
		return nil
	}

	report := &Report{SelectedClass: raw.SelectedDungeonClass}
	for _, class := range Classes {
		stats := ClassStatsOf(raw.PlayerClasses[payloadKeys[class]].Experience)
		*report.Classes.field(class) = stats
		report.Weight = report.Weight.Add(stats.Weight)
	}

	report.Types.Catacombs = CatacombsOf(raw.DungeonTypes.Catacombs, raw.DungeonTypes.MasterCatacombs)
	report.Weight = report.Weight.Add(report.Types.Catacombs.Weight)
	return report
}

func ClassStatsOf(experience float64) ClassStats {
	level := leveling.LevelOf(experience, leveling.DungeonTable, MaxLevel)
	return ClassStats{
		Progress: leveling.Progress{Level: level, Experience: experience},
		Weight:   WeightOf(ClassModifier, level, experience),
	}
}

// CatacombsOf builds the catacombs entry; master may be nil.
func CatacombsOf(normal, master *skyblock.DungeonType) Catacombs {
	var experience float64
	if normal.Experience != nil {
		experience = *normal.Experience
	}
	if master == nil {
		master = &skyblock.DungeonType{}
	}

	level := leveling.LevelOf(experience, leveling.DungeonTable, MaxLevel)
	return Catacombs{
		Progress:             leveling.Progress{Level: level, Experience: experience},
		Weight:               WeightOf(CatacombsModifier, level, experience),
		HighestTierCompleted: normal.HighestTierCompleted,
		TimesPlayed:          Counts(normal.TimesPlayed),
		TierCompletions:      Counts(normal.TierCompletions),
		BestScore:            Scores(normal.BestScore),
		FastestTime:          Times(normal.FastestTime),
		FastestTimeSPlus:     Times(normal.FastestTimeSPlus),
		MobsKilled:           Counts(normal.MobsKilled),
		MostMobsKilled:       Counts(normal.MostMobsKilled),
		MasterMode: MasterMode{
			HighestTierCompleted: master.HighestTierCompleted,
			TierCompletions:      Counts(master.TierCompletions),
			BestScore:            Scores(master.BestScore),
			FastestTime:          Times(master.FastestTime),
			FastestTimeSPlus:     Times(master.FastestTimeSPlus),
			MobsKilled:           Counts(master.MobsKilled),
			MostMobsKilled:       Counts(master.MostMobsKilled),
		},
	}
}

func hasDungeonData(raw *skyblock.Dungeons) bool {
	return raw != nil &&
		raw.PlayerClasses != nil &&
		raw.DungeonTypes != nil &&
		raw.DungeonTypes.Catacombs != nil &&
		raw.DungeonTypes.Catacombs.Experience != nil &&
		raw.DungeonTypes.Catacombs.TierCompletions != nil
}
