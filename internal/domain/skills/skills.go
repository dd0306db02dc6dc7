package skills

import (
	"math"

	"github.com/lutefd/skyblock-facade/internal/domain/leveling"
)

// Experience is the raw experience per skill. Missing skills count as zero.
type Experience map[Skill]float64

// Levels are integer skill levels recorded by achievements.
type Levels map[Skill]int

type SkillStats struct {
	leveling.Progress
	leveling.Weight
}

type Report struct {
	APIEnabled    bool    `json:"apiEnabled"`
	AverageSkills float64 `json:"average_skills"`
	leveling.Weight

	Mining       SkillStats `json:"mining"`
	Foraging     SkillStats `json:"foraging"`
	Enchanting   SkillStats `json:"enchanting"`
	Farming      SkillStats `json:"farming"`
	Combat       SkillStats `json:"combat"`
	Fishing      SkillStats `json:"fishing"`
	Alchemy      SkillStats `json:"alchemy"`
	Taming       SkillStats `json:"taming"`
	Carpentry    SkillStats `json:"carpentry"`
	Runecrafting SkillStats `json:"runecrafting"`
}

func (r *Report) Get(s Skill) SkillStats {
	if f := r.field(s); f != nil {
		return *f
	}
	return SkillStats{}
}

func (r *Report) field(s Skill) *SkillStats {
	switch s {
	case Mining:
		return &r.Mining
	case Foraging:
		return &r.Foraging
	case Enchanting:
		return &r.Enchanting
	case Farming:
		return &r.Farming
	case Combat:
		return &r.Combat
	case Fishing:
		return &r.Fishing
	case Alchemy:
		return &r.Alchemy
	case Taming:
		return &r.Taming
	case Carpentry:
		return &r.Carpentry
	case Runecrafting:
		return &r.Runecrafting
	}
	return nil
}

// Build computes the skills report. When the profile reports no weighted
// skill experience at all the player most likely disabled the skills API,
// so levels recorded by achievements are used instead. A nil report means
// neither source has any data.
func Build(experience Experience, fallback Levels) *Report {
	apiEnabled := true
	if weightedExperience(experience) == 0 {
		apiEnabled = false
		experience = experienceFromLevels(fallback)
		if weightedExperience(experience) == 0 {
			return nil
		}
	}

	report := &Report{APIEnabled: apiEnabled}
	var levels float64
	var weighted int
	for _, s := range All {
		stats := Calculate(s, experience[s])
		*report.field(s) = stats
		if GroupOf(s).Weighted {
			report.Weight = report.Weight.Add(stats.Weight)
			levels += stats.Level
			weighted++
		}
	}
	report.AverageSkills = levels / float64(weighted)
	return report
}

// Calculate derives level and weight for a single skill.
func Calculate(s Skill, experience float64) SkillStats {
	g := GroupOf(s)
	level := leveling.LevelOf(experience, g.Table, float64(g.MaxLevel))
	return SkillStats{
		Progress: leveling.Progress{Level: level, Experience: experience},
		Weight:   WeightOf(g, level, experience),
	}
}

// WeightOf applies the skill weight curve. Base weight is rounded once the
// skill is past its cap so maxed skills show whole numbers.
func WeightOf(g Group, level, experience float64) leveling.Weight {
	if !g.Weighted {
		return leveling.Weight{}
	}

	capExperience := g.CapExperience()
	base := math.Pow(level*10, 0.5+g.Exponent+level/100) / 1250
	if experience <= capExperience {
		return leveling.Weight{Weight: base}
	}

	return leveling.Weight{
		Weight:   math.Round(base),
		Overflow: math.Pow((experience-capExperience)/g.Divider, 0.968),
	}
}

func weightedExperience(experience Experience) float64 {
	var total float64
	for _, s := range All {
		if GroupOf(s).Weighted {
			total += experience[s]
		}
	}
	return total
}

func experienceFromLevels(levels Levels) Experience {
	experience := make(Experience, len(All))
	for _, s := range All {
		if !GroupOf(s).Weighted {
			continue
		}
		experience[s] = leveling.ExperienceFor(levels[s], GroupOf(s).Table)
	}
	return experience
}
