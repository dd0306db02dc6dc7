package leveling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableTotals(t *testing.T) {
	assert.Equal(t, 55172425.0, ExperienceFor(50, SkillTable))
	assert.Equal(t, 111672425.0, SkillTable.Sum())
	assert.Equal(t, 569809640.0, DungeonTable.Sum())
	assert.Len(t, RunecraftingTable, 25)
	assert.Len(t, SlayerBreakpoints, 9)
	assert.GreaterOrEqual(t, len(PetTable), 100+20-1)
}

func TestLevelOfZero(t *testing.T) {
	if got := LevelOf(0, SkillTable, 60); got != 0 {
		t.Fatalf("expected 0, got %.4f", got)
	}
}

func TestLevelOfExactBoundary(t *testing.T) {
	assert.Equal(t, 25.0, LevelOf(RunecraftingTable.Sum(), RunecraftingTable, 25))
	assert.Equal(t, 50.0, LevelOf(DungeonTable.Sum(), DungeonTable, 50))
	assert.Equal(t, 60.0, LevelOf(SkillTable.Sum(), SkillTable, 60))
}

func TestLevelOfFractionalProgress(t *testing.T) {
	// 50 completes level 1, 62.5 more is half of the 125 needed for level 2.
	assert.InDelta(t, 1.5, LevelOf(112.5, SkillTable, 60), 1e-9)
}

func TestLevelOfClampsToMaxLevel(t *testing.T) {
	assert.Equal(t, 50.0, LevelOf(ExperienceFor(55, SkillTable), SkillTable, 50))
	assert.Equal(t, 50.0, LevelOf(1e12, SkillTable, 50))
}

func TestLevelOfIsMonotonicAndBounded(t *testing.T) {
	previous := -1.0
	for xp := 0.0; xp <= 120_000_000; xp += 250_000 {
		level := LevelOf(xp, SkillTable, 60)
		if level < previous {
			t.Fatalf("level decreased at %.0f xp: %.4f < %.4f", xp, level, previous)
		}
		if level < 0 || level > 60 {
			t.Fatalf("level out of bounds at %.0f xp: %.4f", xp, level)
		}
		previous = level
	}
}

func TestExperienceForCapsAtTableLength(t *testing.T) {
	assert.Equal(t, RunecraftingTable.Sum(), ExperienceFor(100, RunecraftingTable))
	assert.Equal(t, 0.0, ExperienceFor(0, SkillTable))
	assert.Equal(t, 175.0, ExperienceFor(2, SkillTable))
}
