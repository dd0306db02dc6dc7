package leaderboard

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lutefd/skyblock-facade/internal/domain/leveling"
	"github.com/lutefd/skyblock-facade/internal/domain/profiles"
)

func TestFromSet(t *testing.T) {
	id := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	set := profiles.Set{
		{ID: "a", Name: "Apple", Username: "Senither", Weight: leveling.Weight{Weight: 100, Overflow: 5}},
		{ID: "b", Name: "Banana", Username: "Senither"},
	}

	rows := FromSet(id, set, now)
	require.Len(t, rows, 2)
	assert.Equal(t, Entry{
		PlayerUUID:  id,
		Username:    "Senither",
		ProfileID:   "a",
		ProfileName: "Apple",
		Weight:      100,
		Overflow:    5,
		UpdatedAt:   now,
	}, rows[0])
	assert.Equal(t, 105.0, rows[0].Total())
}

func TestRankOrdersByTotalWeight(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	entries := []Entry{
		{ProfileID: "low", Weight: 10, UpdatedAt: base},
		{ProfileID: "late-tie", Weight: 40, Overflow: 10, UpdatedAt: base.Add(time.Hour)},
		{ProfileID: "early-tie", Weight: 50, UpdatedAt: base},
		{ProfileID: "top", Weight: 60, Overflow: 1, UpdatedAt: base},
	}

	ranked := Rank(entries)
	got := make([]string, len(ranked))
	for i, e := range ranked {
		got[i] = e.ProfileID
		assert.Equal(t, i+1, e.Rank)
	}
	assert.Equal(t, []string{"top", "early-tie", "late-tie", "low"}, got)
	assert.Equal(t, 0, entries[0].Rank, "input is left untouched")
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, ClampLimit(0))
	assert.Equal(t, DefaultLimit, ClampLimit(-3))
	assert.Equal(t, 10, ClampLimit(10))
	assert.Equal(t, MaxLimit, ClampLimit(1000))
}
