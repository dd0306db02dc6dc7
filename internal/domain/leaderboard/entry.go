package leaderboard

import (
	"cmp"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/lutefd/skyblock-facade/internal/domain/profiles"
)

const (
	DefaultLimit = 25
	MaxLimit     = 100
)

// Entry is one ranked profile. Rank is assigned when a page is read.
type Entry struct {
	Rank        int       `json:"rank"`
	PlayerUUID  uuid.UUID `json:"uuid"`
	Username    string    `json:"username"`
	ProfileID   string    `json:"profile_id"`
	ProfileName string    `json:"profile_name"`
	Weight      float64   `json:"weight"`
	Overflow    float64   `json:"weight_overflow"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (e Entry) Total() float64 {
	return e.Weight + e.Overflow
}

// FromSet flattens a computed profile set into rows, one per profile.
func FromSet(playerUUID uuid.UUID, set profiles.Set, now time.Time) []Entry {
	rows := make([]Entry, 0, len(set))
	for _, p := range set {
		rows = append(rows, Entry{
			PlayerUUID:  playerUUID,
			Username:    p.Username,
			ProfileID:   p.ID,
			ProfileName: p.Name,
			Weight:      p.Weight.Weight,
			Overflow:    p.Overflow,
			UpdatedAt:   now,
		})
	}
	return rows
}

// Rank orders entries by total weight, highest first, and numbers them from
// one. Ties go to the entry recorded first.
func Rank(entries []Entry) []Entry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b Entry) int {
		if c := cmp.Compare(b.Total(), a.Total()); c != 0 {
			return c
		}
		return a.UpdatedAt.Compare(b.UpdatedAt)
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// ClampLimit bounds a requested page size.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return min(limit, MaxLimit)
}
