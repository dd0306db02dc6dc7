package projections

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lutefd/skyblock-facade/internal/domain/leaderboard"
	"github.com/lutefd/skyblock-facade/internal/domain/leveling"
	"github.com/lutefd/skyblock-facade/internal/domain/profiles"
	"github.com/lutefd/skyblock-facade/internal/events"
)

type projectionStoreMock struct {
	replacedPlayer uuid.UUID
	replacedRows   []leaderboard.Entry
	replaceErr     error

	listedLimit int
	listed      []leaderboard.Entry
}

func (m *projectionStoreMock) ReplacePlayerProfiles(_ context.Context, playerUUID uuid.UUID, rows []leaderboard.Entry) error {
	m.replacedPlayer = playerUUID
	m.replacedRows = rows
	return m.replaceErr
}

func (m *projectionStoreMock) ListLeaderboard(_ context.Context, limit int) ([]leaderboard.Entry, error) {
	m.listedLimit = limit
	return m.listed, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProfilesComputedEventRecordsOneRowPerProfile(t *testing.T) {
	store := &projectionStoreMock{}
	svc := NewService(store, quietLogger())
	bus := events.NewBus()
	svc.Register(bus)

	playerUUID := uuid.New()
	computedAt := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	set := profiles.Set{
		{ID: "p1", Name: "Apple", Username: "Senither", Weight: leveling.Weight{Weight: 1200, Overflow: 30}},
		{ID: "p2", Name: "Banana", Username: "Senither", Weight: leveling.Weight{Weight: 50}},
	}

	err := bus.Publish(context.Background(), events.Event{
		Name:    events.ProfilesComputed,
		Payload: events.ProfilesComputedPayload{PlayerUUID: playerUUID, Profiles: set, ComputedAt: computedAt},
	})
	if err != nil {
		t.Fatalf("publish returned error: %v", err)
	}

	if store.replacedPlayer != playerUUID {
		t.Fatalf("expected rows for %s, got %s", playerUUID, store.replacedPlayer)
	}
	if len(store.replacedRows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(store.replacedRows))
	}
	first := store.replacedRows[0]
	if first.ProfileID != "p1" || first.Weight != 1200 || first.Overflow != 30 || !first.UpdatedAt.Equal(computedAt) {
		t.Fatalf("unexpected first row: %+v", first)
	}
	if store.replacedRows[1].ProfileName != "Banana" {
		t.Fatalf("unexpected second row: %+v", store.replacedRows[1])
	}
}

func TestHandleProfilesComputedRejectsUnknownPayload(t *testing.T) {
	svc := NewService(&projectionStoreMock{}, quietLogger())
	err := svc.HandleProfilesComputed(context.Background(), events.Event{Name: events.ProfilesComputed, Payload: "nope"})
	if err == nil {
		t.Fatalf("expected error for unexpected payload")
	}
}

func TestHandleProfilesComputedDefaultsTimestamp(t *testing.T) {
	store := &projectionStoreMock{}
	svc := NewService(store, quietLogger())
	fixed := time.Date(2026, 5, 5, 5, 5, 5, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	err := svc.HandleProfilesComputed(context.Background(), events.Event{
		Name:    events.ProfilesComputed,
		Payload: events.ProfilesComputedPayload{PlayerUUID: uuid.New(), Profiles: profiles.Set{{ID: "p"}}},
	})
	if err != nil {
		t.Fatalf("handle returned error: %v", err)
	}
	if !store.replacedRows[0].UpdatedAt.Equal(fixed) {
		t.Fatalf("expected timestamp %s, got %s", fixed, store.replacedRows[0].UpdatedAt)
	}
}

func TestRecordProfilesWrapsStoreError(t *testing.T) {
	storeErr := errors.New("db down")
	svc := NewService(&projectionStoreMock{replaceErr: storeErr}, quietLogger())

	err := svc.RecordProfiles(context.Background(), uuid.New(), profiles.Set{{ID: "p"}}, time.Now())
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected %v, got %v", storeErr, err)
	}
}

func TestLeaderboardClampsLimit(t *testing.T) {
	store := &projectionStoreMock{}
	svc := NewService(store, quietLogger())

	if _, err := svc.Leaderboard(context.Background(), 0); err != nil {
		t.Fatalf("leaderboard returned error: %v", err)
	}
	if store.listedLimit != leaderboard.DefaultLimit {
		t.Fatalf("expected default limit %d, got %d", leaderboard.DefaultLimit, store.listedLimit)
	}

	if _, err := svc.Leaderboard(context.Background(), 5000); err != nil {
		t.Fatalf("leaderboard returned error: %v", err)
	}
	if store.listedLimit != leaderboard.MaxLimit {
		t.Fatalf("expected max limit %d, got %d", leaderboard.MaxLimit, store.listedLimit)
	}
}
