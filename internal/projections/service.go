package projections

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lutefd/skyblock-facade/internal/domain/leaderboard"
	"github.com/lutefd/skyblock-facade/internal/domain/profiles"
	"github.com/lutefd/skyblock-facade/internal/events"
)

type Store interface {
	ReplacePlayerProfiles(ctx context.Context, playerUUID uuid.UUID, rows []leaderboard.Entry) error
	ListLeaderboard(ctx context.Context, limit int) ([]leaderboard.Entry, error)
}

// Service keeps the weight leaderboard in sync with computed profile sets.
type Service struct {
	store  Store
	logger *slog.Logger
	now    func() time.Time
}

func NewService(store Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger, now: time.Now}
}

// Register subscribes the service to profile computations on the bus.
func (s *Service) Register(bus *events.Bus) {
	bus.Subscribe(events.ProfilesComputed, s.HandleProfilesComputed)
}

func (s *Service) HandleProfilesComputed(ctx context.Context, e events.Event) error {
	payload, ok := e.Payload.(events.ProfilesComputedPayload)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", e.Payload, e.Name)
	}
	computedAt := payload.ComputedAt
	if computedAt.IsZero() {
		computedAt = s.now()
	}
	return s.RecordProfiles(ctx, payload.PlayerUUID, payload.Profiles, computedAt)
}

func (s *Service) RecordProfiles(ctx context.Context, playerUUID uuid.UUID, set profiles.Set, computedAt time.Time) error {
	rows := leaderboard.FromSet(playerUUID, set, computedAt.UTC())
	if err := s.store.ReplacePlayerProfiles(ctx, playerUUID, rows); err != nil {
		return fmt.Errorf("record profiles for %s: %w", playerUUID, err)
	}
	s.logger.DebugContext(ctx, "recorded profile weights",
		slog.String("player_uuid", playerUUID.String()),
		slog.Int("profiles", len(rows)),
	)
	return nil
}

func (s *Service) Leaderboard(ctx context.Context, limit int) ([]leaderboard.Entry, error) {
	return s.store.ListLeaderboard(ctx, leaderboard.ClampLimit(limit))
}
