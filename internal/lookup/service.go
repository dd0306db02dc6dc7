package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/lutefd/skyblock-facade/internal/domain/profiles"
	"github.com/lutefd/skyblock-facade/internal/domain/skyblock"
	"github.com/lutefd/skyblock-facade/internal/events"
)

var ErrInvalidUUID = errors.New("invalid player uuid")

// Upstream fetches the raw documents a profile set is built from.
type Upstream interface {
	FetchPlayer(ctx context.Context, apiKey, playerUUID string) (skyblock.Player, error)
	FetchProfiles(ctx context.Context, apiKey, playerUUID string) ([]skyblock.Profile, error)
}

type Publisher interface {
	Publish(ctx context.Context, e events.Event) error
	HasSubscribers(name string) bool
}

type Service struct {
	upstream  Upstream
	publisher Publisher
	logger    *slog.Logger
	tracer    trace.Tracer
	now       func() time.Time
}

func NewService(upstream Upstream, publisher Publisher, logger *slog.Logger, tracer trace.Tracer) *Service {
	return &Service{
		upstream:  upstream,
		publisher: publisher,
		logger:    logger,
		tracer:    tracer,
		now:       time.Now,
	}
}

// ParseUUID accepts only the dashed 36 character form of a player UUID.
func ParseUUID(raw string) (uuid.UUID, error) {
	if len(raw) != 36 {
		return uuid.Nil, ErrInvalidUUID
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrInvalidUUID
	}
	return id, nil
}

// Profiles fetches a player and their profiles in parallel and builds the
// profile set.
func (s *Service) Profiles(ctx context.Context, apiKey, rawUUID string) (profiles.Set, error) {
	ctx, span := s.tracer.Start(ctx, "Lookup.Profiles", trace.WithAttributes(
		attribute.String("player.uuid", rawUUID),
	))
	defer span.End()

	playerUUID, err := ParseUUID(rawUUID)
	if err != nil {
		return nil, err
	}

	var (
		player skyblock.Player
		raw    []skyblock.Profile
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.upstream.FetchPlayer(gctx, apiKey, playerUUID.String())
		if err != nil {
			return fmt.Errorf("fetch player: %w", err)
		}
		player = p
		return nil
	})
	g.Go(func() error {
		p, err := s.upstream.FetchProfiles(gctx, apiKey, playerUUID.String())
		if err != nil {
			return fmt.Errorf("fetch profiles: %w", err)
		}
		raw = p
		return nil
	})
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.WarnContext(ctx, "upstream lookup failed",
			slog.String("player_uuid", playerUUID.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	set, err := profiles.BuildSet(player, playerUUID.String(), raw)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("profiles.count", len(set)))

	s.logger.InfoContext(ctx, "built profile set",
		slog.String("player_uuid", playerUUID.String()),
		slog.String("username", player.Username),
		slog.Int("profiles", len(set)),
	)
	s.publish(ctx, playerUUID, set)
	return set, nil
}

// Profile builds the set and picks one profile by strategy keyword or name.
func (s *Service) Profile(ctx context.Context, apiKey, rawUUID, strategy string) (profiles.Stats, error) {
	ctx, span := s.tracer.Start(ctx, "Lookup.Profile", trace.WithAttributes(
		attribute.String("player.uuid", rawUUID),
		attribute.String("strategy", strategy),
	))
	defer span.End()

	set, err := s.Profiles(ctx, apiKey, rawUUID)
	if err != nil {
		return profiles.Stats{}, err
	}

	selected, err := profiles.Select(set, strategy)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return profiles.Stats{}, err
	}
	span.SetAttributes(attribute.String("profile.id", selected.ID))
	return selected, nil
}

// publish hands the set to subscribers. Failures there are logged only; the
// caller already has a valid answer.
func (s *Service) publish(ctx context.Context, playerUUID uuid.UUID, set profiles.Set) {
	if s.publisher == nil || !s.publisher.HasSubscribers(events.ProfilesComputed) {
		return
	}
	err := s.publisher.Publish(ctx, events.Event{
		Name: events.ProfilesComputed,
		Payload: events.ProfilesComputedPayload{
			PlayerUUID: playerUUID,
			Profiles:   set,
			ComputedAt: s.now().UTC(),
		},
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "publish profiles computed",
			slog.String("player_uuid", playerUUID.String()),
			slog.Any("error", err),
		)
	}
}
