package httpserver

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lutefd/skyblock-facade/internal/auth"
	"github.com/lutefd/skyblock-facade/internal/domain/leaderboard"
	"github.com/lutefd/skyblock-facade/internal/domain/profiles"
	"github.com/lutefd/skyblock-facade/internal/metrics"
)

// ProfileLookup builds profile sets for a player from the upstream API.
type ProfileLookup interface {
	Profiles(ctx context.Context, apiKey, rawUUID string) (profiles.Set, error)
	Profile(ctx context.Context, apiKey, rawUUID, strategy string) (profiles.Stats, error)
}

type LeaderboardReader interface {
	Leaderboard(ctx context.Context, limit int) ([]leaderboard.Entry, error)
}

// Dependencies wires the server. Leaderboard may be nil when no database is
// configured, and Limiter nil when lookups are not throttled per key.
type Dependencies struct {
	Lookup      ProfileLookup
	Leaderboard LeaderboardReader
	Metrics     *metrics.Recorder
	Limiter     *auth.KeyRateLimiter
	Logger      *slog.Logger
	Now         func() time.Time
}

type Server struct {
	lookup      ProfileLookup
	leaderboard LeaderboardReader
	metrics     *metrics.Recorder
	logger      *slog.Logger
	auth        auth.Middleware
	limiter     *auth.KeyRateLimiter
	now         func() time.Time
}

func NewServer(deps Dependencies) *Server {
	s := &Server{
		lookup:      deps.Lookup,
		leaderboard: deps.Leaderboard,
		metrics:     deps.Metrics,
		logger:      deps.Logger,
		limiter:     deps.Limiter,
		now:         deps.Now,
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.metrics == nil {
		s.metrics = metrics.NewRecorder(prometheus.NewRegistry(), s.now())
	}
	s.auth = auth.NewMiddleware(s.rejectKey)
	return s
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.loggingMiddleware, s.metricsMiddleware)
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/hello", s.handleHello)
		r.Get("/stats", s.handleStats)
		r.Get("/leaderboard", s.handleLeaderboard)

		r.Group(func(r chi.Router) {
			r.Use(s.auth.Guard)
			if s.limiter != nil {
				r.Use(s.limiter.Limit(s.rejectLimited))
			}
			r.Get("/profiles/{uuid}", s.handleProfiles)
			r.Get("/profiles/{uuid}/{strategy}", s.handleProfile)
		})
	})
	return r
}

func (s *Server) rejectKey(w http.ResponseWriter, _ *http.Request, _ error) {
	writeError(w, http.StatusBadRequest, `Missing "key" query parameter, or an "authorization" header with a valid Hypixel API token`)
}

func (s *Server) rejectLimited(w http.ResponseWriter, _ *http.Request) {
	s.metrics.ObserveLookup("rate_limited")
	writeError(w, http.StatusTooManyRequests, "Too many requests for this API key, try again in a moment")
}
