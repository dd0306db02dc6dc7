package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lutefd/skyblock-facade/internal/auth"
	"github.com/lutefd/skyblock-facade/internal/domain/profiles"
	"github.com/lutefd/skyblock-facade/internal/humanize"
	"github.com/lutefd/skyblock-facade/internal/hypixel"
	"github.com/lutefd/skyblock-facade/internal/lookup"
	"github.com/lutefd/skyblock-facade/internal/metrics"
)

type uptime struct {
	Total int64  `json:"total"`
	Human string `json:"human"`
}

type statsResponse struct {
	Uptime   uptime                `json:"uptime"`
	Requests metrics.RequestCounts `json:"requests"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleHello(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hello, World"})
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	now := s.now()
	up := s.metrics.Uptime(now)
	writeData(w, http.StatusOK, statsResponse{
		Uptime: uptime{
			Total: int64(up.Seconds()),
			Human: humanize.Duration(up.Seconds()),
		},
		Requests: s.metrics.Requests(now),
	})
}

func (s *Server) handleProfiles(w http.ResponseWriter, r *http.Request) {
	key, _ := auth.APIKeyFromContext(r.Context())
	playerUUID := chi.URLParam(r, "uuid")

	set, err := s.lookup.Profiles(r.Context(), key, playerUUID)
	if err != nil {
		s.writeLookupError(w, r, playerUUID, err)
		return
	}
	s.metrics.ObserveLookup("ok")
	writeData(w, http.StatusOK, set)
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	key, _ := auth.APIKeyFromContext(r.Context())
	playerUUID := chi.URLParam(r, "uuid")
	strategy := chi.URLParam(r, "strategy")

	profile, err := s.lookup.Profile(r.Context(), key, playerUUID, strategy)
	if err != nil {
		s.writeLookupError(w, r, playerUUID, err)
		return
	}
	s.metrics.ObserveLookup("ok")
	writeData(w, http.StatusOK, profile)
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	if s.leaderboard == nil {
		writeError(w, http.StatusServiceUnavailable, "The leaderboard is not enabled on this server")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "The limit must be a positive number")
			return
		}
		limit = parsed
	}

	entries, err := s.leaderboard.Leaderboard(r.Context(), limit)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "list leaderboard", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load the leaderboard")
		return
	}
	writeData(w, http.StatusOK, entries)
}

func (s *Server) writeLookupError(w http.ResponseWriter, r *http.Request, playerUUID string, err error) {
	status, reason, outcome := lookupFailure(playerUUID, err)
	s.metrics.ObserveLookup(outcome)
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(r.Context(), "profile lookup failed",
			"player_uuid", playerUUID,
			"status", status,
			"error", err,
		)
	}
	writeError(w, status, reason)
}

// lookupFailure maps a lookup error to its HTTP status, the reason shown to
// the caller and the outcome label used for metrics.
func lookupFailure(playerUUID string, err error) (int, string, string) {
	switch {
	case errors.Is(err, lookup.ErrInvalidUUID):
		return http.StatusBadRequest, "Invalid UUID provided, you must provide a valid UUID", "invalid_uuid"
	case errors.Is(err, hypixel.ErrInvalidKey):
		return http.StatusForbidden, "Invalid API key provided, the Hypixel API rejected the key", "invalid_key"
	case errors.Is(err, hypixel.ErrPlayerNotFound):
		return http.StatusNotFound, fmt.Sprintf("Found no Player data for a user with a UUID of '%s'", playerUUID), "not_found"
	case errors.Is(err, hypixel.ErrNoProfiles), errors.Is(err, profiles.ErrNoProfiles):
		return http.StatusNotFound, fmt.Sprintf("Found no SkyBlock profiles for a user with a UUID of '%s'", playerUUID), "not_found"
	case errors.Is(err, profiles.ErrProfileNotFound):
		return http.StatusNotFound, "Failed to find a profile using the given strategy", "not_found"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "The Hypixel API took too long to respond", "upstream_error"
	case errors.Is(err, hypixel.ErrUpstream):
		return http.StatusBadGateway, "Failed to fetch data from the Hypixel API", "upstream_error"
	default:
		return http.StatusInternalServerError, "Something went wrong while processing the request", "error"
	}
}
