// Package api provides the HTTP server for Resolve: resolutions,
// check-ins, votes, leaderboards, reports, and the group feed.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/resolvehq/resolve/internal/app/tracker"
	"github.com/resolvehq/resolve/internal/domain"
)

// FeedReader lists recent feed events for display.
type FeedReader interface {
	Feed(limit int) ([]domain.FeedEvent, error)
}

// Server is the Resolve HTTP API server.
type Server struct {
	svc            *tracker.Service
	feed           FeedReader
	version        string
	metricsEnabled bool
}

// NewServer creates a new API server.
func NewServer(svc *tracker.Service, feed FeedReader, version string) *Server {
	return &Server{svc: svc, feed: feed, version: version}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/api/version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/resolutions", func(r chi.Router) {
			r.Post("/", s.handleCreateResolution)
			r.Post("/{id}/checkin", s.handleCheckIn)
			r.Post("/{id}/vote", s.handleVote)
			r.Post("/{id}/archive", s.handleArchive)
			r.Get("/{id}/health", s.handleHealth)
		})

		r.Route("/users/{id}", func(r chi.Router) {
			r.Get("/report/{type}", s.handleReport)
			r.Get("/breakdown", s.handleBreakdown)
			r.Get("/status", s.handleDayStatus)
			r.Get("/graveyard", s.handleGraveyard)
		})

		r.Route("/groups/{id}", func(r chi.Router) {
			r.Get("/leaderboard", s.handleLeaderboard)
			r.Get("/hero", s.handleDailyHero)
		})

		r.Get("/feed", s.handleFeed)
	})

	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}

// writeDomainError maps domain sentinels onto HTTP status codes.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrGroupNotFound),
		errors.Is(err, domain.ErrResolutionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrResolutionRetired),
		errors.Is(err, domain.ErrAlreadyArchived),
		errors.Is(err, domain.ErrLockedIn):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrOwnVote),
		errors.Is(err, domain.ErrPrivateVote),
		errors.Is(err, domain.ErrVoteOutOfRange),
		errors.Is(err, domain.ErrDifficultyOutOfRange),
		errors.Is(err, domain.ErrEmptyTitle):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
