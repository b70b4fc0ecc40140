package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/resolvehq/resolve/internal/domain"
)

type createResolutionRequest struct {
	OwnerID    string `json:"owner_id"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	Difficulty int    `json:"difficulty"`
	Private    bool   `json:"private"`
}

func (s *Server) handleCreateResolution(w http.ResponseWriter, r *http.Request) {
	var req createResolutionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	res, err := s.svc.CreateResolution(req.OwnerID, req.Title, req.Category, req.Difficulty, req.Private)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

type checkInRequest struct {
	Status domain.Status `json:"status"`
}

func (s *Server) handleCheckIn(w http.ResponseWriter, r *http.Request) {
	var req checkInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	res, err := s.svc.CheckIn(chi.URLParam(r, "id"), req.Status)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type voteRequest struct {
	VoterID string `json:"voter_id"`
	Vote    int    `json:"vote"`
}

func (s *Server) handleVote(w http.ResponseWriter, r *http.Request) {
	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	res, err := s.svc.VoteDifficulty(chi.URLParam(r, "id"), req.VoterID, req.Vote)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type archiveRequest struct {
	Reason string `json:"reason"`
}

func (s *Server) handleArchive(w http.ResponseWriter, r *http.Request) {
	var req archiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	res, err := s.svc.Archive(chi.URLParam(r, "id"), req.Reason)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	health, err := s.svc.Health(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]domain.HealthStatus{"health": health})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	typ := domain.ReportType(strings.ToUpper(chi.URLParam(r, "type")))
	switch typ {
	case domain.ReportWeekly, domain.ReportMonthly, domain.ReportYearly:
	default:
		writeError(w, http.StatusBadRequest, "unknown report type")
		return
	}

	rep, err := s.svc.Report(chi.URLParam(r, "id"), typ)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (s *Server) handleBreakdown(w http.ResponseWriter, r *http.Request) {
	rows, err := s.svc.Breakdown(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"breakdown": rows})
}

func (s *Server) handleDayStatus(w http.ResponseWriter, r *http.Request) {
	status, err := s.svc.DayStatus(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]domain.DayStatus{"status": status})
}

func (s *Server) handleGraveyard(w http.ResponseWriter, r *http.Request) {
	archived, err := s.svc.Graveyard(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"graveyard": archived})
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	period := domain.PeriodAllTime
	if p := r.URL.Query().Get("period"); p != "" {
		period = domain.Period(strings.ToUpper(p))
		if period != domain.PeriodAllTime && period != domain.PeriodMonthly {
			writeError(w, http.StatusBadRequest, "unknown period")
			return
		}
	}

	ranked, err := s.svc.Leaderboard(chi.URLParam(r, "id"), period)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	type entry struct {
		*domain.User
		Position int `json:"position"`
	}
	entries := make([]entry, len(ranked))
	for i, ru := range ranked {
		entries[i] = entry{User: ru.User, Position: ru.Rank}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"leaderboard": entries})
}

func (s *Server) handleDailyHero(w http.ResponseWriter, r *http.Request) {
	heroID, err := s.svc.DailyHero(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"hero_id": heroID})
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if l := r.URL.Query().Get("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	events, err := s.feed.Feed(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"events": events})
}
