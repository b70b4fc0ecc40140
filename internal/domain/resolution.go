// Package domain defines the core entities of the Resolve accountability
// engine: resolutions, users, groups, and the events they produce.
// Domain types are pure — no infrastructure dependency.
package domain

import "time"

// Status is the recorded outcome of one resolution on one calendar day.
type Status string

const (
	StatusUnchecked Status = "UNCHECKED"
	StatusCompleted Status = "COMPLETED"
	StatusMissed    Status = "MISSED"
)

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusUnchecked, StatusCompleted, StatusMissed:
		return true
	}
	return false
}

// History maps a day key ("YYYY-MM-DD", local calendar day) to a Status.
// Sparse: a missing key means nothing was ever recorded for that day,
// which is distinct from an explicit StatusMissed. Keys are only added
// or overwritten, never removed.
type History map[string]Status

// CompletedCount returns the number of completed days in the history.
func (h History) CompletedCount() int {
	n := 0
	for _, s := range h {
		if s == StatusCompleted {
			n++
		}
	}
	return n
}

// CompletedSince returns completions on or after the given day key.
// Day keys are ISO dates, so plain string comparison orders them.
func (h History) CompletedSince(dayKey string) int {
	n := 0
	for day, s := range h {
		if s == StatusCompleted && day >= dayKey {
			n++
		}
	}
	return n
}

// HealthStatus classifies a resolution's recent trajectory.
type HealthStatus string

const (
	HealthHealthy  HealthStatus = "healthy"
	HealthAtRisk   HealthStatus = "at-risk"
	HealthSlipping HealthStatus = "slipping"
)

// Resolution is one tracked habit belonging to a single owner.
type Resolution struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`

	Title    string `json:"title"`
	Category string `json:"category"`

	// DeclaredDifficulty is set by the owner at creation (1–5, immutable).
	DeclaredDifficulty int `json:"declared_difficulty"`

	// EffectiveDifficulty blends the declared difficulty with peer votes.
	// Always derivable from DeclaredDifficulty and PeerDifficultyVotes.
	EffectiveDifficulty float64 `json:"effective_difficulty"`

	// IsPrivate resolutions track streak and history for the owner but are
	// excluded from scoring, leaderboards, peer voting, and group views.
	IsPrivate bool `json:"is_private"`

	History History `json:"history"`

	// PeerDifficultyVotes maps voter user id to a 1–5 vote.
	PeerDifficultyVotes map[string]int `json:"peer_difficulty_votes"`

	// CurrentStreak and TodayStatus are materialized-view caches of the
	// engine's outputs. Never decision inputs — display only.
	CurrentStreak int    `json:"current_streak"`
	TodayStatus   Status `json:"today_status"`

	ArchivedAt     time.Time `json:"archived_at,omitempty"`
	ArchivedReason string    `json:"archived_reason,omitempty"`
}

// Archived reports whether the resolution has been retired to the graveyard.
func (r *Resolution) Archived() bool {
	return !r.ArchivedAt.IsZero()
}

// Scorable reports whether the resolution counts toward scores,
// leaderboards, and hero selection.
func (r *Resolution) Scorable() bool {
	return !r.IsPrivate && !r.Archived()
}
