// Package tracker orchestrates the accountability workflow: check-ins,
// peer difficulty votes, and archiving, plus the recomputation cascade
// that keeps every derived field consistent with raw history. Derived
// fields are always recomputed from scratch — never patched.
package tracker

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/resolvehq/resolve/internal/domain"
	"github.com/resolvehq/resolve/internal/engine"
	"github.com/resolvehq/resolve/internal/infra/metrics"
)

// Service wires the pure engine to its collaborators.
type Service struct {
	store  domain.Store
	feed   domain.FeedSink
	trust  domain.TrustSource
	engine *engine.Engine
}

// New creates a tracker service.
func New(store domain.Store, feed domain.FeedSink, trust domain.TrustSource, eng *engine.Engine) *Service {
	return &Service{store: store, feed: feed, trust: trust, engine: eng}
}

// CreateResolution validates and persists a new resolution for the owner.
func (s *Service) CreateResolution(ownerID, title, category string, difficulty int, private bool) (*domain.Resolution, error) {
	if title == "" {
		return nil, domain.ErrEmptyTitle
	}
	if difficulty < 1 || difficulty > 5 {
		return nil, domain.ErrDifficultyOutOfRange
	}
	if _, err := s.store.User(ownerID); err != nil {
		return nil, err
	}

	r := &domain.Resolution{
		ID:                  uuid.NewString(),
		OwnerID:             ownerID,
		CreatedAt:           time.Now(),
		Title:               title,
		Category:            category,
		DeclaredDifficulty:  difficulty,
		EffectiveDifficulty: float64(difficulty),
		IsPrivate:           private,
		History:             domain.History{},
		PeerDifficultyVotes: map[string]int{},
		TodayStatus:         domain.StatusUnchecked,
	}
	if err := s.store.SaveResolution(r); err != nil {
		return nil, fmt.Errorf("save resolution: %w", err)
	}
	metrics.ResolutionsCreated.Inc()
	return r, nil
}

// CheckIn records today's status for one resolution and runs the full
// recomputation cascade: history write, streak refresh, feed events,
// comeback detection, score recompute, badge check.
func (s *Service) CheckIn(resolutionID string, status domain.Status) (*domain.Resolution, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	r, err := s.store.Resolution(resolutionID)
	if err != nil {
		return nil, err
	}
	if r.Archived() {
		return nil, domain.ErrResolutionRetired
	}
	owner, err := s.store.User(r.OwnerID)
	if err != nil {
		return nil, err
	}

	if r.History == nil {
		r.History = domain.History{}
	}
	r.History[s.engine.TodayKey()] = status
	r.TodayStatus = status

	oldStreak := r.CurrentStreak
	r.CurrentStreak = s.engine.Streak(r.History, status)

	if status == domain.StatusCompleted {
		if !r.IsPrivate {
			s.emit(domain.EventCheckIn, owner, fmt.Sprintf("%s checked in on %q (+%d pts)",
				owner.Name, r.Title, engine.PointValue(r.EffectiveDifficulty)))
			if r.CurrentStreak > 0 && r.CurrentStreak%7 == 0 && r.CurrentStreak > oldStreak {
				s.emit(domain.EventStreak, owner, fmt.Sprintf("%s reached a %d-day streak on %q!",
					owner.Name, r.CurrentStreak, r.Title))
			}
		}
		if s.engine.ComebackQualifies(r.History, r.CurrentStreak) {
			s.handleComeback(owner)
		}
	}

	if err := s.store.SaveResolution(r); err != nil {
		return nil, fmt.Errorf("save resolution: %w", err)
	}
	if err := s.recomputeOwner(owner); err != nil {
		return nil, err
	}
	s.checkBadges(owner)

	metrics.CheckIns.WithLabelValues(string(status)).Inc()
	return r, nil
}

// VoteDifficulty casts or overwrites one peer's difficulty vote and
// re-derives the effective difficulty. Owners cannot vote; private
// resolutions accept no votes.
func (s *Service) VoteDifficulty(resolutionID, voterID string, vote int) (*domain.Resolution, error) {
	if vote < 1 || vote > 5 {
		return nil, domain.ErrVoteOutOfRange
	}

	r, err := s.store.Resolution(resolutionID)
	if err != nil {
		return nil, err
	}
	if r.OwnerID == voterID {
		return nil, domain.ErrOwnVote
	}
	if r.IsPrivate {
		return nil, domain.ErrPrivateVote
	}
	if _, err := s.store.User(voterID); err != nil {
		return nil, err
	}

	if r.PeerDifficultyVotes == nil {
		r.PeerDifficultyVotes = map[string]int{}
	}
	r.PeerDifficultyVotes[voterID] = vote
	r.EffectiveDifficulty = engine.EffectiveDifficulty(r.DeclaredDifficulty, r.PeerDifficultyVotes)

	if err := s.store.SaveResolution(r); err != nil {
		return nil, fmt.Errorf("save resolution: %w", err)
	}

	owner, err := s.store.User(r.OwnerID)
	if err != nil {
		return nil, err
	}
	if err := s.recomputeOwner(owner); err != nil {
		return nil, err
	}

	metrics.DifficultyVotes.Inc()
	return r, nil
}

// Archive retires a resolution to the graveyard. Disallowed during the
// lock-in window; history is retained, never deleted.
func (s *Service) Archive(resolutionID, reason string) (*domain.Resolution, error) {
	r, err := s.store.Resolution(resolutionID)
	if err != nil {
		return nil, err
	}
	if r.Archived() {
		return nil, domain.ErrAlreadyArchived
	}
	if s.engine.Locked(r) {
		return nil, domain.ErrLockedIn
	}

	r.ArchivedAt = time.Now()
	r.ArchivedReason = reason
	if err := s.store.SaveResolution(r); err != nil {
		return nil, fmt.Errorf("save resolution: %w", err)
	}

	owner, err := s.store.User(r.OwnerID)
	if err != nil {
		return nil, err
	}
	if err := s.recomputeOwner(owner); err != nil {
		return nil, err
	}
	return r, nil
}

// recomputeOwner reloads the owner's resolutions, recomputes every
// derived field from scratch, and persists the results. Serialized per
// user by the single-writer store.
func (s *Service) recomputeOwner(owner *domain.User) error {
	resolutions, err := s.store.ResolutionsByOwner(owner.ID)
	if err != nil {
		return fmt.Errorf("load resolutions: %w", err)
	}

	s.engine.RecomputeUser(owner, resolutions)

	for _, r := range resolutions {
		if err := s.store.SaveResolution(r); err != nil {
			return fmt.Errorf("save streak cache: %w", err)
		}
	}
	if err := s.store.SaveUser(owner); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	metrics.ScoreRecomputes.Inc()
	return nil
}

// handleComeback promotes the user to weekly comeback hero if the slot
// for this ISO week is still open.
func (s *Service) handleComeback(u *domain.User) {
	if u.GroupID == "" {
		return
	}
	g, err := s.store.Group(u.GroupID)
	if err != nil {
		return
	}
	if !s.engine.SelectComebackHero(g, u.ID) {
		return
	}
	if err := s.store.SaveGroup(g); err != nil {
		return
	}
	s.emit(domain.EventComeback, u, fmt.Sprintf("COMEBACK OF THE WEEK: %s bounced back with a 5-day streak!", u.Name))
	s.awardBadge(u, BadgeComebackKid)
	metrics.ComebackSelections.Inc()
}

// emit appends a feed event. Feed failures are not fatal to the
// operation that produced them.
func (s *Service) emit(typ domain.EventType, u *domain.User, message string) {
	_ = s.feed.Append(domain.FeedEvent{
		ID:        uuid.NewString(),
		Type:      typ,
		UserID:    u.ID,
		UserName:  u.Name,
		Message:   message,
		Timestamp: time.Now(),
	})
	metrics.FeedEvents.WithLabelValues(string(typ)).Inc()
}
