package tracker

import (
	"fmt"
	"sort"

	"github.com/resolvehq/resolve/internal/domain"
	"github.com/resolvehq/resolve/internal/engine"
	"github.com/resolvehq/resolve/internal/infra/metrics"
)

// Leaderboard ranks a group's members for the given period. All-time
// rankings persist the new rank and rank delta; monthly rankings are
// display-only.
func (s *Service) Leaderboard(groupID string, period domain.Period) ([]engine.RankedUser, error) {
	if _, err := s.store.Group(groupID); err != nil {
		return nil, err
	}
	users, err := s.store.UsersByGroup(groupID)
	if err != nil {
		return nil, fmt.Errorf("load members: %w", err)
	}

	ranked := s.engine.Rank(users, period)

	if period == domain.PeriodAllTime {
		for _, ru := range ranked {
			if err := s.store.SaveUser(ru.User); err != nil {
				return nil, fmt.Errorf("persist rank: %w", err)
			}
		}
	}
	return ranked, nil
}

// DailyHero returns today's hero for the group, running the once-per-day
// selection if it has not happened yet. A fresh selection persists the
// group and announces the hero on the feed.
func (s *Service) DailyHero(groupID string) (string, error) {
	g, err := s.store.Group(groupID)
	if err != nil {
		return "", err
	}

	members, err := s.store.UsersByGroup(groupID)
	if err != nil {
		return "", fmt.Errorf("load members: %w", err)
	}
	resolutions := make(map[string][]*domain.Resolution, len(members))
	for _, m := range members {
		rs, err := s.store.ResolutionsByOwner(m.ID)
		if err != nil {
			return "", fmt.Errorf("load resolutions: %w", err)
		}
		resolutions[m.ID] = rs
	}

	sel := s.engine.SelectDailyHero(g, members, resolutions, s.trust)
	if !sel.Changed {
		return sel.HeroID, nil
	}

	if err := s.store.SaveGroup(g); err != nil {
		return "", fmt.Errorf("persist hero: %w", err)
	}
	if sel.HeroID != "" {
		for _, m := range members {
			if m.ID == sel.HeroID {
				s.emit(domain.EventHero, m, fmt.Sprintf("%s is today's Daily Hero!", m.Name))
				break
			}
		}
	}
	metrics.HeroSelections.Inc()
	return sel.HeroID, nil
}

// Report builds a periodic consistency report for one user, with group
// comparison when the user belongs to a group.
func (s *Service) Report(userID string, typ domain.ReportType) (domain.PeriodicReport, error) {
	user, err := s.store.User(userID)
	if err != nil {
		return domain.PeriodicReport{}, err
	}
	owned, err := s.store.ResolutionsByOwner(userID)
	if err != nil {
		return domain.PeriodicReport{}, fmt.Errorf("load resolutions: %w", err)
	}

	members := []*domain.User{user}
	if user.GroupID != "" {
		members, err = s.store.UsersByGroup(user.GroupID)
		if err != nil {
			return domain.PeriodicReport{}, fmt.Errorf("load members: %w", err)
		}
	}
	groupRes := make(map[string][]*domain.Resolution, len(members))
	for _, m := range members {
		if m.ID == userID {
			groupRes[m.ID] = owned
			continue
		}
		rs, err := s.store.ResolutionsByOwner(m.ID)
		if err != nil {
			return domain.PeriodicReport{}, fmt.Errorf("load resolutions: %w", err)
		}
		groupRes[m.ID] = rs
	}

	return s.engine.Report(user, owned, members, groupRes, typ), nil
}

// Health classifies one resolution's recent trajectory.
func (s *Service) Health(resolutionID string) (domain.HealthStatus, error) {
	r, err := s.store.Resolution(resolutionID)
	if err != nil {
		return "", err
	}
	return s.engine.Health(r), nil
}

// Breakdown returns a user's per-resolution lifetime score contributions.
func (s *Service) Breakdown(userID string) ([]domain.BreakdownRow, error) {
	if _, err := s.store.User(userID); err != nil {
		return nil, err
	}
	owned, err := s.store.ResolutionsByOwner(userID)
	if err != nil {
		return nil, fmt.Errorf("load resolutions: %w", err)
	}
	return s.engine.ScoreBreakdown(owned), nil
}

// DayStatus summarizes a user's check-in state for today.
func (s *Service) DayStatus(userID string) (domain.DayStatus, error) {
	owned, err := s.store.ResolutionsByOwner(userID)
	if err != nil {
		return "", fmt.Errorf("load resolutions: %w", err)
	}
	return s.engine.DayStatusFor(owned), nil
}

// Graveyard lists a user's archived resolutions, newest first.
func (s *Service) Graveyard(userID string) ([]*domain.Resolution, error) {
	owned, err := s.store.ResolutionsByOwner(userID)
	if err != nil {
		return nil, fmt.Errorf("load resolutions: %w", err)
	}
	var archived []*domain.Resolution
	for _, r := range owned {
		if r.Archived() {
			archived = append(archived, r)
		}
	}
	sort.SliceStable(archived, func(i, j int) bool {
		return archived[i].ArchivedAt.After(archived[j].ArchivedAt)
	})
	return archived, nil
}
