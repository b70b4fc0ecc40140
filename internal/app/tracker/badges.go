package tracker

import "github.com/resolvehq/resolve/internal/domain"

// Badge names. Awarding is idempotent — a badge is granted once.
const (
	BadgeWeekStreak  = "7-Day Streak"
	BadgeMonthStreak = "30-Day Streak"
	BadgeLockedIn    = "Locked In"
	BadgeComebackKid = "Comeback Kid"
)

// checkBadges inspects the user's resolutions after a check-in and grants
// any newly earned badges.
func (s *Service) checkBadges(u *domain.User) {
	resolutions, err := s.store.ResolutionsByOwner(u.ID)
	if err != nil {
		return
	}

	for _, r := range resolutions {
		if r.CurrentStreak >= 7 {
			s.awardBadge(u, BadgeWeekStreak)
		}
		if r.CurrentStreak >= 30 {
			s.awardBadge(u, BadgeMonthStreak)
		}
		// Survived the lock-in window without archiving.
		if !r.Archived() && !s.engine.Locked(r) {
			s.awardBadge(u, BadgeLockedIn)
		}
	}
}

// awardBadge grants a badge if the user does not already hold it.
func (s *Service) awardBadge(u *domain.User, name string) {
	if u.HasBadge(name) {
		return
	}
	u.Badges = append(u.Badges, name)
	_ = s.store.SaveUser(u)
}
