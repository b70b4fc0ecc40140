package engine

import (
	"sort"

	"github.com/resolvehq/resolve/internal/domain"
)

// RankedUser pairs a user with their computed position for one period.
type RankedUser struct {
	User *domain.User
	Rank int
}

// Rank orders a group's members for the given period: score descending,
// streak descending as tie-break. Ranks are dense and 1-based; ties still
// get distinct sequential ranks, assigned by stable sort position.
//
// For the all-time period the new rank is compared against each user's
// previously persisted rank to derive RankChange, and both are written
// back onto the user for the caller to persist. Monthly rankings are
// display-only and never touch the entities.
func (e *Engine) Rank(users []*domain.User, period domain.Period) []RankedUser {
	ranked := make([]*domain.User, len(users))
	copy(ranked, users)

	scoreOf := func(u *domain.User) float64 {
		if period == domain.PeriodMonthly {
			return u.MonthlyScore
		}
		return u.Score
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := scoreOf(ranked[i]), scoreOf(ranked[j])
		if si != sj {
			return si > sj
		}
		return ranked[i].Streak > ranked[j].Streak
	})

	out := make([]RankedUser, len(ranked))
	for i, u := range ranked {
		newRank := i + 1
		if period == domain.PeriodAllTime {
			switch {
			case u.Rank == 0:
				// Never ranked before — no delta to report.
				u.RankChange = domain.RankSame
			case newRank < u.Rank:
				u.RankChange = domain.RankUp
			case newRank > u.Rank:
				u.RankChange = domain.RankDown
			default:
				u.RankChange = domain.RankSame
			}
			u.Rank = newRank
		}
		out[i] = RankedUser{User: u, Rank: newRank}
	}
	return out
}
