package engine

import (
	"math"
	"sort"

	"github.com/resolvehq/resolve/internal/domain"
)

// RecomputeUser recomputes a user's derived fields from scratch — never
// incrementally. Only scorable (non-private, non-archived) resolutions
// contribute; each contributing resolution's CurrentStreak cache is
// refreshed as a side effect. A resolution with a nil history contributes
// zero without aborting the rest. Running twice on unchanged inputs
// yields identical outputs.
func (e *Engine) RecomputeUser(u *domain.User, resolutions []*domain.Resolution) {
	monthKey := DayKey(StartOfMonth(e.now()))

	var score, monthly float64
	maxStreak := 0
	scorable := make([]*domain.Resolution, 0, len(resolutions))

	for _, r := range resolutions {
		if r == nil || !r.Scorable() {
			continue
		}
		scorable = append(scorable, r)

		// Nil history maps read as empty: zero completions, streak from
		// todayStatus alone.
		score += float64(r.History.CompletedCount()) * r.EffectiveDifficulty
		monthly += float64(r.History.CompletedSince(monthKey)) * r.EffectiveDifficulty

		r.CurrentStreak = e.Streak(r.History, r.TodayStatus)
		if r.CurrentStreak > maxStreak {
			maxStreak = r.CurrentStreak
		}
	}

	u.Score = score
	u.MonthlyScore = monthly
	u.Streak = maxStreak
	u.SeasonalLabel = e.IdentityLabel(scorable)
}

// ScoreBreakdown returns each scorable resolution's lifetime contribution,
// sorted by points descending.
func (e *Engine) ScoreBreakdown(resolutions []*domain.Resolution) []domain.BreakdownRow {
	var rows []domain.BreakdownRow
	for _, r := range resolutions {
		if !r.Scorable() {
			continue
		}
		days := r.History.CompletedCount()
		rows = append(rows, domain.BreakdownRow{
			Title:      r.Title,
			Days:       days,
			Difficulty: math.Round(r.EffectiveDifficulty*10) / 10,
			Points:     int(math.Round(float64(days) * r.EffectiveDifficulty)),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Points > rows[j].Points })
	return rows
}

// Locked reports whether the resolution is still inside its archive
// lock-in window.
func (e *Engine) Locked(r *domain.Resolution) bool {
	return DaysSince(r.CreatedAt, e.now()) < e.config.LockInDays
}
