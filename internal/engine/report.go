package engine

import (
	"math"
	"time"

	"github.com/resolvehq/resolve/internal/domain"
)

// Report computes a periodic consistency report for one user.
//
// owned is the full set of the user's resolutions (private and archived
// included — history is retained and the owner sees their own numbers).
// members and groupRes supply the group comparison; groupRes is keyed by
// member id and only non-private resolutions of other members contribute,
// so private habits never leak into group stats.
//
// A resolution with zero opportunities in the window is excluded from the
// consistency average, not counted as 0%. Best/worst ties go to the first
// resolution encountered — stable input order, not a strict invariant.
func (e *Engine) Report(user *domain.User, owned []*domain.Resolution,
	members []*domain.User, groupRes map[string][]*domain.Resolution,
	typ domain.ReportType) domain.PeriodicReport {

	now := e.now()
	start, label := e.window(typ)
	dates := DateRange(start, now)

	var totalCompleted int
	var totalPoints, consistencySum float64
	activeCount := 0

	best, worst := "", ""
	bestRate, worstRate := -1.0, 2.0

	for _, r := range owned {
		completed, opportunities := windowCounts(r, dates)
		if opportunities == 0 {
			continue
		}
		activeCount++
		totalCompleted += completed
		if !r.IsPrivate {
			totalPoints += float64(completed) * r.EffectiveDifficulty
		}

		rate := float64(completed) / float64(opportunities)
		consistencySum += rate
		if rate > bestRate {
			bestRate, best = rate, r.Title
		}
		if rate < worstRate {
			worstRate, worst = rate, r.Title
		}
	}

	consistency := 0
	if activeCount > 0 {
		consistency = int(math.Round(consistencySum / float64(activeCount) * 100))
	}

	groupConsistency, groupHero := e.groupSnapshot(members, groupRes, dates)

	return domain.PeriodicReport{
		Type:             typ,
		PeriodLabel:      label,
		DaysCheckedIn:    totalCompleted,
		PointsGained:     totalPoints,
		Consistency:      consistency,
		BestResolution:   best,
		WorstResolution:  worst,
		GroupConsistency: groupConsistency,
		GroupHero:        groupHero,
	}
}

// window returns the start of the report window and its display label.
func (e *Engine) window(typ domain.ReportType) (time.Time, string) {
	now := e.now()
	switch typ {
	case domain.ReportMonthly:
		return StartOfMonth(now), now.Format("January 2006")
	case domain.ReportYearly:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), now.Format("2006")
	default:
		return midnight(now).AddDate(0, 0, -6), "Last 7 Days"
	}
}

// windowCounts tallies one resolution's completions and opportunities over
// the window, restricted to days on/after its creation day.
func windowCounts(r *domain.Resolution, dates []string) (completed, opportunities int) {
	created := DayKey(r.CreatedAt)
	for _, day := range dates {
		if day < created {
			continue
		}
		opportunities++
		if r.History[day] == domain.StatusCompleted {
			completed++
		}
	}
	return completed, opportunities
}

// groupSnapshot averages the per-resolution window rate across every
// member's non-private resolutions and names the member with the highest
// persisted score.
func (e *Engine) groupSnapshot(members []*domain.User,
	groupRes map[string][]*domain.Resolution, dates []string) (int, string) {

	var sum float64
	count := 0
	hero := ""
	heroScore := math.Inf(-1)

	for _, m := range members {
		for _, r := range groupRes[m.ID] {
			if r.IsPrivate {
				continue
			}
			completed, opportunities := windowCounts(r, dates)
			if opportunities == 0 {
				continue
			}
			sum += float64(completed) / float64(opportunities)
			count++
		}
		if m.Score > heroScore {
			heroScore, hero = m.Score, m.Name
		}
	}

	consistency := 0
	if count > 0 {
		consistency = int(math.Round(sum / float64(count) * 100))
	}
	return consistency, hero
}

// DayStatusFor summarizes today's check-in state across a user's scorable
// resolutions: missed if anything was missed, checked if everything was
// completed, pending otherwise (including when nothing is tracked).
func (e *Engine) DayStatusFor(resolutions []*domain.Resolution) domain.DayStatus {
	today := e.TodayKey()
	tracked := 0
	allDone := true
	for _, r := range resolutions {
		if !r.Scorable() {
			continue
		}
		tracked++
		switch r.History[today] {
		case domain.StatusMissed:
			return domain.DayMissed
		case domain.StatusCompleted:
		default:
			allDone = false
		}
	}
	if tracked > 0 && allDone {
		return domain.DayChecked
	}
	return domain.DayPending
}
