package engine

import "github.com/resolvehq/resolve/internal/domain"

// HeroSelection is the outcome of a daily hero evaluation.
type HeroSelection struct {
	HeroID  string // empty when no member qualified
	Changed bool   // false when today's selection had already run
}

// SelectDailyHero picks the group's hero for today, at most once per
// calendar day (guarded by LastHeroSelectionDate). A candidate must meet
// the honesty minimum, own at least one scorable resolution created on or
// before yesterday, and have completed every such resolution yesterday —
// all or nothing. Highest score wins; streak breaks ties; remaining ties
// keep the first candidate encountered. The group's hero fields are
// updated in place for the caller to persist.
func (e *Engine) SelectDailyHero(g *domain.Group, members []*domain.User,
	resolutions map[string][]*domain.Resolution, trust domain.TrustSource) HeroSelection {

	today := e.TodayKey()
	if g.LastHeroSelectionDate == today {
		return HeroSelection{HeroID: g.DailyHeroID}
	}
	yesterday := DayKey(midnight(e.now()).AddDate(0, 0, -1))

	var best *domain.User
	for _, m := range members {
		honesty, err := trust.HonestyScore(m.ID)
		if err != nil || honesty < e.config.HonestyMinimum {
			continue
		}

		eligible := 0
		allCompleted := true
		for _, r := range resolutions[m.ID] {
			if !r.Scorable() || DayKey(r.CreatedAt) > yesterday {
				continue
			}
			eligible++
			if r.History[yesterday] != domain.StatusCompleted {
				allCompleted = false
				break
			}
		}
		if eligible == 0 || !allCompleted {
			continue
		}

		if best == nil || m.Score > best.Score ||
			(m.Score == best.Score && m.Streak > best.Streak) {
			best = m
		}
	}

	g.LastHeroSelectionDate = today
	g.DailyHeroID = ""
	if best != nil {
		g.DailyHeroID = best.ID
	}
	return HeroSelection{HeroID: g.DailyHeroID, Changed: true}
}

// ComebackQualifies reports whether a completed check-in that brought a
// resolution's streak to exactly 5 days counts as a comeback: the 7 days
// before the streak started must contain at least 3 misses.
func (e *Engine) ComebackQualifies(history domain.History, streak int) bool {
	if streak != 5 {
		return false
	}

	// First day of the current 5-day run.
	start := midnight(e.now()).AddDate(0, 0, -4)
	misses := 0
	for i := 1; i <= 7; i++ {
		if history[DayKey(start.AddDate(0, 0, -i))] == domain.StatusMissed {
			misses++
		}
	}
	return misses >= 3
}

// SelectComebackHero marks the user as the group's comeback hero for the
// current ISO week (Monday-keyed), at most once per week. Reports whether
// the selection took effect.
func (e *Engine) SelectComebackHero(g *domain.Group, userID string) bool {
	weekKey := DayKey(StartOfWeek(e.now()))
	if g.LastComebackSelectionDate == weekKey {
		return false
	}
	g.LastComebackSelectionDate = weekKey
	g.WeeklyComebackHeroID = userID
	return true
}
