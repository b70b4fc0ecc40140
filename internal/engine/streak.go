package engine

import "github.com/resolvehq/resolve/internal/domain"

// Streak computes the current consecutive-completion streak ending today.
// todayStatus is the status being applied for "today", which may not yet
// be written into the history map. The walk starts at yesterday and moves
// backward one calendar day at a time; the first day that is not completed
// — missed or simply absent — terminates it. Idempotent: recomputing on
// unchanged inputs yields the same count.
func (e *Engine) Streak(history domain.History, todayStatus domain.Status) int {
	streak := 0
	if todayStatus == domain.StatusCompleted {
		streak = 1
	}

	for day := midnight(e.now()).AddDate(0, 0, -1); ; day = day.AddDate(0, 0, -1) {
		if history[DayKey(day)] != domain.StatusCompleted {
			break
		}
		streak++
	}
	return streak
}
