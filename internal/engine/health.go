package engine

import "github.com/resolvehq/resolve/internal/domain"

// Health classifies a resolution from the 7 calendar days strictly before
// today (today excluded). Only explicit misses count — absent days never
// do. Archived resolutions are always healthy: the graveyard gets no risk
// messaging.
func (e *Engine) Health(r *domain.Resolution) domain.HealthStatus {
	if r.Archived() {
		return domain.HealthHealthy
	}

	today := midnight(e.now())
	missesLast5, missesLast7 := 0, 0
	for i := 1; i <= 7; i++ {
		if r.History[DayKey(today.AddDate(0, 0, -i))] == domain.StatusMissed {
			missesLast7++
			if i <= 5 {
				missesLast5++
			}
		}
	}

	switch {
	case missesLast5 >= 2 || missesLast7 >= 3:
		return domain.HealthSlipping
	case missesLast7 >= 2:
		return domain.HealthAtRisk
	default:
		return domain.HealthHealthy
	}
}
