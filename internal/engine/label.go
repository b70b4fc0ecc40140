package engine

import "github.com/resolvehq/resolve/internal/domain"

// IdentityLabel classifies a user's completion pattern over the window
// from the start of the current quarter through today. The window splits
// at floor(totalDays/2) into a first and second half; every in-window day
// on or after a resolution's creation day is one opportunity.
//
// Rules are evaluated in strict priority order — earlier rules pre-empt
// later ones even when several thresholds hold at once.
func (e *Engine) IdentityLabel(resolutions []*domain.Resolution) domain.IdentityLabel {
	now := e.now()
	dates := DateRange(StartOfQuarter(now), now)
	totalDays := len(dates)

	// Too early in the quarter to say anything meaningful.
	if totalDays < 7 {
		return domain.LabelConsistentStarter
	}

	mid := totalDays / 2
	var ops, done, firstOps, firstDone, secondOps, secondDone int

	for _, r := range resolutions {
		created := DayKey(r.CreatedAt)
		for i, day := range dates {
			if day < created {
				continue
			}
			ops++
			completed := r.History[day] == domain.StatusCompleted
			if completed {
				done++
			}
			if i < mid {
				firstOps++
				if completed {
					firstDone++
				}
			} else {
				secondOps++
				if completed {
					secondDone++
				}
			}
		}
	}

	if ops == 0 {
		return domain.LabelSleepingGiant
	}

	consistency := float64(done) / float64(ops)
	firstRate := halfRate(firstDone, firstOps)
	secondRate := halfRate(secondDone, secondOps)

	switch {
	case consistency >= 0.85:
		return domain.LabelRelentlessMaintainer
	case firstRate > 0.8 && secondRate < 0.6:
		return domain.LabelConsistentStarter
	case firstRate < 0.5 && secondRate > 0.8:
		return domain.LabelLateBloomer
	case secondRate > 0.85:
		return domain.LabelStrongFinisher
	case consistency > 0.3:
		return domain.LabelOnAndOffGrinder
	default:
		return domain.LabelSleepingGiant
	}
}

// halfRate is the completion rate of one window half, 0 when the half had
// no opportunities.
func halfRate(done, ops int) float64 {
	if ops == 0 {
		return 0
	}
	return float64(done) / float64(ops)
}
