package engine

import (
	"time"

	"github.com/resolvehq/resolve/internal/domain"
)

// fixedTime returns a deterministic "now" for testing: July 15, 2025.
// Q3 started July 1, so the quarter-to-date window spans 15 days.
func fixedTime() time.Time {
	return time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
}

// testEngine returns an engine pinned to fixedTime.
func testEngine() *Engine {
	e := New(DefaultConfig())
	e.now = fixedTime
	return e
}

// day returns the day key at the given offset from fixedTime.
// day(0) is today, day(-1) yesterday.
func day(offset int) string {
	return DayKey(fixedTime().AddDate(0, 0, offset))
}

// completedRun builds a history of consecutive completions covering the
// given offsets.
func completedRun(offsets ...int) domain.History {
	h := domain.History{}
	for _, o := range offsets {
		h[day(o)] = domain.StatusCompleted
	}
	return h
}

// trustMap is a canned TrustSource for tests. Unknown users score 100.
type trustMap map[string]int

func (t trustMap) HonestyScore(userID string) (int, error) {
	if v, ok := t[userID]; ok {
		return v, nil
	}
	return 100, nil
}
