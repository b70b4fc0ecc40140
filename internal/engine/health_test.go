package engine

import (
	"testing"
	"time"

	"github.com/resolvehq/resolve/internal/domain"
)

func healthRes(h domain.History) *domain.Resolution {
	return &domain.Resolution{
		ID:        "r1",
		OwnerID:   "u1",
		CreatedAt: fixedTime().AddDate(0, 0, -30),
		History:   h,
	}
}

func TestHealth_NoHistoryIsHealthy(t *testing.T) {
	e := testEngine()
	if got := e.Health(healthRes(domain.History{})); got != domain.HealthHealthy {
		t.Fatalf("expected healthy, got %s", got)
	}
}

func TestHealth_AbsentDaysAreNotMisses(t *testing.T) {
	// Seven untouched days look the same as seven unchecked ones.
	e := testEngine()
	h := domain.History{}
	for i := 1; i <= 7; i++ {
		h[day(-i)] = domain.StatusUnchecked
	}
	if got := e.Health(healthRes(h)); got != domain.HealthHealthy {
		t.Fatalf("expected healthy, got %s", got)
	}
}

func TestHealth_TwoMissesLast7IsAtRisk(t *testing.T) {
	e := testEngine()
	h := domain.History{
		day(-6): domain.StatusMissed,
		day(-7): domain.StatusMissed,
	}
	if got := e.Health(healthRes(h)); got != domain.HealthAtRisk {
		t.Fatalf("expected at-risk, got %s", got)
	}
}

func TestHealth_TwoMissesLast5IsSlipping(t *testing.T) {
	e := testEngine()
	h := domain.History{
		day(-2): domain.StatusMissed,
		day(-4): domain.StatusMissed,
	}
	if got := e.Health(healthRes(h)); got != domain.HealthSlipping {
		t.Fatalf("expected slipping, got %s", got)
	}
}

func TestHealth_ThreeMissesLast7IsSlipping(t *testing.T) {
	e := testEngine()
	h := domain.History{
		day(-1): domain.StatusMissed,
		day(-6): domain.StatusMissed,
		day(-7): domain.StatusMissed,
	}
	if got := e.Health(healthRes(h)); got != domain.HealthSlipping {
		t.Fatalf("expected slipping, got %s", got)
	}
}

func TestHealth_RecentMissRun(t *testing.T) {
	// Missed -1, -2, -3 with today completed: three misses inside the
	// 5-day window means slipping.
	e := testEngine()
	h := domain.History{
		day(0):  domain.StatusCompleted,
		day(-1): domain.StatusMissed,
		day(-2): domain.StatusMissed,
		day(-3): domain.StatusMissed,
	}
	if got := e.Health(healthRes(h)); got != domain.HealthSlipping {
		t.Fatalf("expected slipping, got %s", got)
	}
}

func TestHealth_TodayExcluded(t *testing.T) {
	// A miss recorded today does not count — the window is strictly
	// the 7 days before today.
	e := testEngine()
	h := domain.History{
		day(0):  domain.StatusMissed,
		day(-7): domain.StatusMissed,
	}
	if got := e.Health(healthRes(h)); got != domain.HealthHealthy {
		t.Fatalf("expected healthy, got %s", got)
	}
}

func TestHealth_EighthDayExcluded(t *testing.T) {
	e := testEngine()
	h := domain.History{
		day(-8): domain.StatusMissed,
		day(-9): domain.StatusMissed,
		day(-6): domain.StatusMissed,
	}
	if got := e.Health(healthRes(h)); got != domain.HealthHealthy {
		t.Fatalf("expected healthy, got %s", got)
	}
}

func TestHealth_ArchivedAlwaysHealthy(t *testing.T) {
	e := testEngine()
	r := healthRes(domain.History{
		day(-1): domain.StatusMissed,
		day(-2): domain.StatusMissed,
		day(-3): domain.StatusMissed,
	})
	r.ArchivedAt = fixedTime().Add(-time.Hour)
	if got := e.Health(r); got != domain.HealthHealthy {
		t.Fatalf("expected healthy for archived resolution, got %s", got)
	}
}
