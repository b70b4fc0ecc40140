// Package metrics exposes Prometheus counters for the tracker.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "resolve"

var (
	ResolutionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resolutions_created_total",
		Help:      "Resolutions created.",
	})

	CheckIns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkins_total",
		Help:      "Check-ins recorded, by status.",
	}, []string{"status"})

	DifficultyVotes = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "difficulty_votes_total",
		Help:      "Peer difficulty votes cast.",
	})

	ScoreRecomputes = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "score_recomputes_total",
		Help:      "Full per-user score recomputations.",
	})

	FeedEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feed_events_total",
		Help:      "Feed events emitted, by type.",
	}, []string{"type"})

	HeroSelections = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "hero_selections_total",
		Help:      "Daily hero selection runs that changed the hero.",
	})

	ComebackSelections = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comeback_selections_total",
		Help:      "Weekly comeback hero selections.",
	})
)
