// Package engine implements the scoring, streak, and behavioral
// classification core of Resolve. Every operation is a deterministic
// function of its inputs plus an injectable clock: no I/O, no locking,
// no hidden state. Callers hand the engine a consistent snapshot of
// entities and persist the derived values it returns.
package engine

import "time"

// Config controls the engine's policy knobs.
type Config struct {
	// HonestyMinimum is the trust threshold for daily hero candidacy.
	HonestyMinimum int

	// LockInDays is how long a new resolution cannot be archived.
	LockInDays int
}

// DefaultConfig returns the standard policy values.
func DefaultConfig() Config {
	return Config{
		HonestyMinimum: 80,
		LockInDays:     7,
	}
}

// Engine computes streaks, scores, labels, ranks, and hero selections.
// All day boundaries use the local calendar day of the injected clock.
type Engine struct {
	config Config

	// Injectable clock
	now func() time.Time
}

// New creates an engine with the given configuration.
func New(cfg Config) *Engine {
	return &Engine{config: cfg, now: time.Now}
}

// TodayKey returns the current day key as seen by the engine's clock.
func (e *Engine) TodayKey() string {
	return DayKey(e.now())
}
