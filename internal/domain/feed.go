package domain

import "time"

// EventType categorizes feed events.
type EventType string

const (
	EventCheckIn  EventType = "check-in"
	EventStreak   EventType = "streak"
	EventHero     EventType = "hero"
	EventComeback EventType = "comeback"
	EventSystem   EventType = "system"
)

// FeedEvent is one entry in a group's activity feed. The engine decides
// whether and what to emit; display and delivery belong to the caller.
type FeedEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	UserID    string    `json:"user_id,omitempty"`
	UserName  string    `json:"user_name,omitempty"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
