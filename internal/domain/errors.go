package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure — no infrastructure dependency. Not-found errors
// are distinct from validation (policy) failures so callers can map them
// to different responses.

var (
	// Not-found errors
	ErrResolutionNotFound = errors.New("resolution not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrGroupNotFound      = errors.New("group not found")

	// Check-in errors
	ErrInvalidStatus     = errors.New("status must be COMPLETED, MISSED, or UNCHECKED")
	ErrResolutionRetired = errors.New("resolution is archived")

	// Difficulty vote errors
	ErrOwnVote        = errors.New("cannot vote on your own resolution")
	ErrPrivateVote    = errors.New("cannot vote on a private resolution")
	ErrVoteOutOfRange = errors.New("difficulty vote must be between 1 and 5")

	// Archive errors
	ErrLockedIn        = errors.New("cannot archive during the 7-day lock-in window")
	ErrAlreadyArchived = errors.New("resolution is already archived")

	// Creation errors
	ErrDifficultyOutOfRange = errors.New("declared difficulty must be between 1 and 5")
	ErrEmptyTitle           = errors.New("resolution title cannot be empty")
)
