package event

import (
	"errors"
	"fmt"
)

// Conflict levels, most specific first.
const (
	ConflictLevelGroup        = "group"
	ConflictLevelOrganization = "organization"
)

// ErrInvalidWindow rejects drafts whose window is malformed (end not after
// start) or whose start is not strictly in the future.
var ErrInvalidWindow = errors.New("event window is invalid")

// ErrScheduleConflict is the kind matched by errors.Is for any window
// collision. The concrete value is always a *ConflictError.
var ErrScheduleConflict = errors.New("schedule conflict")

// ErrNotFound is returned when the event does not exist in the caller's
// organization.
var ErrNotFound = errors.New("event not found")

// ErrInvalidScope rejects drafts whose scope/group pairing is inconsistent.
var ErrInvalidScope = errors.New("scope must be ORG, or GROUP with a group_id")

// ErrInvalidCapacity rejects drafts with a capacity below one.
var ErrInvalidCapacity = errors.New("capacity must be at least 1")

// ConflictError identifies the existing event that blocks a draft, and at
// which level the collision was classified.
type ConflictError struct {
	EventID uint
	Title   string
	Level   string
}

func (e *ConflictError) Error() string {
	if e.Level == ConflictLevelGroup {
		return fmt.Sprintf("this group already has an event %q (id %d) scheduled during this time", e.Title, e.EventID)
	}
	return fmt.Sprintf("time conflict: another event %q (id %d) is scheduled during this time", e.Title, e.EventID)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrScheduleConflict
}
