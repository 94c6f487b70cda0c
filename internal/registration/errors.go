package registration

import (
	"errors"
	"fmt"
)

// ===========================
// ADMISSION ERRORS
// ===========================

var (
	ErrNotFound          = errors.New("registration not found")
	ErrAlreadyRegistered = errors.New("user is already registered for this event")
	ErrEventFull         = errors.New("event has reached its capacity")
	ErrScheduleConflict  = errors.New("schedule conflict with an existing registration")
)

// ConflictError says which of the user's registered events clashes with the
// one they tried to join. errors.Is(err, ErrScheduleConflict) matches it.
type ConflictError struct {
	EventID uint
	Title   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("you are already registered for %q (id %d) during this time", e.Title, e.EventID)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrScheduleConflict
}
