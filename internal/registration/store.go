package registration

import (
	"context"
	"time"

	"github.com/campusconnect/campus-events-backend/internal/event"
)

// Store is the persistence surface the admission service runs against. The
// whole admission sequence executes inside InTx so the locks taken by
// LockEvent hold until the decision commits or rolls back.
type Store interface {
	// InTx runs fn inside a transaction; fn receives a Store bound to it.
	InTx(ctx context.Context, fn func(tx Store) error) error

	// LockEvent loads the event row with a FOR UPDATE lock, serializing
	// concurrent admissions to the same event. Returns event.ErrNotFound
	// when the event does not exist in the caller's organization.
	LockEvent(ctx context.Context, eventID, orgID uint) (*event.Event, error)

	// HasRegistration reports whether the user already holds a spot.
	HasRegistration(ctx context.Context, userID, eventID uint) (bool, error)

	// CountByEvent returns the number of admitted registrations.
	CountByEvent(ctx context.Context, eventID uint) (int, error)

	// FindUserOverlap looks for any of the user's registered events whose
	// window overlaps [start, end). It deliberately searches across every
	// organization: a person cannot be in two places at once regardless of
	// which org scheduled the events.
	FindUserOverlap(ctx context.Context, userID uint, start, end time.Time) (*event.Event, bool, error)

	Insert(ctx context.Context, r *Registration) error
	DeleteByUserEvent(ctx context.Context, userID, eventID uint) error
	ListByEvent(ctx context.Context, eventID, orgID uint) ([]Registration, error)
	ListByUser(ctx context.Context, userID, orgID uint) ([]UserRegistration, error)
}
