package event

import (
	"context"
	"time"
)

// Store is the schedule store as the event service consumes it. InTx runs fn
// against a transaction-bound Store; LockOrganization serializes event
// creation per organization for the remainder of that transaction, which is
// what keeps the overlap-check-then-insert sequence race free.
type Store interface {
	InTx(ctx context.Context, fn func(tx Store) error) error
	LockOrganization(ctx context.Context, orgID uint) error
	ListOverlapping(ctx context.Context, orgID uint, start, end time.Time) ([]Event, error)
	Insert(ctx context.Context, e *Event) error

	GetByID(ctx context.Context, id, orgID uint) (*Event, error)
	ListByOrg(ctx context.Context, orgID uint, limit, offset int, search string) ([]Event, error)
	Upcoming(ctx context.Context, orgID uint, now time.Time) ([]Event, error)
	CountRegistrations(ctx context.Context, eventID uint) (int, error)
	Delete(ctx context.Context, id, orgID uint) error
}
