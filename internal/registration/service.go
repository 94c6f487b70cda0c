package registration

import (
	"context"

	"github.com/google/uuid"

	"github.com/campusconnect/campus-events-backend/internal/event"
)

// ===========================
// REGISTRATION SERVICE
// ===========================

type Service struct {
	Store Store
	Cache event.Cache
}

func NewService(store Store, cache event.Cache) *Service {
	return &Service{Store: store, Cache: cache}
}

// Register admits the user into the event, or explains why not. The checks
// run in a fixed order so the caller always gets the most specific answer:
// missing event, then duplicate, then capacity, then schedule conflict. The
// whole sequence runs under the event's row lock, so two racing requests for
// the last spot are decided one after the other.
//
// The lock is keyed by event, not by user: two concurrent requests by the
// same user for two different overlapping events hold different locks, and
// both overlap checks can pass. The duplicate rule still holds through the
// unique index; the overlap rule for that interleaving does not.
func (s *Service) Register(ctx context.Context, userID, orgID, eventID uint) (*Registration, error) {
	var reg *Registration
	err := s.Store.InTx(ctx, func(tx Store) error {
		ev, err := tx.LockEvent(ctx, eventID, orgID)
		if err != nil {
			return err
		}

		dup, err := tx.HasRegistration(ctx, userID, eventID)
		if err != nil {
			return err
		}
		if dup {
			return ErrAlreadyRegistered
		}

		count, err := tx.CountByEvent(ctx, eventID)
		if err != nil {
			return err
		}
		if count >= ev.Capacity {
			return ErrEventFull
		}

		clash, found, err := tx.FindUserOverlap(ctx, userID, ev.StartTime, ev.EndTime)
		if err != nil {
			return err
		}
		if found {
			return &ConflictError{EventID: clash.ID, Title: clash.Title}
		}

		reg = &Registration{
			Reference: uuid.NewString(),
			UserID:    userID,
			EventID:   eventID,
			OrgID:     orgID,
		}
		return tx.Insert(ctx, reg)
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, orgID)
	return reg, nil
}

// Cancel releases the user's spot. Freed capacity becomes available to the
// next Register immediately.
func (s *Service) Cancel(ctx context.Context, userID, orgID, eventID uint) error {
	err := s.Store.InTx(ctx, func(tx Store) error {
		if _, err := tx.LockEvent(ctx, eventID, orgID); err != nil {
			return err
		}
		return tx.DeleteByUserEvent(ctx, userID, eventID)
	})
	if err != nil {
		return err
	}
	s.invalidate(ctx, orgID)
	return nil
}

// Roster lists the registrations for an event, oldest first.
func (s *Service) Roster(ctx context.Context, eventID, orgID uint) ([]Registration, error) {
	var regs []Registration
	err := s.Store.InTx(ctx, func(tx Store) error {
		if _, err := tx.LockEvent(ctx, eventID, orgID); err != nil {
			return err
		}
		var err error
		regs, err = tx.ListByEvent(ctx, eventID, orgID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return regs, nil
}

// MyRegistrations lists the user's registrations within the org, with event
// summaries, ordered by start time.
func (s *Service) MyRegistrations(ctx context.Context, userID, orgID uint) ([]UserRegistration, error) {
	return s.Store.ListByUser(ctx, userID, orgID)
}

func (s *Service) invalidate(ctx context.Context, orgID uint) {
	if s.Cache == nil {
		return
	}
	s.Cache.Del(ctx, event.UpcomingCacheKey(orgID))
}
