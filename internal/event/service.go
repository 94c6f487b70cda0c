package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"
)

// Cache is the optional listing cache. A nil Cache disables caching.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, val []byte)
	Del(ctx context.Context, keys ...string)
}

// UpcomingCacheKey is the cache key for an organization's upcoming-events
// listing. Registration admissions invalidate it too, since the listing
// carries spots-left counts.
func UpcomingCacheKey(orgID uint) string {
	return fmt.Sprintf("events:upcoming:%d", orgID)
}

// Service validates event drafts against the organization's timeline and
// owns event listing.
type Service struct {
	Store Store
	Cache Cache

	// now is swappable in tests.
	now func() time.Time
}

func NewService(store Store, cache Cache) *Service {
	return &Service{Store: store, Cache: cache, now: time.Now}
}

// ===========================
// Create Event
//
// Window validation fails fast before any store access. The overlap check
// and the insert run inside one transaction holding the per-organization
// lock, so two concurrently proposed overlapping events can never both land.
func (s *Service) Create(ctx context.Context, req *CreateEventRequest, orgID, createdBy uint) (*Event, error) {
	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: start_time must be RFC 3339", ErrInvalidWindow)
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: end_time must be RFC 3339", ErrInvalidWindow)
	}
	if !end.After(start) {
		return nil, fmt.Errorf("%w: end time must be after start time", ErrInvalidWindow)
	}
	if !start.After(s.now()) {
		return nil, fmt.Errorf("%w: cannot create events in the past", ErrInvalidWindow)
	}

	if req.Capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	scope := strings.ToUpper(strings.TrimSpace(req.Scope))
	switch scope {
	case ScopeOrg:
		if req.GroupID != nil {
			return nil, ErrInvalidScope
		}
	case ScopeGroup:
		if req.GroupID == nil {
			return nil, ErrInvalidScope
		}
	default:
		return nil, ErrInvalidScope
	}

	e := &Event{
		OrgID:       orgID,
		GroupID:     req.GroupID,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		StartTime:   start,
		EndTime:     end,
		Location:    strings.TrimSpace(req.Location),
		Capacity:    req.Capacity,
		Scope:       scope,
		CreatedBy:   createdBy,
	}

	err = s.Store.InTx(ctx, func(tx Store) error {
		if err := tx.LockOrganization(ctx, orgID); err != nil {
			return err
		}
		clashes, err := tx.ListOverlapping(ctx, orgID, e.StartTime, e.EndTime)
		if err != nil {
			return err
		}
		if conflict := Conflicting(e, clashes); conflict != nil {
			return conflict
		}
		return tx.Insert(ctx, e)
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, orgID)
	e.SpotsLeft = e.Capacity
	return e, nil
}

// ===========================
// Get Event with registration counts
func (s *Service) Get(ctx context.Context, id, orgID uint) (*Event, error) {
	e, err := s.Store.GetByID(ctx, id, orgID)
	if err != nil {
		return nil, err
	}
	if err := s.annotate(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// ===========================
// List Events with pagination
func (s *Service) List(ctx context.Context, orgID uint, limit, offset int, search string) ([]Event, error) {
	if limit < 1 || limit > 100 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	events, err := s.Store.ListByOrg(ctx, orgID, limit, offset, search)
	if err != nil {
		return nil, err
	}
	for i := range events {
		if err := s.annotate(ctx, &events[i]); err != nil {
			return nil, err
		}
	}
	return events, nil
}

// ===========================
// Upcoming Events, served through the cache when available
func (s *Service) Upcoming(ctx context.Context, orgID uint) ([]Event, error) {
	key := UpcomingCacheKey(orgID)
	if s.Cache != nil {
		if raw, ok := s.Cache.Get(ctx, key); ok {
			var cached []Event
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
			log.Printf("dropping malformed cache entry %s", key)
			s.Cache.Del(ctx, key)
		}
	}

	events, err := s.Store.Upcoming(ctx, orgID, s.now())
	if err != nil {
		return nil, err
	}
	for i := range events {
		if err := s.annotate(ctx, &events[i]); err != nil {
			return nil, err
		}
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(events); err == nil {
			s.Cache.Set(ctx, key, raw)
		}
	}
	return events, nil
}

// ===========================
// Delete Event
func (s *Service) Delete(ctx context.Context, id, orgID uint) error {
	if err := s.Store.Delete(ctx, id, orgID); err != nil {
		return err
	}
	s.invalidate(ctx, orgID)
	return nil
}

func (s *Service) annotate(ctx context.Context, e *Event) error {
	count, err := s.Store.CountRegistrations(ctx, e.ID)
	if err != nil {
		return err
	}
	e.RegistrationCount = count
	e.SpotsLeft = e.Capacity - count
	if e.SpotsLeft < 0 {
		e.SpotsLeft = 0
	}
	return nil
}

func (s *Service) invalidate(ctx context.Context, orgID uint) {
	if s.Cache != nil {
		s.Cache.Del(ctx, UpcomingCacheKey(orgID))
	}
}
