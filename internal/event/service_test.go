package event

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// fakeStore keeps events in memory. The mutex plays the role of the
// per-organization row lock: InTx holds it for the whole callback, so
// concurrent creates are serialized the way the real store serializes them.
type fakeStore struct {
	mu     sync.Mutex
	events []Event
	nextID uint
	counts map[uint]int

	insertErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1, counts: map[uint]int{}}
}

func (f *fakeStore) InTx(ctx context.Context, fn func(tx Store) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn((*lockedStore)(f))
}

func (f *fakeStore) LockOrganization(ctx context.Context, orgID uint) error { return nil }

func (f *fakeStore) ListOverlapping(ctx context.Context, orgID uint, start, end time.Time) ([]Event, error) {
	var out []Event
	for _, e := range f.events {
		if e.OrgID == orgID && Overlaps(e.StartTime, e.EndTime, start, end) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) Insert(ctx context.Context, e *Event) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	e.ID = f.nextID
	f.nextID++
	f.events = append(f.events, *e)
	return nil
}

func (f *fakeStore) GetByID(ctx context.Context, id, orgID uint) (*Event, error) {
	for i := range f.events {
		if f.events[i].ID == id && f.events[i].OrgID == orgID {
			e := f.events[i]
			return &e, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeStore) ListByOrg(ctx context.Context, orgID uint, limit, offset int, search string) ([]Event, error) {
	var out []Event
	for _, e := range f.events {
		if e.OrgID == orgID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) Upcoming(ctx context.Context, orgID uint, now time.Time) ([]Event, error) {
	var out []Event
	for _, e := range f.events {
		if e.OrgID == orgID && e.EndTime.After(now) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) CountRegistrations(ctx context.Context, eventID uint) (int, error) {
	return f.counts[eventID], nil
}

func (f *fakeStore) Delete(ctx context.Context, id, orgID uint) error {
	for i := range f.events {
		if f.events[i].ID == id && f.events[i].OrgID == orgID {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// lockedStore is the transaction-bound view: same data, lock already held.
type lockedStore fakeStore

func (l *lockedStore) InTx(ctx context.Context, fn func(tx Store) error) error { return fn(l) }
func (l *lockedStore) LockOrganization(ctx context.Context, orgID uint) error  { return nil }
func (l *lockedStore) ListOverlapping(ctx context.Context, orgID uint, start, end time.Time) ([]Event, error) {
	return (*fakeStore)(l).ListOverlapping(ctx, orgID, start, end)
}
func (l *lockedStore) Insert(ctx context.Context, e *Event) error {
	return (*fakeStore)(l).Insert(ctx, e)
}
func (l *lockedStore) GetByID(ctx context.Context, id, orgID uint) (*Event, error) {
	return (*fakeStore)(l).GetByID(ctx, id, orgID)
}
func (l *lockedStore) ListByOrg(ctx context.Context, orgID uint, limit, offset int, search string) ([]Event, error) {
	return (*fakeStore)(l).ListByOrg(ctx, orgID, limit, offset, search)
}
func (l *lockedStore) Upcoming(ctx context.Context, orgID uint, now time.Time) ([]Event, error) {
	return (*fakeStore)(l).Upcoming(ctx, orgID, now)
}
func (l *lockedStore) CountRegistrations(ctx context.Context, eventID uint) (int, error) {
	return (*fakeStore)(l).CountRegistrations(ctx, eventID)
}
func (l *lockedStore) Delete(ctx context.Context, id, orgID uint) error {
	return (*fakeStore)(l).Delete(ctx, id, orgID)
}

func newTestService(store *fakeStore) *Service {
	s := NewService(store, nil)
	s.now = func() time.Time { return time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC) }
	return s
}

func validRequest() *CreateEventRequest {
	return &CreateEventRequest{
		Title:     "Tech Talk",
		StartTime: "2026-10-01T10:00:00Z",
		EndTime:   "2026-10-01T12:00:00Z",
		Capacity:  50,
		Scope:     ScopeOrg,
	}
}

func TestCreateEvent(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	e, err := svc.Create(context.Background(), validRequest(), 1, 9)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if e.ID == 0 {
		t.Error("expected an assigned ID")
	}
	if e.SpotsLeft != 50 {
		t.Errorf("SpotsLeft = %d, want 50", e.SpotsLeft)
	}
}

func TestCreateEventWindowValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateEventRequest)
		wantErr error
	}{
		{"end before start", func(r *CreateEventRequest) {
			r.StartTime = "2026-10-01T12:00:00Z"
			r.EndTime = "2026-10-01T10:00:00Z"
		}, ErrInvalidWindow},
		{"zero duration", func(r *CreateEventRequest) {
			r.EndTime = r.StartTime
		}, ErrInvalidWindow},
		{"start in the past", func(r *CreateEventRequest) {
			r.StartTime = "2026-08-01T10:00:00Z"
			r.EndTime = "2026-08-01T12:00:00Z"
		}, ErrInvalidWindow},
		{"malformed start", func(r *CreateEventRequest) {
			r.StartTime = "next tuesday"
		}, ErrInvalidWindow},
		{"zero capacity", func(r *CreateEventRequest) {
			r.Capacity = 0
		}, ErrInvalidCapacity},
		{"org scope with group", func(r *CreateEventRequest) {
			g := uint(3)
			r.GroupID = &g
		}, ErrInvalidScope},
		{"group scope without group", func(r *CreateEventRequest) {
			r.Scope = ScopeGroup
		}, ErrInvalidScope},
		{"unknown scope", func(r *CreateEventRequest) {
			r.Scope = "CAMPUS"
		}, ErrInvalidScope},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			svc := newTestService(store)
			req := validRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req, 1, 9)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
			if len(store.events) != 0 {
				t.Error("invalid draft must not be stored")
			}
		})
	}
}

func TestCreateEventCrossGroupConflict(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	groupA := uint(1)
	reqA := validRequest()
	reqA.Scope = ScopeGroup
	reqA.GroupID = &groupA
	if _, err := svc.Create(context.Background(), reqA, 1, 9); err != nil {
		t.Fatalf("first create error = %v", err)
	}

	// A different group in the same org proposes an overlapping window. The
	// org runs a single track, so this must be rejected at org level.
	groupB := uint(2)
	reqB := validRequest()
	reqB.Scope = ScopeGroup
	reqB.GroupID = &groupB
	reqB.StartTime = "2026-10-01T11:00:00Z"
	reqB.EndTime = "2026-10-01T13:00:00Z"

	_, err := svc.Create(context.Background(), reqB, 1, 9)
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Create() error = %v, want *ConflictError", err)
	}
	if conflict.Level != ConflictLevelOrganization {
		t.Errorf("Level = %q, want %q", conflict.Level, ConflictLevelOrganization)
	}
}

func TestCreateEventSameGroupConflict(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	group := uint(1)
	req := validRequest()
	req.Scope = ScopeGroup
	req.GroupID = &group
	if _, err := svc.Create(context.Background(), req, 1, 9); err != nil {
		t.Fatalf("first create error = %v", err)
	}

	again := validRequest()
	again.Scope = ScopeGroup
	again.GroupID = &group

	_, err := svc.Create(context.Background(), again, 1, 9)
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Create() error = %v, want *ConflictError", err)
	}
	if conflict.Level != ConflictLevelGroup {
		t.Errorf("Level = %q, want %q", conflict.Level, ConflictLevelGroup)
	}
}

func TestCreateEventDifferentOrgsDoNotConflict(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	if _, err := svc.Create(context.Background(), validRequest(), 1, 9); err != nil {
		t.Fatalf("first create error = %v", err)
	}
	if _, err := svc.Create(context.Background(), validRequest(), 2, 9); err != nil {
		t.Errorf("same window in another org should succeed, got %v", err)
	}
}

func TestCreateEventBackToBackAllowed(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	if _, err := svc.Create(context.Background(), validRequest(), 1, 9); err != nil {
		t.Fatalf("first create error = %v", err)
	}

	next := validRequest()
	next.StartTime = "2026-10-01T12:00:00Z"
	next.EndTime = "2026-10-01T14:00:00Z"
	if _, err := svc.Create(context.Background(), next, 1, 9); err != nil {
		t.Errorf("back-to-back event should succeed, got %v", err)
	}
}

func TestCreateEventConcurrentOverlap(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Create(context.Background(), validRequest(), 1, 9)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else if !errors.Is(err, ErrScheduleConflict) {
			t.Errorf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 {
		t.Errorf("%d creates succeeded, want exactly 1", succeeded)
	}
	if len(store.events) != 1 {
		t.Errorf("%d events stored, want 1", len(store.events))
	}
}

func TestGetAnnotatesSpotsLeft(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	e, err := svc.Create(context.Background(), validRequest(), 1, 9)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	store.counts[e.ID] = 48
	got, err := svc.Get(context.Background(), e.ID, 1)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.RegistrationCount != 48 || got.SpotsLeft != 2 {
		t.Errorf("count/spots = %d/%d, want 48/2", got.RegistrationCount, got.SpotsLeft)
	}
}

func TestGetWrongOrg(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	e, err := svc.Create(context.Background(), validRequest(), 1, 9)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := svc.Get(context.Background(), e.ID, 2); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() from another org error = %v, want ErrNotFound", err)
	}
}

// memCache records cache traffic for assertions.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	dels int
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) Get(ctx context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	return v, ok
}

func (c *memCache) Set(ctx context.Context, key string, val []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = val
}

func (c *memCache) Del(ctx context.Context, keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	c.dels++
}

func TestUpcomingPopulatesAndInvalidatesCache(t *testing.T) {
	store := newFakeStore()
	cache := newMemCache()
	svc := NewService(store, cache)
	svc.now = func() time.Time { return time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC) }

	if _, err := svc.Create(context.Background(), validRequest(), 1, 9); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := svc.Upcoming(context.Background(), 1); err != nil {
		t.Fatalf("Upcoming() error = %v", err)
	}
	if _, ok := cache.data[UpcomingCacheKey(1)]; !ok {
		t.Error("upcoming listing should be cached")
	}

	next := validRequest()
	next.StartTime = "2026-10-02T10:00:00Z"
	next.EndTime = "2026-10-02T12:00:00Z"
	if _, err := svc.Create(context.Background(), next, 1, 9); err != nil {
		t.Fatalf("second Create() error = %v", err)
	}
	if _, ok := cache.data[UpcomingCacheKey(1)]; ok {
		t.Error("create must invalidate the upcoming cache")
	}
}

func TestUpcomingUsesServiceClock(t *testing.T) {
	store := newFakeStore()
	store.events = []Event{
		{ID: 1, OrgID: 1, Title: "Finished", StartTime: at(8), EndTime: at(9), Capacity: 10, Scope: ScopeOrg},
		{ID: 2, OrgID: 1, Title: "Running", StartTime: at(10), EndTime: at(12), Capacity: 10, Scope: ScopeOrg},
		{ID: 3, OrgID: 1, Title: "Later", StartTime: at(14), EndTime: at(16), Capacity: 10, Scope: ScopeOrg},
	}

	svc := NewService(store, nil)
	svc.now = func() time.Time { return at(11) }

	events, err := svc.Upcoming(context.Background(), 1)
	if err != nil {
		t.Fatalf("Upcoming() error = %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2 (the running and the later one)", len(events))
	}
	for _, e := range events {
		if e.ID == 1 {
			t.Error("event that already ended should not be listed")
		}
	}
}

func TestUpcomingDropsMalformedCacheEntry(t *testing.T) {
	store := newFakeStore()
	cache := newMemCache()
	svc := NewService(store, cache)
	svc.now = func() time.Time { return time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC) }

	cache.data[UpcomingCacheKey(1)] = []byte("{not json")

	events, err := svc.Upcoming(context.Background(), 1)
	if err != nil {
		t.Fatalf("Upcoming() error = %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events, want 0", len(events))
	}
}
