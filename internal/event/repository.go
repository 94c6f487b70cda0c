package event

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/campusconnect/campus-events-backend/database"
	"github.com/campusconnect/campus-events-backend/internal/organization"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

var _ Store = (*Repository)(nil)

// InTx runs fn against a transaction-bound Repository. Row locks taken inside
// fn are held until the transaction commits or rolls back.
func (r *Repository) InTx(ctx context.Context, fn func(tx Store) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{DB: tx})
	})
}

// LockOrganization takes a FOR UPDATE lock on the organization row so that
// concurrent event creations for the same organization serialize. Event
// creation is a low-frequency admin action, so a per-org lock is cheap.
func (r *Repository) LockOrganization(ctx context.Context, orgID uint) error {
	var org organization.Organization
	err := r.DB.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&org, orgID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return organization.ErrNotFound
	}
	if err != nil {
		return database.Unavailable(err)
	}
	return nil
}

// ListOverlapping returns every event of the organization whose half-open
// window intersects [start, end), ordered by start time.
func (r *Repository) ListOverlapping(ctx context.Context, orgID uint, start, end time.Time) ([]Event, error) {
	var events []Event
	err := r.DB.WithContext(ctx).
		Where("org_id = ? AND start_time < ? AND end_time > ?", orgID, end, start).
		Order("start_time ASC").
		Find(&events).Error
	if err != nil {
		return nil, database.Unavailable(err)
	}
	return events, nil
}

func (r *Repository) Insert(ctx context.Context, e *Event) error {
	if err := r.DB.WithContext(ctx).Create(e).Error; err != nil {
		return database.Unavailable(err)
	}
	return nil
}

// ===========================
// Get Event By ID (scoped to the caller's organization)
func (r *Repository) GetByID(ctx context.Context, id, orgID uint) (*Event, error) {
	var e Event
	err := r.DB.WithContext(ctx).
		Where("id = ? AND org_id = ?", id, orgID).
		First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, database.Unavailable(err)
	}
	return &e, nil
}

// ===========================
// List Events With Pagination & Search
func (r *Repository) ListByOrg(ctx context.Context, orgID uint, limit, offset int, search string) ([]Event, error) {
	query := r.DB.WithContext(ctx).Where("org_id = ?", orgID)

	if search != "" {
		ilike := "%" + search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", ilike, ilike)
	}

	var events []Event
	err := query.
		Order("start_time ASC").
		Limit(limit).
		Offset(offset).
		Find(&events).Error
	if err != nil {
		return nil, database.Unavailable(err)
	}
	return events, nil
}

// ===========================
// Upcoming Events
func (r *Repository) Upcoming(ctx context.Context, orgID uint, now time.Time) ([]Event, error) {
	var events []Event
	err := r.DB.WithContext(ctx).
		Where("org_id = ? AND end_time > ?", orgID, now).
		Order("start_time ASC").
		Find(&events).Error
	if err != nil {
		return nil, database.Unavailable(err)
	}
	return events, nil
}

// ===========================
// Count registrations for an event
func (r *Repository) CountRegistrations(ctx context.Context, eventID uint) (int, error) {
	var count int64
	err := r.DB.WithContext(ctx).Table("registrations").
		Where("event_id = ?", eventID).
		Count(&count).Error
	if err != nil {
		return 0, database.Unavailable(err)
	}
	return int(count), nil
}

// ===========================
// Delete Event (registrations go with it, in one transaction)
func (r *Repository) Delete(ctx context.Context, id, orgID uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND org_id = ?", id, orgID).Delete(&Event{})
		if res.Error != nil {
			return database.Unavailable(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		if err := tx.Exec("DELETE FROM registrations WHERE event_id = ?", id).Error; err != nil {
			return database.Unavailable(err)
		}
		return nil
	})
}
