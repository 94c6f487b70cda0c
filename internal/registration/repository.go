package registration

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/campusconnect/campus-events-backend/database"
	"github.com/campusconnect/campus-events-backend/internal/event"
)

// ===========================
// REGISTRATION REPOSITORY
// ===========================

type Repository struct {
	DB *gorm.DB
}

var _ Store = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) InTx(ctx context.Context, fn func(tx Store) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{DB: tx})
	})
}

func (r *Repository) LockEvent(ctx context.Context, eventID, orgID uint) (*event.Event, error) {
	var ev event.Event
	err := r.DB.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND org_id = ?", eventID, orgID).
		First(&ev).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, event.ErrNotFound
		}
		return nil, database.Unavailable(err)
	}
	return &ev, nil
}

func (r *Repository) HasRegistration(ctx context.Context, userID, eventID uint) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&Registration{}).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Count(&count).Error
	if err != nil {
		return false, database.Unavailable(err)
	}
	return count > 0, nil
}

func (r *Repository) CountByEvent(ctx context.Context, eventID uint) (int, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&Registration{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	if err != nil {
		return 0, database.Unavailable(err)
	}
	return int(count), nil
}

func (r *Repository) FindUserOverlap(ctx context.Context, userID uint, start, end time.Time) (*event.Event, bool, error) {
	// No org filter here: the user's calendar spans organizations.
	var ev event.Event
	err := r.DB.WithContext(ctx).
		Joins("JOIN registrations ON registrations.event_id = events.id").
		Where("registrations.user_id = ?", userID).
		Where("events.start_time < ? AND events.end_time > ?", end, start).
		First(&ev).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, database.Unavailable(err)
	}
	return &ev, true, nil
}

func (r *Repository) Insert(ctx context.Context, reg *Registration) error {
	if err := r.DB.WithContext(ctx).Create(reg).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyRegistered
		}
		return database.Unavailable(err)
	}
	return nil
}

func (r *Repository) DeleteByUserEvent(ctx context.Context, userID, eventID uint) error {
	res := r.DB.WithContext(ctx).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Delete(&Registration{})
	if res.Error != nil {
		return database.Unavailable(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) ListByEvent(ctx context.Context, eventID, orgID uint) ([]Registration, error) {
	var regs []Registration
	err := r.DB.WithContext(ctx).
		Where("event_id = ? AND org_id = ?", eventID, orgID).
		Order("created_at ASC").
		Find(&regs).Error
	if err != nil {
		return nil, database.Unavailable(err)
	}
	return regs, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID, orgID uint) ([]UserRegistration, error) {
	var rows []UserRegistration
	err := r.DB.WithContext(ctx).Model(&Registration{}).
		Select(`registrations.id, registrations.reference, registrations.event_id,
			events.title AS event_title, events.start_time, events.end_time,
			events.location, registrations.created_at`).
		Joins("JOIN events ON events.id = registrations.event_id").
		Where("registrations.user_id = ? AND registrations.org_id = ?", userID, orgID).
		Order("events.start_time ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, database.Unavailable(err)
	}
	return rows, nil
}
