package reports

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/campusconnect/campus-events-backend/database"
	"github.com/campusconnect/campus-events-backend/internal/event"
)

// ===========================
// REPORTS REPOSITORY
// ===========================

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// EventRows returns every event in the org with its registration count,
// ordered by start time.
func (r *Repository) EventRows(ctx context.Context, orgID uint) ([]EventReportRow, error) {
	var rows []EventReportRow
	err := r.DB.WithContext(ctx).Table("events").
		Select(`events.id, events.title, events.scope,
			COALESCE(groups.name, '') AS group_name,
			events.start_time, events.end_time, events.location, events.capacity,
			COUNT(registrations.id) AS registrations`).
		Joins("LEFT JOIN groups ON groups.id = events.group_id").
		Joins("LEFT JOIN registrations ON registrations.event_id = events.id").
		Where("events.org_id = ?", orgID).
		Group("events.id, groups.name").
		Order("events.start_time ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, database.Unavailable(err)
	}
	return rows, nil
}

// RosterRows returns the attendee list for one event, oldest registration
// first. Returns event.ErrNotFound when the event is not in the org.
func (r *Repository) RosterRows(ctx context.Context, eventID, orgID uint) (*event.Event, []RosterReportRow, error) {
	var ev event.Event
	err := r.DB.WithContext(ctx).
		Where("id = ? AND org_id = ?", eventID, orgID).
		First(&ev).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, event.ErrNotFound
		}
		return nil, nil, database.Unavailable(err)
	}

	var rows []RosterReportRow
	err = r.DB.WithContext(ctx).Table("registrations").
		Select("reference, user_id, created_at AS registered_at").
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, nil, database.Unavailable(err)
	}
	return &ev, rows, nil
}
