package event

import (
	"time"
)

// Event scopes.
const (
	ScopeOrg   = "ORG"
	ScopeGroup = "GROUP"
)

// Event is a scheduled slot on an organization's single-track timeline. The
// window is half-open: [StartTime, EndTime). Windows are immutable after
// creation; the conflict checks rely on that.
type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OrgID       uint      `gorm:"not null;index" json:"org_id"`
	GroupID     *uint     `gorm:"index" json:"group_id,omitempty"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	StartTime   time.Time `gorm:"not null;index" json:"start_time"`
	EndTime     time.Time `gorm:"not null" json:"end_time"`
	Location    string    `gorm:"type:varchar(255);not null" json:"location"`
	Capacity    int       `gorm:"not null" json:"capacity"`
	Scope       string    `gorm:"type:varchar(10);not null" json:"scope"`
	CreatedBy   uint      `gorm:"not null" json:"created_by"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	RegistrationCount int `gorm:"-" json:"registration_count"`
	SpotsLeft         int `gorm:"-" json:"spots_left"`
}

// CreateEventRequest is the event draft as it arrives from the wire.
// Timestamps are RFC 3339 strings.
type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description,omitempty"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Capacity    int    `json:"capacity" binding:"required"`
	Scope       string `json:"scope" binding:"required"`
	GroupID     *uint  `json:"group_id,omitempty"`
}
