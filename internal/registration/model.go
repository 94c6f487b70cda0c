package registration

import (
	"time"
)

// Registration is one admitted spot: user u attends event e. The
// (user_id, event_id) unique index is what makes the duplicate rule hold
// under concurrency, independent of any in-flight check.
type Registration struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Reference string    `gorm:"type:varchar(36);uniqueIndex;not null" json:"reference"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_registrations_user_event;index" json:"user_id"`
	EventID   uint      `gorm:"not null;uniqueIndex:idx_registrations_user_event;index" json:"event_id"`
	OrgID     uint      `gorm:"not null;index" json:"org_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// UserRegistration is a registration joined with a summary of its event, for
// the "my registrations" listing.
type UserRegistration struct {
	ID         uint      `json:"id"`
	Reference  string    `json:"reference"`
	EventID    uint      `json:"event_id"`
	EventTitle string    `json:"event_title"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Location   string    `json:"location"`
	CreatedAt  time.Time `json:"created_at"`
}
