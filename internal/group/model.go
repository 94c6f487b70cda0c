package group

import (
	"time"
)

// Membership statuses. Joining starts PENDING until a group admin approves.
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
)

// Group is a sub-unit of an organization (a club) that may own group-scoped
// events.
type Group struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OrgID       uint      `gorm:"not null;index" json:"org_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Category    string    `gorm:"type:varchar(100)" json:"category,omitempty"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Approved    bool      `gorm:"default:false" json:"approved"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Membership links a user to a group. The (user_id, group_id) pair is unique
// so a user cannot hold two memberships in the same group.
type Membership struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_memberships_user_group" json:"user_id"`
	GroupID   uint      `gorm:"not null;uniqueIndex:idx_memberships_user_group;index" json:"group_id"`
	OrgID     uint      `gorm:"not null;index" json:"org_id"`
	Status    string    `gorm:"type:varchar(20);not null;default:PENDING" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type CreateGroupRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}
