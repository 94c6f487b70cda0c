package organization

import (
	"time"
)

// Organization is the tenant boundary: every schedule and capacity invariant
// is enforced per organization.
type Organization struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Code      string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"`
	Website   string    `gorm:"type:varchar(255)" json:"website,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// CreateOrganizationRequest is the admin payload for onboarding a campus.
type CreateOrganizationRequest struct {
	Name    string `json:"name" binding:"required"`
	Code    string `json:"code" binding:"required"`
	Website string `json:"website,omitempty"`
}
