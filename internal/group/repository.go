package group

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/campusconnect/campus-events-backend/database"
)

// ErrNotFound is returned when the group does not exist in the caller's
// organization.
var ErrNotFound = errors.New("group not found")

// ErrAlreadyMember is returned when the user already has a membership row,
// approved or pending.
var ErrAlreadyMember = errors.New("already a member or request pending")

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(ctx context.Context, g *Group) error {
	if err := r.DB.WithContext(ctx).Create(g).Error; err != nil {
		return database.Unavailable(err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id, orgID uint) (*Group, error) {
	var g Group
	err := r.DB.WithContext(ctx).Where("id = ? AND org_id = ?", id, orgID).First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, database.Unavailable(err)
	}
	return &g, nil
}

// ListByOrg returns the approved groups of an organization.
func (r *Repository) ListByOrg(ctx context.Context, orgID uint) ([]Group, error) {
	var groups []Group
	err := r.DB.WithContext(ctx).
		Where("org_id = ? AND approved = TRUE", orgID).
		Order("name ASC").
		Find(&groups).Error
	if err != nil {
		return nil, database.Unavailable(err)
	}
	return groups, nil
}

// AddMember inserts a membership row. The unique (user_id, group_id) index
// rejects duplicates atomically, so no prior read is needed.
func (r *Repository) AddMember(ctx context.Context, m *Membership) error {
	err := r.DB.WithContext(ctx).Create(m).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyMember
	}
	if err != nil {
		return database.Unavailable(err)
	}
	return nil
}

func (r *Repository) ListMembers(ctx context.Context, groupID uint) ([]Membership, error) {
	var members []Membership
	err := r.DB.WithContext(ctx).
		Where("group_id = ? AND status = ?", groupID, StatusApproved).
		Order("created_at ASC").
		Find(&members).Error
	if err != nil {
		return nil, database.Unavailable(err)
	}
	return members, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID, orgID uint) ([]Membership, error) {
	var memberships []Membership
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND org_id = ?", userID, orgID).
		Order("created_at DESC").
		Find(&memberships).Error
	if err != nil {
		return nil, database.Unavailable(err)
	}
	return memberships, nil
}
