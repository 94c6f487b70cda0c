package organization

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/campusconnect/campus-events-backend/database"
)

// ErrNotFound is returned when the referenced organization does not exist.
var ErrNotFound = errors.New("organization not found")

// ErrCodeTaken is returned when the short code is already registered.
var ErrCodeTaken = errors.New("organization code already in use")

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(ctx context.Context, org *Organization) error {
	err := r.DB.WithContext(ctx).Create(org).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrCodeTaken
	}
	if err != nil {
		return database.Unavailable(err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id uint) (*Organization, error) {
	var org Organization
	err := r.DB.WithContext(ctx).First(&org, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, database.Unavailable(err)
	}
	return &org, nil
}

func (r *Repository) GetByCode(ctx context.Context, code string) (*Organization, error) {
	var org Organization
	err := r.DB.WithContext(ctx).Where("code = ?", code).First(&org).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, database.Unavailable(err)
	}
	return &org, nil
}
