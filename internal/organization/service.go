package organization

import (
	"context"
	"errors"
	"strings"
)

// ErrInvalidCode rejects codes that would not survive a URL path segment.
var ErrInvalidCode = errors.New("organization code must be 2-50 lowercase letters, digits or hyphens")

type Service struct {
	Repo *Repository
}

func NewService(r *Repository) *Service {
	return &Service{Repo: r}
}

// ===========================
// Create Organization
func (s *Service) Create(ctx context.Context, req *CreateOrganizationRequest) (*Organization, error) {
	code := strings.ToLower(strings.TrimSpace(req.Code))
	if !validCode(code) {
		return nil, ErrInvalidCode
	}

	org := &Organization{
		Name:    strings.TrimSpace(req.Name),
		Code:    code,
		Website: strings.TrimSpace(req.Website),
	}
	if err := s.Repo.Create(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}

// ===========================
// Lookup by short code
func (s *Service) GetByCode(ctx context.Context, code string) (*Organization, error) {
	return s.Repo.GetByCode(ctx, strings.ToLower(strings.TrimSpace(code)))
}

func validCode(code string) bool {
	if len(code) < 2 || len(code) > 50 {
		return false
	}
	for _, r := range code {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-':
		default:
			return false
		}
	}
	return true
}
