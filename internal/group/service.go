package group

import (
	"context"
	"strings"

	"github.com/campusconnect/campus-events-backend/internal/organization"
)

type Service struct {
	Repo    *Repository
	OrgRepo *organization.Repository
}

func NewService(r *Repository, orgRepo *organization.Repository) *Service {
	return &Service{Repo: r, OrgRepo: orgRepo}
}

// ===========================
// Create Group (admin action, so it is approved immediately)
func (s *Service) Create(ctx context.Context, req *CreateGroupRequest, orgID uint) (*Group, error) {
	g := &Group{
		OrgID:       orgID,
		Name:        strings.TrimSpace(req.Name),
		Category:    strings.TrimSpace(req.Category),
		Description: strings.TrimSpace(req.Description),
		Approved:    true,
	}
	if err := s.Repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// ===========================
// List groups of an organization by its short code
func (s *Service) ListByOrgCode(ctx context.Context, code string) ([]Group, error) {
	org, err := s.OrgRepo.GetByCode(ctx, strings.ToLower(strings.TrimSpace(code)))
	if err != nil {
		return nil, err
	}
	return s.Repo.ListByOrg(ctx, org.ID)
}

// ===========================
// Join a group. The membership starts PENDING; approval is a separate
// moderation flow.
func (s *Service) Join(ctx context.Context, groupID, userID, orgID uint) (*Membership, error) {
	g, err := s.Repo.GetByID(ctx, groupID, orgID)
	if err != nil {
		return nil, err
	}

	m := &Membership{
		UserID:  userID,
		GroupID: g.ID,
		OrgID:   orgID,
		Status:  StatusPending,
	}
	if err := s.Repo.AddMember(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// ===========================
// List approved members of a group
func (s *Service) Members(ctx context.Context, groupID, orgID uint) ([]Membership, error) {
	if _, err := s.Repo.GetByID(ctx, groupID, orgID); err != nil {
		return nil, err
	}
	return s.Repo.ListMembers(ctx, groupID)
}

// ===========================
// My memberships
func (s *Service) MyMemberships(ctx context.Context, userID, orgID uint) ([]Membership, error) {
	return s.Repo.ListByUser(ctx, userID, orgID)
}
