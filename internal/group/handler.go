package group

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campusconnect/campus-events-backend/database"
	"github.com/campusconnect/campus-events-backend/internal/organization"
	"github.com/campusconnect/campus-events-backend/middleware"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// ===========================
// Create Group - POST /groups
func (h *Handler) Create(c *gin.Context) {
	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	g, err := h.Service.Create(c.Request.Context(), &req, middleware.OrgID(c))
	if err != nil {
		respondError(c, err, "failed to create group")
		return
	}
	c.JSON(http.StatusCreated, g)
}

// ===========================
// List Groups - GET /orgs/:code/groups
func (h *Handler) ListByOrg(c *gin.Context) {
	groups, err := h.Service.ListByOrgCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err, "failed to list groups")
		return
	}
	c.JSON(http.StatusOK, groups)
}

// ===========================
// Join Group - POST /groups/:id/join
func (h *Handler) Join(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid group ID"})
		return
	}

	m, err := h.Service.Join(c.Request.Context(), uint(id), middleware.UserID(c), middleware.OrgID(c))
	if err != nil {
		respondError(c, err, "failed to join group")
		return
	}
	c.JSON(http.StatusCreated, m)
}

// ===========================
// List Members - GET /groups/:id/members
func (h *Handler) Members(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid group ID"})
		return
	}

	members, err := h.Service.Members(c.Request.Context(), uint(id), middleware.OrgID(c))
	if err != nil {
		respondError(c, err, "failed to list members")
		return
	}
	c.JSON(http.StatusOK, members)
}

// ===========================
// My Memberships - GET /me/memberships
func (h *Handler) MyMemberships(c *gin.Context) {
	memberships, err := h.Service.MyMemberships(c.Request.Context(), middleware.UserID(c), middleware.OrgID(c))
	if err != nil {
		respondError(c, err, "failed to list memberships")
		return
	}
	c.JSON(http.StatusOK, memberships)
}

func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, organization.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrAlreadyMember):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, database.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable, retry later"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
