package organization

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusconnect/campus-events-backend/database"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// ===========================
// Create Organization - POST /orgs
func (h *Handler) Create(c *gin.Context) {
	var req CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	org, err := h.Service.Create(c.Request.Context(), &req)
	switch {
	case errors.Is(err, ErrInvalidCode):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrCodeTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, database.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable, retry later"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create organization"})
	default:
		c.JSON(http.StatusCreated, org)
	}
}

// ===========================
// Get Organization - GET /orgs/:code
func (h *Handler) GetByCode(c *gin.Context) {
	org, err := h.Service.GetByCode(c.Request.Context(), c.Param("code"))
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "organization not found"})
	case errors.Is(err, database.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable, retry later"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch organization"})
	default:
		c.JSON(http.StatusOK, org)
	}
}
