package registration

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campusconnect/campus-events-backend/database"
	"github.com/campusconnect/campus-events-backend/internal/event"
	"github.com/campusconnect/campus-events-backend/middleware"
)

// ===========================
// REGISTRATION HANDLERS
// ===========================

type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

// Register handles POST /events/:id/register.
func (h *Handler) Register(c *gin.Context) {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	reg, err := h.Service.Register(c.Request.Context(), middleware.UserID(c), middleware.OrgID(c), uint(eventID))
	if err != nil {
		var conflict *ConflictError
		if errors.As(err, &conflict) {
			c.JSON(http.StatusConflict, gin.H{
				"error":    conflict.Error(),
				"event_id": conflict.EventID,
				"title":    conflict.Title,
			})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reg)
}

// Cancel handles DELETE /events/:id/register.
func (h *Handler) Cancel(c *gin.Context) {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	if err := h.Service.Cancel(c.Request.Context(), middleware.UserID(c), middleware.OrgID(c), uint(eventID)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "registration cancelled"})
}

// Roster handles GET /events/:id/registrations.
func (h *Handler) Roster(c *gin.Context) {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	regs, err := h.Service.Roster(c.Request.Context(), uint(eventID), middleware.OrgID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"registrations": regs, "count": len(regs)})
}

// MyRegistrations handles GET /me/registrations.
func (h *Handler) MyRegistrations(c *gin.Context) {
	regs, err := h.Service.MyRegistrations(c.Request.Context(), middleware.UserID(c), middleware.OrgID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"registrations": regs, "count": len(regs)})
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrAlreadyRegistered), errors.Is(err, ErrEventFull), errors.Is(err, ErrScheduleConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, ErrNotFound), errors.Is(err, event.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, database.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable, please retry"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
