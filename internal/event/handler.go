package event

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
// Create Event - POST /events
func (h *Handler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	e, err := h.Service.Create(c.Request.Context(), &req, middleware.OrgID(c), middleware.UserID(c))
	if err != nil {
		var conflict *ConflictError
		switch {
		case errors.As(err, &conflict):
			c.JSON(http.StatusConflict, gin.H{
				"error":    conflict.Error(),
				"event_id": conflict.EventID,
				"title":    conflict.Title,
				"level":    conflict.Level,
			})
		case errors.Is(err, ErrInvalidWindow), errors.Is(err, ErrInvalidScope), errors.Is(err, ErrInvalidCapacity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, organization.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "organization not found"})
		case errors.Is(err, database.ErrUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable, retry later"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create event"})
		}
		return
	}

	c.JSON(http.StatusCreated, e)
}

// ===========================
// Get Event - GET /events/:id
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID"})
		return
	}

	e, err := h.Service.Get(c.Request.Context(), uint(id), middleware.OrgID(c))
	if err != nil {
		h.respondError(c, err, "failed to fetch event")
		return
	}
	c.JSON(http.StatusOK, e)
}

// ===========================
// List Events - GET /events?limit=&offset=&search=
func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	search := c.Query("search")

	events, err := h.Service.List(c.Request.Context(), middleware.OrgID(c), limit, offset, search)
	if err != nil {
		h.respondError(c, err, "failed to list events")
		return
	}
	c.JSON(http.StatusOK, events)
}

// ===========================
// Upcoming Events - GET /events/upcoming
func (h *Handler) Upcoming(c *gin.Context) {
	events, err := h.Service.Upcoming(c.Request.Context(), middleware.OrgID(c))
	if err != nil {
		h.respondError(c, err, "failed to fetch upcoming events")
		return
	}
	c.JSON(http.StatusOK, events)
}

// ===========================
// Delete Event - DELETE /events/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID"})
		return
	}

	if err := h.Service.Delete(c.Request.Context(), uint(id), middleware.OrgID(c)); err != nil {
		h.respondError(c, err, "failed to delete event")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "event deleted successfully"})
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
	case errors.Is(err, database.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable, retry later"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
