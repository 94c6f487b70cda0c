package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusconnect/campus-events-backend/config"
	"github.com/campusconnect/campus-events-backend/database"
	"github.com/campusconnect/campus-events-backend/internal/event"
	"github.com/campusconnect/campus-events-backend/internal/group"
	"github.com/campusconnect/campus-events-backend/internal/organization"
	"github.com/campusconnect/campus-events-backend/internal/registration"
	"github.com/campusconnect/campus-events-backend/internal/reports"
	"github.com/campusconnect/campus-events-backend/middleware"
	"github.com/campusconnect/campus-events-backend/utils"
)

// ===========================
// ROUTE SETUP
// ===========================

// Setup wires repositories, services and handlers onto the router.
func Setup(r *gin.Engine, cfg *config.Config) {
	// A typed nil must not reach the Cache interface, or the nil checks in
	// the services would pass and panic on use.
	var cache event.Cache
	if rc := utils.NewRedisCache(cfg); rc != nil {
		cache = rc
	}

	orgRepo := organization.NewRepository(database.DB)
	orgService := organization.NewService(orgRepo)
	orgHandler := organization.NewHandler(orgService)

	groupRepo := group.NewRepository(database.DB)
	groupService := group.NewService(groupRepo, orgRepo)
	groupHandler := group.NewHandler(groupService)

	eventRepo := event.NewRepository(database.DB)
	eventService := event.NewService(eventRepo, cache)
	eventHandler := event.NewHandler(eventService)

	regRepo := registration.NewRepository(database.DB)
	regService := registration.NewService(regRepo, cache)
	regHandler := registration.NewHandler(regService)

	reportRepo := reports.NewRepository(database.DB)
	reportService := reports.NewService(reportRepo, reports.NewExporter())
	reportHandler := reports.NewHandler(reportService)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimiter())
	api.Use(middleware.AuthMiddleware(cfg))
	{
		api.GET("/orgs/:code", orgHandler.GetByCode)
		api.GET("/orgs/:code/groups", groupHandler.ListByOrg)

		api.POST("/groups/:id/join", groupHandler.Join)
		api.GET("/me/memberships", groupHandler.MyMemberships)

		api.GET("/events", eventHandler.List)
		api.GET("/events/upcoming", eventHandler.Upcoming)
		api.GET("/events/:id", eventHandler.Get)

		api.POST("/events/:id/register", regHandler.Register)
		api.DELETE("/events/:id/register", regHandler.Cancel)
		api.GET("/me/registrations", regHandler.MyRegistrations)
	}

	admin := api.Group("")
	admin.Use(middleware.RequireAdmin())
	{
		admin.POST("/orgs", orgHandler.Create)
		admin.POST("/groups", groupHandler.Create)
		admin.GET("/groups/:id/members", groupHandler.Members)
		admin.POST("/events", eventHandler.Create)
		admin.DELETE("/events/:id", eventHandler.Delete)
		admin.GET("/events/:id/registrations", regHandler.Roster)

		admin.GET("/reports/events", reportHandler.Events)
		admin.GET("/reports/events/:id/roster", reportHandler.Roster)
	}
}
