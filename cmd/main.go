package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/campusconnect/campus-events-backend/config"
	"github.com/campusconnect/campus-events-backend/database"
	"github.com/campusconnect/campus-events-backend/internal/event"
	"github.com/campusconnect/campus-events-backend/internal/group"
	"github.com/campusconnect/campus-events-backend/internal/organization"
	"github.com/campusconnect/campus-events-backend/internal/registration"
	"github.com/campusconnect/campus-events-backend/routes"
	"github.com/campusconnect/campus-events-backend/utils"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg)

	// Redis is best-effort: listings fall back to the database when it is
	// down, so a failed init is a warning, not a fatal.
	if err := utils.InitRedis(cfg); err != nil {
		log.Printf("redis init failed, continuing without cache: %v", err)
	}

	log.Println("running database migrations...")
	if err := db.AutoMigrate(
		&organization.Organization{},
		&group.Group{},
		&group.Membership{},
		&event.Event{},
		&registration.Registration{},
	); err != nil {
		log.Fatalf("auto-migrate failed: %v", err)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://127.0.0.1:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Setup(router, cfg)

	fmt.Printf("server starting on port %s\n", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
