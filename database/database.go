package database

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/campusconnect/campus-events-backend/config"
)

// DB is the shared connection handle, set by Connect.
var DB *gorm.DB

// ErrUnavailable marks storage-layer failures (connectivity, timeouts).
// It is retryable and never conflated with business-rule errors.
var ErrUnavailable = errors.New("storage unavailable")

// Connect opens the Postgres connection and stores the handle in DB.
// TranslateError is enabled so unique-index violations surface as
// gorm.ErrDuplicatedKey instead of driver-specific errors.
func Connect(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	DB = db
	return db
}

// Unavailable wraps a storage-layer error with ErrUnavailable so callers can
// classify it with errors.Is.
func Unavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
