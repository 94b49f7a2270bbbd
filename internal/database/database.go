package database

import (
	"fmt"

	"bbqbuddy/backend/internal/logger"
	"bbqbuddy/backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Open opens a gorm connection for the given driver ("postgres" or "sqlite").
// Duplicate-key errors are translated to gorm.ErrDuplicatedKey on both drivers.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "", "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	return gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Gorm(),
		TranslateError: true,
	})
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Profile{}, &models.Session{}, &models.Follow{}, &models.Yummy{})
}

// Connect initializes the database connection and runs migrations.
func Connect(driver, dsn string) {
	var err error

	DB, err = Open(driver, dsn)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to connect to database")
	}

	logger.Log.WithField("driver", driver).Info("Database connection established.")

	if err := Migrate(DB); err != nil {
		logger.Log.WithError(err).Fatal("Failed to migrate database")
	}

	logger.Log.Info("Database migrated successfully.")
}
