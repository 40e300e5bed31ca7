package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"liveroom/backend/internal/models"
)

const (
	maxRetries    = 3
	retryInterval = 5 * time.Second
)

// Connect opens the PostgreSQL connection, retrying a few times while the
// database comes up, and runs migrations.
func Connect(dsn string, zl *zap.Logger) (*gorm.DB, error) {
	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,                   // Enable color
		},
	)

	var db *gorm.DB
	var err error
	for i := 0; i <= maxRetries; i++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: customLogger,
		})
		if err == nil {
			break
		}
		zl.Warn("database connection failed, retrying", zap.Int("retry", i), zap.Error(err))
		if i < maxRetries {
			time.Sleep(retryInterval)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	zl.Info("Database connection established.")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	zl.Info("Database migrated successfully.")
	return db, nil
}

// Migrate creates or updates the tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Room{}, &models.RoomMember{}); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}
