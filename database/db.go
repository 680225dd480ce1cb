// database/db.go - connection handling (embedded SQLite by default, PostgreSQL when configured)
package database

import (
	"log"
	"os"
	"time"

	"tournament-hub/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the store and returns the handle. The embedded SQLite
// file is the default so the service runs with zero external setup;
// setting DATABASE_URL switches to PostgreSQL for deployments that
// need it.
func Connect() (*gorm.DB, error) {
	cfg := &gorm.Config{
		// Surfaces unique-constraint violations as gorm.ErrDuplicatedKey
		// on both drivers, so services can translate them uniformly.
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	var (
		db  *gorm.DB
		err error
	)
	dsn := os.Getenv("DATABASE_URL")
	if dsn != "" {
		db, err = gorm.Open(postgres.Open(dsn), cfg)
	} else {
		path := os.Getenv("DATABASE_PATH")
		if path == "" {
			path = "database.sqlite"
		}
		db, err = gorm.Open(sqlite.Open(path), cfg)
	}
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if dsn != "" {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	} else {
		// SQLite allows one writer at a time; a single connection keeps
		// concurrent join transactions queued instead of failing busy.
		sqlDB.SetMaxOpenConns(1)
	}

	log.Println("✅ Database connected")
	return db, nil
}

// Migrate creates or updates the schema for every persisted model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.Tournament{},
		&models.Participant{},
		&models.NewsItem{},
		&models.MatchResult{},
	)
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
