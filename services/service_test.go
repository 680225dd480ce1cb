package services

import (
	"testing"
	"time"

	"tournament-hub/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory store. A single connection
// keeps every goroutine on the same database and serializes
// transactions the way SQLite does in production.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.Tournament{},
		&models.Participant{},
		&models.NewsItem{},
		&models.MatchResult{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string, balance float64) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "secret",
		Balance:  balance,
		Role:     models.RolePlayer,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTournament(t *testing.T, db *gorm.DB, title string, entryFee float64, maxPlayers int) *models.Tournament {
	t.Helper()
	tournament := &models.Tournament{
		Title:      title,
		EntryFee:   entryFee,
		StartTime:  time.Now().Add(24 * time.Hour),
		Status:     models.StatusUpcoming,
		MaxPlayers: maxPlayers,
	}
	require.NoError(t, db.Create(tournament).Error)
	return tournament
}
