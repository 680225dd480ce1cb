// database/seed.go - first-run bootstrap data
package database

import (
	"log"
	"time"

	"tournament-hub/models"

	"gorm.io/gorm"
)

// Seed loads the launch tournaments and news once, when the
// tournaments table is empty. Safe to call on every startup.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Tournament{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tournaments := []models.Tournament{
		{
			Title:       "FF World Series Qualifier",
			Slug:        "ff-world-series-qualifier",
			EntryFee:    50,
			PrizePool:   5000,
			StartTime:   time.Date(2026, time.March, 10, 20, 0, 0, 0, time.UTC),
			Map:         "Bermuda",
			Mode:        "Squad",
			Status:      models.StatusUpcoming,
			MaxPlayers:  12,
			Description: "The official qualifier for the upcoming World Series. Only top teams will advance.",
			Rules:       "1. No Emulators\n2. Level 50+ Required\n3. Fair Play Only",
			ImageURL:    "https://picsum.photos/seed/ffws/800/400",
		},
		{
			Title:       "Asia Invitational",
			Slug:        "asia-invitational",
			EntryFee:    20,
			PrizePool:   2000,
			StartTime:   time.Date(2026, time.March, 15, 18, 0, 0, 0, time.UTC),
			Map:         "Purgatory",
			Mode:        "Duo",
			Status:      models.StatusUpcoming,
			MaxPlayers:  24,
			Description: "International duo tournament featuring top players from across Asia.",
			Rules:       "Standard international rules apply.",
			ImageURL:    "https://picsum.photos/seed/asia/800/400",
		},
	}

	news := []models.NewsItem{
		{
			Title:    "New Season Starts!",
			Content:  "Get ready for the most competitive season yet with over $10k in prizes.",
			ImageURL: "https://picsum.photos/seed/news1/800/400",
		},
		{
			Title:    "Update v2.4 Patch Notes",
			Content:  "Check out the latest changes to the tournament platform and scoring system.",
			ImageURL: "https://picsum.photos/seed/news2/800/400",
		},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&tournaments).Error; err != nil {
			return err
		}
		if err := tx.Create(&news).Error; err != nil {
			return err
		}
		log.Printf("✅ Seeded %d tournaments and %d news items", len(tournaments), len(news))
		return nil
	})
}
