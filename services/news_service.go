package services

import (
	"tournament-hub/models"

	"gorm.io/gorm"
)

type NewsService struct {
	DB *gorm.DB
}

func NewNewsService(db *gorm.DB) *NewsService {
	return &NewsService{DB: db}
}

// ListNews returns all news items, newest first.
func (s *NewsService) ListNews() ([]models.NewsItem, error) {
	var news []models.NewsItem
	err := s.DB.Order("created_at DESC").Find(&news).Error
	return news, err
}

// CreateNews publishes a news item on the admin path. Items are
// immutable once created.
func (s *NewsService) CreateNews(item *models.NewsItem) error {
	return s.DB.Create(item).Error
}
