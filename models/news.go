package models

import "time"

// NewsItem is immutable after creation.
type NewsItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (NewsItem) TableName() string {
	return "news"
}
