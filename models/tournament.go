package models

import "time"

// Tournament lifecycle states.
const (
	StatusUpcoming  = "upcoming"
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Tournament is a joinable event with an entry fee and a fixed number
// of slots. CurrentPlayers is denormalized for cheap listing reads and
// must always equal the participant count for the tournament; it is
// only written inside the same transaction that inserts a Participant.
type Tournament struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Title          string    `gorm:"size:200;not null" json:"title"`
	Slug           string    `gorm:"size:220;index" json:"slug"`
	EntryFee       float64   `gorm:"default:0" json:"entry_fee"`
	PrizePool      float64   `gorm:"default:0" json:"prize_pool"`
	StartTime      time.Time `gorm:"index;not null" json:"start_time"`
	Map            string    `gorm:"size:50" json:"map"`
	Mode           string    `gorm:"size:50" json:"mode"`
	Status         string    `gorm:"size:16;default:'upcoming'" json:"status"`
	MaxPlayers     int       `gorm:"not null" json:"max_players"`
	CurrentPlayers int       `gorm:"default:0" json:"current_players"`
	Description    string    `gorm:"type:text" json:"description"`
	Rules          string    `gorm:"type:text" json:"rules"`
	ImageURL       string    `json:"image_url"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
