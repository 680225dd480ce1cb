package models

import "time"

const (
	RolePlayer = "player"
	RoleAdmin  = "admin"
)

// User is a registered player. Balance is only ever mutated by the
// tournament join path; nothing else writes it.
type User struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Username string  `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email    string  `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password string  `gorm:"size:255;not null" json:"-"`
	Balance  float64 `gorm:"default:0" json:"balance"`
	FFID     string  `gorm:"column:ff_id;size:50" json:"ff_id"`
	Role     string  `gorm:"size:16;default:'player'" json:"role"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
