package models

import "time"

// Team groups players under a leader. No membership roster is kept;
// participants reference a team directly when they join as one.
type Team struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Tag      string `gorm:"size:10" json:"tag"`
	LeaderID *uint  `gorm:"index" json:"leader_id,omitempty"`
	LogoURL  string `json:"logo_url"`

	Leader *User `json:"leader,omitempty" gorm:"foreignKey:LeaderID"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
