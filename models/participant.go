package models

import "time"

// Participant links one user to one tournament, at most once per pair.
// Rows are created only by the join transaction and never updated or
// deleted afterwards.
type Participant struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	TournamentID uint      `gorm:"uniqueIndex:idx_participants_pair;not null" json:"tournament_id"`
	UserID       uint      `gorm:"uniqueIndex:idx_participants_pair;not null" json:"user_id"`
	TeamID       *uint     `gorm:"index" json:"team_id,omitempty"`
	JoinedAt     time.Time `gorm:"autoCreateTime" json:"joined_at"`
}
