package models

// MatchResult records one user's outcome in one tournament match.
// Rows arrive from the results pipeline out of band; this service only
// aggregates them for the leaderboard.
type MatchResult struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	TournamentID uint    `gorm:"index;not null" json:"tournament_id"`
	UserID       uint    `gorm:"index;not null" json:"user_id"`
	Rank         int     `json:"rank"`
	Kills        int     `json:"kills"`
	Earnings     float64 `gorm:"default:0" json:"earnings"`
}

// LeaderboardEntry is a leaderboard row aggregated from match results.
type LeaderboardEntry struct {
	Username      string  `json:"username"`
	TotalKills    int64   `json:"total_kills"`
	TotalEarnings float64 `json:"total_earnings"`
}
