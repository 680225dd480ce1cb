package services

import (
	"errors"

	"tournament-hub/models"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TournamentService struct {
	DB *gorm.DB
}

func NewTournamentService(db *gorm.DB) *TournamentService {
	return &TournamentService{DB: db}
}

// ListTournaments returns every tournament, soonest first.
func (s *TournamentService) ListTournaments() ([]models.Tournament, error) {
	var tournaments []models.Tournament
	err := s.DB.Order("start_time ASC").Find(&tournaments).Error
	return tournaments, err
}

func (s *TournamentService) GetTournament(id uint) (*models.Tournament, error) {
	var tournament models.Tournament
	if err := s.DB.First(&tournament, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tournament, nil
}

// JoinTournament debits the entry fee, takes a slot and records the
// participant as one atomic unit. Every check runs against rows read
// inside the transaction, so concurrent joins for the same user or
// tournament cannot both pass the balance or capacity gate: on
// PostgreSQL the two rows are locked FOR UPDATE, on SQLite the
// single-writer transaction serializes them.
//
// Returns the post-debit balance.
func (s *TournamentService) JoinTournament(userID, tournamentID uint) (float64, error) {
	var newBalance float64
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := s.forUpdate(tx).First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var tournament models.Tournament
		if err := s.forUpdate(tx).First(&tournament, tournamentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		// Compared before the debit.
		if user.Balance < tournament.EntryFee {
			return ErrInsufficientBalance
		}
		if tournament.CurrentPlayers >= tournament.MaxPlayers {
			return ErrTournamentFull
		}

		var joined int64
		if err := tx.Model(&models.Participant{}).
			Where("tournament_id = ? AND user_id = ?", tournamentID, userID).
			Count(&joined).Error; err != nil {
			return err
		}
		if joined > 0 {
			return ErrAlreadyJoined
		}

		if err := tx.Model(&models.User{}).Where("id = ?", userID).
			Update("balance", gorm.Expr("balance - ?", tournament.EntryFee)).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Tournament{}).Where("id = ?", tournamentID).
			Update("current_players", gorm.Expr("current_players + 1")).Error; err != nil {
			return err
		}
		participant := models.Participant{TournamentID: tournamentID, UserID: userID}
		if err := tx.Create(&participant).Error; err != nil {
			// Backstop: the composite unique index rejects a duplicate
			// pair even if a racing join slipped past the count above.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyJoined
			}
			return err
		}

		newBalance = user.Balance - tournament.EntryFee
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newBalance, nil
}

// forUpdate adds row locking where the dialect supports it. SQLite has
// no FOR UPDATE; its write transactions already exclude each other.
func (s *TournamentService) forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// ListUserTournaments returns the tournaments a user has joined.
func (s *TournamentService) ListUserTournaments(userID uint) ([]models.Tournament, error) {
	var tournaments []models.Tournament
	err := s.DB.
		Joins("JOIN participants ON participants.tournament_id = tournaments.id").
		Where("participants.user_id = ?", userID).
		Order("tournaments.start_time ASC").
		Find(&tournaments).Error
	return tournaments, err
}

// Leaderboard aggregates match results per user, richest first. Ties
// on earnings fall back to user id so the ordering is deterministic.
func (s *TournamentService) Leaderboard(limit int) ([]models.LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	var entries []models.LeaderboardEntry
	err := s.DB.Raw(`
		SELECT u.username,
		       SUM(m.kills) AS total_kills,
		       SUM(m.earnings) AS total_earnings
		FROM users u
		JOIN match_results m ON u.id = m.user_id
		GROUP BY u.id, u.username
		ORDER BY total_earnings DESC, u.id ASC
		LIMIT ?
	`, limit).Scan(&entries).Error
	return entries, err
}

// CreateTournament registers a new event on the admin path. New
// tournaments always open as upcoming with an empty roster.
func (s *TournamentService) CreateTournament(t *models.Tournament) error {
	t.Slug = slug.Make(t.Title)
	t.Status = models.StatusUpcoming
	t.CurrentPlayers = 0
	return s.DB.Create(t).Error
}

// UpdateStatus moves a tournament to an explicit lifecycle state.
// Cancelling does not refund entry fees; there is no credit path.
func (s *TournamentService) UpdateStatus(id uint, status string) (*models.Tournament, error) {
	switch status {
	case models.StatusUpcoming, models.StatusOngoing, models.StatusCompleted, models.StatusCancelled:
	default:
		return nil, ErrInvalidStatus
	}
	result := s.DB.Model(&models.Tournament{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetTournament(id)
}

// CounterDrift reports a tournament whose denormalized player counter
// disagrees with its participant rows. A correct join path never
// produces one.
type CounterDrift struct {
	TournamentID     uint  `json:"tournament_id"`
	CurrentPlayers   int   `json:"current_players"`
	ParticipantCount int64 `json:"participant_count"`
}

// AuditParticipantCounters cross-checks current_players against the
// participant table. Used by the scheduler and by tests.
func (s *TournamentService) AuditParticipantCounters() ([]CounterDrift, error) {
	var drift []CounterDrift
	err := s.DB.Raw(`
		SELECT t.id AS tournament_id,
		       t.current_players,
		       COUNT(p.id) AS participant_count
		FROM tournaments t
		LEFT JOIN participants p ON p.tournament_id = t.id
		GROUP BY t.id, t.current_players
		HAVING t.current_players <> COUNT(p.id)
	`).Scan(&drift).Error
	return drift, err
}
