package services

import (
	"errors"

	"tournament-hub/models"

	"gorm.io/gorm"
)

type TeamService struct {
	DB *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{DB: db}
}

// CreateTeam registers a team. Returns ErrDuplicateIdentity when the
// name is taken.
func (s *TeamService) CreateTeam(team *models.Team) error {
	if err := s.DB.Create(team).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateIdentity
		}
		return err
	}
	return nil
}

func (s *TeamService) ListTeams() ([]models.Team, error) {
	var teams []models.Team
	err := s.DB.Find(&teams).Error
	return teams, err
}

// TeamByLeader returns the team led by the user, or nil when the user
// leads none. Leading no team is a normal state, not a failure.
func (s *TeamService) TeamByLeader(userID uint) (*models.Team, error) {
	var team models.Team
	err := s.DB.Where("leader_id = ?", userID).First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}
