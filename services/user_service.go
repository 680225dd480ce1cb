package services

import (
	"errors"

	"tournament-hub/models"

	"gorm.io/gorm"
)

// SignupBonus is credited to every new account so players can enter
// their first tournament without a top-up.
const SignupBonus = 50.0

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// Register creates a player account with the signup bonus balance.
// Returns ErrDuplicateIdentity when the username or email is taken.
func (s *UserService) Register(username, email, password, ffID string) (*models.User, error) {
	user := &models.User{
		Username: username,
		Email:    email,
		Password: password,
		FFID:     ffID,
		Balance:  SignupBonus,
		Role:     models.RolePlayer,
	}
	if err := s.DB.Create(user).Error; err != nil {
		// The unique indexes on username and email are the source of
		// truth; a pre-check would race against concurrent signups.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateIdentity
		}
		return nil, err
	}
	return user, nil
}

// Authenticate looks a user up by exact credential match.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("email = ? AND password = ?", email, password).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return &user, nil
}
