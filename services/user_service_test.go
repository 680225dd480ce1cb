package services

import (
	"testing"

	"tournament-hub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterGrantsSignupBonus(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Register("newbie", "newbie@example.com", "secret", "FF123456")
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.Equal(t, SignupBonus, user.Balance)
	assert.Equal(t, models.RolePlayer, user.Role)
	assert.Equal(t, "FF123456", user.FFID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Register("original", "taken@example.com", "secret", "")
	require.NoError(t, err)

	_, err = svc.Register("someoneelse", "taken@example.com", "secret", "")
	assert.ErrorIs(t, err, ErrDuplicateIdentity)

	// The failed attempt must not leave a row behind.
	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Register("taken", "first@example.com", "secret", "")
	require.NoError(t, err)

	_, err = svc.Register("taken", "second@example.com", "secret", "")
	assert.ErrorIs(t, err, ErrDuplicateIdentity)
}

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	registered, err := svc.Register("login_user", "login@example.com", "secret", "")
	require.NoError(t, err)

	user, err := svc.Authenticate("login@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, err = svc.Authenticate("login@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("nobody@example.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
