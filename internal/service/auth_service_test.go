package service

import (
	"greencampus_backend/internal/config"
	"greencampus_backend/internal/model"
	"greencampus_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testJWTConfig = &config.JWTConfig{
	Secret:     "test-secret-key-for-unit-tests-only-0123456789",
	ExpireTime: time.Hour,
}

func newTestAuthService() *AuthService {
	return NewAuthService(newTestUserRepo(), testJWTConfig)
}

func TestLoginSuccess(t *testing.T) {
	defer clearDatabase()
	user := mustCreateUser(t, "alice", model.Student, 100)
	authService := newTestAuthService()

	account, token, err := authService.Login("alice", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, account.ID)
	assert.Equal(t, "alice", account.Username)
	assert.Equal(t, 100, account.Points)

	claims, err := util.ParseJWT(token, testJWTConfig.Secret)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, model.Student, claims.Role)
}

func TestLoginUpdatesLastLogin(t *testing.T) {
	defer clearDatabase()
	user := mustCreateUser(t, "alice", model.Student, 0)
	authService := newTestAuthService()

	before := time.Now().Add(-time.Minute)
	_, _, err := authService.Login("alice", "password123")
	assert.NoError(t, err)

	var stored model.User
	assert.NoError(t, testDb.First(&stored, user.ID).Error)
	assert.True(t, stored.LastLogin.After(before))
}

func TestLoginWrongPassword(t *testing.T) {
	defer clearDatabase()
	mustCreateUser(t, "alice", model.Student, 0)
	authService := newTestAuthService()

	_, _, err := authService.Login("alice", "wrong-password")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	defer clearDatabase()
	authService := newTestAuthService()

	_, _, err := authService.Login("nobody", "password123")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	defer clearDatabase()
	user := mustCreateUser(t, "alice", model.Student, 0)
	testDb.Model(user).Update("is_active", false)
	authService := newTestAuthService()

	_, _, err := authService.Login("alice", "password123")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestGetProfile(t *testing.T) {
	defer clearDatabase()
	user := mustCreateUser(t, "alice", model.Student, 250)
	authService := newTestAuthService()

	account, err := authService.GetProfile(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "alice", account.Username)
	assert.Equal(t, 250, account.Points)
	assert.NotNil(t, account.Badges)
}

func TestGetProfileMissingUser(t *testing.T) {
	defer clearDatabase()
	authService := newTestAuthService()

	_, err := authService.GetProfile(12345)
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}
