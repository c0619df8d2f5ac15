package service

import (
	"greencampus_backend/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestUserService() *UserService {
	return NewUserService(newTestUserRepo(), newTestEventRepo(), newTestChallengeRepo())
}

func TestListUsersPointsDescending(t *testing.T) {
	defer clearDatabase()
	mustCreateUser(t, "low", model.Student, 100)
	mustCreateUser(t, "high", model.Student, 900)
	mustCreateUser(t, "mid", model.Student, 500)
	inactive := mustCreateUser(t, "gone", model.Student, 9999)
	testDb.Model(inactive).Update("is_active", false)

	users, err := newTestUserService().ListUsers()
	assert.NoError(t, err)
	assert.Len(t, users, 3)
	assert.Equal(t, "high", users[0].Username)
	assert.Equal(t, "mid", users[1].Username)
	assert.Equal(t, "low", users[2].Username)
}

func TestLeaderboardPositions(t *testing.T) {
	defer clearDatabase()
	mustCreateUser(t, "bronze", model.Student, 100)
	mustCreateUser(t, "gold", model.Student, 900)
	mustCreateUser(t, "silver", model.Student, 500)

	entries, err := newTestUserService().Leaderboard(0)
	assert.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Equal(t, 1, entries[0].Position)
	assert.Equal(t, "Test gold", entries[0].Name)
	assert.Equal(t, 2, entries[1].Position)
	assert.Equal(t, 3, entries[2].Position)
	assert.NotNil(t, entries[0].Badges)
}

func TestLeaderboardLimit(t *testing.T) {
	defer clearDatabase()
	mustCreateUser(t, "a", model.Student, 300)
	mustCreateUser(t, "b", model.Student, 200)
	mustCreateUser(t, "c", model.Student, 100)

	entries, err := newTestUserService().Leaderboard(2)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, 300, entries[0].Points)
}

func TestStats(t *testing.T) {
	defer clearDatabase()
	admin := mustCreateUser(t, "admin", model.Admin, 0)
	recent := mustCreateUser(t, "recent", model.Student, 0)
	stale := mustCreateUser(t, "stale", model.Student, 0)

	testDb.Model(recent).Update("last_login", time.Now().Add(-time.Hour))
	testDb.Model(stale).Update("last_login", time.Now().Add(-48*time.Hour))
	testDb.Model(admin).Update("last_login", time.Now().Add(-48*time.Hour))

	mustCreateEvent(t, "Active", time.Now(), admin.ID, true)
	mustCreateEvent(t, "Removed", time.Now(), admin.ID, false)
	mustCreateChallenge(t, "Active", 100, true)
	mustCreateChallenge(t, "Retired", 100, false)

	stats, err := newTestUserService().Stats()
	assert.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.ActiveUsers)
	assert.Equal(t, int64(1), stats.TotalEvents)
	assert.Equal(t, int64(1), stats.TotalChallenges)
}
