package service

import (
	"greencampus_backend/internal/model"
	"greencampus_backend/pkg/database"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedCreatesDefaultData(t *testing.T) {
	defer clearDatabase()

	assert.NoError(t, database.Seed(testDb))

	var admin model.User
	assert.NoError(t, testDb.Where("username = ?", "admin").First(&admin).Error)
	assert.Equal(t, model.Admin, admin.Role)
	assert.Equal(t, "System Administrator", admin.Level)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("admin123")))

	var student model.User
	assert.NoError(t, testDb.Where("username = ?", "student").First(&student).Error)
	assert.Equal(t, "Alex Chen", student.Name)
	assert.Equal(t, 2840, student.Points)
	assert.Equal(t, "Eco-Champion", student.Level)
	assert.Equal(t, []string{"Energy Saver", "Recycling Hero", "Green Commuter"}, student.Badges)
	assert.InDelta(t, 45.2, student.CO2Saved, 0.001)
	assert.Equal(t, 3, student.Rank)

	var eventCount, challengeCount int64
	testDb.Model(&model.Event{}).Count(&eventCount)
	testDb.Model(&model.Challenge{}).Count(&challengeCount)
	assert.Equal(t, int64(2), eventCount)
	assert.Equal(t, int64(3), challengeCount)
}

func TestSeedIsIdempotent(t *testing.T) {
	defer clearDatabase()

	assert.NoError(t, database.Seed(testDb))
	assert.NoError(t, database.Seed(testDb))

	var userCount, eventCount, challengeCount int64
	testDb.Model(&model.User{}).Count(&userCount)
	testDb.Model(&model.Event{}).Count(&eventCount)
	testDb.Model(&model.Challenge{}).Count(&challengeCount)
	assert.Equal(t, int64(2), userCount)
	assert.Equal(t, int64(2), eventCount)
	assert.Equal(t, int64(3), challengeCount)
}

func TestSeedPreservesExistingAccounts(t *testing.T) {
	defer clearDatabase()

	assert.NoError(t, database.Seed(testDb))

	// 管理员改过密码后再次播种不应覆盖
	testDb.Model(&model.User{}).Where("username = ?", "admin").Update("password", "custom-hash")
	assert.NoError(t, database.Seed(testDb))

	var admin model.User
	assert.NoError(t, testDb.Where("username = ?", "admin").First(&admin).Error)
	assert.Equal(t, "custom-hash", admin.Password)
}
