package service

import (
	"context"
	"greencampus_backend/internal/model"
	"greencampus_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestChallengeService() *ChallengeService {
	return NewChallengeService(newTestChallengeRepo(), nil, 0)
}

func TestListChallengesNewestFirst(t *testing.T) {
	defer clearDatabase()
	first := mustCreateChallenge(t, "First", 100, true)
	second := mustCreateChallenge(t, "Second", 200, true)
	mustCreateChallenge(t, "Hidden", 300, false)
	// created_at 相同时按插入顺序无法区分，拉开时间差
	testDb.Model(first).Update("created_at", first.CreatedAt.Add(-time.Second))

	challenges, err := newTestChallengeService().List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, challenges, 2)
	assert.Equal(t, second.Title, challenges[0].Title)
	assert.Equal(t, first.Title, challenges[1].Title)
}

func TestListChallengesIncludesParticipants(t *testing.T) {
	defer clearDatabase()
	user := mustCreateUser(t, "alice", model.Student, 0)
	challenge := mustCreateChallenge(t, "Recycling", 100, true)

	svc := newTestChallengeService()
	_, err := svc.Join(context.Background(), challenge.ID, user.ID)
	assert.NoError(t, err)

	challenges, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, challenges, 1)
	assert.Len(t, challenges[0].Participants, 1)
	assert.Equal(t, user.ID, challenges[0].Participants[0].ID)
	assert.Equal(t, "alice", challenges[0].Participants[0].Username)
}

func TestJoinChallengeCreditsPoints(t *testing.T) {
	defer clearDatabase()
	user := mustCreateUser(t, "alice", model.Student, 50)
	challenge := mustCreateChallenge(t, "Recycling", 400, true)

	result, err := newTestChallengeService().Join(context.Background(), challenge.ID, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, 400, result.PointsEarned)

	var stored model.User
	assert.NoError(t, testDb.First(&stored, user.ID).Error)
	assert.Equal(t, 450, stored.Points)
}

func TestJoinChallengeTwiceDoesNotDoubleCredit(t *testing.T) {
	defer clearDatabase()
	user := mustCreateUser(t, "alice", model.Student, 0)
	challenge := mustCreateChallenge(t, "Recycling", 400, true)
	svc := newTestChallengeService()

	_, err := svc.Join(context.Background(), challenge.ID, user.ID)
	assert.NoError(t, err)

	_, err = svc.Join(context.Background(), challenge.ID, user.ID)
	assert.ErrorIs(t, err, util.ErrAlreadyJoined)

	var stored model.User
	assert.NoError(t, testDb.First(&stored, user.ID).Error)
	assert.Equal(t, 400, stored.Points)

	var count int64
	testDb.Model(&model.ChallengeParticipant{}).
		Where("challenge_id = ? AND user_id = ?", challenge.ID, user.ID).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestJoinDuplicateInsertRollsBack(t *testing.T) {
	defer clearDatabase()
	user := mustCreateUser(t, "alice", model.Student, 0)
	challenge := mustCreateChallenge(t, "Recycling", 400, true)
	repo := newTestChallengeRepo()

	assert.NoError(t, repo.Join(challenge.ID, user.ID, challenge.Points))

	// 绕过预检查直接写入，模拟并发下的重复加入
	err := repo.Join(challenge.ID, user.ID, challenge.Points)
	assert.ErrorIs(t, err, util.ErrAlreadyJoined)

	var stored model.User
	assert.NoError(t, testDb.First(&stored, user.ID).Error)
	assert.Equal(t, 400, stored.Points)
}

func TestJoinMissingChallenge(t *testing.T) {
	defer clearDatabase()
	user := mustCreateUser(t, "alice", model.Student, 0)

	_, err := newTestChallengeService().Join(context.Background(), 12345, user.ID)
	assert.ErrorIs(t, err, util.ErrChallengeNotFound)
}

func TestJoinInactiveChallenge(t *testing.T) {
	defer clearDatabase()
	user := mustCreateUser(t, "alice", model.Student, 0)
	challenge := mustCreateChallenge(t, "Retired", 400, false)

	_, err := newTestChallengeService().Join(context.Background(), challenge.ID, user.ID)
	assert.ErrorIs(t, err, util.ErrChallengeNotFound)
}
