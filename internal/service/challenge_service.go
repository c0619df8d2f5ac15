package service

import (
	"context"
	"errors"
	"greencampus_backend/internal/model"
	"greencampus_backend/internal/repository"
	"greencampus_backend/internal/util"
	"greencampus_backend/pkg/monitoring"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const challengeListCacheKey = "cache:challenges:list"

type ChallengeService struct {
	challengeRepo *repository.ChallengeRepository
	cache         *listCache
}

func NewChallengeService(challengeRepo *repository.ChallengeRepository, rdb *redis.Client, cacheTTL time.Duration) *ChallengeService {
	return &ChallengeService{
		challengeRepo: challengeRepo,
		cache:         newListCache(rdb, cacheTTL),
	}
}

// ChallengeView 挑战响应，参与者只暴露摘要信息
// swagger:model ChallengeView
type ChallengeView struct {
	model.Challenge
	Participants []model.UserRef `json:"participants"`
}

type JoinResult struct {
	PointsEarned int    `json:"pointsEarned"`
	Title        string `json:"title"`
}

func challengeViewOf(ch *model.Challenge) ChallengeView {
	view := ChallengeView{
		Challenge:    *ch,
		Participants: make([]model.UserRef, 0, len(ch.Participants)),
	}
	for i := range ch.Participants {
		view.Participants = append(view.Participants, ch.Participants[i].Ref())
	}
	return view
}

// List 按创建时间倒序返回激活挑战，命中缓存时跳过数据库
func (s *ChallengeService) List(ctx context.Context) ([]ChallengeView, error) {
	var cached []ChallengeView
	if s.cache.get(ctx, challengeListCacheKey, &cached) {
		return cached, nil
	}

	challenges, err := s.challengeRepo.FindActive()
	if err != nil {
		return nil, err
	}

	views := make([]ChallengeView, 0, len(challenges))
	for i := range challenges {
		views = append(views, challengeViewOf(&challenges[i]))
	}

	s.cache.set(ctx, challengeListCacheKey, views)
	return views, nil
}

// Join 加入挑战并一次性发放积分。预检查拦截普通重复请求，
// 事务内的联合主键冲突兜底并发重复，积分不会重复累加
func (s *ChallengeService) Join(ctx context.Context, challengeID, userID uint) (JoinResult, error) {
	challenge, err := s.challengeRepo.FindByID(challengeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return JoinResult{}, util.ErrChallengeNotFound
		}
		return JoinResult{}, err
	}
	if !challenge.IsActive {
		return JoinResult{}, util.ErrChallengeNotFound
	}

	joined, err := s.challengeRepo.HasParticipant(challengeID, userID)
	if err != nil {
		return JoinResult{}, err
	}
	if joined {
		monitoring.ChallengeJoinCounter.WithLabelValues("duplicate").Inc()
		return JoinResult{}, util.ErrAlreadyJoined
	}

	if err := s.challengeRepo.Join(challengeID, userID, challenge.Points); err != nil {
		if errors.Is(err, util.ErrAlreadyJoined) {
			monitoring.ChallengeJoinCounter.WithLabelValues("duplicate").Inc()
			return JoinResult{}, err
		}
		monitoring.ChallengeJoinCounter.WithLabelValues("error").Inc()
		return JoinResult{}, err
	}

	monitoring.ChallengeJoinCounter.WithLabelValues("success").Inc()
	s.cache.invalidate(ctx, challengeListCacheKey)
	return JoinResult{PointsEarned: challenge.Points, Title: challenge.Title}, nil
}
