package service

import (
	"greencampus_backend/internal/repository"
	"time"
)

const defaultLeaderboardSize = 10

type UserService struct {
	userRepo      *repository.UserRepository
	eventRepo     *repository.EventRepository
	challengeRepo *repository.ChallengeRepository
}

func NewUserService(userRepo *repository.UserRepository, eventRepo *repository.EventRepository, challengeRepo *repository.ChallengeRepository) *UserService {
	return &UserService{
		userRepo:      userRepo,
		eventRepo:     eventRepo,
		challengeRepo: challengeRepo,
	}
}

// StatsView 管理端仪表盘统计
// swagger:model StatsView
type StatsView struct {
	TotalUsers      int64 `json:"totalUsers"`
	ActiveUsers     int64 `json:"activeUsers"`
	TotalEvents     int64 `json:"totalEvents"`
	TotalChallenges int64 `json:"totalChallenges"`
}

// LeaderboardEntry 排行榜条目，名次由积分排序决定
// swagger:model LeaderboardEntry
type LeaderboardEntry struct {
	Position int      `json:"position"`
	Name     string   `json:"name"`
	Points   int      `json:"points"`
	Level    string   `json:"level"`
	Badges   []string `json:"badges"`
	CO2Saved float64  `json:"co2_saved"`
}

// ListUsers 积分降序的激活用户列表，不含密码哈希
func (s *UserService) ListUsers() ([]AccountView, error) {
	users, err := s.userRepo.FindActiveSortedByPoints()
	if err != nil {
		return nil, err
	}

	views := make([]AccountView, 0, len(users))
	for i := range users {
		views = append(views, AccountOf(&users[i]))
	}
	return views, nil
}

// Stats 活跃用户按最近 24 小时内登录过统计
func (s *UserService) Stats() (StatsView, error) {
	var stats StatsView
	var err error

	if stats.TotalUsers, err = s.userRepo.CountActive(); err != nil {
		return stats, err
	}
	if stats.ActiveUsers, err = s.userRepo.CountActiveSince(time.Now().Add(-24 * time.Hour)); err != nil {
		return stats, err
	}
	if stats.TotalEvents, err = s.eventRepo.CountActive(); err != nil {
		return stats, err
	}
	if stats.TotalChallenges, err = s.challengeRepo.CountActive(); err != nil {
		return stats, err
	}
	return stats, nil
}

func (s *UserService) Leaderboard(limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = defaultLeaderboardSize
	}

	users, err := s.userRepo.FindTopByPoints(limit)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for i := range users {
		badges := users[i].Badges
		if badges == nil {
			badges = []string{}
		}
		entries = append(entries, LeaderboardEntry{
			Position: i + 1,
			Name:     users[i].Name,
			Points:   users[i].Points,
			Level:    users[i].Level,
			Badges:   badges,
			CO2Saved: users[i].CO2Saved,
		})
	}
	return entries, nil
}
