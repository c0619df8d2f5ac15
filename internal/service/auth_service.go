package service

import (
	"errors"
	"greencampus_backend/internal/config"
	"greencampus_backend/internal/model"
	"greencampus_backend/internal/repository"
	"greencampus_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	userRepo *repository.UserRepository
	jwtCfg   *config.JWTConfig
}

func NewAuthService(userRepo *repository.UserRepository, jwtCfg *config.JWTConfig) *AuthService {
	return &AuthService{userRepo: userRepo, jwtCfg: jwtCfg}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// AccountView 脱敏后的用户信息，永不携带密码哈希
// swagger:model AccountView
type AccountView struct {
	ID       uint           `json:"id"`
	Username string         `json:"username"`
	Name     string         `json:"name"`
	Role     model.UserRole `json:"role"`
	Points   int            `json:"points"`
	Level    string         `json:"level"`
	Badges   []string       `json:"badges"`
	CO2Saved float64        `json:"co2_saved"`
	Rank     int            `json:"rank"`
}

func AccountOf(u *model.User) AccountView {
	badges := u.Badges
	if badges == nil {
		badges = []string{}
	}
	return AccountView{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Role:     u.Role,
		Points:   u.Points,
		Level:    u.Level,
		Badges:   badges,
		CO2Saved: u.CO2Saved,
		Rank:     u.Rank,
	}
}

// Login 校验凭证并签发 JWT。用户名不存在、账号停用、密码错误
// 统一返回 ErrInvalidCredentials，不区分具体原因
func (s *AuthService) Login(username, password string) (AccountView, string, error) {
	user, err := s.userRepo.FindActiveByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AccountView{}, "", util.ErrInvalidCredentials
		}
		return AccountView{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return AccountView{}, "", util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user, s.jwtCfg.Secret, s.jwtCfg.ExpireTime)
	if err != nil {
		return AccountView{}, "", err
	}

	if err := s.userRepo.UpdateLastLogin(user.ID); err != nil {
		return AccountView{}, "", err
	}

	return AccountOf(user), token, nil
}

func (s *AuthService) GetProfile(userID uint) (AccountView, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AccountView{}, util.ErrUserNotFound
		}
		return AccountView{}, err
	}
	if !user.IsActive {
		return AccountView{}, util.ErrUserNotFound
	}
	return AccountOf(user), nil
}
