package repository

import (
	"greencampus_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

// FindActiveByUsername 登录查找，只匹配激活账号
func (r *UserRepository) FindActiveByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("username = ? AND is_active = ?", username, true).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepository) UpdateLastLogin(userID uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_login", time.Now()).
		Error
}

// FindActiveSortedByPoints 积分降序的激活用户列表
func (r *UserRepository) FindActiveSortedByPoints() ([]model.User, error) {
	var users []model.User
	err := r.DB.Where("is_active = ?", true).Order("points DESC").Find(&users).Error
	return users, err
}

func (r *UserRepository) FindTopByPoints(limit int) ([]model.User, error) {
	var users []model.User
	err := r.DB.Where("is_active = ?", true).Order("points DESC").Limit(limit).Find(&users).Error
	return users, err
}

func (r *UserRepository) CountActive() (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

// CountActiveSince 最近一次登录晚于 since 的激活用户数
func (r *UserRepository) CountActiveSince(since time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).
		Where("is_active = ? AND last_login >= ?", true, since).
		Count(&count).Error
	return count, err
}
