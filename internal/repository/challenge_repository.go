package repository

import (
	"greencampus_backend/internal/model"
	"greencampus_backend/internal/util"
	"strings"
	"time"

	"gorm.io/gorm"
)

type ChallengeRepository struct {
	DB *gorm.DB
}

func NewChallengeRepository(db *gorm.DB) *ChallengeRepository {
	return &ChallengeRepository{DB: db}
}

func (r *ChallengeRepository) Create(challenge *model.Challenge) error {
	return r.DB.Create(challenge).Error
}

func (r *ChallengeRepository) FindByID(id uint) (*model.Challenge, error) {
	var challenge model.Challenge
	err := r.DB.First(&challenge, id).Error
	return &challenge, err
}

// FindActive 按创建时间倒序返回激活挑战，带参与者
func (r *ChallengeRepository) FindActive() ([]model.Challenge, error) {
	var challenges []model.Challenge
	err := r.DB.Where("is_active = ?", true).
		Preload("Participants").
		Order("created_at DESC").
		Find(&challenges).Error
	return challenges, err
}

func (r *ChallengeRepository) HasParticipant(challengeID, userID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.ChallengeParticipant{}).
		Where("challenge_id = ? AND user_id = ?", challengeID, userID).
		Count(&count).Error
	return count > 0, err
}

// Join 在单个事务中写入参与记录并给用户加分。
// challenge_participants 的联合主键是写入时的唯一性再校验：
// 并发的重复加入会触发唯一键冲突，整个事务回滚，积分不会重复累加。
func (r *ChallengeRepository) Join(challengeID, userID uint, points int) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		participant := &model.ChallengeParticipant{
			ChallengeID: challengeID,
			UserID:      userID,
			JoinedAt:    time.Now(),
		}
		if err := tx.Create(participant).Error; err != nil {
			if strings.Contains(err.Error(), "Duplicate entry") {
				return util.ErrAlreadyJoined
			}
			return err
		}

		return tx.Model(&model.User{}).
			Where("id = ?", userID).
			Update("points", gorm.Expr("points + ?", points)).
			Error
	})
}

func (r *ChallengeRepository) CountActive() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Challenge{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
