package model

import (
	"time"
)

type ChallengeDifficulty string

const (
	DifficultyEasy   ChallengeDifficulty = "Easy"
	DifficultyMedium ChallengeDifficulty = "Medium"
	DifficultyHard   ChallengeDifficulty = "Hard"
)

type ChallengeType string

const (
	ChallengeWaste     ChallengeType = "waste"
	ChallengeEnergy    ChallengeType = "energy"
	ChallengeTransport ChallengeType = "transport"
	ChallengeWater     ChallengeType = "water"
)

// Challenge 可持续发展挑战，用户加入一次即获得对应积分
// swagger:model Challenge
type Challenge struct {
	BaseModel
	Title        string              `gorm:"size:200;not null" json:"title"`
	Description  string              `gorm:"type:text;not null" json:"description"`
	Points       int                 `gorm:"not null" json:"points"`
	Duration     string              `gorm:"size:50;not null" json:"duration"`
	Difficulty   ChallengeDifficulty `gorm:"type:enum('Easy','Medium','Hard');not null" json:"difficulty"`
	Type         ChallengeType       `gorm:"type:enum('waste','energy','transport','water');not null" json:"type"`
	Participants []User              `gorm:"many2many:challenge_participants" json:"-"`
	IsActive     bool                `gorm:"default:true;index" json:"isActive"`
	StartDate    time.Time           `gorm:"default:CURRENT_TIMESTAMP(3)" json:"startDate"`
	EndDate      *time.Time          `json:"endDate,omitempty"`
}

func (Challenge) TableName() string {
	return "challenges"
}

// ChallengeParticipant 挑战参与关系，联合主键保证同一用户只能加入一次
type ChallengeParticipant struct {
	ChallengeID uint      `gorm:"primaryKey;autoIncrement:false"`
	UserID      uint      `gorm:"primaryKey;autoIncrement:false"`
	JoinedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP(3)"`
}

func (ChallengeParticipant) TableName() string {
	return "challenge_participants"
}
