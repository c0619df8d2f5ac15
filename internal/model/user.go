package model

import (
	"time"
)

type UserRole string

const (
	Student UserRole = "student"
	Admin   UserRole = "admin"
)

// User 校园可持续发展平台的用户账号
// swagger:model User
type User struct {
	BaseModel
	Username  string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Role      UserRole  `gorm:"type:enum('student','admin');default:'student'" json:"role"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100" json:"email,omitempty"`
	Points    int       `gorm:"default:0" json:"points"` // 挑战积分
	Level     string    `gorm:"size:50;default:'Green Guardian'" json:"level"`
	Badges    []string  `gorm:"serializer:json;type:json" json:"badges"`
	CO2Saved  float64   `gorm:"column:co2_saved;default:0" json:"co2_saved"`
	Rank      int       `gorm:"default:999" json:"rank"`
	IsActive  bool      `gorm:"default:true" json:"isActive"`
	LastLogin time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
}

func (User) TableName() string {
	return "users"
}

// UserRef 嵌入到事件/挑战响应中的用户摘要
// swagger:model UserRef
type UserRef struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

func (u *User) Ref() UserRef {
	return UserRef{ID: u.ID, Name: u.Name, Username: u.Username}
}
