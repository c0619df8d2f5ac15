package model

import (
	"time"
)

type EventType string

const (
	EventWorkshop   EventType = "workshop"
	EventConference EventType = "conference"
	EventMeeting    EventType = "meeting"
	EventSocial     EventType = "social"
	EventFestival   EventType = "festival"
	EventOther      EventType = "other"
)

// Event 校园环保活动，由管理员创建，软删除（is_active=false）
// swagger:model Event
type Event struct {
	BaseModel
	Name        string    `gorm:"size:200;not null" json:"name"`
	Type        EventType `gorm:"type:enum('workshop','conference','meeting','social','festival','other');not null" json:"type"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	Time        string    `gorm:"size:20;not null" json:"time"`
	Location    string    `gorm:"size:200;not null" json:"location"`
	Attendees   int       `gorm:"default:0" json:"attendees"`
	Description string    `gorm:"type:text;not null" json:"description"`
	CreatedBy   uint      `gorm:"index;not null" json:"-"`
	Creator     *User     `gorm:"foreignKey:CreatedBy" json:"-"`
	IsActive    bool      `gorm:"default:true;index" json:"isActive"`
}

func (Event) TableName() string {
	return "events"
}
