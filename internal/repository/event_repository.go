package repository

import (
	"greencampus_backend/internal/model"

	"gorm.io/gorm"
)

type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) Create(event *model.Event) error {
	return r.DB.Create(event).Error
}

// FindByID 不过滤 is_active，软删除的记录仍可按 id 查到
func (r *EventRepository) FindByID(id uint) (*model.Event, error) {
	var event model.Event
	err := r.DB.Preload("Creator").First(&event, id).Error
	return &event, err
}

// FindActive 按日期升序返回激活事件，带创建者
func (r *EventRepository) FindActive() ([]model.Event, error) {
	var events []model.Event
	err := r.DB.Where("is_active = ?", true).
		Preload("Creator").
		Order("date ASC").
		Find(&events).Error
	return events, err
}

func (r *EventRepository) Update(event *model.Event) error {
	return r.DB.Save(event).Error
}

// SoftDelete 置 is_active=false，返回 gorm.ErrRecordNotFound 表示 id 不存在
func (r *EventRepository) SoftDelete(id uint) error {
	res := r.DB.Model(&model.Event{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *EventRepository) CountActive() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Event{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
