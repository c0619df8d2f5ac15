package service

import (
	"context"
	"errors"
	"greencampus_backend/internal/model"
	"greencampus_backend/internal/repository"
	"greencampus_backend/internal/util"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const eventListCacheKey = "cache:events:list"

type EventService struct {
	eventRepo *repository.EventRepository
	cache     *listCache
}

func NewEventService(eventRepo *repository.EventRepository, rdb *redis.Client, cacheTTL time.Duration) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		cache:     newListCache(rdb, cacheTTL),
	}
}

// EventView 事件响应，创建者只暴露摘要信息
// swagger:model EventView
type EventView struct {
	model.Event
	Creator model.UserRef `json:"createdBy"`
}

type CreateEventRequest struct {
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=workshop conference meeting social festival other"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Attendees   int    `json:"attendees" binding:"omitempty,gte=0"`
	Description string `json:"description" binding:"required"`
}

// UpdateEventRequest 部分更新，只校验出现的字段
type UpdateEventRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Type        *string `json:"type" binding:"omitempty,oneof=workshop conference meeting social festival other"`
	Date        *string `json:"date"`
	Time        *string `json:"time" binding:"omitempty,min=1"`
	Location    *string `json:"location" binding:"omitempty,min=1"`
	Attendees   *int    `json:"attendees" binding:"omitempty,gte=0"`
	Description *string `json:"description" binding:"omitempty,min=1"`
}

// parseEventDate 接受 YYYY-MM-DD 或 RFC3339 两种格式
func parseEventDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func eventViewOf(e *model.Event) EventView {
	view := EventView{Event: *e}
	if e.Creator != nil {
		view.Creator = e.Creator.Ref()
	}
	return view
}

// List 按日期升序返回激活事件，命中缓存时跳过数据库
func (s *EventService) List(ctx context.Context) ([]EventView, error) {
	var cached []EventView
	if s.cache.get(ctx, eventListCacheKey, &cached) {
		return cached, nil
	}

	events, err := s.eventRepo.FindActive()
	if err != nil {
		return nil, err
	}

	views := make([]EventView, 0, len(events))
	for i := range events {
		views = append(views, eventViewOf(&events[i]))
	}

	s.cache.set(ctx, eventListCacheKey, views)
	return views, nil
}

func (s *EventService) Create(ctx context.Context, req *CreateEventRequest, creatorID uint) (EventView, error) {
	date, err := parseEventDate(req.Date)
	if err != nil {
		return EventView{}, util.ErrInvalidDate
	}

	event := &model.Event{
		Name:        req.Name,
		Type:        model.EventType(req.Type),
		Date:        date,
		Time:        req.Time,
		Location:    req.Location,
		Attendees:   req.Attendees,
		Description: req.Description,
		CreatedBy:   creatorID,
		IsActive:    true,
	}

	if err := s.eventRepo.Create(event); err != nil {
		return EventView{}, err
	}

	created, err := s.eventRepo.FindByID(event.ID)
	if err != nil {
		return EventView{}, err
	}

	s.cache.invalidate(ctx, eventListCacheKey)
	return eventViewOf(created), nil
}

// Update 合并请求中出现的字段，其余保持原值
func (s *EventService) Update(ctx context.Context, id uint, req *UpdateEventRequest) (EventView, error) {
	event, err := s.eventRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EventView{}, util.ErrEventNotFound
		}
		return EventView{}, err
	}

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Type != nil {
		event.Type = model.EventType(*req.Type)
	}
	if req.Date != nil {
		date, err := parseEventDate(*req.Date)
		if err != nil {
			return EventView{}, util.ErrInvalidDate
		}
		event.Date = date
	}
	if req.Time != nil {
		event.Time = *req.Time
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Attendees != nil {
		event.Attendees = *req.Attendees
	}
	if req.Description != nil {
		event.Description = *req.Description
	}

	if err := s.eventRepo.Update(event); err != nil {
		return EventView{}, err
	}

	s.cache.invalidate(ctx, eventListCacheKey)
	return eventViewOf(event), nil
}

func (s *EventService) Delete(ctx context.Context, id uint) error {
	if err := s.eventRepo.SoftDelete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrEventNotFound
		}
		return err
	}
	s.cache.invalidate(ctx, eventListCacheKey)
	return nil
}
