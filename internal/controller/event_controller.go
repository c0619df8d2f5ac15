package controller

import (
	"errors"
	"greencampus_backend/internal/service"
	"greencampus_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EventController struct {
	EventService *service.EventService
}

func NewEventController(eventService *service.EventService) *EventController {
	return &EventController{EventService: eventService}
}

// List godoc
// @Summary 事件列表
// @Description 按日期升序返回所有激活事件
// @Tags 事件
// @Produce json
// @Success 200 {object} object "事件列表"
// @Router /api/events [get]
func (c *EventController) List(ctx *gin.Context) {
	events, err := c.EventService.List(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"events": events})
}

// Create godoc
// @Summary 创建事件
// @Description 管理员创建新事件，创建者为当前用户
// @Tags 事件
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.CreateEventRequest true "事件信息"
// @Success 201 {object} service.EventView
// @Failure 400 {object} object "校验失败"
// @Failure 403 {object} object "需要管理员权限"
// @Router /api/events [post]
func (c *EventController) Create(ctx *gin.Context) {
	var req service.CreateEventRequest
	if !bindJSON(ctx, &req) {
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "Access token required")
		return
	}

	event, err := c.EventService.Create(ctx.Request.Context(), &req, claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrInvalidDate) {
			util.ValidationFailed(ctx, []util.FieldError{
				{Field: "date", Message: "date must be YYYY-MM-DD or RFC3339"},
			})
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"event": event})
}

// Update godoc
// @Summary 更新事件
// @Description 部分更新，仅覆盖请求中出现的字段
// @Tags 事件
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "事件 ID"
// @Param body body service.UpdateEventRequest true "待更新字段"
// @Success 200 {object} service.EventView
// @Failure 400 {object} object "校验失败"
// @Failure 404 {object} object "事件不存在"
// @Router /api/events/{id} [put]
func (c *EventController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		util.NotFound(ctx, "Event not found")
		return
	}

	var req service.UpdateEventRequest
	if !bindJSON(ctx, &req) {
		return
	}

	event, err := c.EventService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrEventNotFound):
			util.NotFound(ctx, "Event not found")
		case errors.Is(err, util.ErrInvalidDate):
			util.ValidationFailed(ctx, []util.FieldError{
				{Field: "date", Message: "date must be YYYY-MM-DD or RFC3339"},
			})
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"event": event})
}

// Delete godoc
// @Summary 删除事件
// @Description 软删除，记录仍可按 ID 查询
// @Tags 事件
// @Produce json
// @Security BearerAuth
// @Param id path int true "事件 ID"
// @Success 200 {object} object
// @Failure 404 {object} object "事件不存在"
// @Router /api/events/{id} [delete]
func (c *EventController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		util.NotFound(ctx, "Event not found")
		return
	}

	if err := c.EventService.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, util.ErrEventNotFound) {
			util.NotFound(ctx, "Event not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "Event deleted successfully"})
}
