package controller

import (
	"greencampus_backend/internal/service"
	"greencampus_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// List godoc
// @Summary 用户列表
// @Description 管理员查看激活用户，按积分降序
// @Tags 管理
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object "用户列表"
// @Failure 403 {object} object "需要管理员权限"
// @Router /api/users [get]
func (c *UserController) List(ctx *gin.Context) {
	users, err := c.UserService.ListUsers()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"users": users})
}

// Stats godoc
// @Summary 平台统计
// @Description 用户/事件/挑战总量与 24 小时活跃用户数
// @Tags 管理
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.StatsView
// @Failure 403 {object} object "需要管理员权限"
// @Router /api/admin/stats [get]
func (c *UserController) Stats(ctx *gin.Context) {
	stats, err := c.UserService.Stats()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"stats": stats})
}

// Leaderboard godoc
// @Summary 积分排行榜
// @Description 积分降序的前 N 名用户，默认 10 名
// @Tags 排行榜
// @Produce json
// @Param limit query int false "返回条数"
// @Success 200 {object} object "排行榜"
// @Router /api/leaderboard [get]
func (c *UserController) Leaderboard(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	entries, err := c.UserService.Leaderboard(limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"leaderboard": entries})
}
