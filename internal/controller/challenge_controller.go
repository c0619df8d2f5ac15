package controller

import (
	"errors"
	"greencampus_backend/internal/service"
	"greencampus_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChallengeController struct {
	ChallengeService *service.ChallengeService
}

func NewChallengeController(challengeService *service.ChallengeService) *ChallengeController {
	return &ChallengeController{ChallengeService: challengeService}
}

// List godoc
// @Summary 挑战列表
// @Description 按创建时间倒序返回所有激活挑战
// @Tags 挑战
// @Produce json
// @Success 200 {object} object "挑战列表"
// @Router /api/challenges [get]
func (c *ChallengeController) List(ctx *gin.Context) {
	challenges, err := c.ChallengeService.List(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"challenges": challenges})
}

// Join godoc
// @Summary 加入挑战
// @Description 加入挑战并获得积分，同一挑战只能加入一次
// @Tags 挑战
// @Produce json
// @Security BearerAuth
// @Param id path int true "挑战 ID"
// @Success 200 {object} object "加入成功与获得积分"
// @Failure 400 {object} object "已加入该挑战"
// @Failure 401 {object} object "缺少令牌"
// @Failure 404 {object} object "挑战不存在"
// @Router /api/challenges/{id}/join [post]
func (c *ChallengeController) Join(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		util.NotFound(ctx, "Challenge not found")
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "Access token required")
		return
	}

	result, err := c.ChallengeService.Join(ctx.Request.Context(), id, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrChallengeNotFound):
			util.NotFound(ctx, "Challenge not found")
		case errors.Is(err, util.ErrAlreadyJoined):
			util.BadRequest(ctx, "Already joined this challenge")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"message":      "Successfully joined challenge",
		"pointsEarned": result.PointsEarned,
	})
}
