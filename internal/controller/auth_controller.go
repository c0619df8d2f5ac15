package controller

import (
	"errors"
	"greencampus_backend/internal/service"
	"greencampus_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// Login godoc
// @Summary 用户登录
// @Description 校验用户名密码，签发 JWT 令牌
// @Tags 认证
// @Accept json
// @Produce json
// @Param body body service.LoginRequest true "登录凭证"
// @Success 200 {object} object "token 与用户信息"
// @Failure 400 {object} object "请求参数错误"
// @Failure 401 {object} object "凭证无效"
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req service.LoginRequest
	if !bindJSON(ctx, &req) {
		return
	}

	account, token, err := c.AuthService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.Unauthorized(ctx, "Invalid credentials")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"token": token,
		"user":  account,
	})
}

// Profile godoc
// @Summary 当前用户信息
// @Description 返回令牌对应用户的脱敏信息
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.AccountView
// @Failure 401 {object} object "缺少令牌"
// @Failure 403 {object} object "令牌无效或过期"
// @Failure 404 {object} object "用户不存在"
// @Router /api/auth/profile [get]
func (c *AuthController) Profile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "Access token required")
		return
	}

	account, err := c.AuthService.GetProfile(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "User not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"user": account})
}
