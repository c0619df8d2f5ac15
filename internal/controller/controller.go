package controller

import (
	"greencampus_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

// bindJSON 绑定并校验请求体，失败时写出 400 校验错误并返回 false
func bindJSON(ctx *gin.Context, dest interface{}) bool {
	if err := ctx.ShouldBindJSON(dest); err != nil {
		util.ValidationFailed(ctx, util.FlattenValidationError(err))
		return false
	}
	return true
}

// parseID 解析路径参数 id，非法 id 等同于记录不存在
func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
