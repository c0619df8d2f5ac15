package controller

import (
	"greencampus_backend/internal/service"
	"greencampus_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// CalculatorController 碳足迹/活动影响计算接口，无需登录，不落库
type CalculatorController struct {
	CalculatorService *service.CalculatorService
}

func NewCalculatorController(calculatorService *service.CalculatorService) *CalculatorController {
	return &CalculatorController{CalculatorService: calculatorService}
}

// TransportCarbon godoc
// @Summary 通勤碳足迹
// @Description 按出行方式/里程/频次估算每周与全年排放
// @Tags 计算器
// @Accept json
// @Produce json
// @Param body body service.TransportCarbonRequest true "通勤信息"
// @Success 200 {object} service.TransportCarbonResult
// @Failure 400 {object} object "校验失败"
// @Router /api/calculators/carbon/transport [post]
func (c *CalculatorController) TransportCarbon(ctx *gin.Context) {
	var req service.TransportCarbonRequest
	if !bindJSON(ctx, &req) {
		return
	}

	util.Success(ctx, gin.H{"result": c.CalculatorService.TransportCarbon(&req)})
}

// EnergyCarbon godoc
// @Summary 居家能耗碳足迹
// @Description 按用电量与取暖方式估算每月与全年排放
// @Tags 计算器
// @Accept json
// @Produce json
// @Param body body service.EnergyCarbonRequest true "能耗信息"
// @Success 200 {object} service.EnergyCarbonResult
// @Failure 400 {object} object "校验失败"
// @Router /api/calculators/carbon/energy [post]
func (c *CalculatorController) EnergyCarbon(ctx *gin.Context) {
	var req service.EnergyCarbonRequest
	if !bindJSON(ctx, &req) {
		return
	}

	util.Success(ctx, gin.H{"result": c.CalculatorService.EnergyCarbon(&req)})
}

// DiningCarbon godoc
// @Summary 饮食碳足迹
// @Description 按每周餐食结构估算排放，本地食材按比例抵扣
// @Tags 计算器
// @Accept json
// @Produce json
// @Param body body service.DiningCarbonRequest true "饮食信息"
// @Success 200 {object} service.DiningCarbonResult
// @Failure 400 {object} object "校验失败"
// @Router /api/calculators/carbon/dining [post]
func (c *CalculatorController) DiningCarbon(ctx *gin.Context) {
	var req service.DiningCarbonRequest
	if !bindJSON(ctx, &req) {
		return
	}

	util.Success(ctx, gin.H{"result": c.CalculatorService.DiningCarbon(&req)})
}

// LifestyleCarbon godoc
// @Summary 消费碳足迹
// @Description 按购物/网购/衣物/电子产品估算每月排放
// @Tags 计算器
// @Accept json
// @Produce json
// @Param body body service.LifestyleCarbonRequest true "消费信息"
// @Success 200 {object} service.LifestyleCarbonResult
// @Failure 400 {object} object "校验失败"
// @Router /api/calculators/carbon/lifestyle [post]
func (c *CalculatorController) LifestyleCarbon(ctx *gin.Context) {
	var req service.LifestyleCarbonRequest
	if !bindJSON(ctx, &req) {
		return
	}

	util.Success(ctx, gin.H{"result": c.CalculatorService.LifestyleCarbon(&req)})
}

// EventImpact godoc
// @Summary 活动环境影响评估
// @Description 绿色评分（0-100）与交通/能耗/垃圾/用水估算
// @Tags 计算器
// @Accept json
// @Produce json
// @Param body body service.EventImpactRequest true "活动信息"
// @Success 200 {object} service.EventImpactResult
// @Failure 400 {object} object "校验失败"
// @Router /api/calculators/event-impact [post]
func (c *CalculatorController) EventImpact(ctx *gin.Context) {
	var req service.EventImpactRequest
	if !bindJSON(ctx, &req) {
		return
	}

	util.Success(ctx, gin.H{"result": c.CalculatorService.EventImpact(&req)})
}
