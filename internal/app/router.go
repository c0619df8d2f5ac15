package app

import (
	"greencampus_backend/docs"
	"greencampus_backend/internal/config"
	"greencampus_backend/internal/middleware"
	"greencampus_backend/internal/model"
	"greencampus_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/login", c.auth.Login)
		public.GET("/events", c.event.List)
		public.GET("/challenges", c.challenge.List)
		public.GET("/leaderboard", c.user.Leaderboard)

		calculators := public.Group("/calculators")
		{
			calculators.POST("/carbon/transport", c.calculator.TransportCarbon)
			calculators.POST("/carbon/energy", c.calculator.EnergyCarbon)
			calculators.POST("/carbon/dining", c.calculator.DiningCarbon)
			calculators.POST("/carbon/lifestyle", c.calculator.LifestyleCarbon)
			calculators.POST("/event-impact", c.calculator.EventImpact)
		}
	}

	// 2. 需要登录的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/auth/profile", c.auth.Profile)
		authGroup.POST("/challenges/:id/join", c.challenge.Join)
	}

	// 3. 管理员路由
	adminGroup := router.Group("/api")
	adminGroup.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		adminGroup.POST("/events", c.event.Create)
		adminGroup.PUT("/events/:id", c.event.Update)
		adminGroup.DELETE("/events/:id", c.event.Delete)
		adminGroup.GET("/users", c.user.List)
		adminGroup.GET("/admin/stats", c.user.Stats)
	}
}
