package app

import (
	"career_backend/docs"
	"career_backend/internal/config"
	"career_backend/internal/middleware"
	"career_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	router.Use(middleware.RequestID())

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{
			"message": "AI Career Path Recommendation System API",
			"version": "1.0.0",
			"status":  "running",
		})
	})

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerUserRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.GET("/database/test", c.health.DatabaseTest)

		auth := public.Group("/auth")
		{
			auth.POST("/signup", c.auth.Signup)
			auth.POST("/login", c.auth.Login)
			// Kept for clients of the legacy form-based endpoint pair.
			auth.POST("/login-json", c.auth.Login)
		}
	}
}

func (a *App) registerUserRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/auth/me", c.auth.Me)

	rg.GET("/profile", c.profile.GetProfile)
	rg.POST("/profile", c.profile.CreateProfile)
	rg.PUT("/profile", c.profile.UpdateProfile)

	rg.POST("/assessment", c.assessment.Submit)
	rg.GET("/assessment", c.assessment.Get)

	rg.POST("/recommendations/generate", c.recommendation.Generate)
	rg.GET("/recommendations", c.recommendation.List)
	rg.PUT("/recommendations/:id/save", c.recommendation.Save)

	rg.POST("/jobs/search", c.job.Search)
	rg.POST("/jobs/save", c.job.SaveJob)
	rg.GET("/jobs/saved", c.job.SavedJobs)

	rg.GET("/market-trends", c.marketTrends.Get)
}
