package controller

import (
	"career_backend/internal/config"
	"career_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewHealthController(db *gorm.DB, cfg *config.Config) *HealthController {
	return &HealthController{DB: db, Cfg: cfg}
}

// HealthCheck godoc
// @Summary Health check
// @Description Reports service and database status
// @Tags system
// @Produce json
// @Success 200 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	sqlDB, err := c.DB.DB()
	if err != nil {
		util.InternalServerError(ctx)
		return
	}

	if err := sqlDB.Ping(); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	util.Success(ctx, gin.H{
		"status": "healthy",
		"components": gin.H{
			"database": "up",
		},
	})
}

// DatabaseTest godoc
// @Summary Test database connection
// @Description Pings the database and reports connection details
// @Tags system
// @Produce json
// @Success 200 {object} util.Response
// @Router /database/test [get]
func (c *HealthController) DatabaseTest(ctx *gin.Context) {
	sqlDB, err := c.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		util.Success(ctx, gin.H{
			"status":  "error",
			"message": err.Error(),
			"hint":    "Check MySQL is running and the connection settings are correct",
		})
		return
	}

	util.Success(ctx, gin.H{
		"status":        "connected",
		"database":      c.Cfg.Database.DBName,
		"database_type": "MySQL",
	})
}
