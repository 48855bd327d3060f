package controller

import (
	"career_backend/internal/service"
	"career_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MarketTrendsController struct {
	MarketTrendsService *service.MarketTrendsService
}

func NewMarketTrendsController(marketTrendsService *service.MarketTrendsService) *MarketTrendsController {
	return &MarketTrendsController{MarketTrendsService: marketTrendsService}
}

// Get godoc
// @Summary Get market trends data
// @Description Trending skills, salary ranges, demand growth and skill distribution
// @Tags market-trends
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.MarketTrendsPayload} "success"
// @Router /market-trends [get]
func (c *MarketTrendsController) Get(ctx *gin.Context) {
	trends, err := c.MarketTrendsService.GetMarketTrends(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, trends)
}
