package controller

import (
	"career_backend/internal/service"
	"career_backend/internal/util"
	"career_backend/pkg/monitoring"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	RecommendationService *service.RecommendationService
}

func NewRecommendationController(recommendationService *service.RecommendationService) *RecommendationController {
	return &RecommendationController{RecommendationService: recommendationService}
}

// Generate godoc
// @Summary Generate career recommendations
// @Description Scores every catalog career against the user's assessment and upserts the results
// @Tags recommendations
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Recommendation} "success"
// @Failure 400 {object} util.Response "assessment missing or malformed"
// @Router /recommendations/generate [post]
func (c *RecommendationController) Generate(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	recs, err := c.RecommendationService.GenerateForUser(claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrAssessmentIncomplete):
			util.BadRequest(ctx, "Please complete the assessment first")
		case errors.Is(err, util.ErrInvalidSkillLevel):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.RecommendationCounter.Inc()
	util.Success(ctx, recs)
}

// List godoc
// @Summary Get user's recommendations
// @Tags recommendations
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Recommendation} "success"
// @Router /recommendations [get]
func (c *RecommendationController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	recs, err := c.RecommendationService.ListForUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, recs)
}

// Save godoc
// @Summary Save or unsave a recommendation
// @Tags recommendations
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "recommendation id"
// @Param   saved query bool false "saved flag" default(true)
// @Success 200 {object} util.Response{data=object} "success"
// @Failure 404 {object} util.Response "recommendation not found"
// @Router /recommendations/{id}/save [put]
func (c *RecommendationController) Save(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id := util.MustParseUint(ctx.Param("id"))
	saved := true
	if raw := ctx.Query("saved"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			util.BadRequest(ctx, "saved must be a boolean")
			return
		}
		saved = parsed
	}

	rec, err := c.RecommendationService.SetSaved(id, claims.UserID, saved)
	if err != nil {
		if errors.Is(err, util.ErrRecommendationMissing) {
			util.Error(ctx, http.StatusNotFound, "Recommendation not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "Recommendation updated", "saved": rec.Saved})
}
