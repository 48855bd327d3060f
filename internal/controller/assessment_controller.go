package controller

import (
	"career_backend/internal/service"
	"career_backend/internal/util"
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	AssessmentService *service.AssessmentService
}

func NewAssessmentController(assessmentService *service.AssessmentService) *AssessmentController {
	return &AssessmentController{AssessmentService: assessmentService}
}

// swagger:model AssessmentRequest
type AssessmentRequest struct {
	AssessmentData json.RawMessage `json:"assessment_data" binding:"required"`
}

// Submit godoc
// @Summary Create or update assessment
// @Description Stores the raw answers and marks the assessment completed
// @Tags assessment
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body AssessmentRequest true "assessment answers"
// @Success 201 {object} util.Response{data=model.Assessment} "created"
// @Failure 400 {object} util.Response "bad request"
// @Router /assessment [post]
func (c *AssessmentController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req AssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assessment, err := c.AssessmentService.Submit(claims.UserID, req.AssessmentData)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, assessment)
}

// Get godoc
// @Summary Get user assessment
// @Tags assessment
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.Assessment} "success"
// @Failure 404 {object} util.Response "assessment not found"
// @Router /assessment [get]
func (c *AssessmentController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	assessment, err := c.AssessmentService.GetByUserID(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrAssessmentNotFound) {
			util.NotFound(ctx, "Assessment not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, assessment)
}
