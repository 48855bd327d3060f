package controller

import (
	"career_backend/internal/service"
	"career_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	ProfileService *service.ProfileService
}

func NewProfileController(profileService *service.ProfileService) *ProfileController {
	return &ProfileController{ProfileService: profileService}
}

// GetProfile godoc
// @Summary Get user profile
// @Tags profile
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.UserProfile} "success"
// @Failure 404 {object} util.Response "profile not found"
// @Router /profile [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.ProfileService.GetByUserID(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrProfileNotFound) {
			util.NotFound(ctx, "Profile not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, profile)
}

// CreateProfile godoc
// @Summary Create or update user profile
// @Description Upserts the profile and recomputes the completion score
// @Tags profile
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.ProfileRequest true "profile fields"
// @Success 201 {object} util.Response{data=model.UserProfile} "created"
// @Failure 400 {object} util.Response "bad request"
// @Router /profile [post]
func (c *ProfileController) CreateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile, created, err := c.ProfileService.Upsert(claims.UserID, &req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if created {
		util.Created(ctx, profile)
	} else {
		util.Success(ctx, profile)
	}
}

// UpdateProfile godoc
// @Summary Update user profile
// @Description Merges the update into an existing profile and recomputes completion
// @Tags profile
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.ProfileRequest true "profile fields"
// @Success 200 {object} util.Response{data=model.UserProfile} "success"
// @Failure 404 {object} util.Response "profile not found"
// @Router /profile [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile, err := c.ProfileService.Update(claims.UserID, &req)
	if err != nil {
		if errors.Is(err, util.ErrProfileNotFound) {
			util.NotFound(ctx, "Profile not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, profile)
}
