package controller

import (
	"career_backend/internal/service"
	"career_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type JobController struct {
	JobService *service.JobService
}

func NewJobController(jobService *service.JobService) *JobController {
	return &JobController{JobService: jobService}
}

// swagger:model JobSearchRequest
type JobSearchRequest struct {
	SearchTerm string `json:"search_term"`
	Location   string `json:"location"`
	Experience string `json:"experience"`
	JobType    string `json:"job_type"`
	Salary     string `json:"salary"`
}

// Search godoc
// @Summary Search for jobs
// @Description Filters the job board by search term, location, experience and job type
// @Tags jobs
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body JobSearchRequest true "search criteria"
// @Success 200 {object} util.Response{data=[]model.JobPosting} "success"
// @Failure 400 {object} util.Response "bad request"
// @Router /jobs/search [post]
func (c *JobController) Search(ctx *gin.Context) {
	var req JobSearchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	jobs := c.JobService.Search(req.SearchTerm, service.JobSearchFilters{
		Location:   req.Location,
		Experience: req.Experience,
		JobType:    req.JobType,
		Salary:     req.Salary,
	})

	util.Success(ctx, jobs)
}

// SaveJob godoc
// @Summary Save a job
// @Tags jobs
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body object true "job payload"
// @Success 200 {object} util.Response{data=object} "success"
// @Failure 400 {object} util.Response "bad request"
// @Router /jobs/save [post]
func (c *JobController) SaveJob(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var jobData map[string]interface{}
	if err := ctx.ShouldBindJSON(&jobData); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.JobService.SaveJob(claims.UserID, jobData); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Job saved successfully"})
}

// SavedJobs godoc
// @Summary Get user's saved jobs
// @Tags jobs
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]object} "success"
// @Router /jobs/saved [get]
func (c *JobController) SavedJobs(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	jobs, err := c.JobService.SavedJobs(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, jobs)
}
