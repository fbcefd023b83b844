package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/technova/placement/internal/app/models/dto"
	"github.com/technova/placement/internal/app/services"
	"github.com/technova/placement/internal/middleware"
)

// ApplicationController handles job application submission, update and withdrawal
type ApplicationController struct {
	applicationService services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService services.ApplicationService) *ApplicationController {
	return &ApplicationController{applicationService: applicationService}
}

// SubmitApplication handles a new job application
// @Summary Submit an application
// @Description Students may only apply under their own roll number. Status is always "Under Review".
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitApplicationRequest true "Application"
// @Success 201 {object} dto.APIResponse{data=dto.ApplicationResponse} "Application submitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Roll number does not match session"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Failure 409 {object} dto.ErrorResponse "Already applied to this drive"
// @Router /applications [post]
func (c *ApplicationController) SubmitApplication(ctx *gin.Context) {
	actor, err := actorFrom(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.SubmitApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	app, err := c.applicationService.Submit(ctx, actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewApplicationResponse(app), "Application submitted successfully"))
}

// ListMyApplications returns the caller's applications, newest first
// @Summary List my applications
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ApplicationResponse} "Applications"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /students/me/applications [get]
func (c *ApplicationController) ListMyApplications(ctx *gin.Context) {
	actor, err := actorFrom(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	apps, err := c.applicationService.ListForStudent(ctx, actor.Subject)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewApplicationResponses(apps), ""))
}

// ListStudentApplications returns any student's applications
// @Summary List a student's applications
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param jntuNumber query string true "JNTU roll number"
// @Success 200 {object} dto.APIResponse{data=[]dto.ApplicationResponse} "Applications"
// @Failure 400 {object} dto.ErrorResponse "jntuNumber missing"
// @Router /applications [get]
func (c *ApplicationController) ListStudentApplications(ctx *gin.Context) {
	apps, err := c.applicationService.ListForStudent(ctx, ctx.Query("jntuNumber"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewApplicationResponses(apps), ""))
}

// UpdateApplication replaces the applicant fields of an application
// @Summary Update an application
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param request body dto.UpdateApplicationRequest true "Applicant fields"
// @Success 200 {object} dto.APIResponse{data=dto.ApplicationResponse} "Application updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Router /applications/{id} [put]
func (c *ApplicationController) UpdateApplication(ctx *gin.Context) {
	actor, err := actorFrom(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	app, err := c.applicationService.Update(ctx, actor, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewApplicationResponse(app), "Application updated successfully"))
}

// WithdrawApplication deletes an application
// @Summary Withdraw an application
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} dto.APIResponse "Application withdrawn"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Router /applications/{id} [delete]
func (c *ApplicationController) WithdrawApplication(ctx *gin.Context) {
	actor, err := actorFrom(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.applicationService.Withdraw(ctx, actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Application withdrawn successfully"))
}
