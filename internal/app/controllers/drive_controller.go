package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/technova/placement/internal/app/models/dto"
	"github.com/technova/placement/internal/app/services"
	"github.com/technova/placement/internal/middleware"
	"github.com/technova/placement/internal/pkg/export"
	"github.com/technova/placement/internal/pkg/logger"
)

// DriveController handles recruitment drives and their eligibility views
type DriveController struct {
	driveService       services.DriveService
	eligibilityService services.EligibilityService
	applicationService services.ApplicationService
}

// NewDriveController creates a new DriveController
func NewDriveController(driveService services.DriveService, eligibilityService services.EligibilityService, applicationService services.ApplicationService) *DriveController {
	return &DriveController{
		driveService:       driveService,
		eligibilityService: eligibilityService,
		applicationService: applicationService,
	}
}

// CreateDrive handles drive creation
// @Summary Create a recruitment drive
// @Tags drives
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DriveRequest true "Drive information"
// @Success 201 {object} dto.APIResponse{data=dto.DriveResponse} "Drive created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /drives [post]
func (c *DriveController) CreateDrive(ctx *gin.Context) {
	var req dto.DriveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	drive, err := c.driveService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewDriveResponse(drive), "Drive created successfully"))
}

// GetDrive retrieves a drive by ID
// @Summary Get drive by ID
// @Tags drives
// @Produce json
// @Security BearerAuth
// @Param id path int true "Drive ID"
// @Success 200 {object} dto.APIResponse{data=dto.DriveResponse} "Drive retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid drive ID"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Router /drives/{id} [get]
func (c *DriveController) GetDrive(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	drive, err := c.driveService.Get(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewDriveResponse(drive), ""))
}

// ListDrives retrieves all drives
// @Summary List recruitment drives
// @Tags drives
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.DriveResponse} "Drives retrieved"
// @Router /drives [get]
func (c *DriveController) ListDrives(ctx *gin.Context) {
	drives, err := c.driveService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewDriveResponses(drives), ""))
}

// UpdateDrive replaces a drive record
// @Summary Update a recruitment drive
// @Tags drives
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Drive ID"
// @Param request body dto.DriveRequest true "Full drive record"
// @Success 200 {object} dto.APIResponse{data=dto.DriveResponse} "Drive updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Router /drives/{id} [put]
func (c *DriveController) UpdateDrive(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.DriveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	drive, err := c.driveService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewDriveResponse(drive), "Drive updated successfully"))
}

// DeleteDrive removes a drive
// @Summary Delete a recruitment drive
// @Tags drives
// @Produce json
// @Security BearerAuth
// @Param id path int true "Drive ID"
// @Success 200 {object} dto.APIResponse "Drive deleted"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Router /drives/{id} [delete]
func (c *DriveController) DeleteDrive(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.driveService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Drive deleted successfully"))
}

// EligibleStudents lists the students who qualify for a drive
// @Summary Eligible students for a drive
// @Description Students whose CGPA is at least the drive minimum and whose branch matches exactly
// @Tags drives
// @Produce json
// @Security BearerAuth
// @Param id path int true "Drive ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse} "Eligible students"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Router /drives/{id}/eligible-students [get]
func (c *DriveController) EligibleStudents(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	students, err := c.eligibilityService.EligibleStudents(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewStudentResponses(students), ""))
}

// ExportEligibleStudents downloads the eligible roster as a spreadsheet
// @Summary Export eligible students
// @Tags drives
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param id path int true "Drive ID"
// @Success 200 {file} file "Eligible students workbook"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Router /drives/{id}/eligible-students/export [get]
func (c *DriveController) ExportEligibleStudents(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	buf, filename, err := c.eligibilityService.ExportEligibleStudents(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("drive_id", id).Int("bytes", buf.Len()).Msg("Eligible students exported")
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

// ListApplicants lists the applications referencing a drive
// @Summary Applicants for a drive
// @Tags drives
// @Produce json
// @Security BearerAuth
// @Param id path int true "Drive ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.ApplicationResponse} "Applications"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Router /drives/{id}/applications [get]
func (c *DriveController) ListApplicants(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	apps, err := c.applicationService.ListByDrive(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewApplicationResponses(apps), ""))
}
