package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/technova/placement/internal/app/models/dto"
	"github.com/technova/placement/internal/app/services"
	"github.com/technova/placement/internal/middleware"
)

// MockController handles mock interview listings
type MockController struct {
	mockService    services.MockService
	maxUploadBytes int64
}

// NewMockController creates a new MockController. maxUploadMB caps the
// multipart request body.
func NewMockController(mockService services.MockService, maxUploadMB int) *MockController {
	return &MockController{
		mockService:    mockService,
		maxUploadBytes: int64(maxUploadMB) << 20,
	}
}

// CreateMock handles mock session creation
// @Summary Create a mock session
// @Description Multipart form. companyLogoUrl takes precedence over an uploaded companyLogo image.
// @Tags mocks
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param companyName formData string true "Company name"
// @Param mockLink formData string true "Meeting link"
// @Param mockDate formData string true "Date (YYYY-MM-DD)"
// @Param duration formData int true "Duration"
// @Param durationUnit formData string true "minutes or hours"
// @Param companyLogoUrl formData string false "Logo URL"
// @Param companyLogo formData file false "Logo image"
// @Success 201 {object} dto.APIResponse{data=dto.MockResponse} "Mock session created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 413 {object} dto.ErrorResponse "Upload too large"
// @Router /mocks [post]
func (c *MockController) CreateMock(ctx *gin.Context) {
	if c.maxUploadBytes > 0 {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, c.maxUploadBytes)
	}

	var req dto.CreateMockRequest
	if err := ctx.ShouldBind(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Upload too large").WithField("companyLogo")
			ctx.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponse(errorDetail))
			return
		}
		middleware.HandleBindError(ctx, err)
		return
	}

	mock, err := c.mockService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewMockResponse(mock), "Mock session created successfully"))
}

// ListMocks returns every mock session
// @Summary List mock sessions
// @Tags mocks
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.MockResponse} "Mock sessions"
// @Router /mocks [get]
func (c *MockController) ListMocks(ctx *gin.Context) {
	mocks, err := c.mockService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewMockResponses(mocks), ""))
}

// DeleteMock removes a mock session
// @Summary Delete a mock session
// @Tags mocks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Mock ID"
// @Success 200 {object} dto.APIResponse "Mock session deleted"
// @Failure 404 {object} dto.ErrorResponse "Mock session not found"
// @Router /mocks/{id} [delete]
func (c *MockController) DeleteMock(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.mockService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Mock session deleted successfully"))
}
