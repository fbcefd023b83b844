package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/technova/placement/internal/app/models/dto"
	"github.com/technova/placement/internal/app/services"
	"github.com/technova/placement/internal/middleware"
)

// StudentController exposes student lookups to the placement cell
type StudentController struct {
	authService services.AuthService
}

// NewStudentController creates a new StudentController
func NewStudentController(authService services.AuthService) *StudentController {
	return &StudentController{authService: authService}
}

// GetStudent returns a student by roll number
// @Summary Get student by roll number
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param jntuNumber path string true "JNTU roll number"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Student retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{jntuNumber} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.authService.GetStudent(ctx, ctx.Param("jntuNumber"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewStudentResponse(student), ""))
}
