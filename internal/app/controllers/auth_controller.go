package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/technova/placement/internal/app/models/dto"
	"github.com/technova/placement/internal/app/services"
	"github.com/technova/placement/internal/middleware"
)

// AuthController handles registration, login and logout for students and CDC admins
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// RegisterStudent handles student registration
// @Summary Register a student
// @Description Creates a student account identified by JNTU roll number
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.StudentRegisterRequest true "Student registration information"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse} "Student registered"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Roll number or email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /register [post]
func (c *AuthController) RegisterStudent(ctx *gin.Context) {
	var req dto.StudentRegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid student registration payload")
		middleware.HandleBindError(ctx, err)
		return
	}

	student, err := c.authService.RegisterStudent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("jntu_number", student.JNTUNumber).Msg("Student registered")
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewStudentResponse(student), "Student registered successfully"))
}

// RegisterCDC handles placement cell admin registration
// @Summary Register a CDC admin
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.CDCRegisterRequest true "Admin registration information"
// @Success 201 {object} dto.APIResponse{data=dto.AdminResponse} "Admin registered"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Admin name already taken"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cdc/register [post]
func (c *AuthController) RegisterCDC(ctx *gin.Context) {
	var req dto.CDCRegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid CDC registration payload")
		middleware.HandleBindError(ctx, err)
		return
	}

	admin, err := c.authService.RegisterCDC(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("admin_name", admin.AdminName).Msg("CDC admin registered")
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewAdminResponse(admin), "Admin registered successfully"))
}

// LoginStudent handles student login
// @Summary Student login
// @Description Verifies the roll number and password and issues a STUDENT session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.StudentLoginRequest true "Student credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student-login [post]
func (c *AuthController) LoginStudent(ctx *gin.Context) {
	var req dto.StudentLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	resp, err := c.authService.LoginStudent(ctx, &req)
	if err != nil {
		c.logger.Debug().Err(err).Str("jntu_number", req.JNTUNumber).Msg("Student login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Login successful"))
}

// LoginCDC handles placement cell admin login
// @Summary CDC login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.CDCLoginRequest true "Admin credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cdc-login [post]
func (c *AuthController) LoginCDC(ctx *gin.Context) {
	var req dto.CDCLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	resp, err := c.authService.LoginCDC(ctx, &req)
	if err != nil {
		c.logger.Debug().Err(err).Str("admin_name", req.AdminName).Msg("CDC login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Login successful"))
}

// Logout revokes the caller's session token
// @Summary Logout
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Logged out"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	session, ok := middleware.GetSession(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.authService.Logout(ctx, session.TokenID, session.ExpiresAt); err != nil {
		c.logger.Error().Err(err).Str("subject", session.Subject).Msg("Failed to revoke token")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Logged out successfully"))
}
