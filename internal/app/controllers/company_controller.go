package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/technova/placement/internal/app/models/dto"
	"github.com/technova/placement/internal/app/services"
	"github.com/technova/placement/internal/middleware"
)

// CompanyController handles company registration and administration
type CompanyController struct {
	companyService services.CompanyService
}

// NewCompanyController creates a new CompanyController
func NewCompanyController(companyService services.CompanyService) *CompanyController {
	return &CompanyController{companyService: companyService}
}

// RegisterCompany handles company registration
// @Summary Register a company
// @Tags companies
// @Accept json
// @Produce json
// @Param request body dto.CompanyRegisterRequest true "Company information"
// @Success 201 {object} dto.APIResponse{data=dto.CompanyResponse} "Company registered"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Company email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /company/register [post]
func (c *CompanyController) RegisterCompany(ctx *gin.Context) {
	var req dto.CompanyRegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	company, err := c.companyService.Register(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewCompanyResponse(company), "Company registered successfully"))
}

// ListCompanies returns every registered company
// @Summary List companies
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.CompanyResponse} "Companies retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /companies [get]
func (c *CompanyController) ListCompanies(ctx *gin.Context) {
	companies, err := c.companyService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewCompanyResponses(companies), ""))
}

// DeleteCompany removes a company
// @Summary Delete a company
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company ID"
// @Success 200 {object} dto.APIResponse "Company deleted"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Router /companies/{id} [delete]
func (c *CompanyController) DeleteCompany(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.companyService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Company deleted successfully"))
}
