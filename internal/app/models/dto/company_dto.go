package dto

import (
	"time"

	"github.com/technova/placement/internal/app/models"
)

// CompanyRegisterRequest represents company registration data
type CompanyRegisterRequest struct {
	CompanyName           string        `json:"company_name" binding:"required" example:"Acme Corp"`
	CompanyEmail          string        `json:"company_email" binding:"required,email" example:"hr@acme.example"`
	Password              string        `json:"password" binding:"required"`
	RequiredCGPAThreshold NumericString `json:"required_cgpa_threshold" swaggertype:"string" example:"7.5"`
	CompanyDescription    string        `json:"company_description"`
}

// CompanyResponse is the public view of a company
type CompanyResponse struct {
	ID                    int64     `json:"id"`
	CompanyName           string    `json:"companyName"`
	CompanyEmail          string    `json:"companyEmail"`
	RequiredCGPAThreshold float64   `json:"requiredCgpaThreshold"`
	CompanyDescription    string    `json:"companyDescription"`
	CreatedAt             time.Time `json:"createdAt"`
}

// NewCompanyResponse maps a company without its password digest
func NewCompanyResponse(c *models.Company) CompanyResponse {
	return CompanyResponse{
		ID:                    c.ID,
		CompanyName:           c.Name,
		CompanyEmail:          c.Email,
		RequiredCGPAThreshold: c.RequiredCGPAThreshold,
		CompanyDescription:    c.Description,
		CreatedAt:             c.CreatedAt,
	}
}

// NewCompanyResponses maps a slice of companies
func NewCompanyResponses(companies []*models.Company) []CompanyResponse {
	out := make([]CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, NewCompanyResponse(c))
	}
	return out
}
