package dto

import (
	"mime/multipart"

	"github.com/technova/placement/internal/app/models"
	"github.com/technova/placement/internal/pkg/validation"
)

// CreateMockRequest is the multipart form for a new mock session.
// CompanyLogoURL takes precedence over an uploaded CompanyLogo file.
type CreateMockRequest struct {
	CompanyName    string                `form:"companyName"`
	MockLink       string                `form:"mockLink"`
	MockDate       string                `form:"mockDate"`
	Duration       string                `form:"duration"`
	DurationUnit   string                `form:"durationUnit"`
	CompanyLogoURL string                `form:"companyLogoUrl"`
	CompanyLogo    *multipart.FileHeader `form:"companyLogo" swaggerignore:"true"`
}

// MockResponse is the public view of a mock session
type MockResponse struct {
	ID           int64  `json:"id"`
	CompanyLogo  string `json:"companyLogo"`
	CompanyName  string `json:"companyName"`
	MockLink     string `json:"mockLink"`
	MockDate     string `json:"mockDate" example:"2025-07-15"`
	Duration     int    `json:"duration"`
	DurationUnit string `json:"durationUnit"`
}

// NewMockResponse maps a mock session
func NewMockResponse(m *models.MockSession) MockResponse {
	return MockResponse{
		ID:           m.ID,
		CompanyLogo:  m.CompanyLogo,
		CompanyName:  m.CompanyName,
		MockLink:     m.MockLink,
		MockDate:     m.MockDate.Format(validation.DateLayout),
		Duration:     m.Duration,
		DurationUnit: m.DurationUnit,
	}
}

// NewMockResponses maps a slice of mock sessions
func NewMockResponses(mocks []*models.MockSession) []MockResponse {
	out := make([]MockResponse, 0, len(mocks))
	for _, m := range mocks {
		out = append(out, NewMockResponse(m))
	}
	return out
}
