package dto

import (
	"github.com/technova/placement/internal/app/models"
	"github.com/technova/placement/internal/pkg/validation"
)

// DriveRequest carries a full recruitment drive record for create and update
type DriveRequest struct {
	CompanyName       string        `json:"company_name" example:"Acme Corp"`
	CGPA              NumericString `json:"cgpa" swaggertype:"string" example:"8.5"`
	Branch            string        `json:"branch" example:"Computer Science"`
	Domain            string        `json:"domain" example:"Backend Engineering"`
	DeadlineDate      string        `json:"deadline_date" example:"2025-08-31"`
	RecruitmentRounds NumericString `json:"recruitment_rounds" swaggertype:"string" example:"3"`
}

// DriveResponse is the public view of a recruitment drive
type DriveResponse struct {
	ID                int64   `json:"id"`
	CompanyName       string  `json:"companyName"`
	CGPA              float64 `json:"cgpa"`
	Branch            string  `json:"branch"`
	Domain            string  `json:"domain"`
	DeadlineDate      string  `json:"deadlineDate" example:"2025-08-31"`
	RecruitmentRounds int     `json:"recruitmentRounds"`
}

// NewDriveResponse maps a drive
func NewDriveResponse(d *models.RecruitmentDrive) DriveResponse {
	return DriveResponse{
		ID:                d.ID,
		CompanyName:       d.CompanyName,
		CGPA:              d.MinCGPA,
		Branch:            d.Branch,
		Domain:            d.Domain,
		DeadlineDate:      d.DeadlineDate.Format(validation.DateLayout),
		RecruitmentRounds: d.RecruitmentRounds,
	}
}

// NewDriveResponses maps a slice of drives
func NewDriveResponses(drives []*models.RecruitmentDrive) []DriveResponse {
	out := make([]DriveResponse, 0, len(drives))
	for _, d := range drives {
		out = append(out, NewDriveResponse(d))
	}
	return out
}
