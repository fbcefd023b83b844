package dto

import (
	"time"

	"github.com/technova/placement/internal/app/models"
)

// SubmitApplicationRequest represents a new job application
type SubmitApplicationRequest struct {
	CompanyName string        `json:"company_name" example:"Acme Corp"`
	Name        string        `json:"name" example:"Ravi Kumar"`
	JNTUNumber  string        `json:"jntu_number" example:"22341A0594"`
	CGPA        NumericString `json:"cgpa" swaggertype:"string" example:"8.9"`
	Projects    NumericString `json:"projects" swaggertype:"string" example:"3"`
	ResumeLink  string        `json:"resume_link" example:"https://drive.example/resume.pdf"`
	DriveID     *int64        `json:"drive_id,omitempty" example:"4"`
}

// UpdateApplicationRequest replaces the mutable fields of an application
type UpdateApplicationRequest struct {
	Name       string        `json:"name"`
	JNTUNumber string        `json:"jntu_number"`
	CGPA       NumericString `json:"cgpa" swaggertype:"string"`
	Projects   NumericString `json:"projects" swaggertype:"string"`
	ResumeLink string        `json:"resume_link"`
}

// ApplicationResponse is the public view of a job application
type ApplicationResponse struct {
	ID              int64     `json:"id"`
	CompanyName     string    `json:"companyName"`
	Name            string    `json:"name"`
	JNTUNumber      string    `json:"jntuNumber"`
	CGPA            float64   `json:"cgpa"`
	Projects        int       `json:"projects"`
	ResumeLink      string    `json:"resumeLink"`
	DriveID         *int64    `json:"driveId,omitempty"`
	Status          string    `json:"status" example:"Under Review"`
	ApplicationDate time.Time `json:"applicationDate"`
}

// NewApplicationResponse maps an application
func NewApplicationResponse(a *models.JobApplication) ApplicationResponse {
	return ApplicationResponse{
		ID:              a.ID,
		CompanyName:     a.CompanyName,
		Name:            a.ApplicantName,
		JNTUNumber:      a.JNTUNumber,
		CGPA:            a.CGPA,
		Projects:        a.ProjectsCount,
		ResumeLink:      a.ResumeLink,
		DriveID:         a.DriveID,
		Status:          a.Status,
		ApplicationDate: a.ApplicationDate,
	}
}

// NewApplicationResponses maps a slice of applications
func NewApplicationResponses(apps []*models.JobApplication) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, NewApplicationResponse(a))
	}
	return out
}
