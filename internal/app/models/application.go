package models

import "time"

// JobApplication is a student's application from the 'job_applications' table.
// ApplicantName and CGPA are snapshots taken at submission and may diverge
// from the student record.
type JobApplication struct {
	ID              int64     `json:"id" db:"id"`
	CompanyName     string    `json:"companyName" db:"company_name" example:"Acme Corp"`
	ApplicantName   string    `json:"name" db:"applicant_name"`
	JNTUNumber      string    `json:"jntuNumber" db:"jntu_number" example:"22341A0594"`
	CGPA            float64   `json:"cgpa" db:"cgpa"`
	ProjectsCount   int       `json:"projects" db:"projects_count"`
	ResumeLink      string    `json:"resumeLink" db:"resume_link"`
	DriveID         *int64    `json:"driveId,omitempty" db:"drive_id"`
	Status          string    `json:"status" db:"status" example:"Under Review"`
	ApplicationDate time.Time `json:"applicationDate" db:"application_date"`
}
