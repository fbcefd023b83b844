package models

import "time"

// Company defines the company model based on the 'company' table
type Company struct {
	ID                    int64     `json:"id" db:"id"`
	Name                  string    `json:"companyName" db:"company_name" example:"Acme Corp"`
	Email                 string    `json:"companyEmail" db:"company_email" example:"hr@acme.example"`
	Password              string    `json:"-" db:"password"`
	RequiredCGPAThreshold float64   `json:"requiredCgpaThreshold" db:"required_cgpa_threshold" example:"7.5"`
	Description           string    `json:"companyDescription" db:"company_description"`
	CreatedAt             time.Time `json:"createdAt" db:"created_at"`
}
