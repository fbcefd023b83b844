package models

import "time"

// RecruitmentDrive is a hiring campaign posted by the CDC ('recruitment_forms' table).
// CompanyName is free text and does not reference the company table.
type RecruitmentDrive struct {
	ID                int64     `json:"id" db:"id"`
	CompanyName       string    `json:"companyName" db:"company_name" example:"Acme Corp"`
	MinCGPA           float64   `json:"cgpa" db:"cgpa" example:"8.5"`
	Branch            string    `json:"branch" db:"branch" example:"Computer Science"`
	Domain            string    `json:"domain" db:"domain" example:"Backend Engineering"`
	DeadlineDate      time.Time `json:"deadlineDate" db:"deadline_date"`
	RecruitmentRounds int       `json:"recruitmentRounds" db:"recruitment_rounds" example:"3"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
}

// Admits reports whether s meets the drive requirements: CGPA at or above the
// minimum and an exact branch match.
func (d *RecruitmentDrive) Admits(s *Student) bool {
	return s.CGPA >= d.MinCGPA && s.Branch == d.Branch
}
