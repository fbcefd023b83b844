package models

import "time"

// MockSession is a mock interview listing from the 'mocks' table
type MockSession struct {
	ID           int64     `json:"id" db:"id"`
	CompanyLogo  string    `json:"companyLogo" db:"company_logo"` // uploaded file path or external URL
	CompanyName  string    `json:"companyName" db:"company_name"`
	MockLink     string    `json:"mockLink" db:"mock_link"`
	MockDate     time.Time `json:"mockDate" db:"mock_date"`
	Duration     int       `json:"duration" db:"duration"`
	DurationUnit string    `json:"durationUnit" db:"duration_unit" example:"minutes"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
