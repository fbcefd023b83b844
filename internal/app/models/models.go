package models

// RoleType defines the session role type
type RoleType string

const (
	RoleStudent RoleType = "STUDENT"
	RoleCDC     RoleType = "CDC"
)

// StatusUnderReview is the only display status an application carries.
const StatusUnderReview = "Under Review"
