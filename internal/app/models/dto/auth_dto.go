package dto

import (
	"time"

	"github.com/technova/placement/internal/app/models"
)

// StudentRegisterRequest represents student registration data
type StudentRegisterRequest struct {
	JNTUNumber string        `json:"jntuNumber" binding:"required" example:"22341A0594"`
	Email      string        `json:"email" binding:"required,email" example:"student@college.edu"`
	Password   string        `json:"password" binding:"required" example:"secret123"`
	CGPA       NumericString `json:"cgpa" binding:"required" swaggertype:"string" example:"8.75"`
	Branch     string        `json:"branch" binding:"required,branch" example:"Computer Science"`
}

// StudentLoginRequest represents student login credentials
type StudentLoginRequest struct {
	JNTUNumber string `json:"jntu_number" binding:"required" example:"22341A0594"`
	Password   string `json:"password" binding:"required"`
}

// CDCRegisterRequest represents placement cell admin registration data
type CDCRegisterRequest struct {
	CDCName  string  `json:"cdcName" binding:"required" example:"placement-officer"`
	Password string  `json:"password" binding:"required"`
	CDCID    *string `json:"cdcId,omitempty" example:"CDC-01"`
}

// CDCLoginRequest represents admin login credentials
type CDCLoginRequest struct {
	AdminName     string `json:"adminName" binding:"required" example:"placement-officer"`
	AdminPassword string `json:"adminPassword" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn" example:"7200"`
}

// LoginResponse is returned by both login endpoints
type LoginResponse struct {
	Token   TokenResponse   `json:"token"`
	Role    models.RoleType `json:"role" example:"STUDENT"`
	Subject string          `json:"subject" example:"22341A0594"`
}

// StudentResponse is the public view of a student
type StudentResponse struct {
	ID         int64     `json:"id"`
	JNTUNumber string    `json:"jntuNumber"`
	Email      string    `json:"email"`
	CGPA       float64   `json:"cgpa"`
	Branch     string    `json:"branch"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AdminResponse is the public view of a CDC admin
type AdminResponse struct {
	ID        int64   `json:"id"`
	AdminName string  `json:"adminName"`
	AdminID   *string `json:"adminId,omitempty"`
}

// NewStudentResponse maps a student without its password digest
func NewStudentResponse(s *models.Student) StudentResponse {
	return StudentResponse{
		ID:         s.ID,
		JNTUNumber: s.JNTUNumber,
		Email:      s.Email,
		CGPA:       s.CGPA,
		Branch:     s.Branch,
		CreatedAt:  s.CreatedAt,
	}
}

// NewStudentResponses maps a slice of students
func NewStudentResponses(students []*models.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, NewStudentResponse(s))
	}
	return out
}

// NewAdminResponse maps an admin without its password digest
func NewAdminResponse(a *models.Admin) AdminResponse {
	return AdminResponse{ID: a.ID, AdminName: a.AdminName, AdminID: a.AdminID}
}
