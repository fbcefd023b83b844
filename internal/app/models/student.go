package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID         int64     `json:"id" db:"id" example:"1"`
	JNTUNumber string    `json:"jntuNumber" db:"jntu_number" example:"22341A0594"` // University roll number
	Email      string    `json:"email" db:"email" example:"student@college.edu"`
	Password   string    `json:"-" db:"password"` // bcrypt digest, never serialized
	CGPA       float64   `json:"cgpa" db:"cgpa" example:"8.75"`
	Branch     string    `json:"branch" db:"branch" example:"Computer Science"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
