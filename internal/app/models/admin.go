package models

import "time"

// Admin is a placement cell (CDC) account from the 'cdc' table
type Admin struct {
	ID        int64     `json:"id" db:"id"`
	AdminName string    `json:"adminName" db:"admin_name" example:"placement-officer"`
	Password  string    `json:"-" db:"password"`
	AdminID   *string   `json:"adminId,omitempty" db:"admin_id" example:"CDC-01"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
