package model

import "time"

// Roles a user can hold. The role column only ever contains one of these two.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents an authenticated user in the system.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         string    `json:"role" gorm:"size:50;default:'user'"`
	Avatar       string    `json:"avatar,omitempty" gorm:"size:512"`
	CreatedAt    time.Time `json:"created_at"`
}
