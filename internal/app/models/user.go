package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID               int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	FullName         string    `json:"fullName" db:"full_name" example:"Jane Doe"`               // User's display name
	Email            string    `json:"email" db:"email" example:"jane@college.edu"`              // User's email address (unique)
	Password         string    `json:"-" db:"password_hash"`                                     // User's hashed password (excluded from JSON)
	Category         Category  `json:"category" db:"category" example:"STUDENT"`                 // Account category (ADMIN, INSTRUCTOR or STUDENT)
	Department       string    `json:"department" db:"department" example:"Computer Science"`    // Department the user belongs to
	IsFacultyAdvisor bool      `json:"fa" db:"is_faculty_advisor" example:"false"`               // Department-level approval authority (instructors only)
	CreatedAt        time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
	UpdatedAt        time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Timestamp when the user was last updated
}
