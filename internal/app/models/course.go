package models

import (
	"time"
)

// Course defines the course model based on the 'courses' table
type Course struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	CourseCode   string    `json:"courseCode" db:"course_code"`
	Credits      int       `json:"credits" db:"credits"`
	InstructorID int64     `json:"instructorId" db:"instructor_id"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	Instructor   *User     `json:"instructor,omitempty"` // Relation, no db tag
}
