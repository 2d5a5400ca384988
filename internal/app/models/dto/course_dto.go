package dto

import (
	"github.com/Naveen0030/eims-clg-portal/internal/app/models"
)

// CreateCourseRequest is the admin course-creation payload. Instructor and
// Credits arrive as strings from the web client's form state; the legacy
// "Credits" casing is part of the wire contract.
type CreateCourseRequest struct {
	Title      string `json:"title" binding:"required"`
	CourseCode string `json:"courseCode" binding:"required"`
	Instructor string `json:"instructor" binding:"required"`
	Credits    string `json:"Credits" binding:"required"`
}

// CourseResponse represents a course returned to clients
type CourseResponse struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	CourseCode   string `json:"courseCode"`
	Credits      int    `json:"credits"`
	InstructorID int64  `json:"instructorId"`
}

// FromCourse converts a models.Course to a CourseResponse
func FromCourse(course *models.Course) CourseResponse {
	if course == nil {
		return CourseResponse{}
	}
	return CourseResponse{
		ID:           course.ID,
		Title:        course.Title,
		CourseCode:   course.CourseCode,
		Credits:      course.Credits,
		InstructorID: course.InstructorID,
	}
}

// AddCourseResponse wraps the created course
type AddCourseResponse struct {
	Error   bool           `json:"error"`
	Message string         `json:"message"`
	Course  CourseResponse `json:"course"`
}

// AvailableCoursesResponse is the paginated student course browse
type AvailableCoursesResponse struct {
	Error       bool             `json:"error"`
	Courses     []CourseResponse `json:"courses"`
	CurrentPage int              `json:"currentPage"`
	TotalPages  int              `json:"totalPages"`
	TotalItems  int64            `json:"totalItems"`
}
