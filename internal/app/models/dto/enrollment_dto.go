package dto

import (
	"time"

	"github.com/Naveen0030/eims-clg-portal/internal/app/models"
)

// EnrollRequest creates a new enrollment request
type EnrollRequest struct {
	CourseID int64 `json:"courseId" binding:"required"`
}

// UpdateEnrollmentRequest drives an instructor or faculty-advisor decision.
// Status carries the client-facing label ("Pending for FA", "Approved",
// "Rejected"). The FA page also posts a `faculty` field; the advisor's own
// department is authoritative, so it is accepted and ignored.
type UpdateEnrollmentRequest struct {
	CourseID  int64  `json:"courseId" binding:"required"`
	StudentID int64  `json:"studentId" binding:"required"`
	Status    string `json:"status" binding:"required"`
	Faculty   string `json:"faculty"`
}

// EnrollmentEntry represents one enrollment record inside a course roster
type EnrollmentEntry struct {
	StudentID      int64     `json:"studentId"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Department     string    `json:"department"`
	Status         string    `json:"status"`
	EnrollmentDate time.Time `json:"enrollmentDate"`
}

// FromEnrollment converts a models.Enrollment to an EnrollmentEntry
func FromEnrollment(e *models.Enrollment) EnrollmentEntry {
	if e == nil {
		return EnrollmentEntry{}
	}
	return EnrollmentEntry{
		StudentID:      e.StudentID,
		Name:           e.StudentName,
		Email:          e.StudentEmail,
		Department:     e.Department,
		Status:         e.Status.Label(),
		EnrollmentDate: e.EnrollmentDate,
	}
}

// EnrolledCourse is one row of the student's own enrollment listing
type EnrolledCourse struct {
	CourseID       int64     `json:"courseId"`
	Title          string    `json:"title"`
	CourseCode     string    `json:"courseCode"`
	Credits        int       `json:"credits"`
	InstructorID   int64     `json:"instructorId"`
	Status         string    `json:"status"`
	EnrollmentDate time.Time `json:"enrollmentDate"`
}

// EnrolledCoursesResponse wraps the student's enrollment listing
type EnrolledCoursesResponse struct {
	Error           bool             `json:"error"`
	EnrolledCourses []EnrolledCourse `json:"enrolledCourses"`
}

// InstructorCourse is one owned course with its embedded roster. The legacy
// "Credits" casing is part of the wire contract.
type InstructorCourse struct {
	CourseID         int64             `json:"courseId"`
	Title            string            `json:"title"`
	CourseCode       string            `json:"courseCode"`
	Credits          int               `json:"Credits"`
	EnrolledStudents []EnrollmentEntry `json:"enrolledStudents"`
}

// FetchCoursesResponse wraps the instructor's owned-course listing
type FetchCoursesResponse struct {
	Error   bool               `json:"error"`
	Courses []InstructorCourse `json:"courses"`
}

// CourseRoster is the approved-students view of one course
type CourseRoster struct {
	CourseCode       string            `json:"courseCode"`
	EnrolledStudents []EnrollmentEntry `json:"enrolledStudents"`
}

// CourseStudentsResponse wraps the approved-students view. The web client
// reads students[0].enrolledStudents.
type CourseStudentsResponse struct {
	Error    bool           `json:"error"`
	Students []CourseRoster `json:"students"`
}

// PendingStudent is one student awaiting a decision. The web client reads
// the department snapshot under `faculty`.
type PendingStudent struct {
	StudentID int64  `json:"studentId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Faculty   string `json:"faculty"`
}

// PendingCourseGroup groups pending students by course
type PendingCourseGroup struct {
	CourseID        int64            `json:"courseId"`
	CourseTitle     string           `json:"courseTitle"`
	CourseCode      string           `json:"courseCode"`
	PendingStudents []PendingStudent `json:"pendingStudents"`
}

// PendingEnrollmentsResponse wraps the instructor and faculty-advisor
// pending views
type PendingEnrollmentsResponse struct {
	Error              bool                 `json:"error"`
	PendingEnrollments []PendingCourseGroup `json:"pendingEnrollments"`
}
