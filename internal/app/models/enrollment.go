package models

import (
	"time"
)

// EnrollmentStatus defines the lifecycle state of an enrollment request
type EnrollmentStatus string

const (
	StatusPending      EnrollmentStatus = "PENDING"    // Awaiting course-instructor review
	StatusPendingForFA EnrollmentStatus = "PENDING_FA" // Instructor approved, awaiting faculty advisor sign-off
	StatusApproved     EnrollmentStatus = "APPROVED"   // Terminal success
	StatusRejected     EnrollmentStatus = "REJECTED"   // Terminal failure
)

// statusLabels maps stored statuses to the labels the web client uses.
var statusLabels = map[EnrollmentStatus]string{
	StatusPending:      "Pending",
	StatusPendingForFA: "Pending for FA",
	StatusApproved:     "Approved",
	StatusRejected:     "Rejected",
}

// Label returns the client-facing form of the status.
func (s EnrollmentStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// ParseEnrollmentStatus resolves a client-facing label to an EnrollmentStatus.
// "Enrolled" is a legacy alias of "Approved" kept for old clients.
func ParseEnrollmentStatus(label string) (EnrollmentStatus, bool) {
	if label == "Enrolled" {
		return StatusApproved, true
	}
	for status, l := range statusLabels {
		if l == label || string(status) == label {
			return status, true
		}
	}
	return "", false
}

// transitions holds the legal forward edges of the enrollment state graph.
// Terminal states (APPROVED, REJECTED) have no outgoing edges.
var transitions = map[EnrollmentStatus][]EnrollmentStatus{
	StatusPending:      {StatusPendingForFA, StatusRejected},
	StatusPendingForFA: {StatusApproved, StatusRejected},
}

// CanTransitionTo reports whether moving from s to next is a legal transition.
func (s EnrollmentStatus) CanTransitionTo(next EnrollmentStatus) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions.
func (s EnrollmentStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// Enrollment defines a single student's enrollment request in a single course,
// based on the 'enrollments' table. Student name, email and department are
// snapshotted at enrollment time; the department snapshot routes the request
// to the matching faculty advisor.
type Enrollment struct {
	ID             int64            `json:"id" db:"id"`
	CourseID       int64            `json:"courseId" db:"course_id"`
	StudentID      int64            `json:"studentId" db:"student_id"`
	StudentName    string           `json:"studentName" db:"student_name"`
	StudentEmail   string           `json:"studentEmail" db:"student_email"`
	Department     string           `json:"department" db:"department"`
	Status         EnrollmentStatus `json:"status" db:"status"`
	EnrollmentDate time.Time        `json:"enrollmentDate" db:"enrollment_date"`
	Version        int64            `json:"-" db:"version"` // Optimistic concurrency counter
}
