package services

import (
	"context"
	"time"

	"github.com/Naveen0030/eims-clg-portal/internal/app/models"
	"github.com/Naveen0030/eims-clg-portal/internal/app/repositories"
)

// The services depend on narrow store interfaces rather than the concrete
// repositories so tests can substitute in-memory implementations.

// UserStore is the persistence surface the services need for users
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	ListUsers(ctx context.Context, category *models.Category) ([]*models.User, error)
}

// CourseStore is the persistence surface the services need for courses
type CourseStore interface {
	CreateCourse(ctx context.Context, course *models.Course) (int64, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetCourseByCode(ctx context.Context, code string) (*models.Course, error)
	ListCourses(ctx context.Context, offset uint64, limit int) ([]*models.Course, error)
	CountCourses(ctx context.Context) (int64, error)
	ListCoursesByInstructor(ctx context.Context, instructorID int64) ([]*models.Course, error)
}

// EnrollmentStore is the persistence surface the services need for
// enrollments
type EnrollmentStore interface {
	CreateEnrollment(ctx context.Context, enrollment *models.Enrollment) (int64, error)
	GetByCourseAndStudent(ctx context.Context, courseID, studentID int64) (*models.Enrollment, error)
	UpdateStatus(ctx context.Context, id int64, status models.EnrollmentStatus, version int64) error
	ListByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error)
	ListByCourseAndStatus(ctx context.Context, courseID int64, status models.EnrollmentStatus) ([]*models.Enrollment, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*repositories.CourseEnrollment, error)
	ListPendingByInstructor(ctx context.Context, instructorID int64) ([]*repositories.CourseEnrollment, error)
	ListPendingForFAByDepartment(ctx context.Context, department string) ([]*repositories.CourseEnrollment, error)
}

// OTPStore is the persistence surface the services need for one-time codes
type OTPStore interface {
	Upsert(ctx context.Context, otp *models.OTPCode) error
	GetLatest(ctx context.Context, email string, purpose models.OTPPurpose) (*models.OTPCode, error)
	MarkConsumed(ctx context.Context, id int64, consumedAt time.Time) error
}
