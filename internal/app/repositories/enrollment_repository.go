package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Naveen0030/eims-clg-portal/internal/app/models"
	"github.com/Naveen0030/eims-clg-portal/internal/pkg/apperrors"
	"github.com/Naveen0030/eims-clg-portal/internal/pkg/dberrors"
)

// EnrollmentRepository handles enrollment database operations
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

const enrollmentColumns = `id, course_id, student_id, student_name, student_email, department, status, enrollment_date, version`

func scanEnrollment(row pgx.Row) (*models.Enrollment, error) {
	enrollment := &models.Enrollment{}
	err := row.Scan(
		&enrollment.ID, &enrollment.CourseID, &enrollment.StudentID,
		&enrollment.StudentName, &enrollment.StudentEmail, &enrollment.Department,
		&enrollment.Status, &enrollment.EnrollmentDate, &enrollment.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error scanning enrollment: %w", err)
	}
	return enrollment, nil
}

// CreateEnrollment inserts a new enrollment and returns its id. A second
// enrollment for the same course and student maps to ErrAlreadyEnrolled.
func (r *EnrollmentRepository) CreateEnrollment(ctx context.Context, enrollment *models.Enrollment) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO enrollments (course_id, student_id, student_name, student_email, department, status, enrollment_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		enrollment.CourseID, enrollment.StudentID, enrollment.StudentName,
		enrollment.StudentEmail, enrollment.Department, enrollment.Status,
		enrollment.EnrollmentDate).Scan(&id)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "enrollments_course_id_student_id_key") {
			return 0, apperrors.ErrAlreadyEnrolled
		}
		return 0, fmt.Errorf("error creating enrollment: %w", err)
	}

	return id, nil
}

// GetByCourseAndStudent retrieves one enrollment by its natural key
func (r *EnrollmentRepository) GetByCourseAndStudent(ctx context.Context, courseID, studentID int64) (*models.Enrollment, error) {
	return scanEnrollment(r.db.QueryRow(ctx, `
		SELECT `+enrollmentColumns+`
		FROM enrollments
		WHERE course_id = $1 AND student_id = $2`,
		courseID, studentID))
}

// UpdateStatus moves an enrollment to a new status. The version check makes
// the update conditional; a lost race returns apperrors.ErrConflict so the
// caller can retry or surface the conflict.
func (r *EnrollmentRepository) UpdateStatus(ctx context.Context, id int64, status models.EnrollmentStatus, version int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE enrollments
		SET status = $1, version = version + 1
		WHERE id = $2 AND version = $3`,
		status, id, version)
	if err != nil {
		return fmt.Errorf("error updating enrollment status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}

	return nil
}

// ListByCourse retrieves all enrollments for one course
func (r *EnrollmentRepository) ListByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+enrollmentColumns+`
		FROM enrollments
		WHERE course_id = $1
		ORDER BY enrollment_date, id`,
		courseID)
	if err != nil {
		return nil, fmt.Errorf("error listing course enrollments: %w", err)
	}
	defer rows.Close()

	return collectEnrollments(rows)
}

// ListByCourseAndStatus retrieves the enrollments of one course in one status
func (r *EnrollmentRepository) ListByCourseAndStatus(ctx context.Context, courseID int64, status models.EnrollmentStatus) ([]*models.Enrollment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+enrollmentColumns+`
		FROM enrollments
		WHERE course_id = $1 AND status = $2
		ORDER BY enrollment_date, id`,
		courseID, status)
	if err != nil {
		return nil, fmt.Errorf("error listing course enrollments: %w", err)
	}
	defer rows.Close()

	return collectEnrollments(rows)
}

// CourseEnrollment is an enrollment joined with its course
type CourseEnrollment struct {
	Enrollment models.Enrollment
	Course     models.Course
}

const joinedColumns = `e.id, e.course_id, e.student_id, e.student_name, e.student_email, e.department, e.status, e.enrollment_date, e.version,
		       c.id, c.title, c.course_code, c.credits, c.instructor_id, c.created_at`

func scanCourseEnrollment(row pgx.Row) (*CourseEnrollment, error) {
	ce := &CourseEnrollment{}
	err := row.Scan(
		&ce.Enrollment.ID, &ce.Enrollment.CourseID, &ce.Enrollment.StudentID,
		&ce.Enrollment.StudentName, &ce.Enrollment.StudentEmail, &ce.Enrollment.Department,
		&ce.Enrollment.Status, &ce.Enrollment.EnrollmentDate, &ce.Enrollment.Version,
		&ce.Course.ID, &ce.Course.Title, &ce.Course.CourseCode, &ce.Course.Credits,
		&ce.Course.InstructorID, &ce.Course.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error scanning enrollment row: %w", err)
	}
	return ce, nil
}

// ListByStudent retrieves a student's enrollments joined with their courses
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID int64) ([]*CourseEnrollment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+joinedColumns+`
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		WHERE e.student_id = $1
		ORDER BY e.enrollment_date, e.id`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing student enrollments: %w", err)
	}
	defer rows.Close()

	return collectCourseEnrollments(rows)
}

// ListPendingByInstructor retrieves enrollments awaiting the owning
// instructor's decision across all of the instructor's courses
func (r *EnrollmentRepository) ListPendingByInstructor(ctx context.Context, instructorID int64) ([]*CourseEnrollment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+joinedColumns+`
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		WHERE c.instructor_id = $1 AND e.status = $2
		ORDER BY c.id, e.enrollment_date, e.id`,
		instructorID, models.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("error listing pending enrollments: %w", err)
	}
	defer rows.Close()

	return collectCourseEnrollments(rows)
}

// ListPendingForFAByDepartment retrieves enrollments awaiting a faculty
// advisor of the given department
func (r *EnrollmentRepository) ListPendingForFAByDepartment(ctx context.Context, department string) ([]*CourseEnrollment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+joinedColumns+`
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		WHERE e.department = $1 AND e.status = $2
		ORDER BY c.id, e.enrollment_date, e.id`,
		department, models.StatusPendingForFA)
	if err != nil {
		return nil, fmt.Errorf("error listing advisor enrollments: %w", err)
	}
	defer rows.Close()

	return collectCourseEnrollments(rows)
}

func collectEnrollments(rows pgx.Rows) ([]*models.Enrollment, error) {
	var enrollments []*models.Enrollment
	for rows.Next() {
		enrollment, err := scanEnrollment(rows)
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, enrollment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating enrollments: %w", err)
	}
	return enrollments, nil
}

func collectCourseEnrollments(rows pgx.Rows) ([]*CourseEnrollment, error) {
	var items []*CourseEnrollment
	for rows.Next() {
		item, err := scanCourseEnrollment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating enrollment rows: %w", err)
	}
	return items, nil
}
