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

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

const courseColumns = `id, title, course_code, credits, instructor_id, created_at`

func scanCourse(row pgx.Row) (*models.Course, error) {
	course := &models.Course{}
	err := row.Scan(
		&course.ID, &course.Title, &course.CourseCode, &course.Credits,
		&course.InstructorID, &course.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error scanning course: %w", err)
	}
	return course, nil
}

// CreateCourse creates a new course and returns its id
func (r *CourseRepository) CreateCourse(ctx context.Context, course *models.Course) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO courses (title, course_code, credits, instructor_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		course.Title, course.CourseCode, course.Credits, course.InstructorID).Scan(&id)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_course_code_key") {
			return 0, apperrors.ErrCourseCodeAlreadyExists
		}
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	return id, nil
}

// GetCourseByID retrieves a course by ID
func (r *CourseRepository) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	return scanCourse(r.db.QueryRow(ctx, `
		SELECT `+courseColumns+`
		FROM courses
		WHERE id = $1`,
		id))
}

// GetCourseByCode retrieves a course by its course code
func (r *CourseRepository) GetCourseByCode(ctx context.Context, code string) (*models.Course, error) {
	return scanCourse(r.db.QueryRow(ctx, `
		SELECT `+courseColumns+`
		FROM courses
		WHERE course_code = $1`,
		code))
}

// ListCourses retrieves a page of courses in insertion order
func (r *CourseRepository) ListCourses(ctx context.Context, offset uint64, limit int) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+courseColumns+`
		FROM courses
		ORDER BY id
		OFFSET $1 LIMIT $2`,
		offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	return collectCourses(rows)
}

// CountCourses returns the total number of courses
func (r *CourseRepository) CountCourses(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return count, nil
}

// ListCoursesByInstructor retrieves all courses owned by one instructor
func (r *CourseRepository) ListCoursesByInstructor(ctx context.Context, instructorID int64) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+courseColumns+`
		FROM courses
		WHERE instructor_id = $1
		ORDER BY id`,
		instructorID)
	if err != nil {
		return nil, fmt.Errorf("error listing instructor courses: %w", err)
	}
	defer rows.Close()

	return collectCourses(rows)
}

func collectCourses(rows pgx.Rows) ([]*models.Course, error) {
	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating courses: %w", err)
	}
	return courses, nil
}
