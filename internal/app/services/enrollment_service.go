package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	appauth "github.com/Naveen0030/eims-clg-portal/internal/app/auth"
	"github.com/Naveen0030/eims-clg-portal/internal/app/models"
	"github.com/Naveen0030/eims-clg-portal/internal/app/models/dto"
	"github.com/Naveen0030/eims-clg-portal/internal/app/repositories"
	"github.com/Naveen0030/eims-clg-portal/internal/pkg/apperrors"
)

// EnrollmentService handles enrollment requests and the two-stage approval
// flow. Each enrollment snapshots the student's name, email and department
// at request time.
type EnrollmentService struct {
	enrollmentRepo EnrollmentStore
	courseRepo     CourseStore
	userRepo       UserStore
	logger         zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(
	enrollmentRepo EnrollmentStore,
	courseRepo CourseStore,
	userRepo UserStore,
	logger zerolog.Logger,
) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

// Enroll files a new enrollment request in the Pending state
func (s *EnrollmentService) Enroll(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	student, err := s.userRepo.GetUserByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	enrollment := &models.Enrollment{
		CourseID:       course.ID,
		StudentID:      student.ID,
		StudentName:    student.FullName,
		StudentEmail:   student.Email,
		Department:     student.Department,
		Status:         models.StatusPending,
		EnrollmentDate: time.Now(),
	}

	enrollmentID, err := s.enrollmentRepo.CreateEnrollment(ctx, enrollment)
	if err != nil {
		return nil, err
	}
	enrollment.ID = enrollmentID

	s.logger.Info().
		Int64("courseId", course.ID).
		Int64("studentId", student.ID).
		Msg("Enrollment requested")

	return enrollment, nil
}

// ListEnrolledCourses retrieves the student's own enrollments with their
// course details
func (s *EnrollmentService) ListEnrolledCourses(ctx context.Context, studentID int64) ([]dto.EnrolledCourse, error) {
	rows, err := s.enrollmentRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.EnrolledCourse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.EnrolledCourse{
			CourseID:       row.Course.ID,
			Title:          row.Course.Title,
			CourseCode:     row.Course.CourseCode,
			Credits:        row.Course.Credits,
			InstructorID:   row.Course.InstructorID,
			Status:         row.Enrollment.Status.Label(),
			EnrollmentDate: row.Enrollment.EnrollmentDate,
		})
	}
	return out, nil
}

// InstructorDecide applies the owning instructor's decision to a pending
// enrollment. The allowed outcomes are forwarding to the faculty advisor
// and rejection.
func (s *EnrollmentService) InstructorDecide(ctx context.Context, instructorID int64, req *dto.UpdateEnrollmentRequest) error {
	instructor, err := s.userRepo.GetUserByID(ctx, instructorID)
	if err != nil {
		return err
	}

	course, err := s.courseRepo.GetCourseByID(ctx, req.CourseID)
	if err != nil {
		return err
	}

	if err := appauth.ActorFromUser(instructor).RequireCourseOwner(course); err != nil {
		return err
	}

	target, ok := models.ParseEnrollmentStatus(req.Status)
	if !ok || (target != models.StatusPendingForFA && target != models.StatusRejected) {
		return apperrors.NewValidationError("unknown decision: " + req.Status)
	}

	return s.applyDecision(ctx, course.ID, req.StudentID, models.StatusPending, target)
}

// AdvisorDecide applies a faculty advisor's decision to an enrollment that
// the instructor already forwarded. The advisor must belong to the
// student's department.
func (s *EnrollmentService) AdvisorDecide(ctx context.Context, advisorID int64, req *dto.UpdateEnrollmentRequest) error {
	advisor, err := s.userRepo.GetUserByID(ctx, advisorID)
	if err != nil {
		return err
	}

	enrollment, err := s.enrollmentRepo.GetByCourseAndStudent(ctx, req.CourseID, req.StudentID)
	if err != nil {
		return err
	}

	if err := appauth.ActorFromUser(advisor).RequireFacultyAdvisor(enrollment.Department); err != nil {
		return err
	}

	target, ok := models.ParseEnrollmentStatus(req.Status)
	if !ok || (target != models.StatusApproved && target != models.StatusRejected) {
		return apperrors.NewValidationError("unknown decision: " + req.Status)
	}

	return s.applyDecision(ctx, req.CourseID, req.StudentID, models.StatusPendingForFA, target)
}

// applyDecision re-reads the enrollment, checks the transition and updates
// it under the version guard. A concurrent decision surfaces as a conflict
// rather than silently overwriting.
func (s *EnrollmentService) applyDecision(ctx context.Context, courseID, studentID int64, expected, target models.EnrollmentStatus) error {
	enrollment, err := s.enrollmentRepo.GetByCourseAndStudent(ctx, courseID, studentID)
	if err != nil {
		return err
	}

	if enrollment.Status != expected || !enrollment.Status.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s to %s", apperrors.ErrInvalidTransition,
			enrollment.Status.Label(), target.Label())
	}

	if err := s.enrollmentRepo.UpdateStatus(ctx, enrollment.ID, target, enrollment.Version); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return apperrors.NewConflictError("enrollment was updated concurrently")
		}
		return err
	}

	s.logger.Info().
		Int64("courseId", courseID).
		Int64("studentId", studentID).
		Str("from", string(expected)).
		Str("to", string(target)).
		Msg("Enrollment status updated")

	return nil
}

// ListInstructorCourses retrieves the instructor's courses with their full
// rosters embedded
func (s *EnrollmentService) ListInstructorCourses(ctx context.Context, instructorID int64) ([]dto.InstructorCourse, error) {
	courses, err := s.courseRepo.ListCoursesByInstructor(ctx, instructorID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.InstructorCourse, 0, len(courses))
	for _, course := range courses {
		enrollments, err := s.enrollmentRepo.ListByCourse(ctx, course.ID)
		if err != nil {
			return nil, err
		}

		entries := make([]dto.EnrollmentEntry, 0, len(enrollments))
		for _, e := range enrollments {
			entries = append(entries, dto.FromEnrollment(e))
		}

		out = append(out, dto.InstructorCourse{
			CourseID:         course.ID,
			Title:            course.Title,
			CourseCode:       course.CourseCode,
			Credits:          course.Credits,
			EnrolledStudents: entries,
		})
	}
	return out, nil
}

// GetCourseStudents retrieves the approved roster of one owned course
func (s *EnrollmentService) GetCourseStudents(ctx context.Context, instructorID int64, courseCode string) ([]dto.CourseRoster, error) {
	instructor, err := s.userRepo.GetUserByID(ctx, instructorID)
	if err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetCourseByCode(ctx, courseCode)
	if err != nil {
		return nil, err
	}

	if err := appauth.ActorFromUser(instructor).RequireCourseOwner(course); err != nil {
		return nil, err
	}

	enrollments, err := s.enrollmentRepo.ListByCourseAndStatus(ctx, course.ID, models.StatusApproved)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.EnrollmentEntry, 0, len(enrollments))
	for _, e := range enrollments {
		entries = append(entries, dto.FromEnrollment(e))
	}

	return []dto.CourseRoster{{
		CourseCode:       course.CourseCode,
		EnrolledStudents: entries,
	}}, nil
}

// ListPendingForInstructor retrieves enrollments awaiting the instructor's
// decision, grouped by course
func (s *EnrollmentService) ListPendingForInstructor(ctx context.Context, instructorID int64) ([]dto.PendingCourseGroup, error) {
	rows, err := s.enrollmentRepo.ListPendingByInstructor(ctx, instructorID)
	if err != nil {
		return nil, err
	}
	return groupByCourse(rows), nil
}

// ListPendingForAdvisor retrieves enrollments forwarded to the advisor's
// department, grouped by course
func (s *EnrollmentService) ListPendingForAdvisor(ctx context.Context, advisorID int64) ([]dto.PendingCourseGroup, error) {
	advisor, err := s.userRepo.GetUserByID(ctx, advisorID)
	if err != nil {
		return nil, err
	}

	actor := appauth.ActorFromUser(advisor)
	if err := actor.RequireFacultyAdvisor(advisor.Department); err != nil {
		return nil, err
	}

	rows, err := s.enrollmentRepo.ListPendingForFAByDepartment(ctx, advisor.Department)
	if err != nil {
		return nil, err
	}
	return groupByCourse(rows), nil
}

// groupByCourse folds joined enrollment rows into per-course groups. Rows
// arrive ordered by course, so a group closes when the course id changes.
func groupByCourse(rows []*repositories.CourseEnrollment) []dto.PendingCourseGroup {
	groups := make([]dto.PendingCourseGroup, 0)
	for _, row := range rows {
		student := dto.PendingStudent{
			StudentID: row.Enrollment.StudentID,
			Name:      row.Enrollment.StudentName,
			Email:     row.Enrollment.StudentEmail,
			Faculty:   row.Enrollment.Department,
		}

		if n := len(groups); n > 0 && groups[n-1].CourseID == row.Course.ID {
			groups[n-1].PendingStudents = append(groups[n-1].PendingStudents, student)
			continue
		}

		groups = append(groups, dto.PendingCourseGroup{
			CourseID:        row.Course.ID,
			CourseTitle:     row.Course.Title,
			CourseCode:      row.Course.CourseCode,
			PendingStudents: []dto.PendingStudent{student},
		})
	}
	return groups
}
