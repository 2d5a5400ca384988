package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Naveen0030/eims-clg-portal/internal/app/models"
	"github.com/Naveen0030/eims-clg-portal/internal/app/models/dto"
	"github.com/Naveen0030/eims-clg-portal/internal/pkg/apperrors"
	"github.com/Naveen0030/eims-clg-portal/internal/pkg/helpers"
)

// CourseService handles course catalog operations
type CourseService struct {
	courseRepo CourseStore
	userRepo   UserStore
	logger     zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo CourseStore, userRepo UserStore, logger zerolog.Logger) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// CreateCourse creates a course from the admin form. Instructor and credits
// arrive as strings and are resolved here.
func (s *CourseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	title := strings.TrimSpace(req.Title)
	courseCode := strings.TrimSpace(req.CourseCode)
	if title == "" || courseCode == "" {
		return nil, apperrors.NewValidationError("title and course code cannot be empty")
	}

	credits, err := strconv.Atoi(strings.TrimSpace(req.Credits))
	if err != nil || credits <= 0 {
		return nil, apperrors.NewValidationError("credits must be a positive number")
	}

	instructorID, err := strconv.ParseInt(strings.TrimSpace(req.Instructor), 10, 64)
	if err != nil {
		return nil, apperrors.NewValidationError("instructor must be a user ID")
	}

	instructor, err := s.userRepo.GetUserByID(ctx, instructorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrNotAnInstructor
		}
		return nil, fmt.Errorf("error fetching instructor: %w", err)
	}
	if instructor.Category != models.CategoryInstructor {
		return nil, apperrors.ErrNotAnInstructor
	}

	course := &models.Course{
		Title:        title,
		CourseCode:   courseCode,
		Credits:      credits,
		InstructorID: instructor.ID,
	}

	courseID, err := s.courseRepo.CreateCourse(ctx, course)
	if err != nil {
		return nil, err
	}
	course.ID = courseID
	course.Instructor = instructor

	s.logger.Info().Int64("courseId", courseID).Str("courseCode", courseCode).Msg("Course created")

	return course, nil
}

// ListAvailableCourses retrieves one page of the course catalog
func (s *CourseService) ListAvailableCourses(ctx context.Context, page, size int) (*dto.AvailableCoursesResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	courses, err := s.courseRepo.ListCourses(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	total, err := s.courseRepo.CountCourses(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		out = append(out, dto.FromCourse(course))
	}

	return &dto.AvailableCoursesResponse{
		Courses:     out,
		CurrentPage: page,
		TotalPages:  helpers.TotalPages(total, size),
		TotalItems:  total,
	}, nil
}
