package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Naveen0030/eims-clg-portal/internal/app/models/dto"
	"github.com/Naveen0030/eims-clg-portal/internal/app/services"
	"github.com/Naveen0030/eims-clg-portal/internal/middleware"
	"github.com/Naveen0030/eims-clg-portal/internal/pkg/apperrors"
)

// EnrollmentController handles enrollment request and approval endpoints
type EnrollmentController struct {
	enrollmentService *services.EnrollmentService
	logger            zerolog.Logger
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService *services.EnrollmentService, logger zerolog.Logger) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
		logger:            logger,
	}
}

// Enroll files an enrollment request for the caller
// @Summary Request enrollment in a course
// @Tags student
// @Accept json
// @Produce json
// @Param request body dto.EnrollRequest true "Course to enroll in"
// @Success 201 {object} dto.SuccessResponse "Request submitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 409 {object} dto.ErrorResponse "Already enrolled"
// @Security BearerAuth
// @Router /enroll-course [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	var req dto.EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid enroll-course payload")
		bindError(ctx, err)
		return
	}

	if _, err := c.enrollmentService.Enroll(ctx.Request.Context(), userID, req.CourseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Enrollment request submitted"))
}

// EnrolledCourses returns the caller's enrollments with their statuses
// @Summary List the caller's enrollments
// @Tags student
// @Produce json
// @Success 200 {object} dto.EnrolledCoursesResponse "The caller's enrollments"
// @Failure 403 {object} dto.ErrorResponse "Student access required"
// @Security BearerAuth
// @Router /enrolled-courses [get]
func (c *EnrollmentController) EnrolledCourses(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	courses, err := c.enrollmentService.ListEnrolledCourses(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.EnrolledCoursesResponse{EnrolledCourses: courses})
}

// FetchCourses returns the caller's courses with their rosters
// @Summary List the instructor's courses
// @Tags instructor
// @Produce json
// @Success 200 {object} dto.FetchCoursesResponse "Owned courses with rosters"
// @Failure 403 {object} dto.ErrorResponse "Instructor access required"
// @Security BearerAuth
// @Router /FetchCourses [get]
func (c *EnrollmentController) FetchCourses(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	courses, err := c.enrollmentService.ListInstructorCourses(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.FetchCoursesResponse{Courses: courses})
}

// FetchStudents returns the approved roster of one owned course
// @Summary List approved students of a course
// @Tags instructor
// @Produce json
// @Param courseCode path string true "Course code"
// @Success 200 {object} dto.CourseStudentsResponse "Approved students"
// @Failure 403 {object} dto.ErrorResponse "Not the course owner"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Security BearerAuth
// @Router /FetchStudents/{courseCode} [get]
func (c *EnrollmentController) FetchStudents(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	students, err := c.enrollmentService.GetCourseStudents(ctx.Request.Context(), userID, ctx.Param("courseCode"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CourseStudentsResponse{Students: students})
}

// PendingEnrollments returns enrollments awaiting the caller's decision
// @Summary List enrollments pending instructor review
// @Tags instructor
// @Produce json
// @Success 200 {object} dto.PendingEnrollmentsResponse "Pending enrollments grouped by course"
// @Failure 403 {object} dto.ErrorResponse "Instructor access required"
// @Security BearerAuth
// @Router /instructor/pending-enrollments [get]
func (c *EnrollmentController) PendingEnrollments(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	groups, err := c.enrollmentService.ListPendingForInstructor(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PendingEnrollmentsResponse{PendingEnrollments: groups})
}

// UpdateEnrollment applies the instructor's decision to a pending enrollment
// @Summary Decide a pending enrollment
// @Description Forwards a pending enrollment to the faculty advisor or rejects it.
// @Tags instructor
// @Accept json
// @Produce json
// @Param request body dto.UpdateEnrollmentRequest true "Decision"
// @Success 200 {object} dto.SuccessResponse "Status updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or decision"
// @Failure 403 {object} dto.ErrorResponse "Not the course owner"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 409 {object} dto.ErrorResponse "Enrollment already decided"
// @Security BearerAuth
// @Router /instructor/update-enrollment [post]
func (c *EnrollmentController) UpdateEnrollment(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	var req dto.UpdateEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid update-enrollment payload")
		bindError(ctx, err)
		return
	}

	if err := c.enrollmentService.InstructorDecide(ctx.Request.Context(), userID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Enrollment status updated successfully"))
}

// GetApproved returns enrollments forwarded to the caller's department
// @Summary List enrollments pending faculty advisor review
// @Tags instructor
// @Produce json
// @Success 200 {object} dto.PendingEnrollmentsResponse "Forwarded enrollments grouped by course"
// @Failure 403 {object} dto.ErrorResponse "Faculty advisor access required"
// @Security BearerAuth
// @Router /getApproved [get]
func (c *EnrollmentController) GetApproved(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	groups, err := c.enrollmentService.ListPendingForAdvisor(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PendingEnrollmentsResponse{PendingEnrollments: groups})
}

// UpdateStatus applies the faculty advisor's final decision
// @Summary Decide a forwarded enrollment
// @Description Approves or rejects an enrollment forwarded by the instructor.
// @Tags instructor
// @Accept json
// @Produce json
// @Param request body dto.UpdateEnrollmentRequest true "Decision"
// @Success 200 {object} dto.SuccessResponse "Status updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or decision"
// @Failure 403 {object} dto.ErrorResponse "Faculty advisor access required"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 409 {object} dto.ErrorResponse "Enrollment already decided"
// @Security BearerAuth
// @Router /UpdateStatus [post]
func (c *EnrollmentController) UpdateStatus(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	var req dto.UpdateEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid update-status payload")
		bindError(ctx, err)
		return
	}

	if err := c.enrollmentService.AdvisorDecide(ctx.Request.Context(), userID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Enrollment status updated successfully"))
}
