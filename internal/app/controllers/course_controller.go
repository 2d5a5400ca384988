package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Naveen0030/eims-clg-portal/internal/app/models/dto"
	"github.com/Naveen0030/eims-clg-portal/internal/app/services"
	"github.com/Naveen0030/eims-clg-portal/internal/middleware"
	"github.com/Naveen0030/eims-clg-portal/internal/pkg/helpers"
)

// CourseController handles course catalog endpoints
type CourseController struct {
	courseService *services.CourseService
	logger        zerolog.Logger
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService, logger zerolog.Logger) *CourseController {
	return &CourseController{
		courseService: courseService,
		logger:        logger,
	}
}

// AddCourse creates a course
// @Summary Create a course
// @Description Creates a course and assigns it to an instructor.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "New course information"
// @Success 201 {object} dto.AddCourseResponse "Course created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or instructor"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Failure 409 {object} dto.ErrorResponse "Course code already exists"
// @Security BearerAuth
// @Router /add-course [post]
func (c *CourseController) AddCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid add-course payload")
		bindError(ctx, err)
		return
	}

	course, err := c.courseService.CreateCourse(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.AddCourseResponse{
		Message: "Course added successfully",
		Course:  dto.FromCourse(course),
	})
}

// AvailableCourses returns one page of the course catalog
// @Summary Browse available courses
// @Tags student
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.AvailableCoursesResponse "One page of courses"
// @Failure 403 {object} dto.ErrorResponse "Student access required"
// @Security BearerAuth
// @Router /available-courses [get]
func (c *CourseController) AvailableCourses(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	resp, err := c.courseService.ListAvailableCourses(ctx.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
