package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Naveen0030/eims-clg-portal/internal/app/models"
	"github.com/Naveen0030/eims-clg-portal/internal/app/models/dto"
	"github.com/Naveen0030/eims-clg-portal/internal/app/services"
	"github.com/Naveen0030/eims-clg-portal/internal/middleware"
	"github.com/Naveen0030/eims-clg-portal/internal/pkg/apperrors"
)

// UserController handles user account endpoints
type UserController struct {
	userService *services.UserService
	logger      zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService, logger zerolog.Logger) *UserController {
	return &UserController{
		userService: userService,
		logger:      logger,
	}
}

// GetUser returns the caller's own account
// @Summary Get the authenticated user
// @Tags users
// @Produce json
// @Success 200 {object} dto.GetUserResponse "The caller's account"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Invalid or expired token"
// @Security BearerAuth
// @Router /get-user [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	user, err := c.userService.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.GetUserResponse{User: dto.FromUser(user)})
}

// ViewUser returns one user's details
// @Summary Get a user by ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.ViewUserResponse "The requested user"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Security BearerAuth
// @Router /view-user/{id} [get]
func (c *UserController) ViewUser(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("user ID must be a number"))
		return
	}

	user, err := c.userService.GetUser(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ViewUserResponse{UserDetails: dto.FromUser(user)})
}

// AllUsers returns every account
// @Summary List all users
// @Tags admin
// @Produce json
// @Param category query string false "Filter by category (Admin, Instructor, Student)"
// @Success 200 {object} dto.AllUsersResponse "All accounts"
// @Failure 400 {object} dto.ErrorResponse "Unknown category"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Security BearerAuth
// @Router /all-users [get]
func (c *UserController) AllUsers(ctx *gin.Context) {
	var category *models.Category
	if raw := ctx.Query("category"); raw != "" {
		parsed, ok := models.ParseCategory(raw)
		if !ok {
			middleware.HandleAPIError(ctx, apperrors.NewValidationError("unknown category: "+raw))
			return
		}
		category = &parsed
	}

	users, err := c.userService.ListAllUsers(ctx.Request.Context(), category)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AllUsersResponse{Users: dto.FromUsers(users)})
}

// Instructors returns the instructor pick-list for course creation
// @Summary List all instructors
// @Tags admin
// @Produce json
// @Success 200 {object} dto.InstructorsResponse "All instructor accounts"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Security BearerAuth
// @Router /instructors [get]
func (c *UserController) Instructors(ctx *gin.Context) {
	instructors, err := c.userService.ListInstructors(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.InstructorsResponse{Instructors: dto.FromUsers(instructors)})
}

// AddUser creates an account on behalf of an administrator
// @Summary Create a user
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.AddUserRequest true "New account information"
// @Success 201 {object} dto.AddUserResponse "Account created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Security BearerAuth
// @Router /add-user [post]
func (c *UserController) AddUser(ctx *gin.Context) {
	var req dto.AddUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid add-user payload")
		bindError(ctx, err)
		return
	}

	user, err := c.userService.AddUser(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.AddUserResponse{
		Message: "User added successfully",
		User:    dto.FromUser(user),
	})
}
