package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Naveen0030/eims-clg-portal/internal/app/models"
	"github.com/Naveen0030/eims-clg-portal/internal/app/models/dto"
	"github.com/Naveen0030/eims-clg-portal/internal/pkg/apperrors"
	"github.com/Naveen0030/eims-clg-portal/internal/pkg/auth"
)

// UserService handles user account operations
type UserService struct {
	userRepo UserStore
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo UserStore, logger zerolog.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetUser retrieves a single user by ID
func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, id)
}

// ListAllUsers retrieves every account, optionally filtered by category
func (s *UserService) ListAllUsers(ctx context.Context, category *models.Category) ([]*models.User, error) {
	return s.userRepo.ListUsers(ctx, category)
}

// ListInstructors retrieves every instructor account
func (s *UserService) ListInstructors(ctx context.Context) ([]*models.User, error) {
	category := models.CategoryInstructor
	return s.userRepo.ListUsers(ctx, &category)
}

// AddUser creates an account on behalf of an administrator. No OTP round
// trip happens here; the admin vouches for the address.
func (s *UserService) AddUser(ctx context.Context, req *dto.AddUserRequest) (*models.User, error) {
	if err := validateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	category, ok := models.ParseCategory(req.Category)
	if !ok {
		return nil, apperrors.NewValidationError("unknown category: " + req.Category)
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("password hashing error: %w", err)
	}

	user := &models.User{
		FullName:         req.FullName,
		Email:            req.Email,
		Password:         hashedPassword,
		Category:         category,
		Department:       req.Department,
		IsFacultyAdvisor: category == models.CategoryInstructor && req.FA,
	}

	userID, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = userID

	s.logger.Info().Int64("userId", userID).Str("category", string(category)).Msg("User created by admin")

	return user, nil
}
