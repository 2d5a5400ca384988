package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Naveen0030/eims-clg-portal/internal/app/models"
	"github.com/Naveen0030/eims-clg-portal/internal/app/models/dto"
	"github.com/Naveen0030/eims-clg-portal/internal/pkg/apperrors"
	"github.com/Naveen0030/eims-clg-portal/internal/pkg/auth"
	"github.com/Naveen0030/eims-clg-portal/internal/pkg/email"
)

// AuthService handles the OTP sign-up and login flows
type AuthService struct {
	userRepo     UserStore
	otpRepo      OTPStore
	emailService email.EmailService
	jwtService   *auth.JWTService
	otpTTL       time.Duration
	logger       zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo UserStore,
	otpRepo OTPStore,
	emailService email.EmailService,
	jwtService *auth.JWTService,
	otpTTL time.Duration,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		otpRepo:      otpRepo,
		emailService: emailService,
		jwtService:   jwtService,
		otpTTL:       otpTTL,
		logger:       logger,
	}
}

// SendSignUpOTP validates the prospective account and emails a sign-up code
func (s *AuthService) SendSignUpOTP(ctx context.Context, req *dto.SendOTPRequest) error {
	if err := validateEmail(req.Email); err != nil {
		return err
	}

	if _, ok := models.ParseCategory(req.Category); !ok {
		return apperrors.NewValidationError("unknown category: " + req.Category)
	}

	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return apperrors.ErrEmailAlreadyExists
	}

	return s.issueOTP(ctx, req.Email, "", models.OTPPurposeSignUp)
}

// VerifySignUpOTP checks the sign-up code, creates the account and signs
// the caller in
func (s *AuthService) VerifySignUpOTP(ctx context.Context, req *dto.VerifyOTPRequest) (*dto.TokenResponse, error) {
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

	if err := s.consumeOTP(ctx, req.Email, models.OTPPurposeSignUp, req.OTP); err != nil {
		return nil, err
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

	s.logger.Info().Int64("userId", userID).Str("email", user.Email).Msg("User registered")

	return s.generateTokenResponse(user, "Account created successfully")
}

// SendLoginOTP checks the credentials and emails a login code
func (s *AuthService) SendLoginOTP(ctx context.Context, req *dto.SendLoginOTPRequest) error {
	if err := validateEmail(req.Email); err != nil {
		return err
	}
	if req.Password == "" {
		return fmt.Errorf("%w: password cannot be empty", apperrors.ErrValidationFailed)
	}

	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrInvalidCredentials
		}
		return fmt.Errorf("error fetching user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return apperrors.ErrInvalidCredentials
	}

	return s.issueOTP(ctx, user.Email, user.FullName, models.OTPPurposeLogin)
}

// VerifyLoginOTP checks the login code and signs the caller in
func (s *AuthService) VerifyLoginOTP(ctx context.Context, req *dto.VerifyLoginOTPRequest) (*dto.TokenResponse, error) {
	if err := validateEmail(req.Email); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	if err := s.consumeOTP(ctx, user.Email, models.OTPPurposeLogin, req.OTP); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", user.ID).Str("email", user.Email).Msg("User logged in")

	return s.generateTokenResponse(user, "Login successful")
}

// issueOTP generates, stores and emails a fresh code. A new code replaces
// any previous one for the same email and purpose.
func (s *AuthService) issueOTP(ctx context.Context, toEmail, toName string, purpose models.OTPPurpose) error {
	code, err := auth.GenerateOTP()
	if err != nil {
		return fmt.Errorf("error generating code: %w", err)
	}

	codeHash, err := auth.HashOTP(code)
	if err != nil {
		return fmt.Errorf("error hashing code: %w", err)
	}

	otp := &models.OTPCode{
		Email:     toEmail,
		CodeHash:  codeHash,
		Purpose:   purpose,
		ExpiresAt: time.Now().Add(s.otpTTL),
	}
	if err := s.otpRepo.Upsert(ctx, otp); err != nil {
		return fmt.Errorf("error storing code: %w", err)
	}

	if purpose == models.OTPPurposeLogin {
		err = s.emailService.SendLoginOTP(toEmail, toName, code)
	} else {
		err = s.emailService.SendSignUpOTP(toEmail, code)
	}
	if err != nil {
		s.logger.Error().Err(err).Str("email", toEmail).Msg("Failed to send OTP email")
		return fmt.Errorf("error sending code: %w", err)
	}

	return nil
}

// consumeOTP verifies a submitted code against the stored hash and retires
// it. A code is single use.
func (s *AuthService) consumeOTP(ctx context.Context, toEmail string, purpose models.OTPPurpose, code string) error {
	otp, err := s.otpRepo.GetLatest(ctx, toEmail, purpose)
	if err != nil {
		if errors.Is(err, apperrors.ErrOTPNotFound) {
			return apperrors.ErrOTPInvalid
		}
		return fmt.Errorf("error fetching code: %w", err)
	}

	if otp.IsExpired(time.Now()) {
		return apperrors.ErrOTPExpired
	}

	if !auth.CheckOTP(otp.CodeHash, code) {
		return apperrors.ErrOTPInvalid
	}

	if err := s.otpRepo.MarkConsumed(ctx, otp.ID, time.Now()); err != nil {
		return fmt.Errorf("error consuming code: %w", err)
	}

	return nil
}

func (s *AuthService) generateTokenResponse(user *models.User, message string) (*dto.TokenResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	return &dto.TokenResponse{
		Message:     message,
		AccessToken: token,
		ExpiresIn:   expiresIn,
		User:        dto.FromUser(user),
	}, nil
}
