// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Naveen0030/eims-clg-portal/internal/app/models/dto"
	"github.com/Naveen0030/eims-clg-portal/internal/app/services"
	"github.com/Naveen0030/eims-clg-portal/internal/middleware"
)

// AuthController handles the OTP sign-up and login endpoints
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// SendOTP starts the sign-up flow
// @Summary Send a sign-up verification code
// @Description Validates the prospective account and emails a one-time code to the given address.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SendOTPRequest true "Sign-up information"
// @Success 200 {object} dto.SuccessResponse "Verification code sent"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /send-otp [post]
func (c *AuthController) SendOTP(ctx *gin.Context) {
	var req dto.SendOTPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid send-otp payload")
		bindError(ctx, err)
		return
	}

	if err := c.authService.SendSignUpOTP(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Verification code sent to your email"))
}

// VerifyOTP completes the sign-up flow
// @Summary Verify the sign-up code and create the account
// @Description Checks the one-time code, creates the account and returns an access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.VerifyOTPRequest true "Sign-up verification"
// @Success 201 {object} dto.TokenResponse "Account created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid or expired code"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /verify-otp [post]
func (c *AuthController) VerifyOTP(ctx *gin.Context) {
	var req dto.VerifyOTPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid verify-otp payload")
		bindError(ctx, err)
		return
	}

	token, err := c.authService.VerifySignUpOTP(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, token)
}

// SendLoginOTP starts the login flow
// @Summary Send a login verification code
// @Description Checks the credentials and emails a one-time login code.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SendLoginOTPRequest true "Login credentials"
// @Success 200 {object} dto.SuccessResponse "Verification code sent"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /send-login-otp [post]
func (c *AuthController) SendLoginOTP(ctx *gin.Context) {
	var req dto.SendLoginOTPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid send-login-otp payload")
		bindError(ctx, err)
		return
	}

	if err := c.authService.SendLoginOTP(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Verification code sent to your email"))
}

// VerifyLoginOTP completes the login flow
// @Summary Verify the login code
// @Description Checks the one-time login code and returns an access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.VerifyLoginOTPRequest true "Login verification"
// @Success 200 {object} dto.TokenResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid or expired code"
// @Router /verify-login-otp [post]
func (c *AuthController) VerifyLoginOTP(ctx *gin.Context) {
	var req dto.VerifyLoginOTPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid verify-login-otp payload")
		bindError(ctx, err)
		return
	}

	token, err := c.authService.VerifyLoginOTP(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, token)
}

// bindError reports a request body that failed binding
func bindError(ctx *gin.Context, err error) {
	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format: "+err.Error())
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}
