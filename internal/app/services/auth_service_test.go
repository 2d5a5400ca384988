package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Naveen0030/eims-clg-portal/internal/app/models"
	"github.com/Naveen0030/eims-clg-portal/internal/app/models/dto"
	"github.com/Naveen0030/eims-clg-portal/internal/pkg/apperrors"
	"github.com/Naveen0030/eims-clg-portal/internal/pkg/auth"
)

type authFixture struct {
	service *AuthService
	users   *fakeUserStore
	otps    *fakeOTPStore
	mailer  *fakeEmailService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	users := newFakeUserStore()
	otps := newFakeOTPStore()
	mailer := &fakeEmailService{}
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})

	return &authFixture{
		service: NewAuthService(users, otps, mailer, jwtService, 10*time.Minute, zerolog.Nop()),
		users:   users,
		otps:    otps,
		mailer:  mailer,
	}
}

func (f *authFixture) signUpRequest() *dto.SendOTPRequest {
	return &dto.SendOTPRequest{
		Email:      "ada@eims.edu",
		Category:   "Student",
		Department: "Computer Science",
	}
}

func (f *authFixture) verifyRequest(code string) *dto.VerifyOTPRequest {
	return &dto.VerifyOTPRequest{
		Email:      "ada@eims.edu",
		OTP:        code,
		FullName:   "Ada Lovelace",
		Password:   "sup3rsecret",
		Category:   "Student",
		Department: "Computer Science",
	}
}

func TestSignUpFlowCreatesAccountAndSignsIn(t *testing.T) {
	f := newAuthFixture(t)

	require.NoError(t, f.service.SendSignUpOTP(context.Background(), f.signUpRequest()))
	require.NotEmpty(t, f.mailer.lastCode)
	assert.Equal(t, "ada@eims.edu", f.mailer.lastEmail)

	token, err := f.service.VerifySignUpOTP(context.Background(), f.verifyRequest(f.mailer.lastCode))

	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "Student", token.User.Category)
	assert.Equal(t, "ada@eims.edu", token.User.Email)

	user, err := f.users.GetUserByEmail(context.Background(), "ada@eims.edu")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryStudent, user.Category)
	assert.NotEqual(t, "sup3rsecret", user.Password)
}

func TestSendSignUpOTPRejectsRegisteredEmail(t *testing.T) {
	f := newAuthFixture(t)
	f.users.add(&models.User{Email: "ada@eims.edu", Category: models.CategoryStudent})

	err := f.service.SendSignUpOTP(context.Background(), f.signUpRequest())

	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestSendSignUpOTPRejectsUnknownCategory(t *testing.T) {
	f := newAuthFixture(t)
	req := f.signUpRequest()
	req.Category = "Janitor"

	err := f.service.SendSignUpOTP(context.Background(), req)

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestVerifySignUpOTPRejectsWrongCode(t *testing.T) {
	f := newAuthFixture(t)
	require.NoError(t, f.service.SendSignUpOTP(context.Background(), f.signUpRequest()))

	_, err := f.service.VerifySignUpOTP(context.Background(), f.verifyRequest("000000"))

	assert.ErrorIs(t, err, apperrors.ErrOTPInvalid)
}

func TestVerifySignUpOTPRejectsExpiredCode(t *testing.T) {
	f := newAuthFixture(t)
	require.NoError(t, f.service.SendSignUpOTP(context.Background(), f.signUpRequest()))
	stored, err := f.otps.GetLatest(context.Background(), "ada@eims.edu", models.OTPPurposeSignUp)
	require.NoError(t, err)
	stored.ExpiresAt = time.Now().Add(-time.Minute)

	_, err = f.service.VerifySignUpOTP(context.Background(), f.verifyRequest(f.mailer.lastCode))

	assert.ErrorIs(t, err, apperrors.ErrOTPExpired)
}

func TestVerifySignUpOTPCodeIsSingleUse(t *testing.T) {
	f := newAuthFixture(t)
	require.NoError(t, f.service.SendSignUpOTP(context.Background(), f.signUpRequest()))
	code := f.mailer.lastCode

	_, err := f.service.VerifySignUpOTP(context.Background(), f.verifyRequest(code))
	require.NoError(t, err)

	req := f.verifyRequest(code)
	req.Email = "ada@eims.edu"
	_, err = f.service.VerifySignUpOTP(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrOTPInvalid)
}

func TestVerifySignUpOTPEnforcesPasswordPolicy(t *testing.T) {
	f := newAuthFixture(t)
	require.NoError(t, f.service.SendSignUpOTP(context.Background(), f.signUpRequest()))
	req := f.verifyRequest(f.mailer.lastCode)
	req.Password = "short"

	_, err := f.service.VerifySignUpOTP(context.Background(), req)

	assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
}

func registerUser(t *testing.T, f *authFixture) {
	t.Helper()
	require.NoError(t, f.service.SendSignUpOTP(context.Background(), f.signUpRequest()))
	_, err := f.service.VerifySignUpOTP(context.Background(), f.verifyRequest(f.mailer.lastCode))
	require.NoError(t, err)
}

func TestLoginFlowIssuesToken(t *testing.T) {
	f := newAuthFixture(t)
	registerUser(t, f)

	err := f.service.SendLoginOTP(context.Background(), &dto.SendLoginOTPRequest{
		Email:    "ada@eims.edu",
		Password: "sup3rsecret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, f.mailer.lastCode)

	token, err := f.service.VerifyLoginOTP(context.Background(), &dto.VerifyLoginOTPRequest{
		Email: "ada@eims.edu",
		OTP:   f.mailer.lastCode,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)
	assert.Positive(t, token.ExpiresIn)
}

func TestSendLoginOTPRejectsWrongPassword(t *testing.T) {
	f := newAuthFixture(t)
	registerUser(t, f)

	err := f.service.SendLoginOTP(context.Background(), &dto.SendLoginOTPRequest{
		Email:    "ada@eims.edu",
		Password: "wrongpass1",
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestSendLoginOTPRejectsUnknownEmail(t *testing.T) {
	f := newAuthFixture(t)

	err := f.service.SendLoginOTP(context.Background(), &dto.SendLoginOTPRequest{
		Email:    "ghost@eims.edu",
		Password: "whatever1",
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
