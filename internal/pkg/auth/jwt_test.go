package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Naveen0030/eims-clg-portal/internal/app/models"
)

func testUser() *models.User {
	return &models.User{
		ID:       42,
		Email:    "ada@eims.edu",
		Category: models.CategoryStudent,
	}
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	service := NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})

	token, expiresIn, err := service.GenerateAccessToken(testUser())
	require.NoError(t, err)
	assert.Equal(t, int(time.Hour.Seconds()), expiresIn)

	claims, err := service.ValidateAndExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "ada@eims.edu", claims.Email)
	assert.Equal(t, string(models.CategoryStudent), claims.Category)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	service := NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: -time.Minute,
		TokenIssuer:    "test",
	})

	token, _, err := service.GenerateAccessToken(testUser())
	require.NoError(t, err)

	_, err = service.ValidateAndExtractClaims(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService(JWTConfig{SecretKey: "secret-a", AccessTokenExp: time.Hour, TokenIssuer: "test"})
	verifier := NewJWTService(JWTConfig{SecretKey: "secret-b", AccessTokenExp: time.Hour, TokenIssuer: "test"})

	token, _, err := issuer.GenerateAccessToken(testUser())
	require.NoError(t, err)

	_, err = verifier.ValidateAndExtractClaims(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("abc.def.ghi")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
