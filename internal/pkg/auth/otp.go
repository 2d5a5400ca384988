package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// OTPLength is the number of digits in a one-time passcode
const OTPLength = 6

// GenerateOTP generates a random numeric one-time passcode
func GenerateOTP() (string, error) {
	code := make([]byte, OTPLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate passcode: %w", err)
		}
		code[i] = '0' + byte(n.Int64())
	}
	return string(code), nil
}

// HashOTP hashes a one-time passcode for storage.
// Codes are short-lived, so the default cost is enough.
func HashOTP(code string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckOTP verifies a one-time passcode against its stored hash
func CheckOTP(hashedCode, code string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedCode), []byte(code))
	return err == nil
}
