package models

import (
	"time"
)

// OTPPurpose distinguishes sign-up codes from login codes
type OTPPurpose string

const (
	OTPPurposeSignUp OTPPurpose = "SIGNUP"
	OTPPurposeLogin  OTPPurpose = "LOGIN"
)

// OTPCode defines a one-time passcode record based on the 'otp_codes' table.
// Only the bcrypt hash of the code is stored.
type OTPCode struct {
	ID         int64      `json:"id" db:"id"`
	Email      string     `json:"email" db:"email"`
	CodeHash   string     `json:"-" db:"code_hash"`
	Purpose    OTPPurpose `json:"purpose" db:"purpose"`
	ExpiresAt  time.Time  `json:"expiresAt" db:"expires_at"`
	ConsumedAt *time.Time `json:"consumedAt,omitempty" db:"consumed_at"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
}

// IsExpired reports whether the code has passed its expiry.
func (o *OTPCode) IsExpired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}

// IsConsumed reports whether the code has already been used.
func (o *OTPCode) IsConsumed() bool {
	return o.ConsumedAt != nil
}
