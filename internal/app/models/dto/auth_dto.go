package dto

// SendOTPRequest starts the sign-up flow. The profile fields are validated
// up front so the user finds out about problems before checking their inbox.
type SendOTPRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Category   string `json:"category" binding:"required"`
	Department string `json:"department" binding:"required"`
	FA         bool   `json:"fa"`
}

// VerifyOTPRequest completes the sign-up flow and creates the account
type VerifyOTPRequest struct {
	Email      string `json:"email" binding:"required,email"`
	OTP        string `json:"otp" binding:"required"`
	FullName   string `json:"fullName" binding:"required"`
	Password   string `json:"password" binding:"required"`
	Category   string `json:"category" binding:"required"`
	Department string `json:"department" binding:"required"`
	FA         bool   `json:"fa"`
}

// SendLoginOTPRequest starts the login flow
type SendLoginOTPRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// VerifyLoginOTPRequest completes the login flow
type VerifyLoginOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

// TokenResponse carries the bearer credential. The web client reads
// accessToken and user at the top level.
type TokenResponse struct {
	Error       bool         `json:"error"`
	Message     string       `json:"message,omitempty"`
	AccessToken string       `json:"accessToken"`
	ExpiresIn   int          `json:"expiresIn"`
	User        UserResponse `json:"user"`
}
