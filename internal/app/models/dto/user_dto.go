package dto

import (
	"github.com/Naveen0030/eims-clg-portal/internal/app/models"
)

// UserResponse represents user information returned to clients
type UserResponse struct {
	ID               int64  `json:"id" example:"1"`
	FullName         string `json:"fullName" example:"Jane Doe"`
	Email            string `json:"email" example:"jane@college.edu"`
	Category         string `json:"category" example:"Student" enums:"Admin,Instructor,Student"`
	Department       string `json:"department" example:"Computer Science"`
	IsFacultyAdvisor bool   `json:"fa" example:"false"`
}

// FromUser converts a models.User to a UserResponse
func FromUser(user *models.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:               user.ID,
		FullName:         user.FullName,
		Email:            user.Email,
		Category:         user.Category.Label(),
		Department:       user.Department,
		IsFacultyAdvisor: user.IsFacultyAdvisor,
	}
}

// FromUsers converts a slice of users
func FromUsers(users []*models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}

// AddUserRequest is the admin user-creation payload
type AddUserRequest struct {
	FullName   string `json:"fullName" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	Category   string `json:"category" binding:"required"`
	Department string `json:"department" binding:"required"`
	FA         bool   `json:"fa"`
}

// GetUserResponse wraps the caller's own account
type GetUserResponse struct {
	Error bool         `json:"error"`
	User  UserResponse `json:"user"`
}

// ViewUserResponse wraps a single user's detail
type ViewUserResponse struct {
	Error       bool         `json:"error"`
	UserDetails UserResponse `json:"userDetails"`
}

// AllUsersResponse wraps the admin user listing
type AllUsersResponse struct {
	Error bool           `json:"error"`
	Users []UserResponse `json:"users"`
}

// InstructorsResponse wraps the instructor pick-list
type InstructorsResponse struct {
	Error       bool           `json:"error"`
	Instructors []UserResponse `json:"instructors"`
}

// AddUserResponse wraps the created user
type AddUserResponse struct {
	Error   bool         `json:"error"`
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}
