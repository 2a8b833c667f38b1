package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Auth Request DTOs ---

// RegisterRequest carries the account fields plus the profile fields for the chosen role.
// Fields belonging to the other role are ignored.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=6,max=72"` // counts characters; the auth service enforces bcrypt's 72-byte limit
	Role     string `json:"role" validate:"omitempty,oneof=student recruiter"`

	// Student profile
	University     string `json:"university" validate:"max=200"`
	Degree         string `json:"degree" validate:"max=200"`
	GraduationYear *int   `json:"graduationYear" validate:"omitempty,min=1900,max=2100"`

	// Recruiter profile
	Company            string `json:"company" validate:"max=200"`
	CompanyDescription string `json:"companyDescription" validate:"max=5000"`
	Website            string `json:"website" validate:"omitempty,max=2048"`
}

// LoginRequest defines the credentials for a login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Auth Response DTOs ---

// UserResponse is the public view of a user. It never carries the password hash.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Blocked   bool      `json:"blocked"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuthResponse is returned by register and login. Profile is either a
// StudentProfileResponse, a RecruiterProfileResponse or null.
type AuthResponse struct {
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
	Profile interface{}  `json:"profile"`
}

// MeResponse is the current user with their role profile.
type MeResponse struct {
	User    UserResponse `json:"user"`
	Profile interface{}  `json:"profile"`
}

// MessageResponse is the shape of every error and of plain acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
}
