package dto

import "github.com/alumeee/alumniconnect/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information. RedirectTo carries the
// role-appropriate landing route computed by the role router.
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	TokenType        string `json:"tokenType" example:"Bearer"`
	ExpiresIn        int64  `json:"expiresIn"`
	RefreshExpiresIn int64  `json:"refreshExpiresIn"`
	RedirectTo       string `json:"redirectTo" example:"/home/student"`
}

// RefreshTokenRequest represents a refresh token request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LogoutRequest revokes the given refresh token
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RegisterRequest is the role-conditional registration form. Student fields
// are required when role is "student", staff fields when role is "staff".
type RegisterRequest struct {
	Role            models.ProfileKind `json:"role" binding:"required"`
	Email           string             `json:"email" binding:"required,email"`
	Password        string             `json:"password" binding:"required"`
	ConfirmPassword string             `json:"confirmPassword" binding:"required"`
	FirstName       string             `json:"firstName" binding:"required"`
	LastName        string             `json:"lastName"`

	// Student fields
	RollNumber    string `json:"rollNumber,omitempty"`
	YearOfPassing int    `json:"yearOfPassing,omitempty"`

	// Staff fields
	Designation     string `json:"designation,omitempty"`
	Qualification   string `json:"qualification,omitempty"`
	ExperienceYears *int   `json:"experienceYears,omitempty"`
	JoinedOn        string `json:"joinedOn,omitempty"` // YYYY-MM-DD
	Status          string `json:"status,omitempty"`   // Active or Inactive

	// Shared profile fields
	DepartmentID int64  `json:"departmentId,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

// RegisterResponse confirms a completed registration
type RegisterResponse struct {
	UserID     int64  `json:"userId"`
	Message    string `json:"message"`
	RedirectTo string `json:"redirectTo" example:"/login"`
}
