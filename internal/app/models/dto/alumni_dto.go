package dto

import "time"

// CreateAlumniRequest files an alumni record for the caller
type CreateAlumniRequest struct {
	GraduationYear int     `json:"graduationYear" binding:"required,gt=1900"`
	DepartmentID   int64   `json:"departmentId" binding:"required,gt=0"`
	RollNumber     string  `json:"rollNumber" binding:"required"`
	Employer       *string `json:"employer,omitempty"`
	JobTitle       *string `json:"jobTitle,omitempty"`
}

// AlumniResponse represents an alumni record and its verification state
type AlumniResponse struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"userId"`
	Name           string     `json:"name"`
	GraduationYear int        `json:"graduationYear"`
	DepartmentName *string    `json:"departmentName,omitempty"`
	RollNumber     string     `json:"rollNumber"`
	Employer       *string    `json:"employer,omitempty"`
	JobTitle       *string    `json:"jobTitle,omitempty"`
	PhotoURL       *string    `json:"photoUrl,omitempty"`
	IsBlocked      bool       `json:"isBlocked"`
	IsVerified     bool       `json:"isVerified"`
	VerifiedAt     *time.Time `json:"verifiedAt,omitempty"`
}

// AlumniListResponse is the paginated alumni listing
type AlumniListResponse struct {
	Alumni []AlumniResponse `json:"alumni"`
	PaginationInfo
}
