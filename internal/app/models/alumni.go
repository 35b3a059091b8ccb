package models

import "time"

// Alumni represents an alumni record filed by a user. RollNumber is the
// register number the verification workflow matches against student profiles.
type Alumni struct {
	ID             int64           `json:"id" db:"id"`
	UserID         int64           `json:"userId" db:"user_id"`
	GraduationYear int             `json:"graduationYear" db:"graduation_year"`
	DepartmentID   int64           `json:"departmentId" db:"department_id"`
	RollNumber     string          `json:"rollNumber" db:"roll_number"`
	Employer       *string         `json:"employer,omitempty" db:"employer"`
	JobTitle       *string         `json:"jobTitle,omitempty" db:"job_title"`
	PhotoURL       *string         `json:"photoUrl,omitempty" db:"photo_url"`
	IsBlocked      bool            `json:"isBlocked" db:"is_blocked"`
	User           *User           `json:"user,omitempty"`
	Department     *Department     `json:"department,omitempty"`
	Verification   *VerifiedAlumni `json:"verification,omitempty"`
}

// VerifiedAlumni tracks the verification state of an alumni record.
// VerifiedAt is set only when IsVerified transitions to true.
type VerifiedAlumni struct {
	ID         int64      `json:"id" db:"id"`
	AlumniID   int64      `json:"alumniId" db:"alumni_id"`
	IsVerified bool       `json:"isVerified" db:"is_verified"`
	VerifiedAt *time.Time `json:"verifiedAt,omitempty" db:"verified_at"`
}
