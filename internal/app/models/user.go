package models

import (
	"time"
)

// User defines the account model based on the 'users' table. The email doubles
// as the login handle; registration stores it in both roles.
type User struct {
	ID          int64      `json:"id" db:"id"`
	Email       string     `json:"email" db:"email"`
	Password    string     `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	FirstName   string     `json:"firstName" db:"first_name"`
	LastName    string     `json:"lastName" db:"last_name"`
	IsAdmin     bool       `json:"isAdmin" db:"is_admin"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
}

// StudentProfile defines the student model based on the 'student_profiles'
// table. At most one per user; a user holding a staff profile cannot also
// hold one of these.
type StudentProfile struct {
	ID              int64       `json:"id" db:"id"`
	UserID          int64       `json:"userId" db:"user_id"`
	RollNumber      string      `json:"rollNumber" db:"roll_number"`
	DepartmentID    int64       `json:"departmentId" db:"department_id"`
	YearOfPassing   int         `json:"yearOfPassing" db:"year_of_passing"`
	Phone           string      `json:"phone" db:"phone"`
	Employer        *string     `json:"employer,omitempty" db:"employer"`
	JobTitle        *string     `json:"jobTitle,omitempty" db:"job_title"`
	ExperienceYears *int        `json:"experienceYears,omitempty" db:"experience_years"`
	PhotoURL        *string     `json:"photoUrl,omitempty" db:"photo_url"`
	Location        *string     `json:"location,omitempty" db:"location"`
	User            *User       `json:"user,omitempty"`       // relation, no db tag
	Department      *Department `json:"department,omitempty"` // relation, no db tag
}

// StaffProfile defines the staff model based on the 'staff_profiles' table.
type StaffProfile struct {
	ID              int64       `json:"id" db:"id"`
	UserID          int64       `json:"userId" db:"user_id"`
	Designation     string      `json:"designation" db:"designation"`
	DepartmentID    int64       `json:"departmentId" db:"department_id"`
	Qualification   string      `json:"qualification" db:"qualification"`
	ExperienceYears *int        `json:"experienceYears,omitempty" db:"experience_years"`
	JoinedOn        *time.Time  `json:"joinedOn,omitempty" db:"joined_on"`
	Status          StaffStatus `json:"status" db:"status"`
	Phone           string      `json:"phone" db:"phone"`
	PhotoURL        *string     `json:"photoUrl,omitempty" db:"photo_url"`
	User            *User       `json:"user,omitempty"`
	Department      *Department `json:"department,omitempty"`
}
