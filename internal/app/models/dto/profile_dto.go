package dto

// ProfileResponse is the caller's own full profile (private read path).
type ProfileResponse struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Role       string `json:"role" example:"student" enums:"admin,staff,student,guest"`
	RedirectTo string `json:"redirectTo"`

	// Student fields
	RollNumber    *string `json:"rollNumber,omitempty"`
	YearOfPassing *int    `json:"yearOfPassing,omitempty"`
	Employer      *string `json:"employer,omitempty"`
	JobTitle      *string `json:"jobTitle,omitempty"`
	Location      *string `json:"location,omitempty"`

	// Staff fields
	Designation   *string `json:"designation,omitempty"`
	Qualification *string `json:"qualification,omitempty"`
	Status        *string `json:"status,omitempty"`

	// Shared
	DepartmentID    *int64  `json:"departmentId,omitempty"`
	DepartmentName  *string `json:"departmentName,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	ExperienceYears *int    `json:"experienceYears,omitempty"`
	PhotoURL        *string `json:"photoUrl,omitempty"`
}

// PublicProfileResponse is the read-only projection shown to other users.
// Contact details stay private.
type PublicProfileResponse struct {
	ID             int64   `json:"id"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Role           string  `json:"role"`
	DepartmentName *string `json:"departmentName,omitempty"`
	YearOfPassing  *int    `json:"yearOfPassing,omitempty"`
	Designation    *string `json:"designation,omitempty"`
	Employer       *string `json:"employer,omitempty"`
	JobTitle       *string `json:"jobTitle,omitempty"`
	PhotoURL       *string `json:"photoUrl,omitempty"`
}

// UpdateProfileRequest carries the editable profile fields. Role-specific
// fields are ignored when they don't apply to the caller's role.
type UpdateProfileRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone,omitempty"`

	// Student fields
	Employer *string `json:"employer,omitempty"`
	JobTitle *string `json:"jobTitle,omitempty"`
	Location *string `json:"location,omitempty"`

	// Staff fields
	Designation   *string `json:"designation,omitempty"`
	Qualification *string `json:"qualification,omitempty"`
	Status        *string `json:"status,omitempty"`

	ExperienceYears *int `json:"experienceYears,omitempty"`
}

// PhotoResponse returns the stored URI of an uploaded photo
type PhotoResponse struct {
	PhotoURL string `json:"photoUrl"`
}

// StudentListItem is a row in the staff-facing student listing
type StudentListItem struct {
	ID             int64   `json:"id"`
	UserID         int64   `json:"userId"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Email          string  `json:"email"`
	RollNumber     string  `json:"rollNumber"`
	DepartmentName *string `json:"departmentName,omitempty"`
	YearOfPassing  int     `json:"yearOfPassing"`
	Phone          string  `json:"phone"`
}

// StudentListResponse is a paginated student listing
type StudentListResponse struct {
	Students []StudentListItem `json:"students"`
	PaginationInfo
}

// StudentFilterRequest represents student listing filters
type StudentFilterRequest struct {
	DepartmentID  *int64 `form:"departmentId"`
	YearOfPassing *int   `form:"yearOfPassing"`
	Page          int    `form:"page,default=1" binding:"min=1"`
	PageSize      int    `form:"pageSize,default=10" binding:"min=1,max=100"`
}
