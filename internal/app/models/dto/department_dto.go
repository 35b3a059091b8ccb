package dto

// DepartmentResponse represents basic department information
type DepartmentResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreateDepartmentRequest represents department creation data
type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required"`
}

// DepartmentListResponse represents a list of departments
type DepartmentListResponse struct {
	Departments []DepartmentResponse `json:"departments"`
}
