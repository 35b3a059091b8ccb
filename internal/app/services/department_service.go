package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/alumeee/alumniconnect/internal/app/models"
	"github.com/alumeee/alumniconnect/internal/app/models/dto"
	"github.com/alumeee/alumniconnect/internal/app/repositories"
	"github.com/alumeee/alumniconnect/internal/pkg/apperrors"
)

// DepartmentService handles departments
type DepartmentService struct {
	departmentRepo repositories.IDepartmentRepository
	logger         zerolog.Logger
}

// NewDepartmentService creates a new DepartmentService
func NewDepartmentService(departmentRepo repositories.IDepartmentRepository, logger zerolog.Logger) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
		logger:         logger,
	}
}

// Create adds a new department
func (s *DepartmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("department name cannot be empty")
	}

	department := &models.Department{Name: name}
	id, err := s.departmentRepo.Create(ctx, department)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("departmentID", id).Str("name", name).Msg("Department created")
	return &dto.DepartmentResponse{ID: id, Name: name}, nil
}

// List returns all departments
func (s *DepartmentService) List(ctx context.Context) (*dto.DepartmentListResponse, error) {
	departments, err := s.departmentRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.DepartmentResponse, 0, len(departments))
	for _, department := range departments {
		items = append(items, dto.DepartmentResponse{ID: department.ID, Name: department.Name})
	}

	return &dto.DepartmentListResponse{Departments: items}, nil
}
