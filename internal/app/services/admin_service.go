package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/alumeee/alumniconnect/internal/app/models/dto"
	"github.com/alumeee/alumniconnect/internal/app/repositories"
)

// AdminService aggregates the counters behind the admin dashboard
type AdminService struct {
	userRepo   repositories.IUserRepository
	alumniRepo repositories.IAlumniRepository
	memoryRepo repositories.IMemoryRepository
	eventRepo  repositories.IEventRepository
	logger     zerolog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(
	userRepo repositories.IUserRepository,
	alumniRepo repositories.IAlumniRepository,
	memoryRepo repositories.IMemoryRepository,
	eventRepo repositories.IEventRepository,
	logger zerolog.Logger,
) *AdminService {
	return &AdminService{
		userRepo:   userRepo,
		alumniRepo: alumniRepo,
		memoryRepo: memoryRepo,
		eventRepo:  eventRepo,
		logger:     logger,
	}
}

// Dashboard returns the admin dashboard counters
func (s *AdminService) Dashboard(ctx context.Context) (*dto.AdminDashboardResponse, error) {
	students, err := s.userRepo.CountStudents(ctx)
	if err != nil {
		return nil, err
	}
	staff, err := s.userRepo.CountStaff(ctx)
	if err != nil {
		return nil, err
	}
	alumni, err := s.alumniRepo.CountVerified(ctx)
	if err != nil {
		return nil, err
	}
	pendingAlumni, err := s.alumniRepo.CountPending(ctx)
	if err != nil {
		return nil, err
	}
	pendingMemories, err := s.memoryRepo.CountPending(ctx)
	if err != nil {
		return nil, err
	}
	events, err := s.eventRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AdminDashboardResponse{
		StudentCount:       students,
		StaffCount:         staff,
		AlumniCount:        alumni,
		EventCount:         events,
		PendingMemoryCount: pendingMemories,
		PendingAlumniCount: pendingAlumni,
	}, nil
}
