package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alumeee/alumniconnect/internal/app/models"
	"github.com/alumeee/alumniconnect/internal/app/models/dto"
	"github.com/alumeee/alumniconnect/internal/app/repositories"
	"github.com/alumeee/alumniconnect/internal/app/repositories/user"
	"github.com/alumeee/alumniconnect/internal/pkg/apperrors"
	"github.com/alumeee/alumniconnect/internal/pkg/helpers"
	"github.com/alumeee/alumniconnect/internal/pkg/validation"
)

// AlumniService handles alumni records and their verification workflow
type AlumniService struct {
	alumniRepo      repositories.IAlumniRepository
	userRepo        repositories.IUserRepository
	departmentRepo  repositories.IDepartmentRepository
	notificationSvc *NotificationService
	logger          zerolog.Logger
}

// NewAlumniService creates a new AlumniService
func NewAlumniService(
	alumniRepo repositories.IAlumniRepository,
	userRepo repositories.IUserRepository,
	departmentRepo repositories.IDepartmentRepository,
	notificationSvc *NotificationService,
	logger zerolog.Logger,
) *AlumniService {
	return &AlumniService{
		alumniRepo:      alumniRepo,
		userRepo:        userRepo,
		departmentRepo:  departmentRepo,
		notificationSvc: notificationSvc,
		logger:          logger,
	}
}

func toAlumniResponse(alumni *models.Alumni) dto.AlumniResponse {
	resp := dto.AlumniResponse{
		ID:             alumni.ID,
		UserID:         alumni.UserID,
		GraduationYear: alumni.GraduationYear,
		RollNumber:     alumni.RollNumber,
		Employer:       alumni.Employer,
		JobTitle:       alumni.JobTitle,
		PhotoURL:       alumni.PhotoURL,
		IsBlocked:      alumni.IsBlocked,
	}
	if alumni.User != nil {
		resp.Name = strings.TrimSpace(alumni.User.FirstName + " " + alumni.User.LastName)
	}
	if alumni.Department != nil {
		resp.DepartmentName = &alumni.Department.Name
	}
	if alumni.Verification != nil {
		resp.IsVerified = alumni.Verification.IsVerified
		resp.VerifiedAt = alumni.Verification.VerifiedAt
	}
	return resp
}

// Create files an alumni record for the caller. The record starts
// unverified and waits for an admin to check it against the student roll.
func (s *AlumniService) Create(ctx context.Context, userID int64, req *dto.CreateAlumniRequest) (*dto.AlumniResponse, error) {
	if !validation.IsValidRollNumber(req.RollNumber) {
		return nil, apperrors.NewValidationError("invalid roll number format")
	}
	if req.GraduationYear < 1950 || req.GraduationYear > time.Now().Year() {
		return nil, apperrors.NewValidationError("graduation year is out of range")
	}

	exists, err := s.departmentRepo.Exists(ctx, req.DepartmentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrDepartmentNotFound
	}

	alumni := &models.Alumni{
		UserID:         userID,
		GraduationYear: req.GraduationYear,
		DepartmentID:   req.DepartmentID,
		RollNumber:     strings.TrimSpace(req.RollNumber),
		Employer:       req.Employer,
		JobTitle:       req.JobTitle,
	}

	id, err := s.alumniRepo.Create(ctx, alumni)
	if err != nil {
		if errors.Is(err, repositories.ErrAlumniRecordExists) {
			return nil, apperrors.NewConflictError("an alumni record has already been filed for this account")
		}
		return nil, err
	}

	created, err := s.alumniRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := toAlumniResponse(created)
	return &resp, nil
}

// GetMine returns the caller's own alumni record
func (s *AlumniService) GetMine(ctx context.Context, userID int64) (*dto.AlumniResponse, error) {
	alumni, err := s.alumniRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := toAlumniResponse(alumni)
	return &resp, nil
}

// Get returns an alumni record by ID
func (s *AlumniService) Get(ctx context.Context, alumniID int64) (*dto.AlumniResponse, error) {
	alumni, err := s.alumniRepo.GetByID(ctx, alumniID)
	if err != nil {
		return nil, err
	}
	resp := toAlumniResponse(alumni)
	return &resp, nil
}

// List returns a page of alumni. Non-admin callers only see verified records.
func (s *AlumniService) List(ctx context.Context, includeUnverified bool, page, size int) (*dto.AlumniListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	records, total, err := s.alumniRepo.List(ctx, !includeUnverified, offset, limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.AlumniResponse, 0, len(records))
	for _, alumni := range records {
		items = append(items, toAlumniResponse(alumni))
	}

	return &dto.AlumniListResponse{
		Alumni:         items,
		PaginationInfo: helpers.NewPaginationInfo(total, page, size),
	}, nil
}

// Verify approves an alumni record after cross-checking its roll number
// and department against the student roll. A record whose roll number is
// unknown, or whose department doesn't match the student profile, is
// rejected as a mismatch.
func (s *AlumniService) Verify(ctx context.Context, alumniID int64) (*dto.AlumniResponse, error) {
	alumni, err := s.alumniRepo.GetByID(ctx, alumniID)
	if err != nil {
		return nil, err
	}
	if alumni.Verification != nil && alumni.Verification.IsVerified {
		return nil, apperrors.ErrAlumniAlreadyVerified
	}

	student, err := s.userRepo.GetStudentByRollNumber(ctx, alumni.RollNumber)
	if err != nil {
		if errors.Is(err, user.ErrStudentNotFound) {
			return nil, apperrors.ErrAlumniRecordMismatch
		}
		return nil, err
	}
	if student.DepartmentID != alumni.DepartmentID {
		return nil, apperrors.ErrAlumniRecordMismatch
	}

	if err := s.alumniRepo.Verify(ctx, alumniID); err != nil {
		return nil, err
	}

	if err := s.notificationSvc.Notify(ctx, alumni.UserID,
		"Alumni record verified",
		"Your alumni record has been verified. Welcome back!"); err != nil {
		s.logger.Warn().Err(err).Int64("userID", alumni.UserID).Msg("Could not send verification notice")
	}

	return s.Get(ctx, alumniID)
}

// Reject removes an unverified alumni record
func (s *AlumniService) Reject(ctx context.Context, alumniID int64) error {
	alumni, err := s.alumniRepo.GetByID(ctx, alumniID)
	if err != nil {
		return err
	}
	if alumni.Verification != nil && alumni.Verification.IsVerified {
		return apperrors.NewConflictError("verified records cannot be rejected")
	}

	if err := s.alumniRepo.Delete(ctx, alumniID); err != nil {
		return err
	}

	s.logger.Info().Int64("alumniID", alumniID).Msg("Alumni record rejected")
	return nil
}

// SetBlocked blocks or unblocks an alumni record
func (s *AlumniService) SetBlocked(ctx context.Context, alumniID int64, blocked bool) error {
	if err := s.alumniRepo.SetBlocked(ctx, alumniID, blocked); err != nil {
		return err
	}
	s.logger.Info().Int64("alumniID", alumniID).Bool("blocked", blocked).Msg("Alumni blocked flag updated")
	return nil
}
