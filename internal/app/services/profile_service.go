package services

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	appauth "github.com/alumeee/alumniconnect/internal/app/auth"
	"github.com/alumeee/alumniconnect/internal/app/models"
	"github.com/alumeee/alumniconnect/internal/app/models/dto"
	"github.com/alumeee/alumniconnect/internal/app/repositories"
	"github.com/alumeee/alumniconnect/internal/pkg/apperrors"
	"github.com/alumeee/alumniconnect/internal/pkg/filestorage"
	"github.com/alumeee/alumniconnect/internal/pkg/helpers"
	"github.com/alumeee/alumniconnect/internal/pkg/validation"
)

var allowedPhotoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ProfileService handles profile reads and edits
type ProfileService struct {
	userRepo       repositories.IUserRepository
	departmentRepo repositories.IDepartmentRepository
	roleResolver   *appauth.RoleResolver
	storage        filestorage.FileStorage
	logger         zerolog.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(
	userRepo repositories.IUserRepository,
	departmentRepo repositories.IDepartmentRepository,
	roleResolver *appauth.RoleResolver,
	storage filestorage.FileStorage,
	logger zerolog.Logger,
) *ProfileService {
	return &ProfileService{
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
		roleResolver:   roleResolver,
		storage:        storage,
		logger:         logger,
	}
}

func (s *ProfileService) departmentName(ctx context.Context, departmentID int64) *string {
	department, err := s.departmentRepo.GetByID(ctx, departmentID)
	if err != nil {
		s.logger.Warn().Err(err).Int64("departmentID", departmentID).Msg("Could not resolve department name for profile")
		return nil
	}
	return &department.Name
}

// GetOwnProfile returns the caller's full profile including private fields
func (s *ProfileService) GetOwnProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	account, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	role, err := s.roleResolver.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.ProfileResponse{
		ID:         account.ID,
		Email:      account.Email,
		FirstName:  account.FirstName,
		LastName:   account.LastName,
		Role:       string(role),
		RedirectTo: role.LandingRoute(),
	}

	switch role {
	case appauth.RoleStudent:
		profile, err := s.userRepo.GetStudentByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		resp.RollNumber = &profile.RollNumber
		resp.YearOfPassing = &profile.YearOfPassing
		resp.Employer = profile.Employer
		resp.JobTitle = profile.JobTitle
		resp.Location = profile.Location
		resp.ExperienceYears = profile.ExperienceYears
		resp.PhotoURL = profile.PhotoURL
		resp.Phone = &profile.Phone
		resp.DepartmentID = &profile.DepartmentID
		resp.DepartmentName = s.departmentName(ctx, profile.DepartmentID)
	case appauth.RoleStaff:
		profile, err := s.userRepo.GetStaffByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		status := string(profile.Status)
		resp.Designation = &profile.Designation
		resp.Qualification = &profile.Qualification
		resp.Status = &status
		resp.ExperienceYears = profile.ExperienceYears
		resp.PhotoURL = profile.PhotoURL
		resp.Phone = &profile.Phone
		resp.DepartmentID = &profile.DepartmentID
		resp.DepartmentName = s.departmentName(ctx, profile.DepartmentID)
	}

	return resp, nil
}

// GetPublicProfile returns another user's profile with contact details removed
func (s *ProfileService) GetPublicProfile(ctx context.Context, userID int64) (*dto.PublicProfileResponse, error) {
	account, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	role, err := s.roleResolver.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.PublicProfileResponse{
		ID:        account.ID,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Role:      string(role),
	}

	switch role {
	case appauth.RoleStudent:
		profile, err := s.userRepo.GetStudentByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		resp.YearOfPassing = &profile.YearOfPassing
		resp.Employer = profile.Employer
		resp.JobTitle = profile.JobTitle
		resp.PhotoURL = profile.PhotoURL
		resp.DepartmentName = s.departmentName(ctx, profile.DepartmentID)
	case appauth.RoleStaff:
		profile, err := s.userRepo.GetStaffByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		resp.Designation = &profile.Designation
		resp.PhotoURL = profile.PhotoURL
		resp.DepartmentName = s.departmentName(ctx, profile.DepartmentID)
	}

	return resp, nil
}

// UpdateOwnProfile edits the caller's own profile. Role-specific fields
// that don't apply to the caller's role are ignored.
func (s *ProfileService) UpdateOwnProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	account, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	if strings.TrimSpace(req.FirstName) == "" {
		return nil, apperrors.NewValidationError("first name cannot be empty")
	}
	if !validation.IsValidPhone(req.Phone) {
		return nil, apperrors.NewValidationError("invalid phone number format")
	}

	account.FirstName = strings.TrimSpace(req.FirstName)
	account.LastName = strings.TrimSpace(req.LastName)
	if err := s.userRepo.UpdateUser(ctx, account); err != nil {
		return nil, err
	}

	role, err := s.roleResolver.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	switch role {
	case appauth.RoleStudent:
		profile, err := s.userRepo.GetStudentByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if req.Phone != "" {
			profile.Phone = req.Phone
		}
		if req.Employer != nil {
			profile.Employer = req.Employer
		}
		if req.JobTitle != nil {
			profile.JobTitle = req.JobTitle
		}
		if req.Location != nil {
			profile.Location = req.Location
		}
		if req.ExperienceYears != nil {
			profile.ExperienceYears = req.ExperienceYears
		}
		if err := s.userRepo.UpdateStudentProfile(ctx, profile); err != nil {
			return nil, err
		}
	case appauth.RoleStaff:
		profile, err := s.userRepo.GetStaffByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if req.Phone != "" {
			profile.Phone = req.Phone
		}
		if req.Designation != nil && strings.TrimSpace(*req.Designation) != "" {
			profile.Designation = strings.TrimSpace(*req.Designation)
		}
		if req.Qualification != nil {
			profile.Qualification = *req.Qualification
		}
		if req.Status != nil {
			status := models.StaffStatus(*req.Status)
			if status != models.StaffActive && status != models.StaffInactive {
				return nil, apperrors.NewValidationError("status must be Active or Inactive")
			}
			profile.Status = status
		}
		if req.ExperienceYears != nil {
			profile.ExperienceYears = req.ExperienceYears
		}
		if err := s.userRepo.UpdateStaffProfile(ctx, profile); err != nil {
			return nil, err
		}
	}

	return s.GetOwnProfile(ctx, userID)
}

// UploadPhoto stores a profile photo and attaches it to the caller's profile
func (s *ProfileService) UploadPhoto(ctx context.Context, userID int64, file *multipart.FileHeader) (*dto.PhotoResponse, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedPhotoExtensions[ext] {
		return nil, apperrors.NewValidationError("unsupported image type")
	}

	role, err := s.roleResolver.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	photoURL, err := s.storage.SaveFile(file)
	if err != nil {
		return nil, err
	}

	switch role {
	case appauth.RoleStudent:
		err = s.userRepo.UpdateStudentPhotoURL(ctx, userID, &photoURL)
	case appauth.RoleStaff:
		err = s.userRepo.UpdateStaffPhotoURL(ctx, userID, &photoURL)
	default:
		err = apperrors.ErrPermissionDenied
	}
	if err != nil {
		// Don't leave orphaned files behind on failure
		if delErr := s.storage.DeleteFile(photoURL); delErr != nil {
			s.logger.Warn().Err(delErr).Str("photoURL", photoURL).Msg("Could not remove orphaned photo")
		}
		return nil, err
	}

	return &dto.PhotoResponse{PhotoURL: photoURL}, nil
}

// DeleteStudent removes a student account along with its profile and owned
// rows, which cascade at the database level.
func (s *ProfileService) DeleteStudent(ctx context.Context, userID int64) error {
	if _, err := s.userRepo.GetStudentByUserID(ctx, userID); err != nil {
		return err
	}

	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		return err
	}

	s.logger.Info().Int64("userID", userID).Msg("Student account deleted")
	return nil
}

// ListStudents returns a filtered, paginated student directory
func (s *ProfileService) ListStudents(ctx context.Context, filter *dto.StudentFilterRequest) (*dto.StudentListResponse, error) {
	var departmentID int64
	if filter.DepartmentID != nil {
		departmentID = *filter.DepartmentID
	}
	var yearOfPassing int
	if filter.YearOfPassing != nil {
		yearOfPassing = *filter.YearOfPassing
	}

	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.PageSize)

	profiles, total, err := s.userRepo.ListStudents(ctx, departmentID, yearOfPassing, offset, limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.StudentListItem, 0, len(profiles))
	for _, profile := range profiles {
		item := dto.StudentListItem{
			ID:            profile.ID,
			UserID:        profile.UserID,
			RollNumber:    profile.RollNumber,
			YearOfPassing: profile.YearOfPassing,
			Phone:         profile.Phone,
		}
		if profile.User != nil {
			item.FirstName = profile.User.FirstName
			item.LastName = profile.User.LastName
			item.Email = profile.User.Email
		}
		if profile.Department != nil {
			item.DepartmentName = &profile.Department.Name
		}
		items = append(items, item)
	}

	return &dto.StudentListResponse{
		Students:       items,
		PaginationInfo: helpers.NewPaginationInfo(total, filter.Page, filter.PageSize),
	}, nil
}
