package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	appauth "github.com/alumeee/alumniconnect/internal/app/auth"
	"github.com/alumeee/alumniconnect/internal/app/models"
	"github.com/alumeee/alumniconnect/internal/app/models/dto"
	"github.com/alumeee/alumniconnect/internal/app/repositories"
	"github.com/alumeee/alumniconnect/internal/app/repositories/user"
	"github.com/alumeee/alumniconnect/internal/db"
	"github.com/alumeee/alumniconnect/internal/pkg/apperrors"
	"github.com/alumeee/alumniconnect/internal/pkg/auth"
	"github.com/alumeee/alumniconnect/internal/pkg/validation"
)

// AuthService handles registration and authentication
type AuthService struct {
	tx             db.TxRunner
	userRepo       repositories.IUserRepository
	tokenRepo      repositories.ITokenRepository
	departmentRepo repositories.IDepartmentRepository
	jwtService     *auth.JWTService
	roleResolver   *appauth.RoleResolver
	logger         zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	tx db.TxRunner,
	userRepo repositories.IUserRepository,
	tokenRepo repositories.ITokenRepository,
	departmentRepo repositories.IDepartmentRepository,
	jwtService *auth.JWTService,
	roleResolver *appauth.RoleResolver,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		tx:             tx,
		userRepo:       userRepo,
		tokenRepo:      tokenRepo,
		departmentRepo: departmentRepo,
		jwtService:     jwtService,
		roleResolver:   roleResolver,
		logger:         logger,
	}
}

// validateCredentials checks the account fields shared by every registration.
// Password confirmation is checked before anything touches the database.
func (s *AuthService) validateCredentials(req *dto.RegisterRequest) error {
	if req.Password != req.ConfirmPassword {
		return apperrors.ErrPasswordMismatch
	}
	if !validation.IsValidEmail(req.Email) {
		return apperrors.ErrInvalidEmail
	}
	if len(req.Password) < validation.PasswordMinLength {
		return apperrors.NewValidationError(
			fmt.Sprintf("password must be at least %d characters long", validation.PasswordMinLength))
	}
	if strings.TrimSpace(req.FirstName) == "" {
		return apperrors.NewValidationError("first name cannot be empty")
	}
	return nil
}

func (s *AuthService) validateStudentFields(ctx context.Context, req *dto.RegisterRequest) error {
	if !validation.IsValidRollNumber(req.RollNumber) {
		return apperrors.NewValidationError("invalid roll number format")
	}
	if req.YearOfPassing < 1950 || req.YearOfPassing > time.Now().Year()+6 {
		return apperrors.NewValidationError("year of passing is out of range")
	}
	if !validation.IsValidPhone(req.Phone) {
		return apperrors.NewValidationError("invalid phone number format")
	}
	return s.checkDepartment(ctx, req.DepartmentID)
}

func (s *AuthService) validateStaffFields(ctx context.Context, req *dto.RegisterRequest) error {
	if strings.TrimSpace(req.Designation) == "" {
		return apperrors.NewValidationError("designation cannot be empty")
	}
	if req.Status != "" && req.Status != string(models.StaffActive) && req.Status != string(models.StaffInactive) {
		return apperrors.NewValidationError("status must be Active or Inactive")
	}
	if !validation.IsValidPhone(req.Phone) {
		return apperrors.NewValidationError("invalid phone number format")
	}
	return s.checkDepartment(ctx, req.DepartmentID)
}

func (s *AuthService) checkDepartment(ctx context.Context, departmentID int64) error {
	exists, err := s.departmentRepo.Exists(ctx, departmentID)
	if err != nil {
		return fmt.Errorf("error checking department: %w", err)
	}
	if !exists {
		return apperrors.ErrDepartmentNotFound
	}
	return nil
}

// Register creates an account together with its role profile. Both rows
// are written in one transaction: a failed profile insert leaves no
// orphaned user behind.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if err := s.validateCredentials(req); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	switch req.Role {
	case models.ProfileStudent:
		if err := s.validateStudentFields(ctx, req); err != nil {
			return nil, err
		}
		taken, err := s.userRepo.RollNumberExists(ctx, req.RollNumber)
		if err != nil {
			return nil, fmt.Errorf("error checking roll number: %w", err)
		}
		if taken {
			return nil, apperrors.ErrRollNumberAlreadyExists
		}
	case models.ProfileStaff:
		if err := s.validateStaffFields(ctx, req); err != nil {
			return nil, err
		}
	default:
		return nil, apperrors.NewValidationError("role must be student or staff")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	account := &models.User{
		Email:     email,
		Password:  hashedPassword,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
	}

	err = s.tx.WithTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		userID, err := s.userRepo.CreateUserTx(ctx, tx, account)
		if err != nil {
			return err
		}
		account.ID = userID

		switch req.Role {
		case models.ProfileStudent:
			profile := &models.StudentProfile{
				UserID:        userID,
				RollNumber:    req.RollNumber,
				DepartmentID:  req.DepartmentID,
				YearOfPassing: req.YearOfPassing,
				Phone:         req.Phone,
			}
			return s.userRepo.CreateStudentProfileTx(ctx, tx, profile)
		default:
			status := models.StaffStatus(req.Status)
			if status == "" {
				status = models.StaffActive
			}
			profile := &models.StaffProfile{
				UserID:          userID,
				Designation:     strings.TrimSpace(req.Designation),
				DepartmentID:    req.DepartmentID,
				Qualification:   req.Qualification,
				ExperienceYears: req.ExperienceYears,
				Status:          status,
				Phone:           req.Phone,
			}
			if req.JoinedOn != "" {
				joined, err := time.Parse("2006-01-02", req.JoinedOn)
				if err != nil {
					return apperrors.NewValidationError("joinedOn must be YYYY-MM-DD")
				}
				profile.JoinedOn = &joined
			}
			return s.userRepo.CreateStaffProfileTx(ctx, tx, profile)
		}
	})
	if err != nil {
		if errors.Is(err, user.ErrEmailAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		if errors.Is(err, user.ErrRollNumberExists) {
			return nil, apperrors.ErrRollNumberAlreadyExists
		}
		return nil, err
	}

	s.logger.Info().Int64("userID", account.ID).Str("role", string(req.Role)).Msg("Account registered")

	return &dto.RegisterResponse{
		UserID:     account.ID,
		Message:    "registration successful",
		RedirectTo: "/login",
	}, nil
}

// Login authenticates a user and returns a token pair plus the landing
// route for the account's resolved role.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	account, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		// Same error for unknown email and wrong password
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(account.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.userRepo.UpdateLastLogin(ctx, account.ID); err != nil {
		s.logger.Warn().Err(err).Int64("userID", account.ID).Msg("Could not update last login time")
	}

	return s.generateTokenResponse(ctx, account)
}

// RefreshToken rotates a refresh token for a new token pair. The old
// token is revoked before the new pair is issued.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	userID, _, err := s.tokenRepo.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	account, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke old token: %w", err)
	}

	return s.generateTokenResponse(ctx, account)
}

// Logout revokes the given refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if strings.TrimSpace(refreshToken) == "" {
		return apperrors.ErrTokenInvalid
	}
	return s.tokenRepo.RevokeToken(ctx, refreshToken)
}

// LandingRoute resolves the role-appropriate landing route for a user
func (s *AuthService) LandingRoute(ctx context.Context, userID int64) (string, error) {
	role, err := s.roleResolver.Resolve(ctx, userID)
	if err != nil {
		return "", err
	}
	return role.LandingRoute(), nil
}

// generateTokenResponse creates a token pair, persists the refresh token
// and resolves the landing route.
func (s *AuthService) generateTokenResponse(ctx context.Context, account *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(account)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	tokenExpiry := s.jwtService.GetRefreshTokenExpiry()
	if err := s.tokenRepo.CreateToken(ctx, refreshToken, account.ID, tokenExpiry); err != nil {
		return nil, fmt.Errorf("token saving error: %w", err)
	}

	role, err := s.roleResolver.Resolve(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("role resolution error: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		TokenType:        "Bearer",
		ExpiresIn:        int64(expiresIn),
		RefreshExpiresIn: int64(refreshExpiresIn),
		RedirectTo:       role.LandingRoute(),
	}, nil
}
