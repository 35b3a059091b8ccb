package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alumeee/alumniconnect/internal/app/models"
	"github.com/alumeee/alumniconnect/internal/pkg/apperrors"
	"github.com/alumeee/alumniconnect/internal/pkg/dberrors"
	"github.com/alumeee/alumniconnect/internal/pkg/logger"
)

var ErrStaffNotFound = apperrors.ErrStaffNotFound

// StaffRepository handles staff profile database operations
type StaffRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStaffRepository creates a new StaffRepository
func NewStaffRepository(db *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateStaffProfileTx creates a staff profile inside an existing transaction
func (r *StaffRepository) CreateStaffProfileTx(ctx context.Context, tx pgx.Tx, profile *models.StaffProfile) error {
	sql, args, err := r.sb.Insert("staff_profiles").
		Columns("user_id", "designation", "department_id", "qualification",
			"experience_years", "joined_on", "status", "phone", "photo_url").
		Values(profile.UserID, profile.Designation, profile.DepartmentID, profile.Qualification,
			profile.ExperienceYears, profile.JoinedOn, profile.Status, profile.Phone, profile.PhotoURL).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create staff profile SQL")
		return fmt.Errorf("failed to build create staff profile query: %w", err)
	}

	err = tx.QueryRow(ctx, sql, args...).Scan(&profile.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "staff_profiles_user_id_key") {
			return ErrProfileAlreadySet
		}
		logger.Error().Err(err).Int64("userID", profile.UserID).Msg("Error executing create staff profile query")
		return fmt.Errorf("error creating staff profile: %w", err)
	}

	logger.Info().Int64("userID", profile.UserID).Str("designation", profile.Designation).Msg("Staff profile created")
	return nil
}

const staffColumns = "id, user_id, designation, department_id, qualification, experience_years, joined_on, status, phone, photo_url"

func scanStaff(row pgx.Row, profile *models.StaffProfile) error {
	return row.Scan(
		&profile.ID, &profile.UserID, &profile.Designation, &profile.DepartmentID, &profile.Qualification,
		&profile.ExperienceYears, &profile.JoinedOn, &profile.Status, &profile.Phone, &profile.PhotoURL)
}

// GetStaffByUserID retrieves a staff profile by user ID
func (r *StaffRepository) GetStaffByUserID(ctx context.Context, userID int64) (*models.StaffProfile, error) {
	sql, args, err := r.sb.Select(staffColumns).
		From("staff_profiles").
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build get staff query: %w", err)
	}

	var profile models.StaffProfile
	err = scanStaff(r.db.QueryRow(ctx, sql, args...), &profile)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStaffNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error scanning staff profile row")
		return nil, fmt.Errorf("error retrieving staff profile: %w", err)
	}

	return &profile, nil
}

// UpdateStaffProfile updates the mutable fields of a staff profile
func (r *StaffRepository) UpdateStaffProfile(ctx context.Context, profile *models.StaffProfile) error {
	sql, args, err := r.sb.Update("staff_profiles").
		Set("designation", profile.Designation).
		Set("qualification", profile.Qualification).
		Set("experience_years", profile.ExperienceYears).
		Set("status", profile.Status).
		Set("phone", profile.Phone).
		Where(squirrel.Eq{"user_id": profile.UserID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build update staff profile query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating staff profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrStaffNotFound
	}

	return nil
}

// UpdateStaffPhotoURL sets the profile photo URL for a staff member
func (r *StaffRepository) UpdateStaffPhotoURL(ctx context.Context, userID int64, photoURL *string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE staff_profiles SET photo_url = $1 WHERE user_id = $2`,
		photoURL, userID)
	if err != nil {
		return fmt.Errorf("error updating staff photo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrStaffNotFound
	}
	return nil
}

// CountStaff returns the number of staff profiles
func (r *StaffRepository) CountStaff(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM staff_profiles`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting staff: %w", err)
	}
	return count, nil
}
