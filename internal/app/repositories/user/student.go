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

var (
	ErrRollNumberExists  = apperrors.ErrRollNumberAlreadyExists
	ErrStudentNotFound   = apperrors.ErrStudentNotFound
	ErrProfileAlreadySet = apperrors.ErrProfileExists
)

// StudentRepository handles student profile database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateStudentProfileTx creates a student profile inside an existing transaction
func (r *StudentRepository) CreateStudentProfileTx(ctx context.Context, tx pgx.Tx, profile *models.StudentProfile) error {
	sql, args, err := r.sb.Insert("student_profiles").
		Columns("user_id", "roll_number", "department_id", "year_of_passing", "phone",
			"employer", "job_title", "experience_years", "photo_url", "location").
		Values(profile.UserID, profile.RollNumber, profile.DepartmentID, profile.YearOfPassing, profile.Phone,
			profile.Employer, profile.JobTitle, profile.ExperienceYears, profile.PhotoURL, profile.Location).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create student profile SQL")
		return fmt.Errorf("failed to build create student profile query: %w", err)
	}

	err = tx.QueryRow(ctx, sql, args...).Scan(&profile.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "student_profiles_roll_number_key") {
			logger.Warn().Str("rollNumber", profile.RollNumber).Msg("Attempted to create student profile with duplicate roll number")
			return ErrRollNumberExists
		}
		if dberrors.IsDuplicateConstraintError(err, "student_profiles_user_id_key") {
			return ErrProfileAlreadySet
		}
		logger.Error().Err(err).Int64("userID", profile.UserID).Str("rollNumber", profile.RollNumber).Msg("Error executing create student profile query")
		return fmt.Errorf("error creating student profile: %w", err)
	}

	logger.Info().Int64("userID", profile.UserID).Str("rollNumber", profile.RollNumber).Msg("Student profile created")
	return nil
}

const studentColumns = "id, user_id, roll_number, department_id, year_of_passing, phone, employer, job_title, experience_years, photo_url, location"

func scanStudent(row pgx.Row, profile *models.StudentProfile) error {
	return row.Scan(
		&profile.ID, &profile.UserID, &profile.RollNumber, &profile.DepartmentID, &profile.YearOfPassing,
		&profile.Phone, &profile.Employer, &profile.JobTitle, &profile.ExperienceYears, &profile.PhotoURL, &profile.Location)
}

// GetStudentByUserID retrieves a student profile by user ID
func (r *StudentRepository) GetStudentByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	sql, args, err := r.sb.Select(studentColumns).
		From("student_profiles").
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get student by user ID SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	var profile models.StudentProfile
	err = scanStudent(r.db.QueryRow(ctx, sql, args...), &profile)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error scanning student profile row")
		return nil, fmt.Errorf("error retrieving student profile: %w", err)
	}

	return &profile, nil
}

// GetStudentByRollNumber retrieves a student profile by roll number
func (r *StudentRepository) GetStudentByRollNumber(ctx context.Context, rollNumber string) (*models.StudentProfile, error) {
	sql, args, err := r.sb.Select(studentColumns).
		From("student_profiles").
		Where(squirrel.Eq{"roll_number": rollNumber}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	var profile models.StudentProfile
	err = scanStudent(r.db.QueryRow(ctx, sql, args...), &profile)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student profile: %w", err)
	}

	return &profile, nil
}

// RollNumberExists checks if a roll number already exists
func (r *StudentRepository) RollNumberExists(ctx context.Context, rollNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM student_profiles WHERE roll_number = $1)`,
		rollNumber).Scan(&exists)

	if err != nil {
		logger.Error().Err(err).Str("rollNumber", rollNumber).Msg("Error checking roll number existence")
		return false, fmt.Errorf("error checking roll number existence: %w", err)
	}

	return exists, nil
}

// UpdateStudentProfile updates the mutable fields of a student profile
func (r *StudentRepository) UpdateStudentProfile(ctx context.Context, profile *models.StudentProfile) error {
	sql, args, err := r.sb.Update("student_profiles").
		Set("phone", profile.Phone).
		Set("employer", profile.Employer).
		Set("job_title", profile.JobTitle).
		Set("experience_years", profile.ExperienceYears).
		Set("location", profile.Location).
		Where(squirrel.Eq{"user_id": profile.UserID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build update student profile query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating student profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}

	return nil
}

// UpdateStudentPhotoURL sets the profile photo URL for a student
func (r *StudentRepository) UpdateStudentPhotoURL(ctx context.Context, userID int64, photoURL *string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE student_profiles SET photo_url = $1 WHERE user_id = $2`,
		photoURL, userID)
	if err != nil {
		return fmt.Errorf("error updating student photo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}
	return nil
}

// CountStudents returns the number of student profiles
func (r *StudentRepository) CountStudents(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM student_profiles`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}

// ListStudents retrieves a page of student profiles with optional filters,
// joined with their user and department rows.
func (r *StudentRepository) ListStudents(ctx context.Context, departmentID int64, yearOfPassing int, offset uint64, limit int) ([]*models.StudentProfile, int64, error) {
	base := r.sb.Select(
		"sp.id", "sp.user_id", "sp.roll_number", "sp.department_id", "sp.year_of_passing",
		"sp.phone", "sp.employer", "sp.job_title", "sp.experience_years", "sp.photo_url", "sp.location",
		"u.first_name", "u.last_name", "u.email", "d.name").
		From("student_profiles sp").
		Join("users u ON u.id = sp.user_id").
		Join("departments d ON d.id = sp.department_id")

	countQuery := r.sb.Select("COUNT(*)").From("student_profiles sp")

	if departmentID > 0 {
		base = base.Where(squirrel.Eq{"sp.department_id": departmentID})
		countQuery = countQuery.Where(squirrel.Eq{"sp.department_id": departmentID})
	}
	if yearOfPassing > 0 {
		base = base.Where(squirrel.Eq{"sp.year_of_passing": yearOfPassing})
		countQuery = countQuery.Where(squirrel.Eq{"sp.year_of_passing": yearOfPassing})
	}

	countSQL, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	listSQL, listArgs, err := base.
		OrderBy("sp.roll_number ASC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := r.db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var profiles []*models.StudentProfile
	for rows.Next() {
		profile := &models.StudentProfile{
			User:       &models.User{},
			Department: &models.Department{},
		}
		err := rows.Scan(
			&profile.ID, &profile.UserID, &profile.RollNumber, &profile.DepartmentID, &profile.YearOfPassing,
			&profile.Phone, &profile.Employer, &profile.JobTitle, &profile.ExperienceYears, &profile.PhotoURL, &profile.Location,
			&profile.User.FirstName, &profile.User.LastName, &profile.User.Email, &profile.Department.Name)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning student row: %w", err)
		}
		profile.User.ID = profile.UserID
		profile.Department.ID = profile.DepartmentID
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating student rows: %w", err)
	}

	return profiles, total, nil
}
