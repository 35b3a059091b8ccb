package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alumeee/alumniconnect/internal/app/models"
	"github.com/alumeee/alumniconnect/internal/pkg/apperrors"
	"github.com/alumeee/alumniconnect/internal/pkg/dberrors"
	"github.com/alumeee/alumniconnect/internal/pkg/logger"
)

var (
	ErrAlumniNotFound        = apperrors.ErrAlumniNotFound
	ErrAlumniRecordExists    = errors.New("alumni record already filed")
	ErrAlumniAlreadyVerified = apperrors.ErrAlumniAlreadyVerified
)

// IAlumniRepository defines the interface for alumni database operations
type IAlumniRepository interface {
	Create(ctx context.Context, alumni *models.Alumni) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Alumni, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Alumni, error)
	List(ctx context.Context, verifiedOnly bool, offset uint64, limit int) ([]*models.Alumni, int64, error)
	Verify(ctx context.Context, alumniID int64) error
	Delete(ctx context.Context, alumniID int64) error
	SetBlocked(ctx context.Context, alumniID int64, blocked bool) error
	CountVerified(ctx context.Context) (int64, error)
	CountPending(ctx context.Context) (int64, error)
}

// AlumniRepository handles alumni database operations
type AlumniRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAlumniRepository creates a new AlumniRepository
func NewAlumniRepository(db *pgxpool.Pool) *AlumniRepository {
	return &AlumniRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create files a new alumni record along with its pending verification row.
// Both rows are written in one transaction so a record is never left without
// a verification state.
func (r *AlumniRepository) Create(ctx context.Context, alumni *models.Alumni) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO alumni (user_id, graduation_year, department_id, roll_number, employer, job_title, photo_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		alumni.UserID, alumni.GraduationYear, alumni.DepartmentID, alumni.RollNumber,
		alumni.Employer, alumni.JobTitle, alumni.PhotoURL).Scan(&id)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "alumni_user_id_key") {
			return 0, ErrAlumniRecordExists
		}
		return 0, fmt.Errorf("error creating alumni record: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO verified_alumni (alumni_id, is_verified)
		VALUES ($1, FALSE)`,
		id)
	if err != nil {
		return 0, fmt.Errorf("error creating verification row: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.Info().Int64("alumniID", id).Int64("userID", alumni.UserID).Msg("Alumni record filed")
	return id, nil
}

const alumniSelect = `
	SELECT a.id, a.user_id, a.graduation_year, a.department_id, a.roll_number,
	       a.employer, a.job_title, a.photo_url, a.is_blocked,
	       u.first_name, u.last_name, u.email, d.name,
	       v.is_verified, v.verified_at
	FROM alumni a
	JOIN users u ON u.id = a.user_id
	JOIN departments d ON d.id = a.department_id
	JOIN verified_alumni v ON v.alumni_id = a.id`

func scanAlumni(row pgx.Row) (*models.Alumni, error) {
	alumni := &models.Alumni{
		User:         &models.User{},
		Department:   &models.Department{},
		Verification: &models.VerifiedAlumni{},
	}
	err := row.Scan(
		&alumni.ID, &alumni.UserID, &alumni.GraduationYear, &alumni.DepartmentID, &alumni.RollNumber,
		&alumni.Employer, &alumni.JobTitle, &alumni.PhotoURL, &alumni.IsBlocked,
		&alumni.User.FirstName, &alumni.User.LastName, &alumni.User.Email, &alumni.Department.Name,
		&alumni.Verification.IsVerified, &alumni.Verification.VerifiedAt)
	if err != nil {
		return nil, err
	}
	alumni.User.ID = alumni.UserID
	alumni.Department.ID = alumni.DepartmentID
	alumni.Verification.AlumniID = alumni.ID
	return alumni, nil
}

// GetByID retrieves an alumni record by ID
func (r *AlumniRepository) GetByID(ctx context.Context, id int64) (*models.Alumni, error) {
	alumni, err := scanAlumni(r.db.QueryRow(ctx, alumniSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAlumniNotFound
		}
		return nil, fmt.Errorf("error retrieving alumni record: %w", err)
	}
	return alumni, nil
}

// GetByUserID retrieves an alumni record by the owning user's ID
func (r *AlumniRepository) GetByUserID(ctx context.Context, userID int64) (*models.Alumni, error) {
	alumni, err := scanAlumni(r.db.QueryRow(ctx, alumniSelect+` WHERE a.user_id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAlumniNotFound
		}
		return nil, fmt.Errorf("error retrieving alumni record: %w", err)
	}
	return alumni, nil
}

// List retrieves a page of alumni records. With verifiedOnly, unverified and
// blocked records are excluded; that is the non-admin view.
func (r *AlumniRepository) List(ctx context.Context, verifiedOnly bool, offset uint64, limit int) ([]*models.Alumni, int64, error) {
	where := ""
	if verifiedOnly {
		where = ` WHERE v.is_verified = TRUE AND a.is_blocked = FALSE`
	}

	var total int64
	countSQL := `
		SELECT COUNT(*)
		FROM alumni a
		JOIN verified_alumni v ON v.alumni_id = a.id` + where
	if err := r.db.QueryRow(ctx, countSQL).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting alumni: %w", err)
	}

	listSQL := alumniSelect + where + fmt.Sprintf(` ORDER BY a.graduation_year DESC, a.id ASC OFFSET %d LIMIT %d`, offset, limit)
	rows, err := r.db.Query(ctx, listSQL)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing alumni: %w", err)
	}
	defer rows.Close()

	var records []*models.Alumni
	for rows.Next() {
		alumni, err := scanAlumni(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning alumni row: %w", err)
		}
		records = append(records, alumni)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating alumni rows: %w", err)
	}

	return records, total, nil
}

// Verify marks an alumni record as verified
func (r *AlumniRepository) Verify(ctx context.Context, alumniID int64) error {
	sql, args, err := r.sb.Update("verified_alumni").
		Set("is_verified", true).
		Set("verified_at", time.Now()).
		Where(squirrel.Eq{"alumni_id": alumniID, "is_verified": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build verify query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error verifying alumni: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Either no such record or it was already verified
		var exists bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM verified_alumni WHERE alumni_id = $1)`, alumniID).Scan(&exists); err != nil {
			return fmt.Errorf("error checking verification row: %w", err)
		}
		if exists {
			return ErrAlumniAlreadyVerified
		}
		return ErrAlumniNotFound
	}

	logger.Info().Int64("alumniID", alumniID).Msg("Alumni record verified")
	return nil
}

// Delete removes an alumni record. The verification row goes with it.
func (r *AlumniRepository) Delete(ctx context.Context, alumniID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM alumni WHERE id = $1`, alumniID)
	if err != nil {
		return fmt.Errorf("error deleting alumni record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAlumniNotFound
	}
	return nil
}

// SetBlocked toggles the blocked flag on an alumni record
func (r *AlumniRepository) SetBlocked(ctx context.Context, alumniID int64, blocked bool) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE alumni SET is_blocked = $1 WHERE id = $2`,
		blocked, alumniID)
	if err != nil {
		return fmt.Errorf("error updating alumni blocked flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAlumniNotFound
	}
	return nil
}

// CountVerified returns the number of verified alumni
func (r *AlumniRepository) CountVerified(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM verified_alumni WHERE is_verified = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting verified alumni: %w", err)
	}
	return count, nil
}

// CountPending returns the number of alumni records awaiting verification
func (r *AlumniRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM verified_alumni WHERE is_verified = FALSE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting pending alumni: %w", err)
	}
	return count, nil
}
