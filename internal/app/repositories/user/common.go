package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alumeee/alumniconnect/internal/app/models"
	"github.com/alumeee/alumniconnect/internal/pkg/apperrors"
	"github.com/alumeee/alumniconnect/internal/pkg/dberrors"
)

// Aliases into the shared error taxonomy so repository errors map
// uniformly at the API boundary.
var (
	ErrUserNotFound       = apperrors.ErrUserNotFound
	ErrEmailAlreadyExists = apperrors.ErrEmailAlreadyExists
)

// queryRower is satisfied by both *pgxpool.Pool and pgx.Tx so the same
// statements can run inside or outside a transaction.
type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository handles common user database operations
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new Repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		db: db,
	}
}

// CreateUser creates a new user
func (r *Repository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	return r.createUser(ctx, r.db, user)
}

// CreateUserTx creates a new user inside an existing transaction
func (r *Repository) CreateUserTx(ctx context.Context, tx pgx.Tx, user *models.User) (int64, error) {
	return r.createUser(ctx, tx, user)
}

func (r *Repository) createUser(ctx context.Context, q queryRower, user *models.User) (int64, error) {
	var id int64
	err := q.QueryRow(ctx, `
		INSERT INTO users (email, password, first_name, last_name, is_admin)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		user.Email, user.Password, user.FirstName, user.LastName, user.IsAdmin).Scan(&id)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return 0, ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

const userColumns = `id, email, password, first_name, last_name, is_admin, last_login_at, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName, &user.LastName,
		&user.IsAdmin, &user.LastLoginAt, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return scanUser(r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1`,
		email))
}

// GetUserByID retrieves a user by ID
func (r *Repository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return scanUser(r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1`,
		id))
}

// EmailExists checks if an email already exists
func (r *Repository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}

	return exists, nil
}

// UpdateUser updates a user's mutable fields
func (r *Repository) UpdateUser(ctx context.Context, user *models.User) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET first_name = $1, last_name = $2, email = $3, updated_at = $4
		WHERE id = $5`,
		user.FirstName, user.LastName, user.Email, time.Now(), user.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return ErrEmailAlreadyExists
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

// DeleteUser deletes a user
func (r *Repository) DeleteUser(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// UpdateLastLogin updates the last login time
func (r *Repository) UpdateLastLogin(ctx context.Context, userID int64) error {
	now := time.Now()
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET last_login_at = $1
		WHERE id = $2`,
		now, userID)

	if err != nil {
		return fmt.Errorf("failed to update last login time: %w", err)
	}

	return nil
}
