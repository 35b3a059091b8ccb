package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alumeee/alumniconnect/internal/app/models"
	"github.com/alumeee/alumniconnect/internal/pkg/apperrors"
)

var ErrDepartmentNotFound = apperrors.ErrDepartmentNotFound

// IDepartmentRepository defines the interface for department database operations
type IDepartmentRepository interface {
	Create(ctx context.Context, department *models.Department) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetAll(ctx context.Context) ([]*models.Department, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// DepartmentRepository handles department database operations
type DepartmentRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentRepository creates a new DepartmentRepository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{
		db: db,
	}
}

// Create inserts a new department
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO departments (name)
		VALUES ($1)
		RETURNING id`,
		department.Name).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating department: %w", err)
	}

	return id, nil
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	department := &models.Department{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name FROM departments WHERE id = $1`,
		id).Scan(&department.ID, &department.Name)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}

	return department, nil
}

// GetAll retrieves all departments ordered by name
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name FROM departments ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("error listing departments: %w", err)
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		department := &models.Department{}
		if err := rows.Scan(&department.ID, &department.Name); err != nil {
			return nil, fmt.Errorf("error scanning department row: %w", err)
		}
		departments = append(departments, department)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating department rows: %w", err)
	}

	return departments, nil
}

// Exists checks whether a department with the given ID exists
func (r *DepartmentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM departments WHERE id = $1)`,
		id).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking department existence: %w", err)
	}

	return exists, nil
}
