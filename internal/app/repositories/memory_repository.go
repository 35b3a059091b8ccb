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

var ErrMemoryNotFound = apperrors.ErrMemoryNotFound

// IMemoryRepository defines the interface for memory gallery database operations
type IMemoryRepository interface {
	Create(ctx context.Context, memory *models.Memory) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Memory, error)
	ListApproved(ctx context.Context, offset uint64, limit int) ([]*models.Memory, int64, error)
	ListPending(ctx context.Context, offset uint64, limit int) ([]*models.Memory, int64, error)
	ListByUser(ctx context.Context, userID int64, offset uint64, limit int) ([]*models.Memory, int64, error)
	Approve(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	CountPending(ctx context.Context) (int64, error)
}

// MemoryRepository handles memory gallery database operations
type MemoryRepository struct {
	db *pgxpool.Pool
}

// NewMemoryRepository creates a new MemoryRepository
func NewMemoryRepository(db *pgxpool.Pool) *MemoryRepository {
	return &MemoryRepository{
		db: db,
	}
}

// Create inserts a new memory. New memories start unapproved.
func (r *MemoryRepository) Create(ctx context.Context, memory *models.Memory) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO memories (user_id, title, description, image_url, is_approved)
		VALUES ($1, $2, $3, $4, FALSE)
		RETURNING id`,
		memory.UserID, memory.Title, memory.Description, memory.ImageURL).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating memory: %w", err)
	}

	return id, nil
}

const memorySelect = `
	SELECT m.id, m.user_id, m.title, m.description, m.image_url, m.is_approved, m.posted_at,
	       u.first_name, u.last_name
	FROM memories m
	JOIN users u ON u.id = m.user_id`

func scanMemory(row pgx.Row) (*models.Memory, error) {
	memory := &models.Memory{User: &models.User{}}
	err := row.Scan(
		&memory.ID, &memory.UserID, &memory.Title, &memory.Description, &memory.ImageURL,
		&memory.IsApproved, &memory.PostedAt,
		&memory.User.FirstName, &memory.User.LastName)
	if err != nil {
		return nil, err
	}
	memory.User.ID = memory.UserID
	return memory, nil
}

// GetByID retrieves a memory by ID
func (r *MemoryRepository) GetByID(ctx context.Context, id int64) (*models.Memory, error) {
	memory, err := scanMemory(r.db.QueryRow(ctx, memorySelect+` WHERE m.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMemoryNotFound
		}
		return nil, fmt.Errorf("error retrieving memory: %w", err)
	}
	return memory, nil
}

func (r *MemoryRepository) list(ctx context.Context, where string, args []any, offset uint64, limit int) ([]*models.Memory, int64, error) {
	var total int64
	countSQL := `SELECT COUNT(*) FROM memories m` + where
	if err := r.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting memories: %w", err)
	}

	listSQL := memorySelect + where + fmt.Sprintf(` ORDER BY m.posted_at DESC OFFSET %d LIMIT %d`, offset, limit)
	rows, err := r.db.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing memories: %w", err)
	}
	defer rows.Close()

	var memories []*models.Memory
	for rows.Next() {
		memory, err := scanMemory(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning memory row: %w", err)
		}
		memories = append(memories, memory)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating memory rows: %w", err)
	}

	return memories, total, nil
}

// ListApproved retrieves a page of approved memories, newest first
func (r *MemoryRepository) ListApproved(ctx context.Context, offset uint64, limit int) ([]*models.Memory, int64, error) {
	return r.list(ctx, ` WHERE m.is_approved = TRUE`, nil, offset, limit)
}

// ListPending retrieves a page of memories awaiting approval
func (r *MemoryRepository) ListPending(ctx context.Context, offset uint64, limit int) ([]*models.Memory, int64, error) {
	return r.list(ctx, ` WHERE m.is_approved = FALSE`, nil, offset, limit)
}

// ListByUser retrieves a page of a user's own memories, approved or not
func (r *MemoryRepository) ListByUser(ctx context.Context, userID int64, offset uint64, limit int) ([]*models.Memory, int64, error) {
	return r.list(ctx, ` WHERE m.user_id = $1`, []any{userID}, offset, limit)
}

// Approve marks a memory as approved
func (r *MemoryRepository) Approve(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE memories SET is_approved = TRUE WHERE id = $1`,
		id)
	if err != nil {
		return fmt.Errorf("error approving memory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrMemoryNotFound
	}
	return nil
}

// Delete removes a memory
func (r *MemoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM memories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting memory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrMemoryNotFound
	}
	return nil
}

// CountPending returns the number of memories awaiting approval
func (r *MemoryRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM memories WHERE is_approved = FALSE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting pending memories: %w", err)
	}
	return count, nil
}
