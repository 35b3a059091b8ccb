package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alumeee/alumniconnect/internal/app/models"
	"github.com/alumeee/alumniconnect/internal/pkg/apperrors"
)

var ErrEventNotFound = apperrors.ErrEventNotFound

// IEventRepository defines the interface for event database operations
type IEventRepository interface {
	Create(ctx context.Context, event *models.Event) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	List(ctx context.Context, upcomingOnly bool, offset uint64, limit int) ([]*models.Event, int64, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// EventRepository handles event database operations
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
	}
}

// Create inserts a new event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO events (title, description, start_date, end_date, location, image_url, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		event.Title, event.Description, event.StartDate, event.EndDate,
		event.Location, event.ImageURL, event.CreatedBy).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating event: %w", err)
	}

	return id, nil
}

const eventColumns = `id, title, description, start_date, end_date, location, image_url, created_by`

func scanEvent(row pgx.Row) (*models.Event, error) {
	event := &models.Event{}
	err := row.Scan(
		&event.ID, &event.Title, &event.Description, &event.StartDate, &event.EndDate,
		&event.Location, &event.ImageURL, &event.CreatedBy)
	if err != nil {
		return nil, err
	}
	return event, nil
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	event, err := scanEvent(r.db.QueryRow(ctx, `
		SELECT `+eventColumns+` FROM events WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}
	return event, nil
}

// List retrieves a page of events, soonest first. With upcomingOnly set,
// events that already ended are filtered out.
func (r *EventRepository) List(ctx context.Context, upcomingOnly bool, offset uint64, limit int) ([]*models.Event, int64, error) {
	where := ""
	var args []any
	if upcomingOnly {
		where = ` WHERE COALESCE(end_date, start_date) >= $1`
		args = append(args, time.Now())
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM events`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting events: %w", err)
	}

	listSQL := `SELECT ` + eventColumns + ` FROM events` + where +
		fmt.Sprintf(` ORDER BY start_date ASC OFFSET %d LIMIT %d`, offset, limit)
	rows, err := r.db.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing events: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning event row: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating event rows: %w", err)
	}

	return events, total, nil
}

// Delete removes an event
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEventNotFound
	}
	return nil
}

// Count returns the number of events
func (r *EventRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM events`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting events: %w", err)
	}
	return count, nil
}
