package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alumeee/alumniconnect/internal/app/models"
	"github.com/alumeee/alumniconnect/internal/db"
	"github.com/alumeee/alumniconnect/internal/pkg/apperrors"
	"github.com/alumeee/alumniconnect/internal/pkg/logger"
)

var ErrNotificationNotFound = apperrors.ErrNotificationNotFound

// INotificationRepository defines the interface for notification database operations
type INotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) (int64, error)
	Broadcast(ctx context.Context, title, message string) (int64, error)
	ListByUser(ctx context.Context, userID int64, offset uint64, limit int) ([]*models.Notification, int64, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	MarkRead(ctx context.Context, userID, notificationID int64) error
	MarkAllRead(ctx context.Context, userID int64) error
}

// NotificationRepository handles notification database operations
type NotificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{
		db: db,
	}
}

// Create inserts a notification for a single user
func (r *NotificationRepository) Create(ctx context.Context, notification *models.Notification) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO notifications (user_id, title, message)
		VALUES ($1, $2, $3)
		RETURNING id`,
		notification.UserID, notification.Title, notification.Message).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating notification: %w", err)
	}

	return id, nil
}

// Broadcast inserts a notification for every user and returns how many
// were created. A single INSERT..SELECT keeps the fan-out atomic.
func (r *NotificationRepository) Broadcast(ctx context.Context, title, message string) (int64, error) {
	var created int64
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			INSERT INTO notifications (user_id, title, message)
			SELECT id, $1, $2 FROM users`,
			title, message)
		if err != nil {
			return fmt.Errorf("error broadcasting notification: %w", err)
		}
		created = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.Info().Int64("recipients", created).Str("title", title).Msg("Notification broadcast")
	return created, nil
}

// ListByUser retrieves a page of a user's notifications, newest first
func (r *NotificationRepository) ListByUser(ctx context.Context, userID int64, offset uint64, limit int) ([]*models.Notification, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM notifications WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting notifications: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, title, message, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3`,
		userID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		notification := &models.Notification{}
		err := rows.Scan(
			&notification.ID, &notification.UserID, &notification.Title,
			&notification.Message, &notification.IsRead, &notification.CreatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning notification row: %w", err)
		}
		notifications = append(notifications, notification)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating notification rows: %w", err)
	}

	return notifications, total, nil
}

// CountUnread returns the number of unread notifications for a user
func (r *NotificationRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE`,
		userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead marks one of the user's notifications as read. The user ID is
// part of the predicate so nobody can touch another user's rows.
func (r *NotificationRepository) MarkRead(ctx context.Context, userID, notificationID int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE notifications SET is_read = TRUE
		WHERE id = $1 AND user_id = $2`,
		notificationID, userID)
	if err != nil {
		return fmt.Errorf("error marking notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

// MarkAllRead marks all of a user's notifications as read
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, `
		UPDATE notifications SET is_read = TRUE
		WHERE user_id = $1 AND is_read = FALSE`,
		userID)
	if err != nil {
		return fmt.Errorf("error marking notifications read: %w", err)
	}
	return nil
}
