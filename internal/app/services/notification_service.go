package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/alumeee/alumniconnect/internal/app/models"
	"github.com/alumeee/alumniconnect/internal/app/models/dto"
	"github.com/alumeee/alumniconnect/internal/app/repositories"
	"github.com/alumeee/alumniconnect/internal/pkg/apperrors"
	"github.com/alumeee/alumniconnect/internal/pkg/helpers"
)

// NotificationService handles user notifications
type NotificationService struct {
	notificationRepo repositories.INotificationRepository
	logger           zerolog.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notificationRepo repositories.INotificationRepository, logger zerolog.Logger) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// Notify creates a notification for a single user
func (s *NotificationService) Notify(ctx context.Context, userID int64, title, message string) error {
	notification := &models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
	}
	_, err := s.notificationRepo.Create(ctx, notification)
	return err
}

// Broadcast sends a notification to every user and returns the recipient count
func (s *NotificationService) Broadcast(ctx context.Context, req *dto.BroadcastNotificationRequest) (int64, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Message) == "" {
		return 0, apperrors.NewValidationError("title and message cannot be empty")
	}
	return s.notificationRepo.Broadcast(ctx, req.Title, req.Message)
}

// List returns the caller's notifications together with the unread count
func (s *NotificationService) List(ctx context.Context, userID int64, page, size int) (*dto.NotificationListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	notifications, _, err := s.notificationRepo.ListByUser(ctx, userID, offset, limit)
	if err != nil {
		return nil, err
	}

	unread, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		items = append(items, dto.NotificationResponse{
			ID:        notification.ID,
			Title:     notification.Title,
			Message:   notification.Message,
			CreatedAt: notification.CreatedAt,
			IsRead:    notification.IsRead,
		})
	}

	return &dto.NotificationListResponse{
		Notifications: items,
		UnreadCount:   unread,
	}, nil
}

// MarkRead marks one of the caller's notifications as read
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID int64) error {
	return s.notificationRepo.MarkRead(ctx, userID, notificationID)
}

// MarkAllRead marks all of the caller's notifications as read
func (s *NotificationService) MarkAllRead(ctx context.Context, userID int64) error {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}
