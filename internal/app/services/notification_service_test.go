package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/alumeee/alumniconnect/internal/app/models"
	"github.com/alumeee/alumniconnect/internal/app/models/dto"
	"github.com/alumeee/alumniconnect/internal/app/repositories"
	"github.com/alumeee/alumniconnect/internal/pkg/apperrors"
)

func TestNotificationLifecycle(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo, zerolog.Nop())

	if err := svc.Notify(context.Background(), 5, "Welcome", "Your account is ready"); err != nil {
		t.Fatalf("Notify() error = %v", err)
	}
	if err := svc.Notify(context.Background(), 5, "Reminder", "Complete your profile"); err != nil {
		t.Fatal(err)
	}

	list, err := svc.List(context.Background(), 5, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(list.Notifications) != 2 {
		t.Fatalf("notifications = %d, want 2", len(list.Notifications))
	}
	if list.UnreadCount != 2 {
		t.Fatalf("UnreadCount = %d, want 2", list.UnreadCount)
	}

	if err := svc.MarkRead(context.Background(), 5, list.Notifications[0].ID); err != nil {
		t.Fatalf("MarkRead() error = %v", err)
	}
	list, _ = svc.List(context.Background(), 5, 1, 10)
	if list.UnreadCount != 1 {
		t.Fatalf("UnreadCount after MarkRead = %d, want 1", list.UnreadCount)
	}

	if err := svc.MarkAllRead(context.Background(), 5); err != nil {
		t.Fatalf("MarkAllRead() error = %v", err)
	}
	list, _ = svc.List(context.Background(), 5, 1, 10)
	if list.UnreadCount != 0 {
		t.Fatalf("UnreadCount after MarkAllRead = %d, want 0", list.UnreadCount)
	}
}

func TestMarkReadIsScopedToOwner(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo, zerolog.Nop())

	id, err := repo.Create(context.Background(), &models.Notification{UserID: 5, Title: "Private"})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.MarkRead(context.Background(), 6, id); !errors.Is(err, repositories.ErrNotificationNotFound) {
		t.Fatalf("foreign MarkRead error = %v, want ErrNotificationNotFound", err)
	}
}

func TestBroadcastValidation(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo, zerolog.Nop())

	if _, err := svc.Broadcast(context.Background(), &dto.BroadcastNotificationRequest{Title: " ", Message: "x"}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("blank title error = %v, want ErrValidationFailed", err)
	}
	if _, err := svc.Broadcast(context.Background(), &dto.BroadcastNotificationRequest{Title: "x", Message: ""}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("blank message error = %v, want ErrValidationFailed", err)
	}
}
