package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/alumeee/alumniconnect/internal/app/models"
	"github.com/alumeee/alumniconnect/internal/app/models/dto"
	"github.com/alumeee/alumniconnect/internal/app/repositories"
	"github.com/alumeee/alumniconnect/internal/pkg/apperrors"
)

func TestCreateEvent(t *testing.T) {
	svc := NewEventService(newFakeEventRepo(), zerolog.Nop())

	resp, err := svc.Create(context.Background(), 42, &dto.CreateEventRequest{
		Title:     "Annual alumni meet",
		StartDate: "2031-01-10",
		EndDate:   "2031-01-12",
		Location:  "Main auditorium",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if resp.CreatedBy == nil || *resp.CreatedBy != 42 {
		t.Fatalf("CreatedBy = %v, want 42", resp.CreatedBy)
	}
	if resp.EndDate == nil || resp.EndDate.Before(resp.StartDate) {
		t.Fatalf("dates = %v..%v", resp.StartDate, resp.EndDate)
	}
}

func TestCreateEventValidation(t *testing.T) {
	svc := NewEventService(newFakeEventRepo(), zerolog.Nop())

	tests := []struct {
		name    string
		req     dto.CreateEventRequest
		wantErr error
	}{
		{
			name:    "end before start",
			req:     dto.CreateEventRequest{Title: "Meet", StartDate: "2031-01-10", EndDate: "2031-01-09"},
			wantErr: apperrors.ErrInvalidDateRange,
		},
		{
			name:    "bad start date",
			req:     dto.CreateEventRequest{Title: "Meet", StartDate: "not-a-date"},
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "blank title",
			req:     dto.CreateEventRequest{Title: " ", StartDate: "2031-01-10"},
			wantErr: apperrors.ErrValidationFailed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), 1, &tt.req); !errors.Is(err, tt.wantErr) {
				t.Fatalf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestListUpcomingEvents(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo, zerolog.Nop())

	past := time.Now().AddDate(0, 0, -30)
	future := time.Now().AddDate(0, 0, 30)
	if _, err := repo.Create(context.Background(), &models.Event{Title: "Old reunion", StartDate: past}); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Create(context.Background(), &models.Event{Title: "Homecoming", StartDate: future}); err != nil {
		t.Fatal(err)
	}

	upcoming, err := svc.List(context.Background(), true, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(upcoming.Events) != 1 || upcoming.Events[0].Title != "Homecoming" {
		t.Fatalf("upcoming = %+v, want only the future event", upcoming.Events)
	}

	all, err := svc.List(context.Background(), false, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(all.Events) != 2 {
		t.Fatalf("all events = %d, want 2", len(all.Events))
	}
}

func TestDeleteEvent(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo, zerolog.Nop())
	id, _ := repo.Create(context.Background(), &models.Event{Title: "Meet", StartDate: time.Now()})

	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := svc.Delete(context.Background(), id); !errors.Is(err, repositories.ErrEventNotFound) {
		t.Fatalf("second Delete() error = %v, want ErrEventNotFound", err)
	}
}
