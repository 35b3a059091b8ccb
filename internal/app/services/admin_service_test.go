package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/alumeee/alumniconnect/internal/app/models"
)

func TestDashboardCounters(t *testing.T) {
	userRepo := newFakeUserRepo()
	alumniRepo := newFakeAlumniRepo()
	memoryRepo := newFakeMemoryRepo()
	eventRepo := newFakeEventRepo()
	svc := NewAdminService(userRepo, alumniRepo, memoryRepo, eventRepo, zerolog.Nop())

	userRepo.students[1] = &models.StudentProfile{UserID: 1}
	userRepo.students[2] = &models.StudentProfile{UserID: 2}
	userRepo.staff[3] = &models.StaffProfile{UserID: 3}

	now := time.Now()
	alumniRepo.add(&models.Alumni{UserID: 1, Verification: &models.VerifiedAlumni{IsVerified: true, VerifiedAt: &now}})
	alumniRepo.add(&models.Alumni{UserID: 2})

	if _, err := memoryRepo.Create(context.Background(), &models.Memory{UserID: 1, Title: "Pending"}); err != nil {
		t.Fatal(err)
	}
	if _, err := eventRepo.Create(context.Background(), &models.Event{Title: "Meet", StartDate: now}); err != nil {
		t.Fatal(err)
	}

	dashboard, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard() error = %v", err)
	}

	if dashboard.StudentCount != 2 {
		t.Errorf("StudentCount = %d, want 2", dashboard.StudentCount)
	}
	if dashboard.StaffCount != 1 {
		t.Errorf("StaffCount = %d, want 1", dashboard.StaffCount)
	}
	if dashboard.AlumniCount != 1 {
		t.Errorf("AlumniCount = %d, want 1", dashboard.AlumniCount)
	}
	if dashboard.PendingAlumniCount != 1 {
		t.Errorf("PendingAlumniCount = %d, want 1", dashboard.PendingAlumniCount)
	}
	if dashboard.PendingMemoryCount != 1 {
		t.Errorf("PendingMemoryCount = %d, want 1", dashboard.PendingMemoryCount)
	}
	if dashboard.EventCount != 1 {
		t.Errorf("EventCount = %d, want 1", dashboard.EventCount)
	}
}
