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

type alumniFixture struct {
	svc        *AlumniService
	alumniRepo *fakeAlumniRepo
	userRepo   *fakeUserRepo
	notifRepo  *fakeNotificationRepo
}

func newAlumniFixture() *alumniFixture {
	alumniRepo := newFakeAlumniRepo()
	userRepo := newFakeUserRepo()
	notifRepo := newFakeNotificationRepo()
	notifSvc := NewNotificationService(notifRepo, zerolog.Nop())
	svc := NewAlumniService(alumniRepo, userRepo, newFakeDepartmentRepo("Computer Science", "Electronics"), notifSvc, zerolog.Nop())
	return &alumniFixture{svc: svc, alumniRepo: alumniRepo, userRepo: userRepo, notifRepo: notifRepo}
}

func TestCreateAlumniRecord(t *testing.T) {
	f := newAlumniFixture()
	f.userRepo.addUser(&models.User{ID: 5, FirstName: "Jane", LastName: "Doe"})

	resp, err := f.svc.Create(context.Background(), 5, &dto.CreateAlumniRequest{
		GraduationYear: 2018,
		DepartmentID:   1,
		RollNumber:     "CS2014-007",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if resp.IsVerified {
		t.Fatal("a freshly filed record must start unverified")
	}

	// A second record for the same account is a conflict
	_, err = f.svc.Create(context.Background(), 5, &dto.CreateAlumniRequest{
		GraduationYear: 2019,
		DepartmentID:   1,
		RollNumber:     "CS2015-008",
	})
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("second Create() error = %v, want ErrConflict", err)
	}
}

func TestCreateAlumniValidation(t *testing.T) {
	f := newAlumniFixture()

	tests := []struct {
		name    string
		req     dto.CreateAlumniRequest
		wantErr error
	}{
		{
			name:    "future graduation year",
			req:     dto.CreateAlumniRequest{GraduationYear: time.Now().Year() + 1, DepartmentID: 1, RollNumber: "CS2014-007"},
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "bad roll number",
			req:     dto.CreateAlumniRequest{GraduationYear: 2018, DepartmentID: 1, RollNumber: "x"},
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "unknown department",
			req:     dto.CreateAlumniRequest{GraduationYear: 2018, DepartmentID: 404, RollNumber: "CS2014-007"},
			wantErr: apperrors.ErrDepartmentNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := f.svc.Create(context.Background(), 5, &tt.req); !errors.Is(err, tt.wantErr) {
				t.Fatalf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestVerifyAlumniMatchesStudentRoll(t *testing.T) {
	f := newAlumniFixture()
	f.userRepo.addUser(&models.User{ID: 5, FirstName: "Jane"})
	f.userRepo.students[5] = &models.StudentProfile{UserID: 5, RollNumber: "CS2014-007", DepartmentID: 1}
	record := f.alumniRepo.add(&models.Alumni{UserID: 5, RollNumber: "CS2014-007", DepartmentID: 1, GraduationYear: 2018})

	resp, err := f.svc.Verify(context.Background(), record.ID)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if !resp.IsVerified || resp.VerifiedAt == nil {
		t.Fatal("Verify() must mark the record verified with a timestamp")
	}

	// The owner is told about the outcome
	notifs, _, err := f.notifRepo.ListByUser(context.Background(), 5, 0, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(notifs) != 1 {
		t.Fatalf("owner should get one notification, got %d", len(notifs))
	}

	// Verifying twice is a conflict
	if _, err := f.svc.Verify(context.Background(), record.ID); !errors.Is(err, apperrors.ErrAlumniAlreadyVerified) {
		t.Fatalf("second Verify() error = %v, want ErrAlumniAlreadyVerified", err)
	}
}

func TestVerifyAlumniMismatch(t *testing.T) {
	f := newAlumniFixture()
	f.userRepo.students[5] = &models.StudentProfile{UserID: 5, RollNumber: "CS2014-007", DepartmentID: 1}

	unknownRoll := f.alumniRepo.add(&models.Alumni{UserID: 6, RollNumber: "EE1999-001", DepartmentID: 1})
	wrongDept := f.alumniRepo.add(&models.Alumni{UserID: 7, RollNumber: "CS2014-007", DepartmentID: 2})

	for _, id := range []int64{unknownRoll.ID, wrongDept.ID} {
		if _, err := f.svc.Verify(context.Background(), id); !errors.Is(err, apperrors.ErrAlumniRecordMismatch) {
			t.Fatalf("Verify(%d) error = %v, want ErrAlumniRecordMismatch", id, err)
		}
	}

	// Mismatched records stay unverified
	for _, id := range []int64{unknownRoll.ID, wrongDept.ID} {
		record, err := f.alumniRepo.GetByID(context.Background(), id)
		if err != nil {
			t.Fatal(err)
		}
		if record.Verification.IsVerified {
			t.Fatalf("record %d must stay unverified after a mismatch", id)
		}
	}
}

func TestRejectAlumni(t *testing.T) {
	f := newAlumniFixture()
	pending := f.alumniRepo.add(&models.Alumni{UserID: 5, RollNumber: "CS2014-007", DepartmentID: 1})

	if err := f.svc.Reject(context.Background(), pending.ID); err != nil {
		t.Fatalf("Reject() error = %v", err)
	}
	if _, err := f.alumniRepo.GetByID(context.Background(), pending.ID); err == nil {
		t.Fatal("rejected record must be removed")
	}

	now := time.Now()
	verified := f.alumniRepo.add(&models.Alumni{
		UserID:       6,
		RollNumber:   "CS2014-008",
		DepartmentID: 1,
		Verification: &models.VerifiedAlumni{IsVerified: true, VerifiedAt: &now},
	})
	if err := f.svc.Reject(context.Background(), verified.ID); !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("Reject(verified) error = %v, want ErrConflict", err)
	}
}

func TestAlumniListHidesUnverifiedFromNonAdmins(t *testing.T) {
	f := newAlumniFixture()
	now := time.Now()
	f.alumniRepo.add(&models.Alumni{
		UserID:       1,
		RollNumber:   "CS2014-007",
		Verification: &models.VerifiedAlumni{IsVerified: true, VerifiedAt: &now},
	})
	f.alumniRepo.add(&models.Alumni{UserID: 2, RollNumber: "CS2014-008"})

	public, err := f.svc.List(context.Background(), false, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(public.Alumni) != 1 {
		t.Fatalf("non-admin listing should only show verified records, got %d", len(public.Alumni))
	}

	adminView, err := f.svc.List(context.Background(), true, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(adminView.Alumni) != 2 {
		t.Fatalf("admin listing should show all records, got %d", len(adminView.Alumni))
	}
}

func TestAlumniListHidesBlockedFromNonAdmins(t *testing.T) {
	f := newAlumniFixture()
	now := time.Now()
	f.alumniRepo.add(&models.Alumni{
		UserID:       1,
		RollNumber:   "CS2014-007",
		Verification: &models.VerifiedAlumni{IsVerified: true, VerifiedAt: &now},
	})
	blocked := f.alumniRepo.add(&models.Alumni{
		UserID:       2,
		RollNumber:   "CS2014-008",
		Verification: &models.VerifiedAlumni{IsVerified: true, VerifiedAt: &now},
	})

	if err := f.svc.SetBlocked(context.Background(), blocked.ID, true); err != nil {
		t.Fatal(err)
	}

	public, err := f.svc.List(context.Background(), false, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(public.Alumni) != 1 || public.Alumni[0].RollNumber != "CS2014-007" {
		t.Fatalf("non-admin listing must hide blocked records, got %+v", public.Alumni)
	}

	adminView, err := f.svc.List(context.Background(), true, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(adminView.Alumni) != 2 {
		t.Fatalf("admin listing should keep blocked records visible, got %d", len(adminView.Alumni))
	}
}

func TestSetBlocked(t *testing.T) {
	f := newAlumniFixture()
	record := f.alumniRepo.add(&models.Alumni{UserID: 5, RollNumber: "CS2014-007"})

	if err := f.svc.SetBlocked(context.Background(), record.ID, true); err != nil {
		t.Fatalf("SetBlocked() error = %v", err)
	}
	if !record.IsBlocked {
		t.Fatal("record must be blocked")
	}
	if err := f.svc.SetBlocked(context.Background(), 999, true); !errors.Is(err, repositories.ErrAlumniNotFound) {
		t.Fatalf("SetBlocked(missing) error = %v, want ErrAlumniNotFound", err)
	}
}
