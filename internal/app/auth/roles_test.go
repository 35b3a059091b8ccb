package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/alumeee/alumniconnect/internal/app/models"
	"github.com/alumeee/alumniconnect/internal/app/repositories/user"
)

type stubProfiles struct {
	user    *models.User
	userErr error
	staff   *models.StaffProfile
	student *models.StudentProfile
}

func (s *stubProfiles) GetUserByID(context.Context, int64) (*models.User, error) {
	return s.user, s.userErr
}

func (s *stubProfiles) GetStaffByUserID(context.Context, int64) (*models.StaffProfile, error) {
	if s.staff == nil {
		return nil, user.ErrStaffNotFound
	}
	return s.staff, nil
}

func (s *stubProfiles) GetStudentByUserID(context.Context, int64) (*models.StudentProfile, error) {
	if s.student == nil {
		return nil, user.ErrStudentNotFound
	}
	return s.student, nil
}

func TestResolvePrecedence(t *testing.T) {
	tests := []struct {
		name     string
		profiles stubProfiles
		want     Role
	}{
		{
			name:     "admin flag wins over profiles",
			profiles: stubProfiles{user: &models.User{IsAdmin: true}, staff: &models.StaffProfile{}, student: &models.StudentProfile{}},
			want:     RoleAdmin,
		},
		{
			name:     "staff profile wins over student",
			profiles: stubProfiles{user: &models.User{}, staff: &models.StaffProfile{}, student: &models.StudentProfile{}},
			want:     RoleStaff,
		},
		{
			name:     "student profile",
			profiles: stubProfiles{user: &models.User{}, student: &models.StudentProfile{}},
			want:     RoleStudent,
		},
		{
			name:     "no profile is a guest",
			profiles: stubProfiles{user: &models.User{}},
			want:     RoleGuest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewRoleResolver(&tt.profiles)
			got, err := resolver.Resolve(context.Background(), 1)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("Resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveUnknownUser(t *testing.T) {
	resolver := NewRoleResolver(&stubProfiles{userErr: user.ErrUserNotFound})
	if _, err := resolver.Resolve(context.Background(), 1); !errors.Is(err, user.ErrUserNotFound) {
		t.Fatalf("Resolve() error = %v, want ErrUserNotFound", err)
	}
}

func TestLandingRoute(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleAdmin, "/dashboard/admin"},
		{RoleStaff, "/home/staff"},
		{RoleStudent, "/home/student"},
		{RoleGuest, "/home"},
	}
	for _, tt := range tests {
		if got := tt.role.LandingRoute(); got != tt.want {
			t.Errorf("LandingRoute(%s) = %q, want %q", tt.role, got, tt.want)
		}
	}
}
