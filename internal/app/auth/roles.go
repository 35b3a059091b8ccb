package auth

import (
	"context"
	"errors"

	"github.com/alumeee/alumniconnect/internal/app/models"
	"github.com/alumeee/alumniconnect/internal/app/repositories/user"
)

// Role is the resolved standing of an account. It is never stored; it is
// derived from the user row and the profile tables on demand.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStaff   Role = "staff"
	RoleStudent Role = "student"
	RoleGuest   Role = "guest"
)

// LandingRoute returns the post-login destination for the role.
func (r Role) LandingRoute() string {
	switch r {
	case RoleAdmin:
		return "/dashboard/admin"
	case RoleStaff:
		return "/home/staff"
	case RoleStudent:
		return "/home/student"
	default:
		return "/home"
	}
}

// ProfileSource provides the account and profile lookups role resolution needs.
type ProfileSource interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetStaffByUserID(ctx context.Context, userID int64) (*models.StaffProfile, error)
	GetStudentByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error)
}

// RoleResolver computes an account's role from its user row and profiles.
type RoleResolver struct {
	profiles ProfileSource
}

// NewRoleResolver creates a new RoleResolver
func NewRoleResolver(profiles ProfileSource) *RoleResolver {
	return &RoleResolver{profiles: profiles}
}

// Resolve determines the role for a user. Admin wins over staff, staff
// over student, and an account with no profile is a guest. Each check
// runs at most one query, so the common cases stay cheap.
func (r *RoleResolver) Resolve(ctx context.Context, userID int64) (Role, error) {
	account, err := r.profiles.GetUserByID(ctx, userID)
	if err != nil {
		return RoleGuest, err
	}
	if account.IsAdmin {
		return RoleAdmin, nil
	}

	if _, err := r.profiles.GetStaffByUserID(ctx, userID); err == nil {
		return RoleStaff, nil
	} else if !errors.Is(err, user.ErrStaffNotFound) {
		return RoleGuest, err
	}

	if _, err := r.profiles.GetStudentByUserID(ctx, userID); err == nil {
		return RoleStudent, nil
	} else if !errors.Is(err, user.ErrStudentNotFound) {
		return RoleGuest, err
	}

	return RoleGuest, nil
}
