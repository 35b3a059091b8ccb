package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alumeee/alumniconnect/internal/app/models"
	"github.com/alumeee/alumniconnect/internal/app/repositories/user"
)

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	// Accounts
	CreateUser(ctx context.Context, u *models.User) (int64, error)
	CreateUserTx(ctx context.Context, tx pgx.Tx, u *models.User) (int64, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateUser(ctx context.Context, u *models.User) error
	UpdateLastLogin(ctx context.Context, userID int64) error
	DeleteUser(ctx context.Context, id int64) error

	// Role profiles
	CreateStudentProfileTx(ctx context.Context, tx pgx.Tx, profile *models.StudentProfile) error
	CreateStaffProfileTx(ctx context.Context, tx pgx.Tx, profile *models.StaffProfile) error
	GetStudentByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error)
	GetStaffByUserID(ctx context.Context, userID int64) (*models.StaffProfile, error)
	GetStudentByRollNumber(ctx context.Context, rollNumber string) (*models.StudentProfile, error)
	RollNumberExists(ctx context.Context, rollNumber string) (bool, error)
	UpdateStudentProfile(ctx context.Context, profile *models.StudentProfile) error
	UpdateStaffProfile(ctx context.Context, profile *models.StaffProfile) error
	UpdateStudentPhotoURL(ctx context.Context, userID int64, photoURL *string) error
	UpdateStaffPhotoURL(ctx context.Context, userID int64, photoURL *string) error

	// Directory
	ListStudents(ctx context.Context, departmentID int64, yearOfPassing int, offset uint64, limit int) ([]*models.StudentProfile, int64, error)
	CountStudents(ctx context.Context) (int64, error)
	CountStaff(ctx context.Context) (int64, error)
}

// UserRepository combines all user-related repositories
type UserRepository struct {
	common  *user.Repository
	student *user.StudentRepository
	staff   *user.StaffRepository
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		common:  user.NewRepository(db),
		student: user.NewStudentRepository(db),
		staff:   user.NewStaffRepository(db),
	}
}

// CreateUser creates a new user outside of any transaction
func (r *UserRepository) CreateUser(ctx context.Context, u *models.User) (int64, error) {
	return r.common.CreateUser(ctx, u)
}

// CreateUserTx creates a new user inside an existing transaction
func (r *UserRepository) CreateUserTx(ctx context.Context, tx pgx.Tx, u *models.User) (int64, error) {
	return r.common.CreateUserTx(ctx, tx, u)
}

// GetUserByEmail retrieves a user by email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.common.GetUserByEmail(ctx, email)
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return r.common.GetUserByID(ctx, id)
}

// EmailExists checks if an email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.common.EmailExists(ctx, email)
}

// UpdateUser updates a user's mutable fields
func (r *UserRepository) UpdateUser(ctx context.Context, u *models.User) error {
	return r.common.UpdateUser(ctx, u)
}

// UpdateLastLogin updates the last login time
func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID int64) error {
	return r.common.UpdateLastLogin(ctx, userID)
}

// DeleteUser deletes a user account; dependent rows cascade at the database level
func (r *UserRepository) DeleteUser(ctx context.Context, id int64) error {
	return r.common.DeleteUser(ctx, id)
}

// CreateStudentProfileTx creates a student profile inside an existing transaction
func (r *UserRepository) CreateStudentProfileTx(ctx context.Context, tx pgx.Tx, profile *models.StudentProfile) error {
	return r.student.CreateStudentProfileTx(ctx, tx, profile)
}

// CreateStaffProfileTx creates a staff profile inside an existing transaction
func (r *UserRepository) CreateStaffProfileTx(ctx context.Context, tx pgx.Tx, profile *models.StaffProfile) error {
	return r.staff.CreateStaffProfileTx(ctx, tx, profile)
}

// GetStudentByUserID retrieves a student profile by user ID
func (r *UserRepository) GetStudentByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	return r.student.GetStudentByUserID(ctx, userID)
}

// GetStaffByUserID retrieves a staff profile by user ID
func (r *UserRepository) GetStaffByUserID(ctx context.Context, userID int64) (*models.StaffProfile, error) {
	return r.staff.GetStaffByUserID(ctx, userID)
}

// GetStudentByRollNumber retrieves a student profile by roll number
func (r *UserRepository) GetStudentByRollNumber(ctx context.Context, rollNumber string) (*models.StudentProfile, error) {
	return r.student.GetStudentByRollNumber(ctx, rollNumber)
}

// RollNumberExists checks if a roll number already exists
func (r *UserRepository) RollNumberExists(ctx context.Context, rollNumber string) (bool, error) {
	return r.student.RollNumberExists(ctx, rollNumber)
}

// UpdateStudentProfile updates a student profile
func (r *UserRepository) UpdateStudentProfile(ctx context.Context, profile *models.StudentProfile) error {
	return r.student.UpdateStudentProfile(ctx, profile)
}

// UpdateStaffProfile updates a staff profile
func (r *UserRepository) UpdateStaffProfile(ctx context.Context, profile *models.StaffProfile) error {
	return r.staff.UpdateStaffProfile(ctx, profile)
}

// UpdateStudentPhotoURL sets the profile photo URL for a student
func (r *UserRepository) UpdateStudentPhotoURL(ctx context.Context, userID int64, photoURL *string) error {
	return r.student.UpdateStudentPhotoURL(ctx, userID, photoURL)
}

// UpdateStaffPhotoURL sets the profile photo URL for a staff member
func (r *UserRepository) UpdateStaffPhotoURL(ctx context.Context, userID int64, photoURL *string) error {
	return r.staff.UpdateStaffPhotoURL(ctx, userID, photoURL)
}

// ListStudents retrieves a page of student profiles with optional filters
func (r *UserRepository) ListStudents(ctx context.Context, departmentID int64, yearOfPassing int, offset uint64, limit int) ([]*models.StudentProfile, int64, error) {
	return r.student.ListStudents(ctx, departmentID, yearOfPassing, offset, limit)
}

// CountStudents returns the number of student profiles
func (r *UserRepository) CountStudents(ctx context.Context) (int64, error) {
	return r.student.CountStudents(ctx)
}

// CountStaff returns the number of staff profiles
func (r *UserRepository) CountStaff(ctx context.Context) (int64, error) {
	return r.staff.CountStaff(ctx)
}
