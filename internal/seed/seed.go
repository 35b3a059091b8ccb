package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	appModels "github.com/alumeee/alumniconnect/internal/app/models"
	appRepos "github.com/alumeee/alumniconnect/internal/app/repositories"
)

// defaultAdminEmail is the bootstrap admin account. The password must be
// changed after the first login.
const (
	defaultAdminEmail    = "admin@alumniconnect.edu"
	defaultAdminPassword = "Admin123!"
)

var defaultDepartments = []string{
	"Computer Science",
	"Electronics",
	"Mechanical",
	"Civil",
	"Business Administration",
}

// CreateDefaultData seeds the departments and the admin account if they
// don't exist yet. Errors are collected so a single failure doesn't stop
// the remaining seeds.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	departmentRepo := appRepos.NewDepartmentRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (departments, admin account)...")
	var finalErr error

	existing, err := departmentRepo.GetAll(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error listing departments for seeding")
		finalErr = errors.Join(finalErr, err)
	} else {
		present := make(map[string]bool, len(existing))
		for _, d := range existing {
			present[d.Name] = true
		}

		for _, name := range defaultDepartments {
			if present[name] {
				continue
			}
			if _, err := departmentRepo.Create(ctx, &appModels.Department{Name: name}); err != nil {
				lgr.Error().Err(err).Str("department", name).Msg("Error creating default department")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	exists, err := userRepo.EmailExists(ctx, defaultAdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin account exists")
		return errors.Join(finalErr, err)
	}
	if exists {
		lgr.Info().Msg("Admin account already exists, skipping creation")
		return finalErr
	}

	lgr.Info().Msg("Creating default admin account...")
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return errors.Join(finalErr, err)
	}

	admin := &appModels.User{
		Email:     defaultAdminEmail,
		Password:  string(hashedPassword),
		FirstName: "System",
		LastName:  "Administrator",
		IsAdmin:   true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	adminID, err := userRepo.CreateUser(ctx, admin)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating admin account")
		return errors.Join(finalErr, err)
	}

	lgr.Info().Int64("adminID", adminID).Msg("Default admin account created")
	return finalErr
}
