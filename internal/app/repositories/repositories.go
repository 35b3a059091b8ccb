package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	DepartmentRepository   *DepartmentRepository
	AlumniRepository       *AlumniRepository
	MemoryRepository       *MemoryRepository
	FundRepository         *FundRepository
	EventRepository        *EventRepository
	NotificationRepository *NotificationRepository
	TokenRepository        *TokenRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		DepartmentRepository:   NewDepartmentRepository(db),
		AlumniRepository:       NewAlumniRepository(db),
		MemoryRepository:       NewMemoryRepository(db),
		FundRepository:         NewFundRepository(db),
		EventRepository:        NewEventRepository(db),
		NotificationRepository: NewNotificationRepository(db),
		TokenRepository:        NewTokenRepository(db),
	}
}
