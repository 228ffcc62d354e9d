package postgres

import (
	"database/sql"
	"errors"
	"strings"

	"carshare-backend/internal/repository"

	"github.com/lib/pq"
)

// Store bundles all postgres-backed repositories behind one value.
type Store struct {
	db *sql.DB
	repository.ReservationRepository
	repository.DateLockRepository
	repository.EventRepository
	repository.ConditionReportRepository
	repository.VehicleRepository
	repository.NotificationRepository
	repository.UserRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                        db,
		ReservationRepository:     NewReservationRepository(db),
		DateLockRepository:        NewDateLockRepository(db),
		EventRepository:           NewEventRepository(db),
		ConditionReportRepository: NewConditionReportRepository(db),
		VehicleRepository:         NewVehicleRepository(db),
		NotificationRepository:    NewNotificationRepository(db),
		UserRepository:            NewUserRepository(db),
	}
}

// isUniqueViolation reports whether err is a postgres unique-constraint
// violation, optionally narrowed to a constraint whose name contains needle.
func isUniqueViolation(err error, needle string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != "23505" {
		return false
	}
	return needle == "" || strings.Contains(pqErr.Constraint, needle)
}
