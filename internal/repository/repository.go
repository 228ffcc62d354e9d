package repository

import (
	"context"
	"time"

	"carshare-backend/internal/domain"
)

// ReservationRepository owns the reservation table plus the multi-step writes
// that must commit atomically with it: date-lock claims, lock releases and
// event-log appends all ride in the same database transaction as the status
// change they belong to.
type ReservationRepository interface {
	// CreateWithLocks inserts the reservation, claims one date-lock row per
	// day and appends the creation event, all-or-nothing. A contested day
	// aborts the whole transaction and returns *domain.DatesUnavailableError
	// with no lock residue.
	CreateWithLocks(ctx context.Context, rsv *domain.Reservation, ev *domain.ReservationEvent) error

	GetByID(ctx context.Context, id int32) (*domain.Reservation, error)

	// Transition applies rsv's new status/payment fields with a
	// check-and-increment on rsv.Version and appends ev in the same
	// transaction. A stale version returns domain.ErrConflict; a reused
	// idempotency key returns domain.ErrDuplicateRequest. With releaseLocks
	// set, the reservation's date-lock rows are deleted in the same
	// transaction.
	Transition(ctx context.Context, rsv *domain.Reservation, ev *domain.ReservationEvent, releaseLocks bool) error

	ListByRenter(ctx context.Context, renterID int32, status string, page, pageSize int32) ([]domain.Reservation, int32, error)
	ListByOwner(ctx context.Context, ownerID int32, status string, page, pageSize int32) ([]domain.Reservation, int32, error)

	// ListUnpaidAcceptedBefore returns ACCEPTED_PENDING_PAYMENT reservations
	// whose accepted_at is older than the cutoff. Feeds the expiry sweep.
	ListUnpaidAcceptedBefore(ctx context.Context, cutoff time.Time) ([]domain.Reservation, error)
}

// DateLockRepository is the read side of the lock ledger. Writes happen only
// inside reservation transactions.
type DateLockRepository interface {
	ListBlockedDays(ctx context.Context, vehicleID int32) ([]time.Time, error)
	ListByReservation(ctx context.Context, reservationID int32) ([]domain.DateLock, error)
}

// EventRepository is the read side of the append-only event log.
type EventRepository interface {
	ListByReservation(ctx context.Context, reservationID int32) ([]domain.ReservationEvent, error)
}

type ConditionReportRepository interface {
	// Create writes one immutable report. A second submission for the same
	// (reservation, phase, role) returns domain.ErrReportExists.
	Create(ctx context.Context, report *domain.ConditionReport) error
	Get(ctx context.Context, reservationID int32, phase domain.ReportPhase, role domain.ActorRole) (*domain.ConditionReport, error)
	CountByPhase(ctx context.Context, reservationID int32, phase domain.ReportPhase) (int32, error)
}

type VehicleRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Vehicle, error)
	ListByCity(ctx context.Context, city string, page, pageSize int32) ([]domain.Vehicle, int32, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}

type UserRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.User, error)
}
