package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusRequested      ReservationStatus = "REQUESTED"
	ReservationStatusPendingPayment ReservationStatus = "ACCEPTED_PENDING_PAYMENT"
	ReservationStatusPickupPending  ReservationStatus = "PICKUP_PENDING"
	ReservationStatusInProgress     ReservationStatus = "IN_PROGRESS"
	ReservationStatusDropoffPending ReservationStatus = "DROPOFF_PENDING"
	ReservationStatusCompleted      ReservationStatus = "COMPLETED"
	ReservationStatusRejected       ReservationStatus = "REJECTED"
	ReservationStatusCancelled      ReservationStatus = "CANCELLED"
)

// Terminal reports whether no transition leaves this status.
func (s ReservationStatus) Terminal() bool {
	switch s {
	case ReservationStatusCompleted, ReservationStatusRejected, ReservationStatusCancelled:
		return true
	}
	return false
}

// Blocking reports whether a reservation in this status still occupies
// calendar days on its vehicle.
func (s ReservationStatus) Blocking() bool {
	return !s.Terminal()
}

type PaymentStatus string

const (
	PaymentStatusUnpaid         PaymentStatus = "UNPAID"
	PaymentStatusRequiresAction PaymentStatus = "REQUIRES_ACTION"
	PaymentStatusProcessing     PaymentStatus = "PROCESSING"
	PaymentStatusCaptured       PaymentStatus = "CAPTURED"
	PaymentStatusFailed         PaymentStatus = "FAILED"
	PaymentStatusCancelled      PaymentStatus = "CANCELLED"
)

type DepositStatus string

const (
	DepositStatusUnheld   DepositStatus = "UNHELD"
	DepositStatusHeld     DepositStatus = "HELD"
	DepositStatusReleased DepositStatus = "RELEASED"
	DepositStatusFailed   DepositStatus = "FAILED"
)

// Reservation is the aggregate the state machine owns. StartDate is inclusive,
// EndDate exclusive; both are calendar dates at UTC midnight. Version is the
// optimistic-concurrency counter checked and incremented on every transition.
// Monetary fields are snapshots taken from the vehicle at creation time.
type Reservation struct {
	ID              int32             `json:"id"`
	VehicleID       int32             `json:"vehicle_id"`
	RenterID        int32             `json:"renter_id"`
	OwnerID         int32             `json:"owner_id"`
	StartDate       time.Time         `json:"start_date"`
	EndDate         time.Time         `json:"end_date"`
	Status          ReservationStatus `json:"status"`
	PaymentStatus   PaymentStatus     `json:"payment_status"`
	DepositStatus   DepositStatus     `json:"deposit_status"`
	TotalCents      int32             `json:"total_cents"`
	CommissionCents int32             `json:"commission_cents"`
	DepositCents    int32             `json:"deposit_cents"`
	Currency        string            `json:"currency"`
	Version         int32             `json:"version"`
	AcceptedAt      *time.Time        `json:"accepted_at,omitempty"`
	PaymentIntentID string            `json:"payment_intent_id,omitempty"`
	CreatedOn       time.Time         `json:"created_on"`
	UpdatedOn       time.Time         `json:"updated_on"`
}

// Days returns the calendar days this reservation claims, one per day in the
// half-open range [StartDate, EndDate).
func (r *Reservation) Days() []time.Time {
	return DaysBetween(r.StartDate, r.EndDate)
}

// ActorRole identifies which party of a reservation a user is.
type ActorRole string

const (
	RoleOwner  ActorRole = "OWNER"
	RoleRenter ActorRole = "RENTER"
)

// RoleOf resolves callerID against the reservation parties. The second return
// is false when the caller is neither party.
func (r *Reservation) RoleOf(callerID int32) (ActorRole, bool) {
	switch callerID {
	case r.OwnerID:
		return RoleOwner, true
	case r.RenterID:
		return RoleRenter, true
	}
	return "", false
}

// GuardTransition verifies that op may run against the current status.
// Terminal statuses are permanent records, so nothing transitions out of them.
func (r *Reservation) GuardTransition(op string, expected ReservationStatus) error {
	if r.Status != expected {
		return &InvalidTransitionError{Op: op, Expected: expected, Actual: r.Status}
	}
	return nil
}
