package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrConflict signals a stale optimistic-concurrency version. The caller
	// should re-read the reservation and retry.
	ErrConflict = errors.New("reservation was modified concurrently")

	// ErrForbidden signals that the caller is not the expected actor for the
	// requested operation.
	ErrForbidden = errors.New("caller is not allowed to perform this action")

	// ErrDuplicateRequest signals that an idempotency key was already consumed
	// by an earlier, committed request.
	ErrDuplicateRequest = errors.New("request with this idempotency key was already processed")

	// ErrReportExists signals that a condition report for the same
	// (reservation, phase, role) tuple was already submitted. Reports are
	// immutable, so there is no overwrite path.
	ErrReportExists = errors.New("condition report already submitted")
)

// NotFoundError is returned when a referenced entity does not exist.
type NotFoundError struct {
	Entity string
	ID     int32
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// InvalidTransitionError is returned when an operation is applied to a
// reservation whose current status is not a valid source for it. It carries
// both statuses so clients can render an explanatory message.
type InvalidTransitionError struct {
	Op       string
	Expected ReservationStatus
	Actual   ReservationStatus
}

func (e *InvalidTransitionError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("%s is not allowed from status %q", e.Op, e.Actual)
	}
	return fmt.Sprintf("%s requires status %q, reservation is %q", e.Op, e.Expected, e.Actual)
}

// DatesUnavailableError is returned when a date-lock claim loses to an
// existing claim. ConflictDay is the first contested calendar day.
type DatesUnavailableError struct {
	VehicleID   int32
	ConflictDay time.Time
}

func (e *DatesUnavailableError) Error() string {
	return fmt.Sprintf("vehicle %d is unavailable on %s", e.VehicleID, e.ConflictDay.Format(DayFormat))
}

// ValidationError is returned for malformed input: bad date ranges, missing
// required photo slots, unknown phases.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
