package domain

import "time"

// EventType names a lifecycle transition in the append-only event log.
type EventType string

const (
	EventReservationRequested EventType = "reservation_requested"
	EventReservationAccepted  EventType = "reservation_accepted"
	EventReservationRejected  EventType = "reservation_rejected"
	EventReservationPaid      EventType = "reservation_paid"
	EventPaymentFailed        EventType = "payment_failed"
	EventReservationCancelled EventType = "reservation_cancelled"
	EventReservationExpired   EventType = "reservation_expired"
	EventReturnInitiated      EventType = "return_initiated"
	EventReservationStarted   EventType = "reservation_started"
	EventReservationCompleted EventType = "reservation_completed"
)

// SystemActorID attributes scheduler-driven transitions. No real user owns it.
const SystemActorID int32 = 0

// ReservationEvent is one immutable entry in a reservation's history. Events
// are never updated or deleted; a non-empty IdempotencyKey is unique across
// the whole log.
type ReservationEvent struct {
	ID             string            `json:"id"`
	ReservationID  int32             `json:"reservation_id"`
	Type           EventType         `json:"type"`
	ActorID        int32             `json:"actor_id"`
	IdempotencyKey string            `json:"idempotency_key,omitempty"`
	Payload        map[string]string `json:"payload,omitempty"`
	CreatedOn      time.Time         `json:"created_on"`
}
