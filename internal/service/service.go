package service

import (
	"context"
	"time"

	"carshare-backend/internal/domain"
)

// ReservationService is the reservation lifecycle state machine. Every
// mutating operation verifies the caller's role, guards the source status,
// and commits exactly one event-log entry atomically with the transition.
type ReservationService interface {
	Create(ctx context.Context, renterID, vehicleID int32, start, end time.Time, idemKey string) (*domain.Reservation, error)
	Accept(ctx context.Context, ownerID, reservationID int32, idemKey string) (*domain.Reservation, error)
	Reject(ctx context.Context, ownerID, reservationID int32, idemKey string) (*domain.Reservation, error)
	Cancel(ctx context.Context, ownerID, reservationID int32, idemKey string) (*domain.Reservation, error)
	InitiateReturn(ctx context.Context, ownerID, reservationID int32, idemKey string) (*domain.Reservation, error)

	// Payment-provider boundary. The engine never initiates charges; the
	// provider reports outcomes here after the owner accepts.
	MarkPaid(ctx context.Context, reservationID int32, paymentIntentID string) (*domain.Reservation, error)
	MarkPaymentFailed(ctx context.Context, reservationID int32, reason string) (*domain.Reservation, error)

	// Expire cancels one stale unpaid reservation on behalf of the system
	// actor. A reservation that already moved on is a no-op, not an error.
	Expire(ctx context.Context, reservationID int32) error

	// Activate and Complete are the two-sided condition-report advances:
	// PICKUP_PENDING to IN_PROGRESS and DROPOFF_PENDING to COMPLETED.
	Activate(ctx context.Context, reservationID, actorID int32) error
	Complete(ctx context.Context, reservationID, actorID int32) error

	Get(ctx context.Context, callerID, reservationID int32) (*domain.Reservation, error)
	ListByRole(ctx context.Context, userID int32, role domain.ActorRole, status string, page, pageSize int32) ([]domain.Reservation, int32, error)
	ListEvents(ctx context.Context, callerID, reservationID int32) ([]domain.ReservationEvent, error)
}

// ConditionReportService gates the photographic evidence submissions.
type ConditionReportService interface {
	Eligibility(ctx context.Context, callerID, reservationID int32, phase domain.ReportPhase) (*domain.ReportEligibility, error)
	Submit(ctx context.Context, callerID, reservationID int32, phase domain.ReportPhase, submission ReportSubmission) (*domain.ConditionReport, error)
	Get(ctx context.Context, callerID, reservationID int32, phase domain.ReportPhase, role domain.ActorRole) (*domain.ConditionReport, error)
}

// ReportSubmission is the inbound evidence bundle. Photo and video references
// are opaque storage tokens.
type ReportSubmission struct {
	RequiredPhotos map[string]string    `json:"required_photos"`
	DetailPhotos   []domain.DetailPhoto `json:"detail_photos,omitempty"`
	VideoRef       string               `json:"video_ref,omitempty"`
}

// CalendarService is the read projection the booking UI renders unavailable
// dates from. No side effects, safe without locking.
type CalendarService interface {
	ListBlockedRanges(ctx context.Context, vehicleID int32) ([]domain.DayRange, error)
}

type VehicleService interface {
	GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context, city string, page, pageSize int32) ([]domain.Vehicle, int32, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

// Notifier receives every committed lifecycle event. Implementations are
// best-effort: a delivery failure never surfaces to the state machine.
type Notifier interface {
	Publish(ctx context.Context, rsv *domain.Reservation, ev *domain.ReservationEvent)
}

// EmailSender delivers transactional mail.
type EmailSender interface {
	Send(ctx context.Context, toEmail, toName, subject, body string) error
}

// PushSender delivers mobile push messages.
type PushSender interface {
	Send(ctx context.Context, token, title, body string, data map[string]string) error
}
