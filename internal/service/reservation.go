package service

import (
	"context"
	"errors"
	"time"

	"carshare-backend/internal/domain"
	"carshare-backend/internal/repository"
	"carshare-backend/internal/utils"
)

type reservationService struct {
	reservationRepo   repository.ReservationRepository
	vehicleRepo       repository.VehicleRepository
	eventRepo         repository.EventRepository
	notifier          Notifier
	commissionPercent int
}

func NewReservationService(
	reservationRepo repository.ReservationRepository,
	vehicleRepo repository.VehicleRepository,
	eventRepo repository.EventRepository,
	notifier Notifier,
	commissionPercent int,
) ReservationService {
	return &reservationService{
		reservationRepo:   reservationRepo,
		vehicleRepo:       vehicleRepo,
		eventRepo:         eventRepo,
		notifier:          notifier,
		commissionPercent: commissionPercent,
	}
}

func (s *reservationService) Create(ctx context.Context, renterID, vehicleID int32, start, end time.Time, idemKey string) (*domain.Reservation, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.OwnerID == renterID {
		return nil, &domain.ValidationError{Field: "vehicle_id", Reason: "owners cannot book their own vehicle"}
	}

	quote, err := utils.QuoteReservation(vehicle, start, end, s.commissionPercent)
	if err != nil {
		return nil, err
	}

	rsv := &domain.Reservation{
		VehicleID:       vehicleID,
		RenterID:        renterID,
		OwnerID:         vehicle.OwnerID,
		StartDate:       domain.Day(start),
		EndDate:         domain.Day(end),
		Status:          domain.ReservationStatusRequested,
		PaymentStatus:   domain.PaymentStatusUnpaid,
		DepositStatus:   domain.DepositStatusUnheld,
		TotalCents:      quote.TotalCents,
		CommissionCents: quote.CommissionCents,
		DepositCents:    quote.DepositCents,
		Currency:        quote.Currency,
	}
	ev := &domain.ReservationEvent{
		Type:           domain.EventReservationRequested,
		ActorID:        renterID,
		IdempotencyKey: idemKey,
		Payload: map[string]string{
			"start_date": rsv.StartDate.Format(domain.DayFormat),
			"end_date":   rsv.EndDate.Format(domain.DayFormat),
		},
	}

	// Date-lock claim, reservation insert and event append are one atomic
	// unit; on DatesUnavailable nothing was written.
	if err := s.reservationRepo.CreateWithLocks(ctx, rsv, ev); err != nil {
		return nil, err
	}

	s.notifier.Publish(ctx, rsv, ev)
	return rsv, nil
}

func (s *reservationService) Accept(ctx context.Context, ownerID, reservationID int32, idemKey string) (*domain.Reservation, error) {
	rsv, err := s.ownerReservation(ctx, ownerID, reservationID)
	if err != nil {
		return nil, err
	}
	if err := rsv.GuardTransition("accept", domain.ReservationStatusRequested); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rsv.Status = domain.ReservationStatusPendingPayment
	rsv.AcceptedAt = &now
	ev := &domain.ReservationEvent{
		Type:           domain.EventReservationAccepted,
		ActorID:        ownerID,
		IdempotencyKey: idemKey,
	}
	// Locks stay held while payment is pending.
	if err := s.reservationRepo.Transition(ctx, rsv, ev, false); err != nil {
		return nil, err
	}

	s.notifier.Publish(ctx, rsv, ev)
	return rsv, nil
}

func (s *reservationService) Reject(ctx context.Context, ownerID, reservationID int32, idemKey string) (*domain.Reservation, error) {
	rsv, err := s.ownerReservation(ctx, ownerID, reservationID)
	if err != nil {
		return nil, err
	}
	if err := rsv.GuardTransition("reject", domain.ReservationStatusRequested); err != nil {
		return nil, err
	}

	rsv.Status = domain.ReservationStatusRejected
	ev := &domain.ReservationEvent{
		Type:           domain.EventReservationRejected,
		ActorID:        ownerID,
		IdempotencyKey: idemKey,
	}
	if err := s.reservationRepo.Transition(ctx, rsv, ev, true); err != nil {
		return nil, err
	}

	s.notifier.Publish(ctx, rsv, ev)
	return rsv, nil
}

func (s *reservationService) Cancel(ctx context.Context, ownerID, reservationID int32, idemKey string) (*domain.Reservation, error) {
	rsv, err := s.ownerReservation(ctx, ownerID, reservationID)
	if err != nil {
		return nil, err
	}
	if rsv.Status.Terminal() {
		return nil, &domain.InvalidTransitionError{Op: "cancel", Actual: rsv.Status}
	}

	rsv.Status = domain.ReservationStatusCancelled
	if rsv.PaymentStatus == domain.PaymentStatusUnpaid || rsv.PaymentStatus == domain.PaymentStatusRequiresAction {
		rsv.PaymentStatus = domain.PaymentStatusCancelled
	}
	if rsv.DepositStatus == domain.DepositStatusHeld {
		rsv.DepositStatus = domain.DepositStatusReleased
	}
	ev := &domain.ReservationEvent{
		Type:           domain.EventReservationCancelled,
		ActorID:        ownerID,
		IdempotencyKey: idemKey,
	}
	if err := s.reservationRepo.Transition(ctx, rsv, ev, true); err != nil {
		return nil, err
	}

	s.notifier.Publish(ctx, rsv, ev)
	return rsv, nil
}

func (s *reservationService) InitiateReturn(ctx context.Context, ownerID, reservationID int32, idemKey string) (*domain.Reservation, error) {
	rsv, err := s.ownerReservation(ctx, ownerID, reservationID)
	if err != nil {
		return nil, err
	}
	if err := rsv.GuardTransition("initiate return", domain.ReservationStatusInProgress); err != nil {
		return nil, err
	}

	rsv.Status = domain.ReservationStatusDropoffPending
	ev := &domain.ReservationEvent{
		Type:           domain.EventReturnInitiated,
		ActorID:        ownerID,
		IdempotencyKey: idemKey,
	}
	if err := s.reservationRepo.Transition(ctx, rsv, ev, false); err != nil {
		return nil, err
	}

	s.notifier.Publish(ctx, rsv, ev)
	return rsv, nil
}

func (s *reservationService) MarkPaid(ctx context.Context, reservationID int32, paymentIntentID string) (*domain.Reservation, error) {
	rsv, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if err := rsv.GuardTransition("mark paid", domain.ReservationStatusPendingPayment); err != nil {
		return nil, err
	}

	rsv.Status = domain.ReservationStatusPickupPending
	rsv.PaymentStatus = domain.PaymentStatusCaptured
	rsv.DepositStatus = domain.DepositStatusHeld
	rsv.PaymentIntentID = paymentIntentID
	ev := &domain.ReservationEvent{
		Type:    domain.EventReservationPaid,
		ActorID: domain.SystemActorID,
		Payload: map[string]string{"payment_intent_id": paymentIntentID},
	}
	if err := s.reservationRepo.Transition(ctx, rsv, ev, false); err != nil {
		return nil, err
	}

	s.notifier.Publish(ctx, rsv, ev)
	return rsv, nil
}

func (s *reservationService) MarkPaymentFailed(ctx context.Context, reservationID int32, reason string) (*domain.Reservation, error) {
	rsv, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if err := rsv.GuardTransition("mark payment failed", domain.ReservationStatusPendingPayment); err != nil {
		return nil, err
	}

	// Status stays ACCEPTED_PENDING_PAYMENT so the renter can retry until the
	// payment deadline expires the reservation.
	rsv.PaymentStatus = domain.PaymentStatusFailed
	ev := &domain.ReservationEvent{
		Type:    domain.EventPaymentFailed,
		ActorID: domain.SystemActorID,
		Payload: map[string]string{"reason": reason},
	}
	if err := s.reservationRepo.Transition(ctx, rsv, ev, false); err != nil {
		return nil, err
	}

	s.notifier.Publish(ctx, rsv, ev)
	return rsv, nil
}

func (s *reservationService) Expire(ctx context.Context, reservationID int32) error {
	rsv, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return err
	}
	if rsv.Status != domain.ReservationStatusPendingPayment {
		// Already paid, cancelled or expired by a concurrent sweep.
		return nil
	}

	rsv.Status = domain.ReservationStatusCancelled
	rsv.PaymentStatus = domain.PaymentStatusCancelled
	ev := &domain.ReservationEvent{
		Type:    domain.EventReservationExpired,
		ActorID: domain.SystemActorID,
	}
	err = s.reservationRepo.Transition(ctx, rsv, ev, true)
	if errors.Is(err, domain.ErrConflict) {
		// Another instance swept it first.
		return nil
	}
	if err != nil {
		return err
	}

	s.notifier.Publish(ctx, rsv, ev)
	return nil
}

func (s *reservationService) Activate(ctx context.Context, reservationID, actorID int32) error {
	rsv, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return err
	}
	if err := rsv.GuardTransition("activate", domain.ReservationStatusPickupPending); err != nil {
		return err
	}

	rsv.Status = domain.ReservationStatusInProgress
	ev := &domain.ReservationEvent{
		Type:    domain.EventReservationStarted,
		ActorID: actorID,
	}
	if err := s.reservationRepo.Transition(ctx, rsv, ev, false); err != nil {
		return err
	}

	s.notifier.Publish(ctx, rsv, ev)
	return nil
}

func (s *reservationService) Complete(ctx context.Context, reservationID, actorID int32) error {
	rsv, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return err
	}
	if err := rsv.GuardTransition("complete", domain.ReservationStatusDropoffPending); err != nil {
		return err
	}

	rsv.Status = domain.ReservationStatusCompleted
	if rsv.DepositStatus == domain.DepositStatusHeld {
		rsv.DepositStatus = domain.DepositStatusReleased
	}
	ev := &domain.ReservationEvent{
		Type:    domain.EventReservationCompleted,
		ActorID: actorID,
	}
	if err := s.reservationRepo.Transition(ctx, rsv, ev, true); err != nil {
		return err
	}

	s.notifier.Publish(ctx, rsv, ev)
	return nil
}

func (s *reservationService) Get(ctx context.Context, callerID, reservationID int32) (*domain.Reservation, error) {
	rsv, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if _, ok := rsv.RoleOf(callerID); !ok {
		return nil, domain.ErrForbidden
	}
	return rsv, nil
}

func (s *reservationService) ListByRole(ctx context.Context, userID int32, role domain.ActorRole, status string, page, pageSize int32) ([]domain.Reservation, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	if role == domain.RoleOwner {
		return s.reservationRepo.ListByOwner(ctx, userID, status, page, pageSize)
	}
	return s.reservationRepo.ListByRenter(ctx, userID, status, page, pageSize)
}

func (s *reservationService) ListEvents(ctx context.Context, callerID, reservationID int32) ([]domain.ReservationEvent, error) {
	rsv, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if _, ok := rsv.RoleOf(callerID); !ok {
		return nil, domain.ErrForbidden
	}
	return s.eventRepo.ListByReservation(ctx, reservationID)
}

// ownerReservation loads a reservation and verifies the caller owns its
// vehicle. Owner-only transitions all start here.
func (s *reservationService) ownerReservation(ctx context.Context, ownerID, reservationID int32) (*domain.Reservation, error) {
	rsv, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if rsv.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}
	return rsv, nil
}
