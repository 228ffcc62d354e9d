package service

import (
	"context"
	"fmt"

	"carshare-backend/internal/domain"
	"carshare-backend/internal/logger"
	"carshare-backend/internal/repository"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

func (s *notificationService) GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize
	return s.noteRepo.List(ctx, userID, pageSize, offset)
}

func (s *notificationService) MarkAsRead(ctx context.Context, userID, notificationID int32) error {
	return s.noteRepo.MarkAsRead(ctx, notificationID, userID)
}

// notificationBridge fans committed lifecycle events out to in-app inbox
// rows, email and push. Everything here is best-effort: the transition is
// already committed, so failures are logged and swallowed.
type notificationBridge struct {
	noteRepo repository.NotificationRepository
	userRepo repository.UserRepository
	email    EmailSender
	push     PushSender
}

func NewNotificationBridge(
	noteRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	email EmailSender,
	push PushSender,
) Notifier {
	return &notificationBridge{
		noteRepo: noteRepo,
		userRepo: userRepo,
		email:    email,
		push:     push,
	}
}

func (b *notificationBridge) Publish(ctx context.Context, rsv *domain.Reservation, ev *domain.ReservationEvent) {
	title, message := describeEvent(rsv, ev)
	for _, userID := range recipients(rsv, ev.Type) {
		b.deliver(ctx, userID, rsv, ev, title, message)
	}
}

func (b *notificationBridge) deliver(ctx context.Context, userID int32, rsv *domain.Reservation, ev *domain.ReservationEvent, title, message string) {
	note := &domain.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Attributes: map[string]string{
			"type":           string(ev.Type),
			"reservation_id": fmt.Sprintf("%d", rsv.ID),
		},
	}
	if err := b.noteRepo.Create(ctx, note); err != nil {
		logger.Error("Failed to create notification", "user_id", userID, "event", ev.Type, "error", err)
	}

	user, err := b.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Warn("Notification recipient has no profile", "user_id", userID, "error", err)
		return
	}
	if user.Email != "" && b.email != nil {
		if err := b.email.Send(ctx, user.Email, user.Name, title, message); err != nil {
			logger.Error("Failed to send notification email", "user_id", userID, "error", err)
		}
	}
	if user.PushToken != "" && b.push != nil {
		if err := b.push.Send(ctx, user.PushToken, title, message, note.Attributes); err != nil {
			logger.Error("Failed to send push notification", "user_id", userID, "error", err)
		}
	}
}

// recipients picks which parties hear about an event. The actor generally
// already knows what they did; the counterpart is the one being told.
func recipients(rsv *domain.Reservation, t domain.EventType) []int32 {
	switch t {
	case domain.EventReservationRequested, domain.EventReservationPaid:
		return []int32{rsv.OwnerID}
	case domain.EventReservationAccepted, domain.EventReservationRejected,
		domain.EventReservationCancelled, domain.EventPaymentFailed,
		domain.EventReturnInitiated:
		return []int32{rsv.RenterID}
	case domain.EventReservationExpired, domain.EventReservationStarted,
		domain.EventReservationCompleted:
		return []int32{rsv.RenterID, rsv.OwnerID}
	}
	return nil
}

func describeEvent(rsv *domain.Reservation, ev *domain.ReservationEvent) (string, string) {
	dates := fmt.Sprintf("%s to %s",
		rsv.StartDate.Format(domain.DayFormat), rsv.EndDate.Format(domain.DayFormat))
	switch ev.Type {
	case domain.EventReservationRequested:
		return "New reservation request", fmt.Sprintf("Your vehicle was requested for %s", dates)
	case domain.EventReservationAccepted:
		return "Reservation accepted", "The owner accepted your request. Complete payment to confirm."
	case domain.EventReservationRejected:
		return "Reservation rejected", "The owner declined your reservation request."
	case domain.EventReservationPaid:
		return "Payment received", "The renter completed payment. The reservation is ready for pickup."
	case domain.EventPaymentFailed:
		return "Payment failed", "Your payment did not go through. Please try again."
	case domain.EventReservationCancelled:
		return "Reservation cancelled", "The reservation was cancelled by the owner."
	case domain.EventReservationExpired:
		return "Reservation expired", "The reservation was cancelled because payment was not completed in time."
	case domain.EventReturnInitiated:
		return "Return requested", "The owner initiated the vehicle return. Please submit your drop-off report."
	case domain.EventReservationStarted:
		return "Rental started", "Both condition reports are in. The rental is now active."
	case domain.EventReservationCompleted:
		return "Rental completed", "Both drop-off reports are in. The rental is complete."
	}
	return "Reservation update", fmt.Sprintf("Reservation %d was updated", rsv.ID)
}
