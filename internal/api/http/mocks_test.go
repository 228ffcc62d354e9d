package http

import (
	"context"
	"time"

	"carshare-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockReservationService
type MockReservationService struct {
	mock.Mock
}

func (m *MockReservationService) Create(ctx context.Context, renterID, vehicleID int32, start, end time.Time, idemKey string) (*domain.Reservation, error) {
	args := m.Called(ctx, renterID, vehicleID, start, end, idemKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) Accept(ctx context.Context, ownerID, reservationID int32, idemKey string) (*domain.Reservation, error) {
	args := m.Called(ctx, ownerID, reservationID, idemKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) Reject(ctx context.Context, ownerID, reservationID int32, idemKey string) (*domain.Reservation, error) {
	args := m.Called(ctx, ownerID, reservationID, idemKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) Cancel(ctx context.Context, ownerID, reservationID int32, idemKey string) (*domain.Reservation, error) {
	args := m.Called(ctx, ownerID, reservationID, idemKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) InitiateReturn(ctx context.Context, ownerID, reservationID int32, idemKey string) (*domain.Reservation, error) {
	args := m.Called(ctx, ownerID, reservationID, idemKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) MarkPaid(ctx context.Context, reservationID int32, paymentIntentID string) (*domain.Reservation, error) {
	args := m.Called(ctx, reservationID, paymentIntentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) MarkPaymentFailed(ctx context.Context, reservationID int32, reason string) (*domain.Reservation, error) {
	args := m.Called(ctx, reservationID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) Expire(ctx context.Context, reservationID int32) error {
	args := m.Called(ctx, reservationID)
	return args.Error(0)
}
func (m *MockReservationService) Activate(ctx context.Context, reservationID, actorID int32) error {
	args := m.Called(ctx, reservationID, actorID)
	return args.Error(0)
}
func (m *MockReservationService) Complete(ctx context.Context, reservationID, actorID int32) error {
	args := m.Called(ctx, reservationID, actorID)
	return args.Error(0)
}
func (m *MockReservationService) Get(ctx context.Context, callerID, reservationID int32) (*domain.Reservation, error) {
	args := m.Called(ctx, callerID, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) ListByRole(ctx context.Context, userID int32, role domain.ActorRole, status string, page, pageSize int32) ([]domain.Reservation, int32, error) {
	args := m.Called(ctx, userID, role, status, page, pageSize)
	return args.Get(0).([]domain.Reservation), args.Get(1).(int32), args.Error(2)
}
func (m *MockReservationService) ListEvents(ctx context.Context, callerID, reservationID int32) ([]domain.ReservationEvent, error) {
	args := m.Called(ctx, callerID, reservationID)
	return args.Get(0).([]domain.ReservationEvent), args.Error(1)
}
