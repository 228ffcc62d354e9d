package service

import (
	"context"
	"time"

	"carshare-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockReservationRepo
type MockReservationRepo struct {
	mock.Mock
}

func (m *MockReservationRepo) CreateWithLocks(ctx context.Context, rsv *domain.Reservation, ev *domain.ReservationEvent) error {
	args := m.Called(ctx, rsv, ev)
	return args.Error(0)
}
func (m *MockReservationRepo) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) Transition(ctx context.Context, rsv *domain.Reservation, ev *domain.ReservationEvent, releaseLocks bool) error {
	args := m.Called(ctx, rsv, ev, releaseLocks)
	return args.Error(0)
}
func (m *MockReservationRepo) ListByRenter(ctx context.Context, renterID int32, status string, page, pageSize int32) ([]domain.Reservation, int32, error) {
	args := m.Called(ctx, renterID, status, page, pageSize)
	return args.Get(0).([]domain.Reservation), args.Get(1).(int32), args.Error(2)
}
func (m *MockReservationRepo) ListByOwner(ctx context.Context, ownerID int32, status string, page, pageSize int32) ([]domain.Reservation, int32, error) {
	args := m.Called(ctx, ownerID, status, page, pageSize)
	return args.Get(0).([]domain.Reservation), args.Get(1).(int32), args.Error(2)
}
func (m *MockReservationRepo) ListUnpaidAcceptedBefore(ctx context.Context, cutoff time.Time) ([]domain.Reservation, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) ListByCity(ctx context.Context, city string, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	args := m.Called(ctx, city, page, pageSize)
	return args.Get(0).([]domain.Vehicle), args.Get(1).(int32), args.Error(2)
}

// MockEventRepo
type MockEventRepo struct {
	mock.Mock
}

func (m *MockEventRepo) ListByReservation(ctx context.Context, reservationID int32) ([]domain.ReservationEvent, error) {
	args := m.Called(ctx, reservationID)
	return args.Get(0).([]domain.ReservationEvent), args.Error(1)
}

// MockDateLockRepo
type MockDateLockRepo struct {
	mock.Mock
}

func (m *MockDateLockRepo) ListBlockedDays(ctx context.Context, vehicleID int32) ([]time.Time, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}
func (m *MockDateLockRepo) ListByReservation(ctx context.Context, reservationID int32) ([]domain.DateLock, error) {
	args := m.Called(ctx, reservationID)
	return args.Get(0).([]domain.DateLock), args.Error(1)
}

// MockReportRepo
type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) Create(ctx context.Context, report *domain.ConditionReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}
func (m *MockReportRepo) Get(ctx context.Context, reservationID int32, phase domain.ReportPhase, role domain.ActorRole) (*domain.ConditionReport, error) {
	args := m.Called(ctx, reservationID, phase, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConditionReport), args.Error(1)
}
func (m *MockReportRepo) CountByPhase(ctx context.Context, reservationID int32, phase domain.ReportPhase) (int32, error) {
	args := m.Called(ctx, reservationID, phase)
	return args.Get(0).(int32), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockEmailSender
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) Send(ctx context.Context, toEmail, toName, subject, body string) error {
	args := m.Called(ctx, toEmail, toName, subject, body)
	return args.Error(0)
}

// MockPushSender
type MockPushSender struct {
	mock.Mock
}

func (m *MockPushSender) Send(ctx context.Context, token, title, body string, data map[string]string) error {
	args := m.Called(ctx, token, title, body, data)
	return args.Error(0)
}

// MockNotifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Publish(ctx context.Context, rsv *domain.Reservation, ev *domain.ReservationEvent) {
	m.Called(ctx, rsv, ev)
}

// MockReservationSvc
type MockReservationSvc struct {
	mock.Mock
}

func (m *MockReservationSvc) Create(ctx context.Context, renterID, vehicleID int32, start, end time.Time, idemKey string) (*domain.Reservation, error) {
	args := m.Called(ctx, renterID, vehicleID, start, end, idemKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationSvc) Accept(ctx context.Context, ownerID, reservationID int32, idemKey string) (*domain.Reservation, error) {
	args := m.Called(ctx, ownerID, reservationID, idemKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationSvc) Reject(ctx context.Context, ownerID, reservationID int32, idemKey string) (*domain.Reservation, error) {
	args := m.Called(ctx, ownerID, reservationID, idemKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationSvc) Cancel(ctx context.Context, ownerID, reservationID int32, idemKey string) (*domain.Reservation, error) {
	args := m.Called(ctx, ownerID, reservationID, idemKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationSvc) InitiateReturn(ctx context.Context, ownerID, reservationID int32, idemKey string) (*domain.Reservation, error) {
	args := m.Called(ctx, ownerID, reservationID, idemKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationSvc) MarkPaid(ctx context.Context, reservationID int32, paymentIntentID string) (*domain.Reservation, error) {
	args := m.Called(ctx, reservationID, paymentIntentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationSvc) MarkPaymentFailed(ctx context.Context, reservationID int32, reason string) (*domain.Reservation, error) {
	args := m.Called(ctx, reservationID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationSvc) Expire(ctx context.Context, reservationID int32) error {
	args := m.Called(ctx, reservationID)
	return args.Error(0)
}
func (m *MockReservationSvc) Activate(ctx context.Context, reservationID, actorID int32) error {
	args := m.Called(ctx, reservationID, actorID)
	return args.Error(0)
}
func (m *MockReservationSvc) Complete(ctx context.Context, reservationID, actorID int32) error {
	args := m.Called(ctx, reservationID, actorID)
	return args.Error(0)
}
func (m *MockReservationSvc) Get(ctx context.Context, callerID, reservationID int32) (*domain.Reservation, error) {
	args := m.Called(ctx, callerID, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationSvc) ListByRole(ctx context.Context, userID int32, role domain.ActorRole, status string, page, pageSize int32) ([]domain.Reservation, int32, error) {
	args := m.Called(ctx, userID, role, status, page, pageSize)
	return args.Get(0).([]domain.Reservation), args.Get(1).(int32), args.Error(2)
}
func (m *MockReservationSvc) ListEvents(ctx context.Context, callerID, reservationID int32) ([]domain.ReservationEvent, error) {
	args := m.Called(ctx, callerID, reservationID)
	return args.Get(0).([]domain.ReservationEvent), args.Error(1)
}
