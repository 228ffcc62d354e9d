package service

import (
	"context"
	"testing"
	"time"

	"carshare-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCalendarService_ListBlockedRanges(t *testing.T) {
	ctx := context.Background()
	d := func(s string) time.Time {
		parsed, err := domain.ParseDay(s)
		if err != nil {
			t.Fatalf("bad day %q: %v", s, err)
		}
		return parsed
	}

	t.Run("MergesConsecutiveDays", func(t *testing.T) {
		lockRepo := new(MockDateLockRepo)
		vehicleRepo := new(MockVehicleRepo)
		svc := NewCalendarService(lockRepo, vehicleRepo)

		vehicleRepo.On("GetByID", mock.Anything, int32(1)).Return(testVehicle(), nil)
		lockRepo.On("ListBlockedDays", mock.Anything, int32(1)).Return([]time.Time{
			d("2024-06-10"), d("2024-06-11"), d("2024-06-15"),
		}, nil)

		ranges, err := svc.ListBlockedRanges(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, []domain.DayRange{
			{From: d("2024-06-10"), To: d("2024-06-11")},
			{From: d("2024-06-15"), To: d("2024-06-15")},
		}, ranges)
	})

	t.Run("NoLocks", func(t *testing.T) {
		lockRepo := new(MockDateLockRepo)
		vehicleRepo := new(MockVehicleRepo)
		svc := NewCalendarService(lockRepo, vehicleRepo)

		vehicleRepo.On("GetByID", mock.Anything, int32(1)).Return(testVehicle(), nil)
		lockRepo.On("ListBlockedDays", mock.Anything, int32(1)).Return(nil, nil)

		ranges, err := svc.ListBlockedRanges(ctx, 1)
		assert.NoError(t, err)
		assert.Empty(t, ranges)
	})

	t.Run("UnknownVehicle", func(t *testing.T) {
		lockRepo := new(MockDateLockRepo)
		vehicleRepo := new(MockVehicleRepo)
		svc := NewCalendarService(lockRepo, vehicleRepo)

		vehicleRepo.On("GetByID", mock.Anything, int32(9)).
			Return(nil, &domain.NotFoundError{Entity: "vehicle", ID: 9})

		_, err := svc.ListBlockedRanges(ctx, 9)
		var notFound *domain.NotFoundError
		assert.ErrorAs(t, err, &notFound)
		lockRepo.AssertNotCalled(t, "ListBlockedDays", mock.Anything, mock.Anything)
	})
}
