package service

import (
	"context"

	"carshare-backend/internal/domain"
	"carshare-backend/internal/repository"
)

type calendarService struct {
	lockRepo    repository.DateLockRepository
	vehicleRepo repository.VehicleRepository
}

func NewCalendarService(lockRepo repository.DateLockRepository, vehicleRepo repository.VehicleRepository) CalendarService {
	return &calendarService{lockRepo: lockRepo, vehicleRepo: vehicleRepo}
}

// ListBlockedRanges projects the lock ledger into merged calendar ranges.
// Computed on demand; correctness never depends on a cache.
func (s *calendarService) ListBlockedRanges(ctx context.Context, vehicleID int32) ([]domain.DayRange, error) {
	if _, err := s.vehicleRepo.GetByID(ctx, vehicleID); err != nil {
		return nil, err
	}
	days, err := s.lockRepo.ListBlockedDays(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	return domain.MergeDays(days), nil
}
