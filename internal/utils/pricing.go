package utils

import (
	"time"

	"carshare-backend/internal/domain"
)

// Quote is the monetary snapshot stored on a reservation at creation time.
// These values are frozen copies of the vehicle's live pricing; later listing
// edits never change an existing reservation.
type Quote struct {
	Days            int32
	TotalCents      int32
	CommissionCents int32
	DepositCents    int32
	Currency        string
}

// QuoteReservation prices a half-open [start, end) date range against the
// vehicle's per-day rate. The commission percentage comes from configuration
// and is recorded as part of the snapshot, not recomputed downstream.
func QuoteReservation(v *domain.Vehicle, start, end time.Time, commissionPercent int) (*Quote, error) {
	days := domain.DaysBetween(start, end)
	if len(days) == 0 {
		return nil, &domain.ValidationError{Field: "dates", Reason: "end date must be after start date"}
	}

	n := int32(len(days))
	total := v.PricePerDayCents * n
	return &Quote{
		Days:            n,
		TotalCents:      total,
		CommissionCents: total * int32(commissionPercent) / 100,
		DepositCents:    v.DepositSelectedCents,
		Currency:        v.Currency,
	}, nil
}
