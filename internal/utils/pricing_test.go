package utils

import (
	"testing"
	"time"

	"carshare-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestQuoteReservation(t *testing.T) {
	vehicle := &domain.Vehicle{
		ID:                   1,
		OwnerID:              2,
		PricePerDayCents:     5000,
		DepositSelectedCents: 30000,
		Currency:             "EUR",
	}
	start := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		quote, err := QuoteReservation(vehicle, start, end, 10)
		assert.NoError(t, err)
		assert.Equal(t, int32(3), quote.Days)
		assert.Equal(t, int32(15000), quote.TotalCents)
		assert.Equal(t, int32(1500), quote.CommissionCents)
		assert.Equal(t, int32(30000), quote.DepositCents)
		assert.Equal(t, "EUR", quote.Currency)
	})

	t.Run("ZeroCommission", func(t *testing.T) {
		quote, err := QuoteReservation(vehicle, start, end, 0)
		assert.NoError(t, err)
		assert.Equal(t, int32(0), quote.CommissionCents)
	})

	t.Run("EmptyRange", func(t *testing.T) {
		_, err := QuoteReservation(vehicle, start, start, 10)
		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Equal(t, "dates", verr.Field)
	})

	t.Run("InvertedRange", func(t *testing.T) {
		_, err := QuoteReservation(vehicle, end, start, 10)
		assert.Error(t, err)
	})
}
