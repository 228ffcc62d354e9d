package jobs

import (
	"context"
	"time"

	"carshare-backend/internal/logger"
)

// ExpireUnpaidReservations cancels reservations stuck in
// ACCEPTED_PENDING_PAYMENT past the payment deadline and releases their date
// locks. Each cancellation goes through the same guarded transition path as an
// owner cancel, so a reservation swept twice (or paid mid-sweep) is a no-op.
func (jr *JobRunner) ExpireUnpaidReservations() {
	jr.runWithRecovery("ExpireUnpaidReservations", func() {
		ctx := context.Background()
		deadline := time.Duration(jr.config.Payment.DeadlineMinutes) * time.Minute
		cutoff := time.Now().UTC().Add(-deadline)

		stale, err := jr.store.ListUnpaidAcceptedBefore(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to list stale unpaid reservations", "error", err)
			return
		}
		if len(stale) == 0 {
			return
		}

		expired := 0
		for _, rsv := range stale {
			if err := jr.services.Reservation.Expire(ctx, rsv.ID); err != nil {
				logger.Error("Failed to expire reservation", "reservation_id", rsv.ID, "error", err)
				continue
			}
			expired++
			logger.Debug("Expired unpaid reservation",
				"reservation_id", rsv.ID,
				"vehicle_id", rsv.VehicleID,
				"accepted_at", rsv.AcceptedAt)
		}
		logger.Info("Expired unpaid reservations", "count", expired, "scanned", len(stale))
	})
}
