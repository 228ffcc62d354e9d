package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"carshare-backend/internal/domain"
	"carshare-backend/internal/repository"

	"github.com/lib/pq"
)

type dateLockRepository struct {
	db *sql.DB
}

func NewDateLockRepository(db *sql.DB) repository.DateLockRepository {
	return &dateLockRepository{db: db}
}

// claimDateLocks inserts one lock row per day inside the caller's transaction.
// The primary key on (vehicle_id, day) makes overlap detection a set-membership
// problem: the first writer to land all its rows wins, the loser observes a
// shortfall and the enclosing transaction rolls back. ON CONFLICT DO NOTHING
// keeps the contested insert from aborting the session, so the conflicting day
// can still be read back for the error.
func claimDateLocks(ctx context.Context, tx *sql.Tx, vehicleID, reservationID int32, days []time.Time) error {
	if len(days) == 0 {
		return &domain.ValidationError{Field: "dates", Reason: "end date must be after start date"}
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO date_locks (vehicle_id, day, reservation_id) VALUES `)
	args := make([]interface{}, 0, len(days)*3)
	for i, day := range days {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "($%d, $%d, $%d)", i*3+1, i*3+2, i*3+3)
		args = append(args, vehicleID, day, reservationID)
	}
	sb.WriteString(` ON CONFLICT (vehicle_id, day) DO NOTHING`)

	res, err := tx.ExecContext(ctx, sb.String(), args...)
	if err != nil {
		return fmt.Errorf("claim date locks: %w", err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if inserted == int64(len(days)) {
		return nil
	}

	var conflictDay time.Time
	err = tx.QueryRowContext(ctx,
		`SELECT day FROM date_locks WHERE vehicle_id = $1 AND day = ANY($2) AND reservation_id <> $3 ORDER BY day LIMIT 1`,
		vehicleID, pq.Array(days), reservationID).Scan(&conflictDay)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("find conflicting day: %w", err)
	}
	return &domain.DatesUnavailableError{VehicleID: vehicleID, ConflictDay: domain.Day(conflictDay)}
}

// releaseDateLocks removes every lock row owned by the reservation inside the
// caller's transaction. Rows owned by other reservations are untouchable here
// by construction of the WHERE clause.
func releaseDateLocks(ctx context.Context, tx *sql.Tx, reservationID int32) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM date_locks WHERE reservation_id = $1`, reservationID)
	if err != nil {
		return fmt.Errorf("release date locks: %w", err)
	}
	return nil
}

func (r *dateLockRepository) ListBlockedDays(ctx context.Context, vehicleID int32) ([]time.Time, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT day FROM date_locks WHERE vehicle_id = $1 ORDER BY day ASC`, vehicleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []time.Time
	for rows.Next() {
		var day time.Time
		if err := rows.Scan(&day); err != nil {
			return nil, err
		}
		days = append(days, domain.Day(day))
	}
	return days, rows.Err()
}

func (r *dateLockRepository) ListByReservation(ctx context.Context, reservationID int32) ([]domain.DateLock, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT vehicle_id, day, reservation_id FROM date_locks WHERE reservation_id = $1 ORDER BY day ASC`, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locks []domain.DateLock
	for rows.Next() {
		var l domain.DateLock
		if err := rows.Scan(&l.VehicleID, &l.Day, &l.ReservationID); err != nil {
			return nil, err
		}
		l.Day = domain.Day(l.Day)
		locks = append(locks, l)
	}
	return locks, rows.Err()
}
