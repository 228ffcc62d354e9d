package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"carshare-backend/internal/domain"
	"carshare-backend/internal/logger"
	"carshare-backend/internal/repository"
)

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

const reservationColumns = `id, vehicle_id, renter_id, owner_id, start_date, end_date, status, payment_status, deposit_status,
	       total_cents, commission_cents, deposit_cents, currency, version, accepted_at, payment_intent_id, created_on, updated_on`

func (r *reservationRepository) CreateWithLocks(ctx context.Context, rsv *domain.Reservation, ev *domain.ReservationEvent) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create reservation: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	query := `INSERT INTO reservations (vehicle_id, renter_id, owner_id, start_date, end_date, status, payment_status, deposit_status,
	              total_cents, commission_cents, deposit_cents, currency, version, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 1, $13, $14) RETURNING id`
	err = tx.QueryRowContext(ctx, query,
		rsv.VehicleID, rsv.RenterID, rsv.OwnerID, rsv.StartDate, rsv.EndDate,
		rsv.Status, rsv.PaymentStatus, rsv.DepositStatus,
		rsv.TotalCents, rsv.CommissionCents, rsv.DepositCents, rsv.Currency,
		now, now).Scan(&rsv.ID)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}
	rsv.Version = 1
	rsv.CreatedOn, rsv.UpdatedOn = now, now

	// The lock claim and the reservation insert commit as one unit: a
	// contested day rolls the whole thing back, leaving no partial locks.
	if err := claimDateLocks(ctx, tx, rsv.VehicleID, rsv.ID, rsv.Days()); err != nil {
		return err
	}

	ev.ReservationID = rsv.ID
	if err := insertEvent(ctx, tx, ev); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create reservation: %w", err)
	}
	return nil
}

func (r *reservationRepository) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	rsv := &domain.Reservation{}
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	var acceptedAt sql.NullTime
	var paymentIntentID sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rsv.ID, &rsv.VehicleID, &rsv.RenterID, &rsv.OwnerID, &rsv.StartDate, &rsv.EndDate,
		&rsv.Status, &rsv.PaymentStatus, &rsv.DepositStatus,
		&rsv.TotalCents, &rsv.CommissionCents, &rsv.DepositCents, &rsv.Currency,
		&rsv.Version, &acceptedAt, &paymentIntentID, &rsv.CreatedOn, &rsv.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "reservation", ID: id}
	}
	if err != nil {
		return nil, err
	}
	if acceptedAt.Valid {
		t := acceptedAt.Time
		rsv.AcceptedAt = &t
	}
	rsv.PaymentIntentID = paymentIntentID.String
	return rsv, nil
}

func (r *reservationRepository) Transition(ctx context.Context, rsv *domain.Reservation, ev *domain.ReservationEvent, releaseLocks bool) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transition: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE reservations
	          SET status=$1, payment_status=$2, deposit_status=$3, accepted_at=$4, payment_intent_id=$5,
	              version=version+1, updated_on=NOW()
	          WHERE id=$6 AND version=$7`
	var acceptedAt interface{}
	if rsv.AcceptedAt != nil {
		acceptedAt = *rsv.AcceptedAt
	}
	var paymentIntentID interface{}
	if rsv.PaymentIntentID != "" {
		paymentIntentID = rsv.PaymentIntentID
	}
	res, err := tx.ExecContext(ctx, query,
		rsv.Status, rsv.PaymentStatus, rsv.DepositStatus, acceptedAt, paymentIntentID,
		rsv.ID, rsv.Version)
	if err != nil {
		return fmt.Errorf("update reservation %d: %w", rsv.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// Either the row is gone or another transition won the version race.
		var v int32
		err := tx.QueryRowContext(ctx, `SELECT version FROM reservations WHERE id = $1`, rsv.ID).Scan(&v)
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.NotFoundError{Entity: "reservation", ID: rsv.ID}
		}
		if err != nil {
			return err
		}
		return domain.ErrConflict
	}

	ev.ReservationID = rsv.ID
	if err := insertEvent(ctx, tx, ev); err != nil {
		return err
	}

	if releaseLocks {
		if err := releaseDateLocks(ctx, tx, rsv.ID); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transition: %w", err)
	}
	rsv.Version++
	logger.Debug("Reservation transitioned", "reservation_id", rsv.ID, "status", rsv.Status, "event", ev.Type)
	return nil
}

func (r *reservationRepository) ListByRenter(ctx context.Context, renterID int32, status string, page, pageSize int32) ([]domain.Reservation, int32, error) {
	return r.list(ctx, "renter_id", renterID, status, page, pageSize)
}

func (r *reservationRepository) ListByOwner(ctx context.Context, ownerID int32, status string, page, pageSize int32) ([]domain.Reservation, int32, error) {
	return r.list(ctx, "owner_id", ownerID, status, page, pageSize)
}

func (r *reservationRepository) list(ctx context.Context, column string, userID int32, status string, page, pageSize int32) ([]domain.Reservation, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE ` + column + ` = $1`
	args := []interface{}{userID}
	argIdx := 2
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	reservations, err := scanReservations(rows)
	if err != nil {
		return nil, 0, err
	}
	return reservations, count, nil
}

func (r *reservationRepository) ListUnpaidAcceptedBefore(ctx context.Context, cutoff time.Time) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations
	          WHERE status = $1 AND accepted_at < $2 ORDER BY accepted_at ASC`
	rows, err := r.db.QueryContext(ctx, query, domain.ReservationStatusPendingPayment, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReservations(rows)
}

func scanReservations(rows *sql.Rows) ([]domain.Reservation, error) {
	var reservations []domain.Reservation
	for rows.Next() {
		var rsv domain.Reservation
		var acceptedAt sql.NullTime
		var paymentIntentID sql.NullString
		if err := rows.Scan(
			&rsv.ID, &rsv.VehicleID, &rsv.RenterID, &rsv.OwnerID, &rsv.StartDate, &rsv.EndDate,
			&rsv.Status, &rsv.PaymentStatus, &rsv.DepositStatus,
			&rsv.TotalCents, &rsv.CommissionCents, &rsv.DepositCents, &rsv.Currency,
			&rsv.Version, &acceptedAt, &paymentIntentID, &rsv.CreatedOn, &rsv.UpdatedOn); err != nil {
			return nil, err
		}
		if acceptedAt.Valid {
			t := acceptedAt.Time
			rsv.AcceptedAt = &t
		}
		rsv.PaymentIntentID = paymentIntentID.String
		reservations = append(reservations, rsv)
	}
	return reservations, rows.Err()
}
