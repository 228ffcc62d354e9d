package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"carshare-backend/internal/domain"
	"carshare-backend/internal/repository"

	"github.com/google/uuid"
)

type eventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

// insertEvent appends one event inside the caller's transaction. The partial
// unique index on idempotency_key turns a replayed key into a 23505, which
// aborts the whole transition so the retry has no net effect.
func insertEvent(ctx context.Context, tx *sql.Tx, ev *domain.ReservationEvent) error {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.CreatedOn.IsZero() {
		ev.CreatedOn = time.Now().UTC()
	}

	var payload []byte
	if len(ev.Payload) > 0 {
		var err error
		payload, err = json.Marshal(ev.Payload)
		if err != nil {
			return fmt.Errorf("marshal event payload: %w", err)
		}
	}
	var idemKey interface{}
	if ev.IdempotencyKey != "" {
		idemKey = ev.IdempotencyKey
	}

	query := `INSERT INTO reservation_events (id, reservation_id, event_type, actor_id, idempotency_key, payload, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := tx.ExecContext(ctx, query, ev.ID, ev.ReservationID, ev.Type, ev.ActorID, idemKey, payload, ev.CreatedOn)
	if isUniqueViolation(err, "idempotency") {
		return domain.ErrDuplicateRequest
	}
	if err != nil {
		return fmt.Errorf("insert reservation event: %w", err)
	}
	return nil
}

func (r *eventRepository) ListByReservation(ctx context.Context, reservationID int32) ([]domain.ReservationEvent, error) {
	query := `SELECT id, reservation_id, event_type, actor_id, idempotency_key, payload, created_on
	          FROM reservation_events WHERE reservation_id = $1 ORDER BY created_on ASC`
	rows, err := r.db.QueryContext(ctx, query, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.ReservationEvent
	for rows.Next() {
		var ev domain.ReservationEvent
		var idemKey sql.NullString
		var payload []byte
		if err := rows.Scan(&ev.ID, &ev.ReservationID, &ev.Type, &ev.ActorID, &idemKey, &payload, &ev.CreatedOn); err != nil {
			return nil, err
		}
		ev.IdempotencyKey = idemKey.String
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &ev.Payload); err != nil {
				return nil, err
			}
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}
