package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carshare-backend/internal/domain"
	"carshare-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	query := `SELECT id, owner_id, city, make, model, price_per_day_cents, deposit_min_cents, deposit_max_cents, deposit_selected_cents, currency
	          FROM vehicles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&v.ID, &v.OwnerID, &v.City, &v.Make, &v.Model,
		&v.PricePerDayCents, &v.DepositMinCents, &v.DepositMaxCents, &v.DepositSelectedCents, &v.Currency)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "vehicle", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) ListByCity(ctx context.Context, city string, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	if err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM vehicles WHERE city = $1`, city).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, owner_id, city, make, model, price_per_day_cents, deposit_min_cents, deposit_max_cents, deposit_selected_cents, currency
	          FROM vehicles WHERE city = $1 ORDER BY id ASC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, city, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.OwnerID, &v.City, &v.Make, &v.Model,
			&v.PricePerDayCents, &v.DepositMinCents, &v.DepositMaxCents, &v.DepositSelectedCents, &v.Currency); err != nil {
			return nil, 0, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, count, rows.Err()
}
