package repo

import (
	"context"

	"github.com/google/uuid"

	"restaurant/src/core/domain"
	"restaurant/src/core/ports"
)

func (r *PostgresRepository) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	const q = `
		SELECT id, customer_name, email, phone, date::text AS date,
		       to_char(time, 'HH24:MI') AS time, guests, special_requests, status,
		       pre_order_items, total::float8 AS total, created_at
		FROM reservations
		ORDER BY date, time
	`
	res, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, r.mapError(ctx, "list reservations", err)
	}

	out := []domain.Reservation{}
	if err := res.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRepository) CreateReservation(ctx context.Context, in ports.NewReservation) (string, error) {
	const q = `
		INSERT INTO reservations (
			id, customer_name, email, phone, date, time, guests,
			special_requests, status, pre_order_items, total
		) VALUES ($1, $2, $3, $4, $5::date, $6::time, $7, $8, $9, $10, $11)
	`
	id := uuid.NewString()
	_, err := r.db.Query(ctx, q,
		id,
		in.CustomerName,
		in.Email,
		in.Phone,
		in.Date,
		in.Time,
		in.Guests,
		nullable(in.SpecialRequests),
		domain.ReservationPending,
		in.PreOrderItems,
		in.Total,
	)
	if err != nil {
		return "", r.mapError(ctx, "create reservation", err)
	}
	return id, nil
}

func (r *PostgresRepository) UpdateReservationStatus(ctx context.Context, id string, status domain.ReservationStatus) error {
	res, err := r.db.Query(ctx, `UPDATE reservations SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return r.mapError(ctx, "update reservation status", err)
	}
	if res.RowCount == 0 {
		return domain.NewNotFoundError("reservation")
	}
	return nil
}
