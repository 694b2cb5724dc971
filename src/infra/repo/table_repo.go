package repo

import (
	"context"

	"github.com/google/uuid"

	"restaurant/src/core/domain"
)

func (r *PostgresRepository) ListTables(ctx context.Context) ([]domain.Table, error) {
	const q = `
		SELECT id, number, seats, location, status, created_at
		FROM tables
		ORDER BY number
	`
	res, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, r.mapError(ctx, "list tables", err)
	}

	tables := []domain.Table{}
	if err := res.Decode(&tables); err != nil {
		return nil, err
	}
	return tables, nil
}

func (r *PostgresRepository) CreateTable(ctx context.Context, t domain.Table) (string, error) {
	const q = `
		INSERT INTO tables (id, number, seats, location, status)
		VALUES ($1, $2, $3, $4, $5)
	`
	id := uuid.NewString()
	if _, err := r.db.Query(ctx, q, id, t.Number, t.Seats, t.Location, t.Status); err != nil {
		return "", r.mapError(ctx, "create table", err)
	}
	return id, nil
}
