package repo

import (
	"context"

	"github.com/google/uuid"

	"restaurant/src/core/domain"
)

func (r *PostgresRepository) ListWaiterCalls(ctx context.Context) ([]domain.WaiterCall, error) {
	const q = `
		SELECT w.id, w.table_id, t.number AS table_number, w.status,
		       w.assigned_waiter_id, w.created_at
		FROM waiter_calls w
		LEFT JOIN tables t ON w.table_id = t.id
		ORDER BY w.created_at DESC
	`
	res, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, r.mapError(ctx, "list waiter calls", err)
	}

	calls := []domain.WaiterCall{}
	if err := res.Decode(&calls); err != nil {
		return nil, err
	}
	return calls, nil
}

func (r *PostgresRepository) CreateWaiterCall(ctx context.Context, tableID string) (string, error) {
	const q = `INSERT INTO waiter_calls (id, table_id, status) VALUES ($1, $2, $3)`
	id := uuid.NewString()
	if _, err := r.db.Query(ctx, q, id, tableID, domain.WaiterCallPending); err != nil {
		return "", r.mapError(ctx, "create waiter call", err)
	}
	return id, nil
}

// UpdateWaiterCallStatus keeps the current assignee when waiterID is empty.
func (r *PostgresRepository) UpdateWaiterCallStatus(ctx context.Context, id string, status domain.WaiterCallStatus, waiterID string) error {
	const q = `
		UPDATE waiter_calls
		SET status = $1, assigned_waiter_id = COALESCE($2, assigned_waiter_id)
		WHERE id = $3
	`
	res, err := r.db.Query(ctx, q, status, nullable(waiterID), id)
	if err != nil {
		return r.mapError(ctx, "update waiter call status", err)
	}
	if res.RowCount == 0 {
		return domain.NewNotFoundError("waiter call")
	}
	return nil
}
