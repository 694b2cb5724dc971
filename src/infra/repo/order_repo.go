package repo

import (
	"context"

	"github.com/google/uuid"

	"restaurant/src/core/domain"
	"restaurant/src/core/ports"
	"restaurant/src/infra/db"
)

func (r *PostgresRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	const q = `
		SELECT o.id, o.table_id, t.number AS table_number, o.items, o.status,
		       o.total::float8 AS total, o.tax::float8 AS tax, o.subtotal::float8 AS subtotal,
		       o.waiter_id, o.waiter_name, o.estimated_time, o.created_at, o.updated_at
		FROM orders o
		JOIN tables t ON o.table_id = t.id
		ORDER BY o.created_at DESC
	`
	res, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, r.mapError(ctx, "list orders", err)
	}

	orders := []domain.Order{}
	if err := res.Decode(&orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateOrder inserts the order and marks its table occupied in one transaction.
func (r *PostgresRepository) CreateOrder(ctx context.Context, o ports.NewOrder) (string, error) {
	const insertOrder = `
		INSERT INTO orders (
			id, table_id, items, status, total, tax,
			subtotal, waiter_id, waiter_name, estimated_time
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	const occupyTable = `UPDATE tables SET status = $1 WHERE id = $2`

	id := uuid.NewString()
	err := r.db.InTx(ctx, func(c *db.Client) error {
		if _, err := c.Query(ctx, insertOrder,
			id,
			o.TableID,
			o.Items,
			o.Status,
			o.Total,
			o.Tax,
			o.Subtotal,
			nullable(o.WaiterID),
			nullable(o.WaiterName),
			nullable(o.EstimatedTime),
		); err != nil {
			return err
		}
		_, err := c.Query(ctx, occupyTable, domain.TableOccupied, o.TableID)
		return err
	})
	if err != nil {
		return "", r.mapError(ctx, "create order", err)
	}
	return id, nil
}

func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	const q = `UPDATE orders SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`
	res, err := r.db.Query(ctx, q, status, id)
	if err != nil {
		return r.mapError(ctx, "update order status", err)
	}
	if res.RowCount == 0 {
		return domain.NewNotFoundError("order")
	}
	return nil
}
