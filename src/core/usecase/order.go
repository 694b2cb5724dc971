package usecase

import (
	"context"
	"log/slog"

	"restaurant/src/core/domain"
	"restaurant/src/core/ports"
)

// OrderService handles order placement and kitchen status updates.
type OrderService struct {
	repo ports.RestaurantRepository
	log  *slog.Logger
}

func NewOrderService(repo ports.RestaurantRepository, log *slog.Logger) *OrderService {
	return &OrderService{repo: repo, log: log}
}

// List returns orders, newest first.
func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = nonNil(orders[i].Items)
	}
	return orders, nil
}

// Place records an order and marks its table occupied.
func (s *OrderService) Place(ctx context.Context, order ports.NewOrder) (string, error) {
	if order.TableID == "" {
		return "", domain.NewValidationError("tableId", "required")
	}
	if len(order.Items) == 0 {
		return "", domain.NewValidationError("items", "at least one item required")
	}
	for _, it := range order.Items {
		if it.Quantity <= 0 {
			return "", domain.NewValidationError("items", "quantity must be positive")
		}
	}
	if order.Status == "" {
		order.Status = domain.OrderPending
	}
	if !order.Status.Valid() {
		return "", domain.NewValidationError("status", "unknown status")
	}

	id, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		return "", err
	}
	s.log.InfoContext(ctx, "order placed", "order_id", id, "table_id", order.TableID, "items", len(order.Items))
	return id, nil
}

// UpdateStatus moves an order to status.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	if !status.Valid() {
		return domain.NewValidationError("status", "unknown status")
	}
	if err := s.repo.UpdateOrderStatus(ctx, id, status); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "order status updated", "order_id", id, "status", status)
	return nil
}
