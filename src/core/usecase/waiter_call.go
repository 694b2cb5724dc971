package usecase

import (
	"context"
	"log/slog"

	"restaurant/src/core/domain"
	"restaurant/src/core/ports"
)

// WaiterCallService handles tables calling for service.
type WaiterCallService struct {
	repo ports.RestaurantRepository
	log  *slog.Logger
}

func NewWaiterCallService(repo ports.RestaurantRepository, log *slog.Logger) *WaiterCallService {
	return &WaiterCallService{repo: repo, log: log}
}

// List returns open and past calls, newest first.
func (s *WaiterCallService) List(ctx context.Context) ([]domain.WaiterCall, error) {
	return s.repo.ListWaiterCalls(ctx)
}

// Call records a request for service from a table.
func (s *WaiterCallService) Call(ctx context.Context, tableID string) (string, error) {
	if tableID == "" {
		return "", domain.NewValidationError("tableId", "required")
	}
	id, err := s.repo.CreateWaiterCall(ctx, tableID)
	if err != nil {
		return "", err
	}
	s.log.InfoContext(ctx, "waiter called", "call_id", id, "table_id", tableID)
	return id, nil
}

// UpdateStatus moves a call to status. A waiter id assigns the call.
func (s *WaiterCallService) UpdateStatus(ctx context.Context, id string, status domain.WaiterCallStatus, waiterID string) error {
	if !status.Valid() {
		return domain.NewValidationError("status", "unknown status")
	}
	return s.repo.UpdateWaiterCallStatus(ctx, id, status, waiterID)
}
