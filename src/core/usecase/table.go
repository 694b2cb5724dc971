package usecase

import (
	"context"
	"log/slog"
	"strings"

	"restaurant/src/core/domain"
	"restaurant/src/core/ports"
)

// TableService manages dining tables.
type TableService struct {
	repo ports.RestaurantRepository
	log  *slog.Logger
}

func NewTableService(repo ports.RestaurantRepository, log *slog.Logger) *TableService {
	return &TableService{repo: repo, log: log}
}

// List returns tables ordered by number.
func (s *TableService) List(ctx context.Context) ([]domain.Table, error) {
	return s.repo.ListTables(ctx)
}

// Create adds a table and returns the new id.
func (s *TableService) Create(ctx context.Context, table domain.Table) (string, error) {
	table.Number = strings.TrimSpace(table.Number)
	if table.Number == "" {
		return "", domain.NewValidationError("number", "required")
	}
	if table.Seats <= 0 {
		return "", domain.NewValidationError("seats", "must be positive")
	}
	if table.Status == "" {
		table.Status = domain.TableAvailable
	}
	if !table.Status.Valid() {
		return "", domain.NewValidationError("status", "unknown status")
	}

	id, err := s.repo.CreateTable(ctx, table)
	if err != nil {
		return "", err
	}
	s.log.InfoContext(ctx, "table created", "table_id", id, "number", table.Number)
	return id, nil
}
