package usecase

import (
	"context"
	"log/slog"
	"strings"

	"restaurant/src/core/domain"
	"restaurant/src/core/ports"
)

// MenuService handles menu queries and updates.
type MenuService struct {
	repo ports.RestaurantRepository
	log  *slog.Logger
}

func NewMenuService(repo ports.RestaurantRepository, log *slog.Logger) *MenuService {
	return &MenuService{repo: repo, log: log}
}

// Available lists menu items that can be ordered. List fields are never nil.
func (s *MenuService) Available(ctx context.Context) ([]domain.MenuItem, error) {
	items, err := s.repo.ListAvailableMenuItems(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Ingredients = nonNil(items[i].Ingredients)
		items[i].Allergens = nonNil(items[i].Allergens)
		items[i].Condiments = nonNil(items[i].Condiments)
	}
	return items, nil
}

// Create adds a menu item and returns its id.
func (s *MenuService) Create(ctx context.Context, item ports.NewMenuItem) (int64, error) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return 0, domain.NewValidationError("name", "required")
	}
	if item.Price < 0 {
		return 0, domain.NewValidationError("price", "must not be negative")
	}
	if item.Category == "" {
		return 0, domain.NewValidationError("category", "required")
	}
	if item.MealType == "" {
		return 0, domain.NewValidationError("mealType", "required")
	}
	if item.Currency == "" {
		item.Currency = domain.DefaultCurrency
	}
	item.Ingredients = nonNil(item.Ingredients)
	item.Allergens = nonNil(item.Allergens)
	item.Condiments = nonNil(item.Condiments)

	id, err := s.repo.CreateMenuItem(ctx, item)
	if err != nil {
		return 0, err
	}
	s.log.InfoContext(ctx, "menu item created", "menu_item_id", id, "name", item.Name)
	return id, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
