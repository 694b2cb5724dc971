package repo

import (
	"context"

	"restaurant/src/core/domain"
	"restaurant/src/core/ports"
)

func (r *PostgresRepository) ListAvailableMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	const q = `
		SELECT id, name, description, price::float8 AS price, currency, category, meal_type,
		       image, ingredients, allergens, condiments, available, preparation_time,
		       calories, spicy_level, is_vegetarian, is_vegan, is_gluten_free
		FROM menu_items
		WHERE available = true
		ORDER BY id
	`
	res, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, r.mapError(ctx, "list menu items", err)
	}

	items := []domain.MenuItem{}
	if err := res.Decode(&items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) CreateMenuItem(ctx context.Context, item ports.NewMenuItem) (int64, error) {
	const q = `
		INSERT INTO menu_items (
			name, description, price, currency, category, meal_type,
			image, ingredients, allergens, condiments, available,
			preparation_time, calories, spicy_level, is_vegetarian,
			is_vegan, is_gluten_free
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id
	`
	res, err := r.db.Query(ctx, q,
		item.Name,
		nullable(item.Description),
		item.Price,
		item.Currency,
		item.Category,
		item.MealType,
		nullable(item.Image),
		item.Ingredients,
		item.Allergens,
		item.Condiments,
		item.Available,
		nullable(item.PreparationTime),
		nullable(item.Calories),
		nullable(item.SpicyLevel),
		item.IsVegetarian,
		item.IsVegan,
		item.IsGlutenFree,
	)
	if err != nil {
		return 0, r.mapError(ctx, "create menu item", err)
	}

	var created struct {
		ID int64 `db:"id"`
	}
	if err := res.Decode(&created); err != nil {
		return 0, err
	}
	return created.ID, nil
}
