package db

import (
	"context"
	"time"
)

// Table is one idempotent CREATE TABLE statement.
type Table struct {
	Name string
	DDL  string
}

// RestaurantSchema returns the application tables in dependency order.
func RestaurantSchema() []Table {
	return []Table{
		{
			Name: "menu_items",
			DDL: `CREATE TABLE IF NOT EXISTS menu_items (
				id SERIAL PRIMARY KEY,
				name TEXT NOT NULL,
				description TEXT,
				price DECIMAL(10,2) NOT NULL,
				currency TEXT NOT NULL,
				category TEXT NOT NULL,
				meal_type TEXT NOT NULL,
				image TEXT,
				ingredients JSONB,
				allergens JSONB,
				condiments JSONB,
				available BOOLEAN DEFAULT true,
				preparation_time TEXT,
				calories INTEGER,
				spicy_level INTEGER,
				is_vegetarian BOOLEAN DEFAULT false,
				is_vegan BOOLEAN DEFAULT false,
				is_gluten_free BOOLEAN DEFAULT false
			)`,
		},
		{
			Name: "staff",
			DDL: `CREATE TABLE IF NOT EXISTS staff (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				email TEXT NOT NULL,
				phone TEXT NOT NULL,
				shift_start TEXT NOT NULL,
				shift_end TEXT NOT NULL,
				shift_days JSONB NOT NULL,
				username TEXT UNIQUE NOT NULL,
				password TEXT NOT NULL,
				status TEXT NOT NULL DEFAULT 'active',
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
		},
		{
			Name: "tables",
			DDL: `CREATE TABLE IF NOT EXISTS tables (
				id TEXT PRIMARY KEY,
				number TEXT UNIQUE NOT NULL,
				seats INTEGER NOT NULL,
				location TEXT NOT NULL,
				status TEXT NOT NULL DEFAULT 'available',
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
		},
		{
			Name: "orders",
			DDL: `CREATE TABLE IF NOT EXISTS orders (
				id TEXT PRIMARY KEY,
				table_id TEXT REFERENCES tables(id),
				items JSONB NOT NULL,
				status TEXT NOT NULL,
				total DECIMAL(10,2) NOT NULL,
				tax DECIMAL(10,2) NOT NULL,
				subtotal DECIMAL(10,2) NOT NULL,
				waiter_id TEXT REFERENCES staff(id),
				waiter_name TEXT,
				estimated_time INTEGER,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
		},
		{
			Name: "reservations",
			DDL: `CREATE TABLE IF NOT EXISTS reservations (
				id TEXT PRIMARY KEY,
				customer_name TEXT NOT NULL,
				email TEXT NOT NULL,
				phone TEXT NOT NULL,
				date DATE NOT NULL,
				time TIME NOT NULL,
				guests INTEGER NOT NULL,
				special_requests TEXT,
				status TEXT NOT NULL DEFAULT 'pending',
				pre_order_items JSONB,
				total DECIMAL(10,2),
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
		},
		{
			Name: "waiter_calls",
			DDL: `CREATE TABLE IF NOT EXISTS waiter_calls (
				id TEXT PRIMARY KEY,
				table_id TEXT REFERENCES tables(id),
				status TEXT NOT NULL DEFAULT 'pending',
				assigned_waiter_id TEXT REFERENCES staff(id),
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
		},
	}
}

// Initialize creates the restaurant tables if they do not exist.
func (p *Postgres) Initialize(ctx context.Context) error {
	return p.InitializeSchema(ctx, RestaurantSchema())
}

// InitializeSchema runs every DDL statement in one transaction. On any
// failure nothing is committed and the returned error matches
// ErrSchemaInitialization.
func (p *Postgres) InitializeSchema(ctx context.Context, tables []Table) error {
	start := time.Now()

	err := p.InTx(ctx, func(c *Client) error {
		for _, t := range tables {
			if _, err := c.Query(ctx, t.DDL); err != nil {
				p.log.ErrorContext(ctx, "failed to create table", "table", t.Name, "error", err)
				return err
			}
			p.log.DebugContext(ctx, "table ready", "table", t.Name)
		}
		return nil
	})
	if err != nil {
		return &Error{Kind: ErrSchemaInitialization, Err: err}
	}

	p.log.InfoContext(ctx, "database schema initialized",
		"tables", len(tables),
		"duration", time.Since(start),
	)
	return nil
}
