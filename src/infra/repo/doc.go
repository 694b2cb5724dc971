// Package repo contains the PostgreSQL implementation of the repository ports.
//
// This package implements ports.RestaurantRepository on top of *db.Postgres.
// One-shot statements go through the instrumented db.Postgres.Query;
// work that must be atomic runs inside db.Postgres.InTx.
//
// Naming convention:
//   - Files: <entity>_repo.go (e.g., menu_repo.go, order_repo.go)
//
// Statements cast NUMERIC columns to float8 and DATE/TIME columns to text so
// rows decode directly into the domain structs via their `db` tags.
package repo
