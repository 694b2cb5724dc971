// Package domain contains the core domain model for the restaurant backend.
//
// This package defines:
//   - Entities: menu items, staff, tables, orders, reservations, waiter calls
//   - Status values and the transitions the API accepts
//   - Domain Errors: Business rule violation errors
//
// Rules for this package:
//   - No external dependencies except the standard library
//   - No infrastructure concerns (database, HTTP, etc.)
//
// Entities carry `json` tags for API responses and `db` tags naming the
// columns they are read from.
package domain
