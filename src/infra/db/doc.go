// Package db provides database connection and transaction management.
//
// This package is responsible for:
//   - PostgreSQL connection pool initialization (pgxpool)
//   - Instrumented one-shot statements (Query)
//   - Scoped clients for multi-statement work, with a checkout watchdog
//     that logs clients held longer than the configured window
//   - Idempotent schema bootstrap inside a single transaction
//
// Example usage:
//
//	pg, err := db.New(ctx, cfg.Database, log)
//	if err != nil {
//	    return err
//	}
//	defer pg.Close()
//
//	if err := pg.Initialize(ctx); err != nil {
//	    return err
//	}
//
//	err = pg.InTx(ctx, func(c *db.Client) error {
//	    _, err := c.Query(ctx, "UPDATE tables SET status = $1 WHERE id = $2", "occupied", id)
//	    return err
//	})
package db
