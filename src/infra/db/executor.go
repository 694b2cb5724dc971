package db

import (
	"context"
	"time"
)

// Query runs a one-shot statement through Execute and logs its text, duration
// and row count. Errors are returned unchanged.
func (p *Postgres) Query(ctx context.Context, text string, args ...any) (*Result, error) {
	start := time.Now()
	res, err := p.Execute(ctx, text, args...)
	duration := time.Since(start)

	if err != nil {
		p.log.DebugContext(ctx, "query failed",
			"text", text,
			"duration", duration,
			"error", err,
		)
		return nil, err
	}

	p.log.InfoContext(ctx, "executed query",
		"text", text,
		"duration", duration,
		"rows", res.RowCount,
	)
	return res, nil
}
