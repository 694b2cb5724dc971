package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"restaurant/src/core/domain"
	"restaurant/src/core/ports"
	"restaurant/src/infra/db"
)

var _ ports.RestaurantRepository = (*PostgresRepository)(nil)

// PostgresRepository implements RestaurantRepository using the db package.
type PostgresRepository struct {
	db  *db.Postgres
	log *slog.Logger
}

// NewPostgresRepository constructs a repository backed by Postgres.
func NewPostgresRepository(pg *db.Postgres, log *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		db:  pg,
		log: log,
	}
}

func (r *PostgresRepository) Health(ctx context.Context) error {
	return r.db.Health(ctx)
}

func (r *PostgresRepository) Stats() ports.StorageStats {
	s := r.db.Stats()
	return ports.StorageStats{
		TotalConns:    s.TotalConns,
		IdleConns:     s.IdleConns,
		AcquiredConns: s.AcquiredConns,
		MaxConns:      s.MaxConns,
		LeaksDetected: s.LeaksDetected,
	}
}

// mapError translates pool exhaustion and constraint violations into domain
// errors. Anything else is wrapped with the operation name.
func (r *PostgresRepository) mapError(ctx context.Context, op string, err error) error {
	if errors.Is(err, db.ErrConnectionUnavailable) {
		r.log.WarnContext(ctx, "database unavailable", "op", op, "error", err)
		return domain.NewUnavailableError(op)
	}

	pgErr, ok := db.PgError(err)
	if ok {
		r.log.DebugContext(ctx, "statement rejected", "op", op, "code", pgErr.Code, "constraint", pgErr.ConstraintName)
	}
	switch {
	case !ok:
	case db.IsUniqueViolation(err):
		return domain.NewConflictError(pgErr.Detail)
	case db.IsForeignKeyViolation(err):
		return domain.NewValidationError(pgErr.ConstraintName, "references a record that does not exist")
	case db.IsNotNullViolation(err):
		return domain.NewValidationError(pgErr.ColumnName, "required")
	}
	return fmt.Errorf("%s: %w", op, err)
}

// nullable maps the zero value to SQL NULL.
func nullable[T comparable](v T) any {
	var zero T
	if v == zero {
		return nil
	}
	return v
}
