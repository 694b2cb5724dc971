package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"restaurant/src/core/domain"
)

const staffColumns = `id, name, email, phone, shift_start, shift_end, shift_days, username, status, created_at`

func (r *PostgresRepository) ListStaff(ctx context.Context) ([]domain.Staff, error) {
	res, err := r.db.Query(ctx, `SELECT `+staffColumns+` FROM staff ORDER BY name`)
	if err != nil {
		return nil, r.mapError(ctx, "list staff", err)
	}

	staff := []domain.Staff{}
	if err := res.Decode(&staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *PostgresRepository) CreateStaff(ctx context.Context, s domain.Staff) (string, error) {
	const q = `
		INSERT INTO staff (
			id, name, email, phone, shift_start, shift_end,
			shift_days, username, password, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	id := uuid.NewString()
	_, err := r.db.Query(ctx, q,
		id,
		s.Name,
		s.Email,
		s.Phone,
		s.Shift.Start,
		s.Shift.End,
		s.Shift.Days,
		s.Username,
		s.Password,
		s.Status,
	)
	if err != nil {
		return "", r.mapError(ctx, "create staff", err)
	}
	return id, nil
}

// FindActiveStaffByCredentials compares the stored password as plain text.
func (r *PostgresRepository) FindActiveStaffByCredentials(ctx context.Context, username, password string) (*domain.Staff, error) {
	q := `SELECT ` + staffColumns + ` FROM staff WHERE username = $1 AND password = $2 AND status = $3`
	res, err := r.db.Query(ctx, q, username, password, domain.StaffActive)
	if err != nil {
		return nil, r.mapError(ctx, "find staff", err)
	}

	var s domain.Staff
	if err := res.Decode(&s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("staff")
		}
		return nil, err
	}
	return &s, nil
}
