package db

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrConnectionUnavailable is returned when the pool cannot hand out a
	// connection within its bound.
	ErrConnectionUnavailable = errors.New("connection unavailable")

	// ErrQueryFailed is returned when the database rejects or fails a statement.
	ErrQueryFailed = errors.New("query failed")

	// ErrSchemaInitialization is returned by Initialize when any bootstrap
	// statement fails. The transaction has been rolled back.
	ErrSchemaInitialization = errors.New("schema initialization failed")

	// ErrClientReleased is returned when a Client is used after Release.
	ErrClientReleased = errors.New("client already released")
)

// Error pairs one of the sentinel kinds above with the error that caused it.
// Both are reachable through errors.Is / errors.As, so callers can still
// inspect the *pgconn.PgError reported by the server.
type Error struct {
	Kind error
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func connectionUnavailable(err error) error {
	return &Error{Kind: ErrConnectionUnavailable, Err: err}
}

func queryFailed(err error) error {
	return &Error{Kind: ErrQueryFailed, Err: err}
}

// PgError extracts the server-reported error from err, if any.
func PgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

func hasCode(err error, code string) bool {
	pgErr, ok := PgError(err)
	return ok && pgErr.Code == code
}

// IsUniqueViolation reports whether err is a unique constraint violation.
func IsUniqueViolation(err error) bool {
	return hasCode(err, pgerrcode.UniqueViolation)
}

// IsForeignKeyViolation reports whether err is a foreign key violation.
func IsForeignKeyViolation(err error) bool {
	return hasCode(err, pgerrcode.ForeignKeyViolation)
}

// IsNotNullViolation reports whether err is a not-null constraint violation.
func IsNotNullViolation(err error) bool {
	return hasCode(err, pgerrcode.NotNullViolation)
}
