package db_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant/src/infra/db"
	"restaurant/src/infra/db/dbtest"
)

func tagRows(tag string) *pgxmock.Rows {
	return pgxmock.NewRows([]string{}).AddCommandTag(pgconn.NewCommandTag(tag))
}

func TestClient_QueryRecordsLastStatement(t *testing.T) {
	pg, pool := dbtest.New(t, dbtest.Config{})
	ctx := context.Background()

	c, err := pg.AcquireClient(ctx)
	require.NoError(t, err)

	_, ok := c.LastStatement()
	assert.False(t, ok)

	pool.Mock().ExpectQuery("INSERT INTO tables").
		WithArgs("t1", "5").
		WillReturnError(errors.New("connection reset"))

	_, err = c.Query(ctx, "INSERT INTO tables (id, number) VALUES ($1, $2)", "t1", "5")
	require.ErrorIs(t, err, db.ErrQueryFailed)

	last, ok := c.LastStatement()
	require.True(t, ok, "recorded even when the statement fails")
	assert.Equal(t, "INSERT INTO tables (id, number) VALUES ($1, $2)", last.Text)
	assert.Equal(t, []any{"t1", "5"}, last.Args)
	assert.GreaterOrEqual(t, c.HeldFor(), time.Duration(0))

	require.NoError(t, c.Release())
	_, ok = c.LastStatement()
	assert.False(t, ok, "cleared on release")
	require.NoError(t, pool.ExpectationsWereMet())
}

func TestClient_UseAfterRelease(t *testing.T) {
	log, buf := dbtest.NewLogger()
	pg, pool := dbtest.New(t, dbtest.Config{Logger: log})
	ctx := context.Background()

	c, err := pg.AcquireClient(ctx)
	require.NoError(t, err)
	require.NoError(t, c.Release())

	_, err = c.Query(ctx, "SELECT 1")
	assert.ErrorIs(t, err, db.ErrClientReleased)

	err = c.Release()
	assert.ErrorIs(t, err, db.ErrClientReleased)
	assert.Contains(t, buf.String(), "client released more than once")

	assert.Equal(t, 1, pool.Conn(0).Releases(), "connection released exactly once")
	assert.Equal(t, 1, pool.Idle())
	require.NoError(t, pool.ExpectationsWereMet(), "no statement reached the connection")
}

func TestClient_LeakDetection(t *testing.T) {
	log, buf := dbtest.NewLogger()
	pg, pool := dbtest.New(t, dbtest.Config{
		Logger:  log,
		Options: db.Options{LeakWindow: 50 * time.Millisecond},
	})
	ctx := context.Background()

	pool.Mock().ExpectQuery("SELECT pg_sleep").
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"pg_sleep"}).AddRow(""))

	c, err := pg.AcquireClient(ctx)
	require.NoError(t, err)
	_, err = c.Query(ctx, "SELECT pg_sleep($1)", 1)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return pg.Stats().LeaksDetected == 1
	}, time.Second, 5*time.Millisecond)

	out := buf.String()
	assert.Contains(t, out, "client checked out too long component=db held=")
	assert.Contains(t, out, "window=50ms")
	assert.Contains(t, out, `last_statement="SELECT pg_sleep($1)"`)
	assert.Contains(t, out, "last_args=[1]")

	// the handle keeps working after the report
	pool.Mock().ExpectQuery("SELECT 2").WillReturnRows(pgxmock.NewRows([]string{"n"}).AddRow(int32(2)))
	_, err = c.Query(ctx, "SELECT 2")
	require.NoError(t, err)
	require.NoError(t, c.Release())
	assert.Equal(t, 1, pool.Idle())
	require.NoError(t, pool.ExpectationsWereMet())
}

func TestClient_NoLeakReportAfterRelease(t *testing.T) {
	log, buf := dbtest.NewLogger()
	pg, _ := dbtest.New(t, dbtest.Config{
		Logger:  log,
		Options: db.Options{LeakWindow: 20 * time.Millisecond},
	})

	c, err := pg.AcquireClient(context.Background())
	require.NoError(t, err)
	require.NoError(t, c.Release())

	time.Sleep(60 * time.Millisecond)
	assert.NotContains(t, buf.String(), "client checked out too long")
	assert.Zero(t, pg.Stats().LeaksDetected)
}

func TestWithClient(t *testing.T) {
	t.Run("releases after success", func(t *testing.T) {
		pg, pool := dbtest.New(t, dbtest.Config{})
		pool.Mock().ExpectQuery("SELECT 1").WillReturnRows(pgxmock.NewRows([]string{"n"}).AddRow(int32(1)))

		err := pg.WithClient(context.Background(), func(c *db.Client) error {
			_, err := c.Query(context.Background(), "SELECT 1")
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, 1, pool.Idle())
	})

	t.Run("releases after error", func(t *testing.T) {
		pg, pool := dbtest.New(t, dbtest.Config{})
		boom := errors.New("boom")

		err := pg.WithClient(context.Background(), func(*db.Client) error { return boom })
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, pool.Idle())
	})

	t.Run("releases after panic", func(t *testing.T) {
		pg, pool := dbtest.New(t, dbtest.Config{})

		assert.Panics(t, func() {
			_ = pg.WithClient(context.Background(), func(*db.Client) error { panic("boom") })
		})
		assert.Equal(t, 1, pool.Idle())
		assert.Equal(t, 1, pool.Conn(0).Releases())
	})

	t.Run("acquire failure", func(t *testing.T) {
		pg, _ := dbtest.New(t, dbtest.Config{})
		pg.Close()

		called := false
		err := pg.WithClient(context.Background(), func(*db.Client) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, db.ErrConnectionUnavailable)
		assert.False(t, called)
	})
}

func TestInTx(t *testing.T) {
	boom := errors.New("boom")
	insert := "INSERT INTO orders"

	tests := []struct {
		name    string
		expect  func(m pgxmock.PgxConnIface)
		fn      func(ctx context.Context, c *db.Client) error
		wantErr error
		wantLog string
	}{
		{
			name: "commit",
			expect: func(m pgxmock.PgxConnIface) {
				m.ExpectQuery("BEGIN").WillReturnRows(tagRows("BEGIN"))
				m.ExpectQuery(insert).WithArgs("o1").WillReturnRows(tagRows("INSERT 0 1"))
				m.ExpectQuery("COMMIT").WillReturnRows(tagRows("COMMIT"))
			},
			fn: func(ctx context.Context, c *db.Client) error {
				_, err := c.Query(ctx, "INSERT INTO orders (id) VALUES ($1)", "o1")
				return err
			},
		},
		{
			name: "callback error rolls back",
			expect: func(m pgxmock.PgxConnIface) {
				m.ExpectQuery("BEGIN").WillReturnRows(tagRows("BEGIN"))
				m.ExpectQuery("ROLLBACK").WillReturnRows(tagRows("ROLLBACK"))
			},
			fn:      func(context.Context, *db.Client) error { return boom },
			wantErr: boom,
		},
		{
			name: "statement error rolls back",
			expect: func(m pgxmock.PgxConnIface) {
				m.ExpectQuery("BEGIN").WillReturnRows(tagRows("BEGIN"))
				m.ExpectQuery(insert).WithArgs("o1").WillReturnError(boom)
				m.ExpectQuery("ROLLBACK").WillReturnRows(tagRows("ROLLBACK"))
			},
			fn: func(ctx context.Context, c *db.Client) error {
				_, err := c.Query(ctx, "INSERT INTO orders (id) VALUES ($1)", "o1")
				return err
			},
			wantErr: db.ErrQueryFailed,
		},
		{
			name: "commit error rolls back",
			expect: func(m pgxmock.PgxConnIface) {
				m.ExpectQuery("BEGIN").WillReturnRows(tagRows("BEGIN"))
				m.ExpectQuery("COMMIT").WillReturnError(boom)
				m.ExpectQuery("ROLLBACK").WillReturnRows(tagRows("ROLLBACK"))
			},
			fn:      func(context.Context, *db.Client) error { return nil },
			wantErr: boom,
		},
		{
			name: "rollback failure keeps original error",
			expect: func(m pgxmock.PgxConnIface) {
				m.ExpectQuery("BEGIN").WillReturnRows(tagRows("BEGIN"))
				m.ExpectQuery("ROLLBACK").WillReturnError(errors.New("connection lost"))
			},
			fn:      func(context.Context, *db.Client) error { return boom },
			wantErr: boom,
			wantLog: "failed to roll back transaction",
		},
		{
			name: "begin error skips callback",
			expect: func(m pgxmock.PgxConnIface) {
				m.ExpectQuery("BEGIN").WillReturnError(boom)
			},
			fn: func(context.Context, *db.Client) error {
				panic("callback must not run")
			},
			wantErr: boom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, buf := dbtest.NewLogger()
			pg, pool := dbtest.New(t, dbtest.Config{Logger: log})
			ctx := context.Background()
			tt.expect(pool.Mock())

			err := pg.InTx(ctx, func(c *db.Client) error { return tt.fn(ctx, c) })
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantLog != "" {
				assert.Contains(t, buf.String(), tt.wantLog)
			}

			assert.Equal(t, 1, pool.Idle())
			assert.Equal(t, 1, pool.Conn(0).Releases())
			require.NoError(t, pool.ExpectationsWereMet())
		})
	}
}
