// Package dbtest provides an in-memory db.Pool backed by pgxmock connections.
//
// Each pooled connection is its own pgxmock connection, so statement
// expectations are set per connection:
//
//	pg, pool := dbtest.New(t, dbtest.Config{Size: 1})
//	pool.Mock().ExpectQuery("SELECT 1").WillReturnRows(...)
package dbtest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"restaurant/src/infra/config"
	"restaurant/src/infra/db"
	"restaurant/src/infra/logger"
)

// ErrPoolClosed is returned by Acquire after Close.
var ErrPoolClosed = errors.New("dbtest: pool closed")

// Config sizes the fake pool.
type Config struct {
	// Size is the number of connections. Defaults to 1.
	Size int

	// Logger receives db logs. Defaults to a discarding logger.
	Logger *slog.Logger

	Options db.Options
}

// Conn is a pooled pgxmock connection.
type Conn struct {
	pgxmock.PgxConnIface

	// ID is the connection's position in the pool, starting at 0.
	ID int

	pool     *Pool
	out      atomic.Bool
	releases atomic.Int32
}

// Release returns the connection to the pool. Releasing an idle connection
// fails the test.
func (c *Conn) Release() {
	c.releases.Add(1)
	if !c.out.CompareAndSwap(true, false) {
		c.pool.t.Errorf("dbtest: connection %d released while idle", c.ID)
		return
	}
	c.pool.free <- c
}

// Releases counts Release calls on the connection.
func (c *Conn) Releases() int {
	return int(c.releases.Load())
}

// Pool is a bounded db.Pool. Acquire blocks until a connection is free or
// the context ends.
type Pool struct {
	t      testing.TB
	conns  []*Conn
	free   chan *Conn
	closed atomic.Bool

	mu      sync.Mutex
	pingErr error
}

var _ db.Pool = (*Pool)(nil)

// NewPool creates a pool of size pgxmock connections.
func NewPool(t testing.TB, size int) *Pool {
	t.Helper()
	if size <= 0 {
		size = 1
	}

	p := &Pool{
		t:    t,
		free: make(chan *Conn, size),
	}
	for i := range size {
		mock, err := pgxmock.NewConn()
		require.NoError(t, err)

		c := &Conn{PgxConnIface: mock, ID: i, pool: p}
		p.conns = append(p.conns, c)
		p.free <- c
	}
	return p
}

// New creates a fake pool and a *db.Postgres drawing from it.
func New(t testing.TB, cfg Config) (*db.Postgres, *Pool) {
	t.Helper()
	pool := NewPool(t, cfg.Size)
	return db.NewWithPool(pool, cfg.Logger, cfg.Options), pool
}

func (p *Pool) Acquire(ctx context.Context) (db.Conn, error) {
	if p.closed.Load() {
		return nil, ErrPoolClosed
	}
	select {
	case c := <-p.free:
		c.out.Store(true)
		return c, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (p *Pool) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pingErr
}

func (p *Pool) Close() {
	p.closed.Store(true)
}

// SetPingError makes Ping fail with err. Pass nil to recover.
func (p *Pool) SetPingError(err error) {
	p.mu.Lock()
	p.pingErr = err
	p.mu.Unlock()
}

// Conn returns connection i.
func (p *Pool) Conn(i int) *Conn {
	return p.conns[i]
}

// Mock returns the first connection's mock, the only one in a pool of size 1.
func (p *Pool) Mock() pgxmock.PgxConnIface {
	return p.conns[0].PgxConnIface
}

// Idle is the number of connections currently in the free list.
func (p *Pool) Idle() int {
	return len(p.free)
}

// Closed reports whether Close was called.
func (p *Pool) Closed() bool {
	return p.closed.Load()
}

// ExpectationsWereMet checks every connection's expectations.
func (p *Pool) ExpectationsWereMet() error {
	var errs []error
	for _, c := range p.conns {
		if err := c.ExpectationsWereMet(); err != nil {
			errs = append(errs, fmt.Errorf("conn %d: %w", c.ID, err))
		}
	}
	return errors.Join(errs...)
}

// LogBuffer is a goroutine-safe log sink.
type LogBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *LogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *LogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// NewLogger returns a debug-level plain logger writing to a new LogBuffer.
func NewLogger() (*slog.Logger, *LogBuffer) {
	buf := &LogBuffer{}
	return logger.NewWithWriter(config.LogConfig{Level: "debug", Format: "plain"}, buf), buf
}
