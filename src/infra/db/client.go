package db

import (
	"context"
	"sync"
	"time"
)

const rollbackTimeout = 5 * time.Second

// Client is a connection checked out of the pool for a sequence of
// statements that must share one session, such as a transaction.
//
// A Client is owned by one goroutine. It must be released exactly once;
// prefer WithClient or InTx, which release on every path.
type Client struct {
	pg         *Postgres
	conn       Conn
	acquiredAt time.Time
	watchdog   *time.Timer

	mu       sync.Mutex
	released bool
	last     *Statement
}

// AcquireClient checks out a connection and arms the leak watchdog. If the
// client is still held after the configured window, the event is logged with
// the last statement it ran. The client is not reclaimed.
func (p *Postgres) AcquireClient(ctx context.Context) (*Client, error) {
	conn, err := p.acquire(ctx)
	if err != nil {
		return nil, err
	}

	c := &Client{
		pg:         p,
		conn:       conn,
		acquiredAt: time.Now(),
	}
	c.watchdog = time.AfterFunc(p.opts.LeakWindow, c.reportLeak)
	return c, nil
}

// Query runs a statement on the client's connection. The statement is
// recorded as the last statement before it is sent.
func (c *Client) Query(ctx context.Context, text string, args ...any) (*Result, error) {
	c.mu.Lock()
	if c.released {
		c.mu.Unlock()
		return nil, ErrClientReleased
	}
	c.last = &Statement{Text: text, Args: args}
	c.mu.Unlock()

	return run(ctx, c.conn, text, args)
}

// Release returns the connection to the pool. Calling it again returns
// ErrClientReleased and leaves the pool untouched.
func (c *Client) Release() error {
	if !c.release() {
		c.pg.log.Error("client released more than once",
			"held", c.HeldFor(),
		)
		return ErrClientReleased
	}
	return nil
}

// release reports whether this call performed the release.
func (c *Client) release() bool {
	c.mu.Lock()
	if c.released {
		c.mu.Unlock()
		return false
	}
	c.released = true
	c.last = nil
	c.watchdog.Stop()
	c.mu.Unlock()

	c.conn.Release()
	return true
}

// LastStatement returns the most recent statement submitted on the client.
func (c *Client) LastStatement() (Statement, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.last == nil {
		return Statement{}, false
	}
	return *c.last, true
}

// HeldFor is the time since the connection was checked out.
func (c *Client) HeldFor() time.Duration {
	return time.Since(c.acquiredAt)
}

func (c *Client) reportLeak() {
	c.mu.Lock()
	if c.released {
		c.mu.Unlock()
		return
	}
	var last Statement
	if c.last != nil {
		last = *c.last
	}
	c.mu.Unlock()

	c.pg.leaks.Add(1)
	c.pg.log.Error("client checked out too long",
		"held", c.HeldFor(),
		"window", c.pg.opts.LeakWindow,
		"last_statement", last.Text,
		"last_args", last.Args,
	)
}

// WithClient runs fn with a checked-out client and releases it afterwards,
// including when fn panics. fn must not call Release itself.
func (p *Postgres) WithClient(ctx context.Context, fn func(*Client) error) error {
	c, err := p.AcquireClient(ctx)
	if err != nil {
		return err
	}
	defer c.release()

	return fn(c)
}

// InTx runs fn inside BEGIN/COMMIT on a single client. If fn or COMMIT fails
// the transaction is rolled back and the original error is returned.
//
// A panic in fn skips the rollback; the pool discards a connection released
// mid-transaction.
func (p *Postgres) InTx(ctx context.Context, fn func(*Client) error) error {
	return p.WithClient(ctx, func(c *Client) error {
		if _, err := c.Query(ctx, "BEGIN"); err != nil {
			return err
		}

		if err := fn(c); err != nil {
			c.rollback(ctx)
			return err
		}

		if _, err := c.Query(ctx, "COMMIT"); err != nil {
			c.rollback(ctx)
			return err
		}
		return nil
	})
}

func (c *Client) rollback(ctx context.Context) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), rollbackTimeout)
	defer cancel()

	if _, err := c.Query(ctx, "ROLLBACK"); err != nil {
		c.pg.log.ErrorContext(ctx, "failed to roll back transaction", "error", err)
	}
}
