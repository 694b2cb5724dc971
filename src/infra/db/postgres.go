package db

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"

	"restaurant/src/infra/config"
	"restaurant/src/infra/logger"
)

const (
	// DefaultAcquireTimeout bounds pool checkout when the caller's context has no deadline.
	DefaultAcquireTimeout = 10 * time.Second

	// DefaultLeakWindow is how long a Client may be held before a leak is logged.
	DefaultLeakWindow = 5 * time.Second

	pingTimeout = 10 * time.Second
)

// Options tune checkout behaviour. Zero values select the defaults.
type Options struct {
	AcquireTimeout time.Duration
	LeakWindow     time.Duration
}

func (o Options) withDefaults() Options {
	if o.AcquireTimeout <= 0 {
		o.AcquireTimeout = DefaultAcquireTimeout
	}
	if o.LeakWindow <= 0 {
		o.LeakWindow = DefaultLeakWindow
	}
	return o
}

// Postgres owns the connection pool. Create one per process and pass it to
// every consumer.
type Postgres struct {
	pool  Pool
	log   *slog.Logger
	opts  Options
	leaks atomic.Int64
}

// New creates a new PostgreSQL connection pool.
// It validates the connection by pinging the database.
func New(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*Postgres, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// Apply connection pool settings
	if cfg.MaxOpenConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxOpenConns)
	}
	poolCfg.MinConns = int32(cfg.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime

	applyTLS(poolCfg.ConnConfig, cfg)

	if cfg.Trace {
		poolCfg.ConnConfig.Tracer = &tracelog.TraceLog{
			Logger:   NewTraceLogger(logger.WithComponent(log, "pgx")),
			LogLevel: tracelog.LogLevelDebug,
		}
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Verify connection
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("database connection established",
		"host", poolCfg.ConnConfig.Host,
		"port", poolCfg.ConnConfig.Port,
		"database", poolCfg.ConnConfig.Database,
		"max_conns", poolCfg.MaxConns,
		"tls", poolCfg.ConnConfig.TLSConfig != nil,
	)

	return NewWithPool(pgxPool{pool}, log, Options{
		AcquireTimeout: cfg.AcquireTimeout,
		LeakWindow:     cfg.ClientLeakWindow,
	}), nil
}

// NewWithPool wraps an already constructed pool.
func NewWithPool(pool Pool, log *slog.Logger, opts Options) *Postgres {
	if log == nil {
		log = logger.Discard()
	}
	return &Postgres{
		pool: pool,
		log:  logger.WithComponent(log, "db"),
		opts: opts.withDefaults(),
	}
}

// applyTLS forces TLS when cfg.SSL is set. Without cfg.SSLVerify the server
// certificate is accepted as presented.
func applyTLS(cc *pgx.ConnConfig, cfg config.DatabaseConfig) {
	if !cfg.SSL {
		return
	}

	var tlsCfg *tls.Config
	if cc.TLSConfig != nil {
		tlsCfg = cc.TLSConfig.Clone()
	} else {
		tlsCfg = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	if tlsCfg.ServerName == "" {
		tlsCfg.ServerName = cc.Host
	}
	if !cfg.SSLVerify {
		tlsCfg.InsecureSkipVerify = true //nolint:gosec // explicit opt-out via APP_DB_SSL_VERIFY
		tlsCfg.VerifyPeerCertificate = nil
	} else {
		tlsCfg.InsecureSkipVerify = false
	}

	cc.TLSConfig = tlsCfg
	cc.Fallbacks = nil
}

// Close closes the connection pool.
// Call this during graceful shutdown.
func (p *Postgres) Close() {
	if p.pool != nil {
		p.pool.Close()
		p.log.Info("database connection closed")
	}
}

// Health checks if the database is reachable.
// Returns nil if healthy, error otherwise.
func (p *Postgres) Health(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Stats reports pool bookkeeping. Connection counts are zero for pools that
// do not expose them.
func (p *Postgres) Stats() PoolStats {
	var s PoolStats
	if pp, ok := p.pool.(pgxPool); ok {
		s = pp.stats()
	}
	s.LeaksDetected = p.leaks.Load()
	return s
}

// acquire checks a connection out of the pool. Without a caller deadline the
// wait is bounded by Options.AcquireTimeout.
func (p *Postgres) acquire(ctx context.Context) (Conn, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.opts.AcquireTimeout)
		defer cancel()
	}

	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, connectionUnavailable(err)
	}
	return conn, nil
}

// Execute runs one statement on a pooled connection and returns it to the
// pool before returning. It does not log; see Query.
func (p *Postgres) Execute(ctx context.Context, text string, args ...any) (*Result, error) {
	conn, err := p.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	return run(ctx, conn, text, args)
}

func run(ctx context.Context, conn Conn, text string, args []any) (*Result, error) {
	rows, err := conn.Query(ctx, text, args...)
	if err != nil {
		return nil, queryFailed(err)
	}
	res, err := collect(rows)
	if err != nil {
		return nil, queryFailed(err)
	}
	return res, nil
}
