// Package config handles application configuration via environment variables.
// It uses kelseyhightower/envconfig for parsing and provides sensible defaults.
// A .env file in the working directory is loaded first when present.
package config

import (
	"fmt"
	"time"

	// Side-effect import: loads .env into the process environment when present.
	_ "github.com/joho/godotenv/autoload"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
// Values are loaded from environment variables with the prefix "APP".
// Example: APP_PORT=3000, APP_LOG_LEVEL=debug
type Config struct {
	// Server configuration (loaded flat, e.g. APP_PORT)
	Server ServerConfig

	// Database configuration (loaded flat, e.g. APP_DB_HOST)
	Database DatabaseConfig

	// Logging configuration
	Log LogConfig

	// Admin login configuration
	Admin AdminConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Port is the HTTP server port (default: 3000)
	Port int `envconfig:"PORT" default:"3000"`

	// Host is the HTTP server host (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// ReadTimeout is the maximum duration for reading the entire request (default: 10s)
	ReadTimeout time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`

	// WriteTimeout is the maximum duration before timing out writes of the response (default: 30s)
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`

	// ShutdownTimeout is the maximum duration to wait for active connections to finish (default: 30s)
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	// URL is a full connection string. When set it takes precedence over the
	// discrete fields below. Read from APP_DATABASE_URL, falling back to DATABASE_URL.
	URL string `envconfig:"DATABASE_URL"`

	// Host is the database host (default: localhost)
	Host string `envconfig:"DB_HOST" default:"localhost"`

	// Port is the database port (default: 5432)
	Port int `envconfig:"DB_PORT" default:"5432"`

	// User is the database user (default: postgres)
	User string `envconfig:"DB_USER" default:"postgres"`

	// Password is the database password (required in production)
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`

	// Name is the database name (default: restaurant)
	Name string `envconfig:"DB_NAME" default:"restaurant"`

	// SSLMode is the sslmode used when the DSN is built from discrete fields (default: disable)
	SSLMode string `envconfig:"DB_SSLMODE" default:"disable"`

	// SSL forces TLS on every connection regardless of the connection string (default: false)
	SSL bool `envconfig:"DB_SSL" default:"false"`

	// SSLVerify verifies the server certificate when SSL is forced (default: true)
	SSLVerify bool `envconfig:"DB_SSL_VERIFY" default:"true"`

	// MaxOpenConns is the maximum number of pooled connections (default: 10)
	MaxOpenConns int `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`

	// MaxIdleConns is the number of connections kept open when idle (default: 2)
	MaxIdleConns int `envconfig:"DB_MAX_IDLE_CONNS" default:"2"`

	// ConnMaxLifetime is the maximum lifetime of a connection (default: 5m)
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`

	// AcquireTimeout bounds waiting for a free connection when the caller has no deadline (default: 10s)
	AcquireTimeout time.Duration `envconfig:"DB_ACQUIRE_TIMEOUT" default:"10s"`

	// ClientLeakWindow is how long a checked-out client may be held before a leak is logged (default: 5s)
	ClientLeakWindow time.Duration `envconfig:"DB_CLIENT_LEAK_WINDOW" default:"5s"`

	// Trace routes pgx driver trace events into the application logger (default: false)
	Trace bool `envconfig:"DB_TRACE" default:"false"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// Level is the log level: debug, info, warn, error (default: info)
	Level string `envconfig:"LOG_LEVEL" default:"info"`

	// Format is the log format: json, text, plain (default: text)
	Format string `envconfig:"LOG_FORMAT" default:"text"`
}

// AdminConfig holds the built-in administrator credentials.
type AdminConfig struct {
	Username string `envconfig:"ADMIN_USERNAME" default:"admin"`
	Password string `envconfig:"ADMIN_PASSWORD" default:"admin123"`
}

// DSN returns the PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// Addr returns the server address in host:port format.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads configuration from environment variables.
// It returns an error if required variables are missing or invalid.
func Load() (*Config, error) {
	var cfg Config

	// Load each config section separately to flatten env var names
	// This allows env vars like APP_PORT instead of APP_SERVER_PORT
	if err := envconfig.Process("APP", &cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to load server config: %w", err)
	}
	if err := envconfig.Process("APP", &cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}
	if err := envconfig.Process("APP", &cfg.Log); err != nil {
		return nil, fmt.Errorf("failed to load log config: %w", err)
	}
	if err := envconfig.Process("APP", &cfg.Admin); err != nil {
		return nil, fmt.Errorf("failed to load admin config: %w", err)
	}

	return &cfg, nil
}

// MustLoad loads configuration and panics on error.
// Use this only in main.go during startup.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
