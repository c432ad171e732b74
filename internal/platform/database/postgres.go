package database

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/srgjo27/package_pricing/internal/platform/logger"
)

//go:embed schema.sql
var schema string

type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string

	MaxRetries int
	RetryDelay time.Duration
}

func (c Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.DBName)
}

// NewPostgresDB opens the pool and pings until the server answers or the
// retries run out.
func NewPostgresDB(ctx context.Context, cfg Config, l *logger.Logger) (*sql.DB, error) {
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 10
	}

	delay := cfg.RetryDelay
	if delay <= 0 {
		delay = 2 * time.Second
	}

	var err error

	for i := 1; i <= maxRetries; i++ {
		l.LogInfo("Connecting to database (attempt %d/%d)...", i, maxRetries)

		var db *sql.DB

		db, err = sql.Open("postgres", cfg.DSN())
		if err == nil {
			err = db.PingContext(ctx)
			if err == nil {
				l.LogInfo("Database connected successfully")
				return db, nil
			}

			_ = db.Close()
		}

		l.LogWarn("Database not ready yet, waiting %s: %v", delay, err)

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("connect database: %w", ctx.Err())
		case <-time.After(delay):
		}
	}

	return nil, fmt.Errorf("connect database after %d attempts: %w", maxRetries, err)
}

// Migrate applies the idempotent schema.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	return nil
}
