package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/therealutkarshpriyadarshi/subfix/internal/config"
)

// DB wraps the database connection pool
type DB struct {
	Pool *pgxpool.Pool
}

// New creates a new database connection
func New(cfg config.DatabaseConfig) (*DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s pool_max_conns=%d pool_min_conns=%d",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
		cfg.MaxConns, cfg.MinConns,
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConns)
	poolConfig.MinConns = int32(cfg.MinConns)
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Ping the database to verify connection
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &DB{Pool: pool}

	if err := db.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return db, nil
}

// migrate creates the reports table when it does not exist yet. The schema
// is small enough that a migration tool would be overhead.
func (db *DB) migrate(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS reports (
			id              TEXT PRIMARY KEY,
			operation       TEXT NOT NULL,
			filename        TEXT NOT NULL,
			size_bytes      BIGINT NOT NULL DEFAULT 0,
			total_subtitles INTEGER NOT NULL,
			issue_count     INTEGER NOT NULL,
			skipped_blocks  INTEGER NOT NULL DEFAULT 0,
			issues          TEXT[] NOT NULL DEFAULT '{}',
			statistics      JSONB NOT NULL DEFAULT '{}',
			fix_kinds       TEXT[] NOT NULL DEFAULT '{}',
			object_key      TEXT NOT NULL DEFAULT '',
			created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS idx_reports_created_at ON reports (created_at DESC);
	`

	if _, err := db.Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Close closes the database connection pool
func (db *DB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}

// Health checks if the database is healthy
func (db *DB) Health(ctx context.Context) error {
	return db.Pool.Ping(ctx)
}
