/*
Package postgres provides the PostgreSQL connection pool used by the
data-access layer's Postgres dialect path.

It specializes in managing 'pgxpool' instances, ensuring that database
connections are recycled efficiently and timeouts are enforced at the driver
level.

Architecture:

  - Pool: thread-safe connection pooling with automatic health checks (Ping).
  - Tuning: MaxConns is set from the crawler's single max_connections knob —
    HTTP fan-out and database fan-out share this same bound.
  - Safety: context deadlines prevent runaway queries.
*/
package postgres

import (
	stdctx "context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/filmcatalog/internal/platform/constants"
)

// # Pool Configuration (Tuning)

const (
	// maxConnLifetime ensures connections are periodically recycled.
	maxConnLifetime = 60 * time.Minute

	// maxConnIdleTime closes connections that have been idle too long.
	maxConnIdleTime = 10 * time.Minute

	// healthCheckPeriod is the frequency of background connection health checks.
	healthCheckPeriod = 1 * time.Minute
)

// # Lifecycle Management

// NewPool creates and validates a new PostgreSQL connection pool sized to
// maxConns, the crawler's single concurrency knob.
func NewPool(ctx stdctx.Context, dsn string, maxConns int32, logger *slog.Logger) (*pgxpool.Pool, error) {

	// Step 1: Parse the DSN string.
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: invalid DSN: %w", err)
	}

	// Step 2: Apply pool tuning parameters.
	poolConfig.MaxConns = maxConns
	poolConfig.MaxConnLifetime = maxConnLifetime
	poolConfig.MaxConnIdleTime = maxConnIdleTime
	poolConfig.HealthCheckPeriod = healthCheckPeriod
	poolConfig.ConnConfig.ConnectTimeout = constants.DefaultConnectTimeout

	// AfterConnect sets a per-connection statement timeout for safety.
	poolConfig.AfterConnect = func(ctx stdctx.Context, connection *pgx.Conn) error {
		timeoutQuery := fmt.Sprintf("SET statement_timeout = '%ds'", int(constants.GlobalStatementTimeout.Seconds()))
		_, err := connection.Exec(ctx, timeoutQuery)
		return err
	}

	// Step 3: Establish the pool.
	connectCtx, cancel := stdctx.WithTimeout(ctx, constants.DefaultConnectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to create pool: %w", err)
	}

	// Step 4: Validate that we can actually reach the database.
	if err := Ping(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	stats := pool.Stat()
	logger.Info("postgres pool connected",
		slog.Int("max_conns", int(stats.MaxConns())),
		slog.Int("total_conns", int(stats.TotalConns())),
	)

	return pool, nil
}

// # Health Checks

// Ping verifies that the PostgreSQL connection pool is healthy.
func Ping(ctx stdctx.Context, pool *pgxpool.Pool) error {
	pingCtx, cancel := stdctx.WithTimeout(ctx, constants.DefaultPingTimeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("postgres: ping failed: %w", err)
	}

	return nil
}
