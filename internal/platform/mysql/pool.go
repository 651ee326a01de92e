/*
Package mysql provides the MySQL connection pool used by the data-access
layer's MySQL dialect path.

It wraps [database/sql] with the [go-sql-driver/mysql] driver, tuned with the
same "MaxConns is the crawler's single concurrency knob" rule the Postgres
pool follows, so the two dialect paths offer an equivalent surface to
[internal/store].
*/
package mysql

import (
	stdctx "context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/taibuivan/filmcatalog/internal/platform/constants"
)

const (
	maxConnLifetime = 60 * time.Minute
	maxConnIdleTime = 10 * time.Minute
)

// NewPool opens and validates a MySQL connection pool sized to maxConns.
func NewPool(ctx stdctx.Context, dsn string, maxConns int, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("mysql: invalid DSN: %w", err)
	}

	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxConns)
	db.SetConnMaxLifetime(maxConnLifetime)
	db.SetConnMaxIdleTime(maxConnIdleTime)

	if err := Ping(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("mysql pool connected", slog.Int("max_conns", maxConns))

	return db, nil
}

// Ping verifies that the MySQL connection pool is healthy.
func Ping(ctx stdctx.Context, db *sql.DB) error {
	pingCtx, cancel := stdctx.WithTimeout(ctx, constants.DefaultPingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("mysql: ping failed: %w", err)
	}

	return nil
}
