/*
Package store is the crawler's data-access layer: connection
pooling, query execution, and result shaping over whichever dialect the
database URI selects.

Apart from [AcquirePool], which checks the URI scheme once to pick the pool
implementation, it never branches on an is_mysql flag (see
[internal/dialect]'s package doc) — [Pool] carries a [dialect.Dialect]
value, and every operation in this package asks that value to render SQL
text before binding the caller's arguments to it.
*/
package store

import (
	stdctx "context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/filmcatalog/internal/dbtype"
	"github.com/taibuivan/filmcatalog/internal/dialect"
	platformmysql "github.com/taibuivan/filmcatalog/internal/platform/mysql"
	"github.com/taibuivan/filmcatalog/internal/platform/postgres"
)

// Rows is the subset of pgx.Rows/sql.Rows the data-access layer needs.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// Row is the subset of pgx.Row/sql.Row the data-access layer needs.
type Row interface {
	Scan(dest ...any) error
}

// Result reports the effect of an Exec call.
type Result interface {
	RowsAffected() int64
}

// Conn is a single acquired connection, dialect-agnostic.
type Conn interface {
	Exec(ctx stdctx.Context, query string, args ...any) (Result, error)
	Query(ctx stdctx.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx stdctx.Context, query string, args ...any) Row
}

// Pool acquires [Conn] values for exactly the duration of a unit of work —
// a batch holds a single connection for all of its writes — and reports
// which dialect it renders SQL for.
type Pool interface {
	Dialect() dialect.Dialect
	Acquire(ctx stdctx.Context) (Conn, func(), error)
	Close()
}

// AcquirePool opens a pool sized to maxSize and selects its dialect from the
// URI scheme prefix: "mysql" selects MySQL, anything else selects
// PostgreSQL.
func AcquirePool(ctx stdctx.Context, uri dbtype.URI, maxSize int, connectTimeout time.Duration, logger *slog.Logger) (Pool, error) {
	acquireCtx, cancel := stdctx.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if uri.IsMySQL() {
		dsn, err := platformmysql.ConvertDSN(uri.Raw)
		if err != nil {
			return nil, fmt.Errorf("store: %w", err)
		}
		db, err := platformmysql.NewPool(acquireCtx, dsn, maxSize, logger)
		if err != nil {
			return nil, err
		}
		return &mysqlPool{db: db}, nil
	}

	pool, err := postgres.NewPool(acquireCtx, uri.Raw, int32(maxSize), logger)
	if err != nil {
		return nil, err
	}
	return &postgresPool{pool: pool}, nil
}

// --- PostgreSQL adapter ---

type postgresPool struct {
	pool *pgxpool.Pool
}

func (p *postgresPool) Dialect() dialect.Dialect { return dialect.Postgres{} }

func (p *postgresPool) Acquire(ctx stdctx.Context) (Conn, func(), error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("store: acquire postgres conn: %w", err)
	}
	return &postgresConn{conn: conn}, conn.Release, nil
}

func (p *postgresPool) Close() { p.pool.Close() }

type postgresConn struct {
	conn *pgxpool.Conn
}

func (c *postgresConn) Exec(ctx stdctx.Context, query string, args ...any) (Result, error) {
	tag, err := c.conn.Exec(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return postgresResult{tag}, nil
}

func (c *postgresConn) Query(ctx stdctx.Context, query string, args ...any) (Rows, error) {
	rows, err := c.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return postgresRows{rows}, nil
}

func (c *postgresConn) QueryRow(ctx stdctx.Context, query string, args ...any) Row {
	return c.conn.QueryRow(ctx, query, args...)
}

type postgresResult struct{ tag pgconn.CommandTag }

func (r postgresResult) RowsAffected() int64 { return r.tag.RowsAffected() }

type postgresRows struct{ pgx.Rows }

func (r postgresRows) Close() { r.Rows.Close() }

// --- MySQL adapter ---

type mysqlPool struct {
	db *sql.DB
}

func (p *mysqlPool) Dialect() dialect.Dialect { return dialect.MySQL{} }

func (p *mysqlPool) Acquire(ctx stdctx.Context) (Conn, func(), error) {
	conn, err := p.db.Conn(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("store: acquire mysql conn: %w", err)
	}
	release := func() { _ = conn.Close() }
	return &mysqlConn{conn: conn}, release, nil
}

func (p *mysqlPool) Close() { _ = p.db.Close() }

type mysqlConn struct {
	conn *sql.Conn
}

func (c *mysqlConn) Exec(ctx stdctx.Context, query string, args ...any) (Result, error) {
	res, err := c.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return mysqlResult{res}, nil
}

func (c *mysqlConn) Query(ctx stdctx.Context, query string, args ...any) (Rows, error) {
	rows, err := c.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return mysqlRows{rows}, nil
}

func (c *mysqlConn) QueryRow(ctx stdctx.Context, query string, args ...any) Row {
	return c.conn.QueryRowContext(ctx, query, args...)
}

type mysqlResult struct{ res sql.Result }

func (r mysqlResult) RowsAffected() int64 {
	n, err := r.res.RowsAffected()
	if err != nil {
		return 0
	}
	return n
}

type mysqlRows struct{ *sql.Rows }

func (r mysqlRows) Close() { _ = r.Rows.Close() }
