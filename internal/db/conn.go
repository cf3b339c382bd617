package db

import (
	"context"
	"database/sql"
	"errors"

	"sensor-readings-service/internal/query"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/georgysavva/scany/sqlscan"
	"github.com/jackc/pgx/v4/pgxpool"
)

var errNoRows = errors.New("no rows in result set")

// conn hides the driver behind the handful of calls the store makes. Each
// call checks a connection out of the pool and returns it before returning.
type conn interface {
	exec(ctx context.Context, q query.Query) error
	selectAll(ctx context.Context, dst any, q query.Query) error
	getOne(ctx context.Context, dst any, q query.Query) error
	ping(ctx context.Context) error
	close()
}

type pgConn struct {
	pool *pgxpool.Pool
}

func (c *pgConn) exec(ctx context.Context, q query.Query) error {
	_, err := c.pool.Exec(ctx, q.SQL, q.Args...)
	return err
}

func (c *pgConn) selectAll(ctx context.Context, dst any, q query.Query) error {
	return pgxscan.Select(ctx, c.pool, dst, q.SQL, q.Args...)
}

func (c *pgConn) getOne(ctx context.Context, dst any, q query.Query) error {
	err := pgxscan.Get(ctx, c.pool, dst, q.SQL, q.Args...)
	if pgxscan.NotFound(err) {
		return errNoRows
	}
	return err
}

func (c *pgConn) ping(ctx context.Context) error {
	return c.pool.Ping(ctx)
}

func (c *pgConn) close() {
	c.pool.Close()
}

type sqlConn struct {
	db *sql.DB
}

func (c *sqlConn) exec(ctx context.Context, q query.Query) error {
	_, err := c.db.ExecContext(ctx, q.SQL, q.Args...)
	return err
}

func (c *sqlConn) selectAll(ctx context.Context, dst any, q query.Query) error {
	return sqlscan.Select(ctx, c.db, dst, q.SQL, q.Args...)
}

func (c *sqlConn) getOne(ctx context.Context, dst any, q query.Query) error {
	err := sqlscan.Get(ctx, c.db, dst, q.SQL, q.Args...)
	if sqlscan.NotFound(err) {
		return errNoRows
	}
	return err
}

func (c *sqlConn) ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func (c *sqlConn) close() {
	c.db.Close()
}
