package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"sensor-readings-service/internal/query"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v4/pgxpool"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var ErrUnknownDriver = errors.New("unknown store driver")

//go:embed migrations/*.sql
var migrations embed.FS

type Config struct {
	Driver string
	DSN    string
}

type DB struct {
	driver  string
	dsn     string
	dialect query.Dialect
	conn    conn
	sqlDB   *sql.DB
}

func (db *DB) Migrate(ctx context.Context) error {
	slog.InfoContext(ctx, "Running database migrations...", "driver", db.driver)
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return err
	}

	var m *migrate.Migrate
	switch db.driver {
	case DriverPostgres:
		m, err = migrate.NewWithSourceInstance("iofs", src, db.dsn)
	case DriverSQLite:
		// The migration driver must share the live handle, or an
		// in-memory database would be migrated on a separate connection.
		driver, derr := sqlite.WithInstance(db.sqlDB, &sqlite.Config{})
		if derr != nil {
			return derr
		}
		m, err = migrate.NewWithInstance("iofs", src, DriverSQLite, driver)
	}
	if err != nil {
		return err
	}
	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

func Init(ctx context.Context, cfg Config) (*DB, error) {
	db := &DB{
		driver: cfg.Driver,
		dsn:    cfg.DSN,
	}

	switch cfg.Driver {
	case DriverPostgres:
		pool, err := pgxpool.Connect(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		db.dialect = query.Postgres
		db.conn = &pgConn{pool: pool}
	case DriverSQLite:
		sqlDB, err := sql.Open(DriverSQLite, cfg.DSN)
		if err != nil {
			return nil, err
		}
		// SQLite serializes writers anyway, and ":memory:" is per connection.
		sqlDB.SetMaxOpenConns(1)
		db.dialect = query.SQLite
		db.sqlDB = sqlDB
		db.conn = &sqlConn{db: sqlDB}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func (db *DB) Ping(ctx context.Context) error {
	return db.conn.ping(ctx)
}

func (db *DB) Close() {
	db.conn.close()
}
