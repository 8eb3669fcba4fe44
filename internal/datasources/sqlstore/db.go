package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/huandu/go-sqlbuilder"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Driver names a supported SQL backend.
type Driver string

const (
	DriverMySQL    Driver = "mysql"
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

const mysqlParams string = "?parseTime=true"

func ParseDriver(s string) (Driver, error) {
	switch d := Driver(s); d {
	case DriverMySQL, DriverPostgres, DriverSQLite:
		return d, nil
	default:
		return "", fmt.Errorf("unknown storage driver [%s]", s)
	}
}

func (d Driver) flavor() sqlbuilder.Flavor {
	switch d {
	case DriverPostgres:
		return sqlbuilder.PostgreSQL
	case DriverSQLite:
		return sqlbuilder.SQLite
	default:
		return sqlbuilder.MySQL
	}
}

// GooseDialect is the dialect name goose uses for this driver.
func (d Driver) GooseDialect() string {
	if d == DriverSQLite {
		return "sqlite3"
	}
	return string(d)
}

// Connect opens and checks a connection pool for the given driver. For SQLite the dsn is a
// file path or ":memory:".
func Connect(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	var db *sql.DB
	var err error

	switch driver {
	case DriverMySQL:
		db, err = sql.Open("mysql", dsn+mysqlParams)
		if err == nil {
			db.SetMaxOpenConns(10)
			db.SetMaxIdleConns(10)
		}
	case DriverPostgres:
		db, err = sql.Open("postgres", dsn)
		if err == nil {
			db.SetMaxOpenConns(10)
			db.SetMaxIdleConns(10)
		}
	case DriverSQLite:
		db, err = sql.Open("sqlite", dsn)
		if err == nil {
			// A single connection keeps in-memory databases shared and serialises writers.
			db.SetMaxOpenConns(1)
		}
	default:
		return nil, fmt.Errorf("unknown storage driver [%s]", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("connecting to %s DB: %w", driver, err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("checking %s DB connection: %w", driver, err)
	}

	if driver == DriverSQLite {
		if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("setting WAL mode: %w", err)
		}
	}

	return db, nil
}
