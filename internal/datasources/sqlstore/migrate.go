package sqlstore

import (
	"context"
	"database/sql"

	"github.com/balancednews/news-feed/internal/datasources/sqlstore/migrations"
)

// Migrate brings the schema up to date for the given driver.
func Migrate(ctx context.Context, db *sql.DB, driver Driver) error {
	return migrations.Run(ctx, db, driver.GooseDialect(), string(driver))
}
