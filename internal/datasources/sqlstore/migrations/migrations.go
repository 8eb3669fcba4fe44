// Package migrations embeds the schema migrations for every supported SQL dialect.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/balancednews/news-feed/internal/domain"
	"github.com/pressly/goose/v3"
)

// FS holds one directory of goose migrations per dialect, named after the storage driver.
//
//go:embed mysql/*.sql postgres/*.sql sqlite/*.sql
var FS embed.FS

// Setup points goose at the embedded migrations for the given dialect, logging through the
// context's logger.
func Setup(ctx context.Context, gooseDialect string) error {
	goose.SetBaseFS(FS)
	goose.SetLogger(SlogLogger{Ctx: ctx, Logger: domain.LoggerFromContext(ctx)})
	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	return nil
}

// Run applies all pending migrations in dir.
func Run(ctx context.Context, db *sql.DB, gooseDialect, dir string) error {
	if err := Setup(ctx, gooseDialect); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}
