package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/balancednews/news-feed/internal/app"
	"github.com/balancednews/news-feed/internal/datasources/sqlstore/migrations"
	"github.com/balancednews/news-feed/internal/domain"
	"github.com/pressly/goose/v3"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: migrate <command>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "The database is chosen by STORAGE_DRIVER and its connection variable.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Commands:")
		fmt.Fprintln(os.Stderr, "  up          Migrate to the latest version")
		fmt.Fprintln(os.Stderr, "  up-one      Migrate one version up")
		fmt.Fprintln(os.Stderr, "  down        Roll back one version")
		fmt.Fprintln(os.Stderr, "  status      Show migration status")
		fmt.Fprintln(os.Stderr, "  version     Show current version")
		fmt.Fprintln(os.Stderr, "  reset       Roll back all migrations")
	}
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)
	ctx := domain.ContextWithLogger(context.Background(), logger)

	if err := run(ctx, args[0]); err != nil {
		logger.ErrorContext(ctx, "migration failed", "command", args[0], "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd string) error {
	db, driver, err := app.SetupDatabase(ctx)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := migrations.Setup(ctx, driver.GooseDialect()); err != nil {
		return fmt.Errorf("setting up migrations: %w", err)
	}
	dir := string(driver)

	switch cmd {
	case "up":
		err = goose.UpContext(ctx, db, dir)
	case "up-one":
		err = goose.UpByOneContext(ctx, db, dir)
	case "down":
		err = goose.DownContext(ctx, db, dir)
	case "status":
		err = goose.StatusContext(ctx, db, dir)
	case "version":
		err = goose.VersionContext(ctx, db, dir)
	case "reset":
		err = goose.ResetContext(ctx, db, dir)
	default:
		return fmt.Errorf("unknown command [%s]", cmd)
	}

	return err
}
