package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/balancednews/news-feed/internal/app"
	"github.com/balancednews/news-feed/internal/command"
	"github.com/balancednews/news-feed/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx := context.Background()

	logLevel := slog.LevelInfo
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %s\n", lvl)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	res, err := run(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "article rescoring failed", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "article rescoring completed successfully",
		"rescored", res.Rescored,
		"failed", res.Failed,
	)
}

func run(ctx context.Context) (command.RescoreArticlesResult, error) {
	dataset, err := app.SetupDatasetRepository(ctx)
	if err != nil {
		return command.RescoreArticlesResult{}, fmt.Errorf("setting up dataset repository: %w", err)
	}
	defer func() { _ = dataset.Close() }()

	rescoreCmd, err := app.SetupRescoreArticles(ctx, dataset)
	if err != nil {
		return command.RescoreArticlesResult{}, fmt.Errorf("setting up article rescoring: %w", err)
	}

	return rescoreCmd.Execute(ctx, command.RescoreArticlesRequest{})
}
