package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/balancednews/news-feed/internal/app"
	"github.com/balancednews/news-feed/internal/command"
	"github.com/balancednews/news-feed/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	num := flag.Int("num", app.DefaultRefreshNumResults, "number of search results to request")
	query := flag.String("query", "", "search query, empty for the latest political news")
	dryRun := flag.Bool("dry-run", false, "analyze articles without storing them")
	flag.Parse()

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

	res, err := run(ctx, command.RefreshNewsRequest{
		Query:      *query,
		NumResults: *num,
		Save:       !*dryRun,
	})
	if err != nil {
		logger.ErrorContext(ctx, "news refresh failed", "error", err)
		os.Exit(1)
	}

	for _, a := range res.Articles {
		score := domain.NeutralScore
		if a.PoliticalScore != nil {
			score = *a.PoliticalScore
		}
		logger.InfoContext(ctx, "article",
			"title", a.Title,
			"url", a.URL,
			"political_score", score,
			"political_leaning", a.PoliticalLeaning,
		)
	}

	logger.InfoContext(ctx, "news refresh completed successfully",
		"collected", len(res.Articles),
		"saved", res.Saved,
		"dry_run", *dryRun,
	)
}

func run(ctx context.Context, req command.RefreshNewsRequest) (command.RefreshNewsResult, error) {
	dataset, err := app.SetupDatasetRepository(ctx)
	if err != nil {
		return command.RefreshNewsResult{}, fmt.Errorf("setting up dataset repository: %w", err)
	}
	defer func() { _ = dataset.Close() }()

	refreshCmd, err := app.SetupRefreshNews(ctx, dataset)
	if err != nil {
		return command.RefreshNewsResult{}, fmt.Errorf("setting up news refresh: %w", err)
	}

	return refreshCmd.Execute(ctx, req)
}
