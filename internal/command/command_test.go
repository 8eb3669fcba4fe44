package command

import (
	"context"
	"log/slog"

	"github.com/balancednews/news-feed/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), testLogger())
}

func intPtr(v int) *int { return &v }
