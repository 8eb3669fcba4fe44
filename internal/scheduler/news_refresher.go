// Package scheduler runs recurring jobs alongside the HTTP server.
package scheduler

import (
	"context"
	"time"

	"github.com/balancednews/news-feed/internal/command"
	"github.com/balancednews/news-feed/internal/domain"
)

// NewsRefresher fetches and stores new political news every Interval.
type NewsRefresher struct {
	Command    command.Command[command.RefreshNewsRequest, command.RefreshNewsResult]
	Interval   time.Duration
	RunOnStart bool
	NumResults int
}

func (n *NewsRefresher) Run(ctx context.Context) error {
	if n.RunOnStart {
		n.refresh(ctx)
	}

	ticker := time.NewTicker(n.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			n.refresh(ctx)
		}
	}
}

func (n *NewsRefresher) refresh(ctx context.Context) {
	logger := domain.LoggerFromContext(ctx)

	start := time.Now()
	res, err := n.Command.Execute(ctx, command.RefreshNewsRequest{
		NumResults: n.NumResults,
		Save:       true,
	})
	if err != nil {
		if ctx.Err() == nil {
			logger.ErrorContext(ctx, "unable to refresh news", "error", err)
		}
		return
	}

	logger.InfoContext(ctx, "refreshed news",
		"collected", len(res.Articles),
		"saved", res.Saved,
		"duration", time.Since(start),
	)
}
