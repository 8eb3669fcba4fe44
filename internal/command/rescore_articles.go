package command

import (
	"context"
	"fmt"

	"github.com/balancednews/news-feed/internal/analysis"
	"github.com/balancednews/news-feed/internal/datasources"
	"github.com/balancednews/news-feed/internal/domain"
)

// RescoreArticlesRequest is the request for the RescoreArticles command.
type RescoreArticlesRequest struct{}

type RescoreArticlesResult struct {
	Rescored int
	Failed   int
}

// RescoreArticles recomputes the political and neutrality scores of every stored article,
// for instance after the analyzer or the thresholds changed.
type RescoreArticles struct {
	Lister     datasources.AllArticleLister
	Updater    datasources.ArticleScoreUpdater
	Analyzer   datasources.LeaningAnalyzer
	Thresholds domain.Thresholds
}

// NewRescoreArticles creates a properly initialized RescoreArticles command.
func NewRescoreArticles(
	lister datasources.AllArticleLister,
	updater datasources.ArticleScoreUpdater,
	analyzer datasources.LeaningAnalyzer,
	thresholds domain.Thresholds,
) *RescoreArticles {
	return &RescoreArticles{
		Lister:     lister,
		Updater:    updater,
		Analyzer:   analyzer,
		Thresholds: thresholds,
	}
}

func (c *RescoreArticles) Execute(ctx context.Context, _ RescoreArticlesRequest) (RescoreArticlesResult, error) {
	logger := domain.LoggerFromContext(ctx)

	articles, err := c.Lister.ListAllArticles(ctx)
	if err != nil {
		return RescoreArticlesResult{}, fmt.Errorf("listing articles: %w", err)
	}

	var result RescoreArticlesResult
	for _, a := range articles {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		score := scoreArticle(ctx, c.Analyzer, a)
		err := c.Updater.UpdateArticleScores(ctx, domain.ArticleScores{
			ArticleID:        a.ID,
			PoliticalLeaning: c.Thresholds.Classify(score),
			PoliticalScore:   score,
			NeutralityScore:  analysis.NeutralityScore(a.Title, a.Summary),
		})
		if err != nil {
			logger.ErrorContext(ctx, "failed to update article scores", "articleID", a.ID, "error", err)
			result.Failed++
			continue
		}
		result.Rescored++
	}

	logger.InfoContext(ctx, "rescored articles", "rescored", result.Rescored, "failed", result.Failed)

	return result, nil
}
