package command

import (
	"context"
	"fmt"
	"time"

	"github.com/balancednews/news-feed/internal/datasources"
	"github.com/balancednews/news-feed/internal/domain"
)

// ListLatestNewsRequest is the request for the ListLatestNews command.
type ListLatestNewsRequest struct {
	Page     int
	PageSize int
}

// ListLatestNews reads a page of the latest articles through the article list cache.
type ListLatestNews struct {
	Lister   datasources.LatestArticleLister
	Cache    datasources.ArticleListCache
	CacheTTL time.Duration
}

// NewListLatestNews creates a properly initialized ListLatestNews command.
func NewListLatestNews(
	lister datasources.LatestArticleLister,
	cache datasources.ArticleListCache,
	cacheTTL time.Duration,
) *ListLatestNews {
	return &ListLatestNews{
		Lister:   lister,
		Cache:    cache,
		CacheTTL: cacheTTL,
	}
}

func latestCacheKey(page, pageSize int) string {
	return fmt.Sprintf("latest:%d:%d", page, pageSize)
}

// Execute returns the cached page when present, otherwise reads it from the store and caches
// it. Cache failures are logged and bypassed.
func (c *ListLatestNews) Execute(ctx context.Context, req ListLatestNewsRequest) ([]domain.Article, error) {
	logger := domain.LoggerFromContext(ctx)
	key := latestCacheKey(req.Page, req.PageSize)

	articles, found, err := c.Cache.GetArticleList(ctx, key)
	if err != nil {
		logger.WarnContext(ctx, "failed to read article list cache", "error", err, "key", key)
	} else if found {
		return articles, nil
	}

	articles, err = c.Lister.ListLatestArticles(ctx, req.Page, req.PageSize)
	if err != nil {
		return nil, fmt.Errorf("listing latest articles: %w", err)
	}

	if c.CacheTTL > 0 {
		if err := c.Cache.SetArticleList(ctx, key, articles, c.CacheTTL); err != nil {
			logger.WarnContext(ctx, "failed to write article list cache", "error", err, "key", key)
		}
	}

	return articles, nil
}
