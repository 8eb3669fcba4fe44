package datasources

import (
	"context"
	"time"

	"github.com/balancednews/news-feed/internal/domain"
)

// ArticleListCache holds rendered article lists until the stored articles change.
type ArticleListCache interface {
	GetArticleList(ctx context.Context, key string) ([]domain.Article, bool, error)
	SetArticleList(ctx context.Context, key string, articles []domain.Article, ttl time.Duration) error
	InvalidateArticleLists(ctx context.Context) error
}

type NullArticleListCache struct{}

var _ ArticleListCache = NullArticleListCache{}

func (NullArticleListCache) GetArticleList(_ context.Context, _ string) ([]domain.Article, bool, error) {
	return nil, false, nil
}

func (NullArticleListCache) SetArticleList(_ context.Context, _ string, _ []domain.Article, _ time.Duration) error {
	return nil
}

func (NullArticleListCache) InvalidateArticleLists(_ context.Context) error {
	return nil
}
