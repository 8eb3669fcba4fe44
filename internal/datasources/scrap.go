package datasources

import (
	"context"

	"github.com/balancednews/news-feed/internal/domain"
)

type ScrapRepository interface {
	ScrapAdder
	ScrapRemover
	ScrapLister
	ScrapScoreLister
}

// ScrapAdder is idempotent; it reports whether a new scrap was recorded.
type ScrapAdder interface {
	AddScrap(ctx context.Context, uid, articleID string) (bool, error)
}

// ScrapRemover is idempotent; it reports whether a scrap was removed.
type ScrapRemover interface {
	RemoveScrap(ctx context.Context, uid, articleID string) (bool, error)
}

// ScrapLister lists scrapped articles, most recently scrapped first.
type ScrapLister interface {
	ListScrappedArticles(ctx context.Context, uid string) ([]domain.Article, error)
}

// ScrapScoreLister returns the political score of every scrapped article, nil where unscored.
type ScrapScoreLister interface {
	ListScrapScores(ctx context.Context, uid string) ([]*int, error)
}
