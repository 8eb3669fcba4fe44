package datasources

import (
	"context"

	"github.com/balancednews/news-feed/internal/domain"
)

// DatasetRepository is everything the news API reads and writes in its main store.
type DatasetRepository interface {
	ArticleRepository
	UserRepository
	ScrapRepository
	APITokenRepository
}

type ArticleRepository interface {
	LatestArticleLister
	ArticleSearcher
	ArticleFetcher
	ArticleInserter
	ArticleURLChecker
	AllArticleLister
	ArticleScoreUpdater
}

type LatestArticleLister interface {
	ListLatestArticles(ctx context.Context, page, pageSize int) ([]domain.Article, error)
}

type ArticleSearcher interface {
	SearchArticles(ctx context.Context, query string, page, pageSize int) ([]domain.Article, error)
}

type ArticleFetcher interface {
	FetchArticlesByID(ctx context.Context, ids []string) ([]domain.Article, error)
}

type ArticleInserter interface {
	InsertArticles(ctx context.Context, articles []domain.Article) (int, error)
}

// ArticleURLChecker returns the subset of urls that are already stored.
type ArticleURLChecker interface {
	ListExistingArticleURLs(ctx context.Context, urls []string) ([]string, error)
}

type AllArticleLister interface {
	ListAllArticles(ctx context.Context) ([]domain.Article, error)
}

type ArticleScoreUpdater interface {
	UpdateArticleScores(ctx context.Context, scores domain.ArticleScores) error
}
