package datasources

import (
	"context"

	"github.com/balancednews/news-feed/internal/domain"
)

// NewsSearcher finds fresh news articles on a search API.
type NewsSearcher interface {
	SearchNews(ctx context.Context, query string, num int) ([]domain.Article, error)
	LatestPoliticalNews(ctx context.Context, num int) ([]domain.Article, error)
}

// NewsFeedSource reads articles from syndication feeds.
type NewsFeedSource interface {
	FetchFeedArticles(ctx context.Context) ([]domain.Article, error)
}

// PageContent is what can be extracted from an article's web page.
type PageContent struct {
	Text     string
	Excerpt  string
	ImageURL string
	SiteName string
}

type PageContentFetcher interface {
	FetchPage(ctx context.Context, url string) (PageContent, error)
}

// LeaningAnalyzer scores text from 1 (conservative) to 100 (progressive).
type LeaningAnalyzer interface {
	ScorePoliticalLeaning(ctx context.Context, text string) (int, error)
}

type NullNewsSearcher struct{}

var _ NewsSearcher = NullNewsSearcher{}

func (NullNewsSearcher) SearchNews(_ context.Context, _ string, _ int) ([]domain.Article, error) {
	return nil, nil
}

func (NullNewsSearcher) LatestPoliticalNews(_ context.Context, _ int) ([]domain.Article, error) {
	return nil, nil
}

type NullNewsFeedSource struct{}

var _ NewsFeedSource = NullNewsFeedSource{}

func (NullNewsFeedSource) FetchFeedArticles(_ context.Context) ([]domain.Article, error) {
	return nil, nil
}

type NullPageContentFetcher struct{}

var _ PageContentFetcher = NullPageContentFetcher{}

func (NullPageContentFetcher) FetchPage(_ context.Context, _ string) (PageContent, error) {
	return PageContent{}, nil
}
