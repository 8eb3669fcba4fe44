package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/balancednews/news-feed/internal/analysis"
	"github.com/balancednews/news-feed/internal/datasources"
	"github.com/balancednews/news-feed/internal/domain"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// RefreshNewsRequest is the request for the RefreshNews command.
type RefreshNewsRequest struct {
	// Query searches for specific news. Empty means the latest political news.
	Query      string
	NumResults int
	Save       bool
}

// RefreshNewsResult lists the new, analyzed articles and how many were stored.
type RefreshNewsResult struct {
	Articles []domain.Article
	Saved    int
}

// RefreshNewsConfig holds the tuning knobs of a news refresh.
type RefreshNewsConfig struct {
	// EnrichConcurrency bounds the article pages fetched at once.
	EnrichConcurrency int
}

// RefreshNews collects fresh articles from the search API and feeds, analyzes their political
// leaning and optionally stores them.
type RefreshNews struct {
	Searcher   datasources.NewsSearcher
	Feeds      datasources.NewsFeedSource
	Pages      datasources.PageContentFetcher
	URLChecker datasources.ArticleURLChecker
	Inserter   datasources.ArticleInserter
	Analyzer   datasources.LeaningAnalyzer
	Cache      datasources.ArticleListCache
	Thresholds domain.Thresholds
	Config     RefreshNewsConfig
}

// NewRefreshNews creates a properly initialized RefreshNews command.
func NewRefreshNews(
	searcher datasources.NewsSearcher,
	feeds datasources.NewsFeedSource,
	pages datasources.PageContentFetcher,
	urlChecker datasources.ArticleURLChecker,
	inserter datasources.ArticleInserter,
	analyzer datasources.LeaningAnalyzer,
	cache datasources.ArticleListCache,
	thresholds domain.Thresholds,
	config RefreshNewsConfig,
) *RefreshNews {
	return &RefreshNews{
		Searcher:   searcher,
		Feeds:      feeds,
		Pages:      pages,
		URLChecker: urlChecker,
		Inserter:   inserter,
		Analyzer:   analyzer,
		Cache:      cache,
		Thresholds: thresholds,
		Config:     config,
	}
}

var errNoNewsSource = errors.New("no news source could be read")

func (c *RefreshNews) Execute(ctx context.Context, req RefreshNewsRequest) (RefreshNewsResult, error) {
	logger := domain.LoggerFromContext(ctx)

	collected, err := c.collect(ctx, req)
	if err != nil {
		return RefreshNewsResult{}, err
	}

	collected = lo.Filter(collected, func(a domain.Article, _ int) bool {
		return a.Title != "" && a.URL != ""
	})
	collected = lo.UniqBy(collected, func(a domain.Article) string {
		return a.URL
	})

	existing, err := c.URLChecker.ListExistingArticleURLs(ctx, lo.Map(collected, func(a domain.Article, _ int) string {
		return a.URL
	}))
	if err != nil {
		return RefreshNewsResult{}, fmt.Errorf("checking stored articles: %w", err)
	}
	stored := lo.Associate(existing, func(url string) (string, struct{}) {
		return url, struct{}{}
	})
	fresh := lo.Filter(collected, func(a domain.Article, _ int) bool {
		_, ok := stored[a.URL]
		return !ok
	})

	logger.InfoContext(ctx, "collected news",
		"collected", len(collected), "already_stored", len(collected)-len(fresh))

	if err := c.enrich(ctx, fresh); err != nil {
		return RefreshNewsResult{}, err
	}

	for i := range fresh {
		c.analyze(ctx, &fresh[i])
	}

	result := RefreshNewsResult{Articles: fresh}
	if !req.Save || len(fresh) == 0 {
		return result, nil
	}

	saved, err := c.Inserter.InsertArticles(ctx, fresh)
	if err != nil {
		return RefreshNewsResult{}, fmt.Errorf("storing articles: %w", err)
	}
	result.Saved = saved

	if err := c.Cache.InvalidateArticleLists(ctx); err != nil {
		logger.WarnContext(ctx, "failed to invalidate article list cache", "error", err)
	}

	logger.InfoContext(ctx, "stored news", "saved", saved)

	return result, nil
}

// collect gathers articles from both sources. One failing source is tolerated.
func (c *RefreshNews) collect(ctx context.Context, req RefreshNewsRequest) ([]domain.Article, error) {
	logger := domain.LoggerFromContext(ctx)

	var searched []domain.Article
	var searchErr error
	if req.Query != "" {
		searched, searchErr = c.Searcher.SearchNews(ctx, req.Query, req.NumResults)
	} else {
		searched, searchErr = c.Searcher.LatestPoliticalNews(ctx, req.NumResults)
	}
	if searchErr != nil {
		logger.WarnContext(ctx, "failed to search news", "error", searchErr)
	}

	fed, feedErr := c.Feeds.FetchFeedArticles(ctx)
	if feedErr != nil {
		logger.WarnContext(ctx, "failed to read news feeds", "error", feedErr)
	}

	if searchErr != nil && feedErr != nil {
		return nil, fmt.Errorf("%w: %w", errNoNewsSource, errors.Join(searchErr, feedErr))
	}

	return append(searched, fed...), nil
}

// enrich fills missing summaries and images from the article pages. Page failures leave the
// article as it was.
func (c *RefreshNews) enrich(ctx context.Context, articles []domain.Article) error {
	logger := domain.LoggerFromContext(ctx)

	grp, grpCtx := errgroup.WithContext(ctx)
	grp.SetLimit(max(1, c.Config.EnrichConcurrency))

	for i := range articles {
		a := &articles[i]
		if a.Summary != "" && a.ImageURL != "" {
			continue
		}

		grp.Go(func() error {
			page, err := c.Pages.FetchPage(grpCtx, a.URL)
			if err != nil {
				logger.DebugContext(grpCtx, "unable to fetch article page", "url", a.URL, "error", err)
				return nil
			}

			if a.Summary == "" {
				a.Summary = page.Excerpt
			}
			if a.ImageURL == "" {
				a.ImageURL = page.ImageURL
			}
			if a.Content == "" {
				a.Content = page.Text
			}
			if a.Source == "" {
				a.Source = page.SiteName
			}
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return fmt.Errorf("enriching articles: %w", err)
	}
	return ctx.Err()
}

func (c *RefreshNews) analyze(ctx context.Context, a *domain.Article) {
	if a.ID == "" {
		a.ID = domain.ArticleID(a.URL)
	}
	if a.Summary == "" {
		a.Summary = analysis.Summarize(a.Content)
	}

	score := scoreArticle(ctx, c.Analyzer, *a)
	neutrality := analysis.NeutralityScore(a.Title, a.Summary)

	a.PoliticalScore = &score
	a.PoliticalLeaning = c.Thresholds.Classify(score)
	a.NeutralityScore = &neutrality
}

// scoreArticle asks the analyzer for the article's score, falling back to neutral.
func scoreArticle(ctx context.Context, analyzer datasources.LeaningAnalyzer, a domain.Article) int {
	score, err := analyzer.ScorePoliticalLeaning(ctx, analysis.AnalysisText(a.Title, a.Summary))
	if err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "failed to analyze political leaning, using neutral score",
			"error", err, "articleID", a.ID)
		return domain.NeutralScore
	}
	return domain.ClampArticleScore(score)
}
