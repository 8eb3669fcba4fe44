// Package rssfeed reads news articles from RSS and Atom feeds.
package rssfeed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/balancednews/news-feed/internal/datasources"
	"github.com/balancednews/news-feed/internal/domain"
	"github.com/mmcdole/gofeed"
)

var _ datasources.NewsFeedSource = (*Source)(nil)

const maxFeedSize = 5 * 1024 * 1024

// HTTPClient is the subset of *http.Client the source needs.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Source struct {
	urls   []string
	client HTTPClient
	now    func() time.Time
}

func NewSource(urls []string, client HTTPClient) *Source {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	return &Source{
		urls:   urls,
		client: client,
		now:    time.Now,
	}
}

// FetchFeedArticles reads every configured feed. A feed that fails is logged and skipped.
func (s *Source) FetchFeedArticles(ctx context.Context) ([]domain.Article, error) {
	logger := domain.LoggerFromContext(ctx)

	var articles []domain.Article
	for _, feedURL := range s.urls {
		feed, err := s.fetch(ctx, feedURL)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logger.WarnContext(ctx, "unable to fetch feed", "feedURL", feedURL, "error", err)
			continue
		}

		articles = append(articles, s.feedArticles(feed)...)
	}

	return articles, nil
}

func (s *Source) fetch(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "BalancedNewsBot/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedSize))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	feed, err := gofeed.NewParser().ParseString(string(body))
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}
	return feed, nil
}

func (s *Source) feedArticles(feed *gofeed.Feed) []domain.Article {
	now := s.now().UTC()

	articles := make([]domain.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		link := strings.TrimSpace(item.Link)
		if link == "" {
			continue
		}

		published := item.PublishedParsed
		if published == nil {
			published = item.UpdatedParsed
		}
		if published != nil {
			utc := published.UTC()
			published = &utc
		}

		articles = append(articles, domain.Article{
			ID:          domain.ArticleID(link),
			Title:       strings.TrimSpace(item.Title),
			URL:         link,
			Summary:     plainText(item.Description),
			Content:     plainText(item.Content),
			Source:      sourceName(link),
			ImageURL:    itemImage(item),
			PublishedAt: published,
			CreatedAt:   now,
		})
	}

	return articles
}

func itemImage(item *gofeed.Item) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}
	for _, enc := range item.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}
	return ""
}

// sourceName is the link's host without a leading "www.".
func sourceName(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

// plainText strips markup from feed HTML and collapses whitespace.
func plainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.Join(strings.Fields(s), " ")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.Join(strings.Fields(s), " ")
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
