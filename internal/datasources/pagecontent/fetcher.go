// Package pagecontent extracts the readable article from a news web page.
package pagecontent

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/balancednews/news-feed/internal/datasources"
	readability "github.com/go-shiori/go-readability"
)

var _ datasources.PageContentFetcher = (*Fetcher)(nil)

const maxPageSize = 5 * 1024 * 1024

// HTTPClient is the subset of *http.Client the fetcher needs.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Fetcher struct {
	client HTTPClient
}

func NewFetcher(client HTTPClient) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Fetcher{client: client}
}

func (f *Fetcher) FetchPage(ctx context.Context, pageURL string) (datasources.PageContent, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return datasources.PageContent{}, fmt.Errorf("parse url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return datasources.PageContent{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; BalancedNewsBot/1.0)")

	resp, err := f.client.Do(req)
	if err != nil {
		return datasources.PageContent{}, fmt.Errorf("http get: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return datasources.PageContent{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	article, err := readability.FromReader(io.LimitReader(resp.Body, maxPageSize), parsed)
	if err != nil {
		return datasources.PageContent{}, fmt.Errorf("extract article: %w", err)
	}

	return datasources.PageContent{
		Text:     strings.Join(strings.Fields(article.TextContent), " "),
		Excerpt:  strings.TrimSpace(article.Excerpt),
		ImageURL: article.Image,
		SiteName: article.SiteName,
	}, nil
}
