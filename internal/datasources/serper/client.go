// Package serper searches news through the Serper Google News API.
package serper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/balancednews/news-feed/internal/datasources"
	"github.com/balancednews/news-feed/internal/domain"
	"github.com/sethvargo/go-retry"
)

var _ datasources.NewsSearcher = (*Client)(nil)

const DefaultBaseURL = "https://google.serper.dev"

// PoliticalKeywords are ORed together to find the latest political news.
var PoliticalKeywords = []string{
	"정치", "정부", "대통령", "국회", "의회", "선거", "정당",
	"여당", "야당", "보수", "진보", "정치인", "정책", "법안",
	"윤석열", "이재명", "한동훈", "조국", "이준석", "이낙연",
	"국민의힘", "더불어민주당", "민주당", "개혁신당", "조국혁신당",
}

// HTTPClient is the subset of *http.Client the client needs.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient HTTPClient
	now        func() time.Time

	// Country, Language and TimeRange map onto Serper's gl, hl and tbs parameters.
	Country   string
	Language  string
	TimeRange string

	// RetryDelay is the fixed wait between attempts.
	RetryDelay time.Duration
	MaxRetries uint64
}

func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		now:        time.Now,
		Country:    "kr",
		Language:   "ko",
		TimeRange:  "qdr:d",
		RetryDelay: time.Second,
		MaxRetries: 2,
	}
}

// WithHTTPClient replaces the HTTP client used for requests.
func (c *Client) WithHTTPClient(httpClient HTTPClient) *Client {
	c.httpClient = httpClient
	return c
}

type searchRequest struct {
	Query     string `json:"q"`
	Num       int    `json:"num"`
	Country   string `json:"gl,omitempty"`
	Language  string `json:"hl,omitempty"`
	TimeRange string `json:"tbs,omitempty"`
}

type searchResponse struct {
	News []newsItem `json:"news"`
}

type newsItem struct {
	Title    string `json:"title"`
	Link     string `json:"link"`
	Snippet  string `json:"snippet"`
	Source   string `json:"source"`
	ImageURL string `json:"imageUrl"`
	Date     string `json:"date"`
}

func (c *Client) LatestPoliticalNews(ctx context.Context, num int) ([]domain.Article, error) {
	return c.SearchNews(ctx, strings.Join(PoliticalKeywords, " OR "), num)
}

func (c *Client) SearchNews(ctx context.Context, query string, num int) ([]domain.Article, error) {
	jsonBody, err := json.Marshal(searchRequest{
		Query:     query,
		Num:       num,
		Country:   c.Country,
		Language:  c.Language,
		TimeRange: c.TimeRange,
	})
	if err != nil {
		return nil, fmt.Errorf("marshalling request: %w", err)
	}

	var result searchResponse
	backoff := retry.WithMaxRetries(c.MaxRetries, retry.NewConstant(c.RetryDelay))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		var searchErr error
		result, searchErr = c.search(ctx, jsonBody)
		return searchErr
	})
	if err != nil {
		return nil, err
	}

	now := c.now().UTC()
	articles := make([]domain.Article, 0, len(result.News))
	for _, item := range result.News {
		articles = append(articles, domain.Article{
			ID:          domain.ArticleID(item.Link),
			Title:       strings.TrimSpace(item.Title),
			URL:         item.Link,
			Summary:     strings.TrimSpace(item.Snippet),
			Source:      item.Source,
			ImageURL:    item.ImageURL,
			PublishedAt: parseDate(item.Date, now),
			CreatedAt:   now,
		})
	}

	return articles, nil
}

func (c *Client) search(ctx context.Context, jsonBody []byte) (searchResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/news", bytes.NewReader(jsonBody))
	if err != nil {
		return searchResponse{}, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return searchResponse{}, retry.RetryableError(fmt.Errorf("executing request: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		err := fmt.Errorf("serper API error (status %d): %s", resp.StatusCode, string(body))
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return searchResponse{}, retry.RetryableError(err)
		}
		return searchResponse{}, err
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return searchResponse{}, fmt.Errorf("decoding response: %w", err)
	}

	return result, nil
}
