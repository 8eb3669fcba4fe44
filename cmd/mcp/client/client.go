// Package client provides an HTTP client for the balanced news API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Article represents a political news article with its analysis.
type Article struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	URL              string     `json:"url"`
	Summary          string     `json:"summary"`
	Source           string     `json:"source"`
	ImageURL         string     `json:"image_url,omitempty"`
	PoliticalLeaning string     `json:"political_leaning"`
	PoliticalScore   *int       `json:"political_score"`
	NeutralityScore  *float64   `json:"neutrality_score"`
	PublishedAt      *time.Time `json:"published_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// BalancedArticle is an article picked for a balanced reading list.
type BalancedArticle struct {
	Article
	Recommendation  string `json:"recommendation,omitempty"`
	ScoreDifference int    `json:"score_difference"`
}

// BalancedNews is the balanced reading list with how it was assembled.
type BalancedNews struct {
	Data     []BalancedArticle `json:"data"`
	Metadata struct {
		HasProfileScore    bool   `json:"has_profile_score"`
		ProfileScore       int    `json:"profile_score"`
		ProfileAffiliation string `json:"profile_affiliation"`
		SimilarTarget      int    `json:"similar_target"`
		OppositeTarget     int    `json:"opposite_target"`
	} `json:"metadata"`
}

// PoliticalIndex is the user's leaning from their profile and their scraps.
type PoliticalIndex struct {
	ProfileScore        int    `json:"profile_score"`
	ProfileAffiliation  string `json:"profile_affiliation"`
	HasProfileScore     bool   `json:"has_profile_score"`
	ActivityScore       int    `json:"activity_score"`
	ActivityAffiliation string `json:"activity_affiliation"`
	ActivityFromScraps  bool   `json:"activity_from_scraps"`
	ScrapCount          int    `json:"scrap_count"`
	ScoredScrapCount    int    `json:"scored_scrap_count"`
}

// ScrapResult is the outcome of adding or removing a scrap.
type ScrapResult struct {
	Message       string `json:"message"`
	Changed       bool   `json:"changed"`
	ActivityScore int    `json:"activity_score"`
}

// Client is an HTTP client for the balanced news API. User endpoints act on the user that
// owns the API token.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

// NewClient creates a new API client.
func NewClient(baseURL, apiToken string) *Client {
	return &Client{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		apiToken: apiToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

const selfPath = "/users/firebase/me"

func (c *Client) doRequest(ctx context.Context, method, path string) (*http.Response, error) {
	return c.doRequestWithBody(ctx, method, path, nil)
}

func (c *Client) doRequestWithBody(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	return resp, nil
}

func (c *Client) handleResponse(resp *http.Response, result interface{}) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return err
	}

	return c.handleResponse(resp, result)
}

func paginationParams(page, pageSize int) url.Values {
	params := url.Values{}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		params.Set("page_size", strconv.Itoa(pageSize))
	}
	return params
}

// LatestNews lists the most recently collected articles.
func (c *Client) LatestNews(ctx context.Context, page, pageSize int) ([]Article, error) {
	var articles []Article
	if err := c.get(ctx, "/news/political", paginationParams(page, pageSize), &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// SearchNews finds articles whose title or summary contains query.
func (c *Client) SearchNews(ctx context.Context, query string, page, pageSize int) ([]Article, error) {
	params := paginationParams(page, pageSize)
	params.Set("q", query)

	var articles []Article
	if err := c.get(ctx, "/news/search", params, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// GetArticle retrieves a single article by its ID.
func (c *Client) GetArticle(ctx context.Context, articleID string) (*Article, error) {
	var article Article
	if err := c.get(ctx, "/news/"+url.PathEscape(articleID), nil, &article); err != nil {
		return nil, err
	}
	return &article, nil
}

// BalancedNews retrieves a mix of articles close to and far from the user's leaning.
func (c *Client) BalancedNews(ctx context.Context, limit int) (*BalancedNews, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var result BalancedNews
	if err := c.get(ctx, selfPath+"/balanced-news", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PoliticalIndex retrieves the user's political index.
func (c *Client) PoliticalIndex(ctx context.Context) (*PoliticalIndex, error) {
	var index PoliticalIndex
	if err := c.get(ctx, selfPath+"/political-index", nil, &index); err != nil {
		return nil, err
	}
	return &index, nil
}

// ListScraps lists the articles the user has scrapped, most recent first.
func (c *Client) ListScraps(ctx context.Context) ([]Article, error) {
	var result struct {
		ScrappedNews []Article `json:"scrapped_news"`
	}
	if err := c.get(ctx, selfPath+"/scraps", nil, &result); err != nil {
		return nil, err
	}
	return result.ScrappedNews, nil
}

// ScrapArticle adds ("add") or removes ("remove") an article from the user's scraps.
func (c *Client) ScrapArticle(ctx context.Context, articleID, action string) (*ScrapResult, error) {
	reqBody := struct {
		ArticleID string `json:"article_id"`
		Action    string `json:"action"`
	}{
		ArticleID: articleID,
		Action:    action,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshalling request: %w", err)
	}

	resp, err := c.doRequestWithBody(ctx, http.MethodPost, selfPath+"/scraps", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, err
	}

	var result ScrapResult
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
