package serper

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/balancednews/news-feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `{
  "news": [
    {
      "title": "국회 예산안 처리 합의 ",
      "link": "https://news.example.com/budget",
      "snippet": "여야가 예산안 처리에 합의했다.",
      "source": "연합뉴스",
      "imageUrl": "https://news.example.com/budget.jpg",
      "date": "3시간 전"
    },
    {
      "title": "대통령 기자회견",
      "link": "https://news.example.com/press",
      "snippet": "",
      "source": "KBS",
      "date": "yesterday-ish"
    }
  ]
}`

func testClient(url string) *Client {
	c := NewClient("test-key", url)
	c.RetryDelay = time.Millisecond
	c.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }
	return c
}

func TestClient_SearchNews(t *testing.T) {
	var gotReq searchRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/news", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-API-KEY"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	articles, err := testClient(srv.URL).SearchNews(context.Background(), "예산안", 10)
	require.NoError(t, err)

	assert.Equal(t, searchRequest{Query: "예산안", Num: 10, Country: "kr", Language: "ko", TimeRange: "qdr:d"}, gotReq)

	require.Len(t, articles, 2)
	assert.Equal(t, domain.ArticleID("https://news.example.com/budget"), articles[0].ID)
	assert.Equal(t, "국회 예산안 처리 합의", articles[0].Title)
	assert.Equal(t, "여야가 예산안 처리에 합의했다.", articles[0].Summary)
	assert.Equal(t, "연합뉴스", articles[0].Source)
	assert.Equal(t, "https://news.example.com/budget.jpg", articles[0].ImageURL)
	require.NotNil(t, articles[0].PublishedAt)
	assert.Equal(t, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC), *articles[0].PublishedAt)
	assert.Nil(t, articles[1].PublishedAt)
}

func TestClient_LatestPoliticalNews(t *testing.T) {
	var gotReq searchRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_, _ = w.Write([]byte(`{"news": []}`))
	}))
	defer srv.Close()

	articles, err := testClient(srv.URL).LatestPoliticalNews(context.Background(), 20)
	require.NoError(t, err)
	assert.Empty(t, articles)
	assert.Equal(t, 20, gotReq.Num)
	assert.Contains(t, gotReq.Query, "국회 OR 의회")
	assert.Contains(t, gotReq.Query, "조국혁신당")
}

func TestClient_SearchNews_Retries(t *testing.T) {
	cases := []struct {
		name         string
		statuses     []int
		wantErr      bool
		wantAttempts int32
	}{
		{
			name:         "recovers_after_server_error",
			statuses:     []int{http.StatusInternalServerError, http.StatusOK},
			wantAttempts: 2,
		},
		{
			name:         "retries_rate_limit",
			statuses:     []int{http.StatusTooManyRequests, http.StatusTooManyRequests, http.StatusOK},
			wantAttempts: 3,
		},
		{
			name:         "gives_up_after_two_retries",
			statuses:     []int{http.StatusBadGateway, http.StatusBadGateway, http.StatusBadGateway, http.StatusOK},
			wantErr:      true,
			wantAttempts: 3,
		},
		{
			name:         "client_error_not_retried",
			statuses:     []int{http.StatusUnauthorized, http.StatusOK},
			wantErr:      true,
			wantAttempts: 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var attempts atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				n := attempts.Add(1)
				status := tc.statuses[n-1]
				w.WriteHeader(status)
				if status == http.StatusOK {
					_, _ = w.Write([]byte(sampleResponse))
				}
			}))
			defer srv.Close()

			articles, err := testClient(srv.URL).SearchNews(context.Background(), "q", 10)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Len(t, articles, 2)
			}
			assert.Equal(t, tc.wantAttempts, attempts.Load())
		})
	}
}

func TestParseDate(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		input    string
		expected *time.Time
	}{
		{name: "minutes_english", input: "15 minutes ago", expected: ptr(now.Add(-15 * time.Minute))},
		{name: "hours_korean", input: "2시간 전", expected: ptr(now.Add(-2 * time.Hour))},
		{name: "days_english", input: "1 day ago", expected: ptr(now.Add(-24 * time.Hour))},
		{name: "weeks_korean", input: "1주 전", expected: ptr(now.Add(-7 * 24 * time.Hour))},
		{name: "absolute_english", input: "Feb 3, 2025", expected: ptr(time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC))},
		{name: "absolute_korean", input: "2025. 2. 3.", expected: ptr(time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC))},
		{name: "empty", input: "", expected: nil},
		{name: "unknown", input: "recently", expected: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, parseDate(tc.input, now))
		})
	}
}

func ptr(t time.Time) *time.Time { return &t }
