package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/balancednews/news-feed/internal/datasources/mocks"
	"github.com/balancednews/news-feed/internal/domain"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestArticleGet_ServeHTTP(t *testing.T) {
	testTime := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name          string
		articleID     string
		setupContext  func(r *http.Request) *http.Request
		articles      []domain.Article
		fetchErr      error
		wantStatus    int
		wantCacheCtrl string
		wantArticle   *domain.Article
	}{
		{
			name:         "successful_fetch",
			articleID:    "hash123",
			setupContext: testContext(),
			articles: []domain.Article{
				{
					ID:               "hash123",
					Title:            "국회 예산안 처리",
					URL:              "https://example.com/article",
					Source:           "example.com",
					PoliticalLeaning: domain.AffiliationNeutral,
					PoliticalScore:   intPtr(50),
					CreatedAt:        testTime,
				},
			},
			wantStatus:    http.StatusOK,
			wantCacheCtrl: "max-age=3600",
			wantArticle: &domain.Article{
				ID:               "hash123",
				Title:            "국회 예산안 처리",
				URL:              "https://example.com/article",
				Source:           "example.com",
				PoliticalLeaning: domain.AffiliationNeutral,
				PoliticalScore:   intPtr(50),
				CreatedAt:        testTime,
			},
		},
		{
			name:         "no_cache_for_authenticated_user",
			articleID:    "hash123",
			setupContext: testContextWithUserID("user456"),
			articles: []domain.Article{
				{ID: "hash123", Title: "국회 예산안 처리", CreatedAt: testTime},
			},
			wantStatus:    http.StatusOK,
			wantCacheCtrl: "",
			wantArticle:   &domain.Article{ID: "hash123", Title: "국회 예산안 처리", CreatedAt: testTime},
		},
		{
			name:         "not_found",
			articleID:    "missing",
			setupContext: testContext(),
			articles:     []domain.Article{},
			wantStatus:   http.StatusNotFound,
		},
		{
			name:         "fetch_error",
			articleID:    "hash123",
			setupContext: testContext(),
			fetchErr:     errors.New("database error"),
			wantStatus:   http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockArticleFetcher(t)

			fetcher.EXPECT().
				FetchArticlesByID(mock.Anything, []string{tc.articleID}).
				Return(tc.articles, tc.fetchErr)

			controller := ArticleGet{
				Fetcher:     fetcher,
				CacheMaxAge: time.Hour,
			}

			req := httptest.NewRequest(http.MethodGet, "/news/"+tc.articleID, nil)
			req = tc.setupContext(req)
			req = mux.SetURLVars(req, map[string]string{"article_id": tc.articleID})
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus != http.StatusOK {
				var body errorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.NotEmpty(t, body.Error)
				return
			}

			if tc.wantCacheCtrl != "" {
				assert.Equal(t, tc.wantCacheCtrl, rec.Header().Get("Cache-Control"))
			} else {
				assert.Empty(t, rec.Header().Get("Cache-Control"))
			}

			var article domain.Article
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&article))
			assert.Equal(t, *tc.wantArticle, article)
		})
	}
}
