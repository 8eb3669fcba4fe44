package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/balancednews/news-feed/internal/command"
	cmdmocks "github.com/balancednews/news-feed/internal/command/mocks"
	"github.com/balancednews/news-feed/internal/datasources/mocks"
	"github.com/balancednews/news-feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewsList_ServeHTTP(t *testing.T) {
	testTime := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	articles := []domain.Article{
		{ID: "a1", Title: "기사 1", CreatedAt: testTime},
		{ID: "a2", Title: "기사 2", CreatedAt: testTime},
	}

	cases := []struct {
		name          string
		queryString   string
		setupContext  func(r *http.Request) *http.Request
		wantReq       *command.ListLatestNewsRequest
		articles      []domain.Article
		commandErr    error
		wantStatus    int
		wantCacheCtrl string
	}{
		{
			name:          "default_pagination",
			setupContext:  testContext(),
			wantReq:       &command.ListLatestNewsRequest{Page: 1, PageSize: 20},
			articles:      articles,
			wantStatus:    http.StatusOK,
			wantCacheCtrl: "max-age=60",
		},
		{
			name:         "explicit_pagination_authenticated",
			queryString:  "page=3&page_size=200",
			setupContext: testContextWithUserID("uid-1"),
			wantReq:      &command.ListLatestNewsRequest{Page: 3, PageSize: 200},
			articles:     articles,
			wantStatus:   http.StatusOK,
		},
		{
			name:          "empty_list",
			setupContext:  testContext(),
			wantReq:       &command.ListLatestNewsRequest{Page: 1, PageSize: 20},
			articles:      []domain.Article{},
			wantStatus:    http.StatusOK,
			wantCacheCtrl: "max-age=60",
		},
		{
			name:         "page_size_exceeds_limit",
			queryString:  "page_size=201",
			setupContext: testContext(),
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "invalid_page",
			queryString:  "page=zero",
			setupContext: testContext(),
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "command_error",
			setupContext: testContext(),
			wantReq:      &command.ListLatestNewsRequest{Page: 1, PageSize: 20},
			commandErr:   errors.New("database error"),
			wantStatus:   http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			listCmd := cmdmocks.NewMockCommand[command.ListLatestNewsRequest, []domain.Article](t)
			if tc.wantReq != nil {
				listCmd.EXPECT().Execute(mock.Anything, *tc.wantReq).Return(tc.articles, tc.commandErr)
			}

			controller := NewsList{ListCmd: listCmd, CacheMaxAge: time.Minute}

			req := httptest.NewRequest(http.MethodGet, "/news/political?"+tc.queryString, nil)
			req = tc.setupContext(req)
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus != http.StatusOK {
				return
			}

			assert.Equal(t, tc.wantCacheCtrl, rec.Header().Get("Cache-Control"))

			var got []domain.Article
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, tc.articles, got)
		})
	}
}

func TestNewsSearch_ServeHTTP(t *testing.T) {
	t.Run("passes_query", func(t *testing.T) {
		searcher := mocks.NewMockArticleSearcher(t)
		searcher.EXPECT().
			SearchArticles(mock.Anything, "국회", 2, 10).
			Return([]domain.Article{{ID: "a1", Title: "국회 소식"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/news/search?q=%EA%B5%AD%ED%9A%8C&page=2&page_size=10", nil)
		req = testContext()(req)
		rec := httptest.NewRecorder()

		NewsSearch{Searcher: searcher}.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got []domain.Article
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, []domain.Article{{ID: "a1", Title: "국회 소식"}}, got)
	})

	t.Run("search_error", func(t *testing.T) {
		searcher := mocks.NewMockArticleSearcher(t)
		searcher.EXPECT().
			SearchArticles(mock.Anything, "", 1, 20).
			Return(nil, errors.New("database error"))

		req := httptest.NewRequest(http.MethodGet, "/news/search", nil)
		req = testContext()(req)
		rec := httptest.NewRecorder()

		NewsSearch{Searcher: searcher}.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"unable to search news"}`, rec.Body.String())
	})
}

func TestRoot_ServeHTTP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	Root{}.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"News API Server"}`, rec.Body.String())
}
