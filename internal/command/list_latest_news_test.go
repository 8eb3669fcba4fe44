package command

import (
	"errors"
	"testing"
	"time"

	"github.com/balancednews/news-feed/internal/datasources/mocks"
	"github.com/balancednews/news-feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListLatestNews_Execute(t *testing.T) {
	cached := []domain.Article{{ID: "cached", Title: "Cached"}}
	stored := []domain.Article{{ID: "stored", Title: "Stored"}}

	cases := []struct {
		name        string
		cacheTTL    time.Duration
		cached      []domain.Article
		cacheFound  bool
		cacheGetErr error
		listErr     error
		setErr      error
		wantList    bool
		wantSet     bool
		expected    []domain.Article
		wantErr     bool
	}{
		{
			name:       "cache_hit",
			cacheTTL:   time.Minute,
			cached:     cached,
			cacheFound: true,
			expected:   cached,
		},
		{
			name:     "cache_miss_fills_cache",
			cacheTTL: time.Minute,
			wantList: true,
			wantSet:  true,
			expected: stored,
		},
		{
			name:        "cache_read_error_falls_through",
			cacheTTL:    time.Minute,
			cacheGetErr: errors.New("redis down"),
			wantList:    true,
			wantSet:     true,
			expected:    stored,
		},
		{
			name:     "cache_write_error_ignored",
			cacheTTL: time.Minute,
			setErr:   errors.New("redis down"),
			wantList: true,
			wantSet:  true,
			expected: stored,
		},
		{
			name:     "zero_ttl_skips_write",
			cacheTTL: 0,
			wantList: true,
			expected: stored,
		},
		{
			name:     "list_error",
			cacheTTL: time.Minute,
			listErr:  errors.New("db down"),
			wantList: true,
			wantErr:  true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lister := mocks.NewMockLatestArticleLister(t)
			cache := mocks.NewMockArticleListCache(t)

			cache.EXPECT().
				GetArticleList(mock.Anything, "latest:2:20").
				Return(tc.cached, tc.cacheFound, tc.cacheGetErr)

			if tc.wantList {
				var articles []domain.Article
				if tc.listErr == nil {
					articles = stored
				}
				lister.EXPECT().
					ListLatestArticles(mock.Anything, 2, 20).
					Return(articles, tc.listErr)
			}

			if tc.wantSet {
				cache.EXPECT().
					SetArticleList(mock.Anything, "latest:2:20", stored, tc.cacheTTL).
					Return(tc.setErr)
			}

			cmd := NewListLatestNews(lister, cache, tc.cacheTTL)
			result, err := cmd.Execute(testContext(), ListLatestNewsRequest{Page: 2, PageSize: 20})
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}
