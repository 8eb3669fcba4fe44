package command

import (
	"context"
	"errors"
	"testing"

	"github.com/balancednews/news-feed/internal/datasources"
	"github.com/balancednews/news-feed/internal/datasources/mocks"
	"github.com/balancednews/news-feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type refreshNewsMocks struct {
	searcher   *mocks.MockNewsSearcher
	feeds      *mocks.MockNewsFeedSource
	pages      *mocks.MockPageContentFetcher
	urlChecker *mocks.MockArticleURLChecker
	inserter   *mocks.MockArticleInserter
	analyzer   *mocks.MockLeaningAnalyzer
	cache      *mocks.MockArticleListCache
}

func newRefreshNewsMocks(t *testing.T) refreshNewsMocks {
	return refreshNewsMocks{
		searcher:   mocks.NewMockNewsSearcher(t),
		feeds:      mocks.NewMockNewsFeedSource(t),
		pages:      mocks.NewMockPageContentFetcher(t),
		urlChecker: mocks.NewMockArticleURLChecker(t),
		inserter:   mocks.NewMockArticleInserter(t),
		analyzer:   mocks.NewMockLeaningAnalyzer(t),
		cache:      mocks.NewMockArticleListCache(t),
	}
}

func (m refreshNewsMocks) command() *RefreshNews {
	return NewRefreshNews(
		m.searcher, m.feeds, m.pages, m.urlChecker, m.inserter, m.analyzer, m.cache,
		domain.CurrentThresholds, RefreshNewsConfig{EnrichConcurrency: 2},
	)
}

const longSummary = "국회는 오늘 본회의를 열고 내년도 예산안과 민생 법안 다수를 처리했다고 국회 사무처가 밝혔다. 본회의는 늦은 밤까지 이어졌다."

func TestRefreshNews_Execute(t *testing.T) {
	m := newRefreshNewsMocks(t)

	searched := []domain.Article{
		{Title: "국회 예산안 처리", URL: "https://a.example.com/1", Summary: longSummary, ImageURL: "https://a.example.com/1.jpg"},
		{Title: "", URL: "https://a.example.com/untitled"},
		{Title: "이미 저장된 기사", URL: "https://a.example.com/stored", Summary: "요약", ImageURL: "x"},
	}
	fed := []domain.Article{
		{Title: "국회 예산안 처리 (중복)", URL: "https://a.example.com/1"},
		{Title: "정부 발표", URL: "https://b.example.com/2"},
	}

	m.searcher.EXPECT().LatestPoliticalNews(mock.Anything, 30).Return(searched, nil)
	m.feeds.EXPECT().FetchFeedArticles(mock.Anything).Return(fed, nil)
	m.urlChecker.EXPECT().
		ListExistingArticleURLs(mock.Anything, []string{
			"https://a.example.com/1", "https://a.example.com/stored", "https://b.example.com/2",
		}).
		Return([]string{"https://a.example.com/stored"}, nil)
	m.pages.EXPECT().
		FetchPage(mock.Anything, "https://b.example.com/2").
		Return(datasources.PageContent{
			Text:     "정부가 새 계획을 발표했다. 세부 내용은 다음 주 공개된다.",
			ImageURL: "https://b.example.com/2.jpg",
			SiteName: "B 뉴스",
		}, nil)
	m.analyzer.EXPECT().ScorePoliticalLeaning(mock.Anything, longSummary).Return(70, nil)
	m.analyzer.EXPECT().ScorePoliticalLeaning(mock.Anything, "정부 발표").Return(0, errors.New("quota exceeded"))
	m.inserter.EXPECT().
		InsertArticles(mock.Anything, mock.MatchedBy(func(articles []domain.Article) bool {
			return len(articles) == 2
		})).
		Return(2, nil)
	m.cache.EXPECT().InvalidateArticleLists(mock.Anything).Return(nil)

	result, err := m.command().Execute(testContext(), RefreshNewsRequest{NumResults: 30, Save: true})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Saved)
	require.Len(t, result.Articles, 2)

	first := result.Articles[0]
	assert.Equal(t, domain.ArticleID("https://a.example.com/1"), first.ID)
	assert.Equal(t, "국회 예산안 처리", first.Title)
	assert.Equal(t, intPtr(70), first.PoliticalScore)
	assert.Equal(t, domain.AffiliationProgressive, first.PoliticalLeaning)
	require.NotNil(t, first.NeutralityScore)
	assert.InDelta(t, 0.75, *first.NeutralityScore, 1e-9)

	second := result.Articles[1]
	assert.Equal(t, "정부가 새 계획을 발표했다", second.Summary)
	assert.Equal(t, "https://b.example.com/2.jpg", second.ImageURL)
	assert.Equal(t, "B 뉴스", second.Source)
	assert.Equal(t, intPtr(50), second.PoliticalScore, "analyzer failures fall back to neutral")
	assert.Equal(t, domain.AffiliationNeutral, second.PoliticalLeaning)
}

func TestRefreshNews_Execute_QueryWithoutSave(t *testing.T) {
	m := newRefreshNewsMocks(t)

	m.searcher.EXPECT().
		SearchNews(mock.Anything, "탄핵", 10).
		Return([]domain.Article{{Title: "탄핵 논의", URL: "https://a.example.com/1", Summary: "s", ImageURL: "i"}}, nil)
	m.feeds.EXPECT().FetchFeedArticles(mock.Anything).Return(nil, nil)
	m.urlChecker.EXPECT().ListExistingArticleURLs(mock.Anything, mock.Anything).Return([]string{}, nil)
	m.analyzer.EXPECT().ScorePoliticalLeaning(mock.Anything, "탄핵 논의").Return(20, nil)

	result, err := m.command().Execute(testContext(), RefreshNewsRequest{Query: "탄핵", NumResults: 10})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Saved)
	require.Len(t, result.Articles, 1)
	assert.Equal(t, domain.AffiliationConservative, result.Articles[0].PoliticalLeaning)
}

func TestRefreshNews_Execute_PageFailureKeepsArticle(t *testing.T) {
	m := newRefreshNewsMocks(t)

	m.searcher.EXPECT().LatestPoliticalNews(mock.Anything, 5).Return(nil, errors.New("no api key"))
	m.feeds.EXPECT().
		FetchFeedArticles(mock.Anything).
		Return([]domain.Article{{Title: "속보", URL: "https://a.example.com/1"}}, nil)
	m.urlChecker.EXPECT().ListExistingArticleURLs(mock.Anything, mock.Anything).Return(nil, nil)
	m.pages.EXPECT().
		FetchPage(mock.Anything, "https://a.example.com/1").
		Return(datasources.PageContent{}, errors.New("timeout"))
	m.analyzer.EXPECT().ScorePoliticalLeaning(mock.Anything, "속보").Return(50, nil)

	result, err := m.command().Execute(testContext(), RefreshNewsRequest{NumResults: 5})
	require.NoError(t, err)
	require.Len(t, result.Articles, 1)
	assert.Equal(t, "요약 정보 없음", result.Articles[0].Summary)
}

func TestRefreshNews_Execute_Errors(t *testing.T) {
	cases := []struct {
		name  string
		setup func(m refreshNewsMocks)
	}{
		{
			name: "all_sources_fail",
			setup: func(m refreshNewsMocks) {
				m.searcher.EXPECT().LatestPoliticalNews(mock.Anything, 5).Return(nil, errors.New("search down"))
				m.feeds.EXPECT().FetchFeedArticles(mock.Anything).Return(nil, context.DeadlineExceeded)
			},
		},
		{
			name: "url_check_fails",
			setup: func(m refreshNewsMocks) {
				m.searcher.EXPECT().LatestPoliticalNews(mock.Anything, 5).Return(nil, nil)
				m.feeds.EXPECT().FetchFeedArticles(mock.Anything).Return(nil, nil)
				m.urlChecker.EXPECT().ListExistingArticleURLs(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
			},
		},
		{
			name: "insert_fails",
			setup: func(m refreshNewsMocks) {
				m.searcher.EXPECT().
					LatestPoliticalNews(mock.Anything, 5).
					Return([]domain.Article{{Title: "t", URL: "https://a.example.com/1", Summary: "s", ImageURL: "i"}}, nil)
				m.feeds.EXPECT().FetchFeedArticles(mock.Anything).Return(nil, nil)
				m.urlChecker.EXPECT().ListExistingArticleURLs(mock.Anything, mock.Anything).Return(nil, nil)
				m.analyzer.EXPECT().ScorePoliticalLeaning(mock.Anything, "t").Return(50, nil)
				m.inserter.EXPECT().InsertArticles(mock.Anything, mock.Anything).Return(0, errors.New("db down"))
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newRefreshNewsMocks(t)
			tc.setup(m)

			_, err := m.command().Execute(testContext(), RefreshNewsRequest{NumResults: 5, Save: true})
			assert.Error(t, err)
		})
	}
}
