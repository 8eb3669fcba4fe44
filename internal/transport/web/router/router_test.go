package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/balancednews/news-feed/internal/analysis"
	"github.com/balancednews/news-feed/internal/command"
	"github.com/balancednews/news-feed/internal/datasources"
	"github.com/balancednews/news-feed/internal/datasources/sqlstore"
	"github.com/balancednews/news-feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDevSecret = []byte("router-test-secret")

func setupTestRouter(t *testing.T) (http.Handler, *sqlstore.Repository) {
	t.Helper()

	ctx := context.Background()
	db, err := sqlstore.Connect(ctx, sqlstore.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, sqlstore.Migrate(ctx, db, sqlstore.DriverSQLite))

	repo := sqlstore.New(db, sqlstore.DriverSQLite)
	cache := datasources.NullArticleListCache{}
	thresholds := domain.CurrentThresholds

	devValidator, err := NewDevTokenValidator(testDevSecret)
	require.NoError(t, err)

	recommend := command.NewRecommendBalancedNews(repo, repo, thresholds, command.RecommendBalancedNewsConfig{
		Balanced:      domain.BalancedConfig{SimilarDistance: 15, MaxArticles: 20, SimilarPercent: 60},
		CandidatePool: 100,
	})
	recommend.NewRand = nil

	handler, err := MakeRouter(repo, Commands{
		ListLatestNews: command.NewListLatestNews(repo, cache, 0),
		RefreshNews: command.NewRefreshNews(
			datasources.NullNewsSearcher{}, datasources.NullNewsFeedSource{}, datasources.NullPageContentFetcher{},
			repo, repo, analysis.NewKeywordAnalyzer(), cache, thresholds,
			command.RefreshNewsConfig{EnrichConcurrency: 1},
		),
		SetPoliticalScore:     command.NewSetPoliticalScore(repo, thresholds),
		ScrapArticle:          command.NewScrapArticle(repo, repo, repo, repo, repo, repo),
		ComputePoliticalIndex: command.NewComputePoliticalIndex(repo, repo, thresholds),
		RecommendBalancedNews: recommend,
		CreateAPIToken:        command.NewCreateAPIToken(repo, repo),
	}, Config{
		Thresholds:        thresholds,
		LatestCacheMaxAge: time.Minute,
		RefreshNumResults: 30,
	}, NewAuthMiddleware([]AuthValidator{
		NewAPITokenValidator(ctx, repo, repo),
		devValidator,
	}))
	require.NoError(t, err)

	return handler, repo
}

func devAuthHeader(t *testing.T, uid string) string {
	t.Helper()
	token, err := SignDevToken(testDevSecret, uid, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func serve(handler http.Handler, method, target, authHeader, body string) *httptest.ResponseRecorder {
	req := testRequest(method, target, authHeader)
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body)).WithContext(req.Context())
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestMakeRouter_PublicEndpoints(t *testing.T) {
	handler, repo := setupTestRouter(t)

	_, err := repo.InsertArticles(context.Background(), []domain.Article{
		{Title: "국회 예산안 처리", URL: "https://news.example.com/1", Summary: "예산안 통과"},
	})
	require.NoError(t, err)

	t.Run("root", func(t *testing.T) {
		rec := serve(handler, http.MethodGet, "/", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"News API Server"}`, rec.Body.String())
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		rec := serve(handler, http.MethodOptions, "/users/firebase/uid-1/political-score", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "GET, POST, PUT, PATCH, DELETE, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "Content-Type, Authorization", rec.Header().Get("Access-Control-Allow-Headers"))
		assert.Equal(t, "86400", rec.Header().Get("Access-Control-Max-Age"))
	})

	t.Run("not_found", func(t *testing.T) {
		rec := serve(handler, http.MethodGet, "/nowhere", "", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
	})

	t.Run("latest_news", func(t *testing.T) {
		rec := serve(handler, http.MethodGet, "/news/political", "", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var articles []domain.Article
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&articles))
		require.Len(t, articles, 1)
		assert.Equal(t, domain.ArticleID("https://news.example.com/1"), articles[0].ID)
	})

	t.Run("article_by_id", func(t *testing.T) {
		rec := serve(handler, http.MethodGet, "/news/"+domain.ArticleID("https://news.example.com/1"), "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("search", func(t *testing.T) {
		rec := serve(handler, http.MethodGet, "/news/search?q=%EC%98%88%EC%82%B0", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "국회 예산안 처리")
	})

	t.Run("rss", func(t *testing.T) {
		rec := serve(handler, http.MethodGet, "/news/rss", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "국회 예산안 처리")
	})

	t.Run("refresh_requires_auth", func(t *testing.T) {
		rec := serve(handler, http.MethodPost, "/news/serper/refresh", "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestMakeRouter_UserFlow(t *testing.T) {
	handler, repo := setupTestRouter(t)
	auth := devAuthHeader(t, "uid-1")

	articleID := domain.ArticleID("https://news.example.com/1")
	_, err := repo.InsertArticles(context.Background(), []domain.Article{
		{Title: "국회 예산안 처리", URL: "https://news.example.com/1", PoliticalScore: intPtr(70)},
	})
	require.NoError(t, err)

	rec := serve(handler, http.MethodGet, "/users/firebase/me", auth, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(handler, http.MethodPost, "/users/firebase/me", auth, `{"email":"reader@example.com","nickname":"독자"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = serve(handler, http.MethodPost, "/users/firebase/uid-1", auth, `{"email":"reader@example.com"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = serve(handler, http.MethodPut, "/users/firebase/me/political-score", auth, `{"political_score":40}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"정치성향 점수가 성공적으로 업데이트되었습니다.","political_score":40,
		"political_affiliation":"conservative"}`, rec.Body.String())

	rec = serve(handler, http.MethodPost, "/users/firebase/me/scraps", auth,
		`{"article_id":"`+articleID+`","action":"add"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"뉴스가 스크랩되었습니다.","changed":true,"activity_score":70}`, rec.Body.String())

	rec = serve(handler, http.MethodGet, "/users/firebase/me/political-index", auth, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var index domain.PoliticalIndex
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&index))
	assert.Equal(t, 40, index.ProfileScore)
	assert.Equal(t, 70, index.ActivityScore)
	assert.Equal(t, domain.AffiliationProgressive, index.ActivityAffiliation)

	rec = serve(handler, http.MethodGet, "/users/firebase/me/balanced-news", auth, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"profile_score":40`)

	rec = serve(handler, http.MethodGet, "/users/firebase/uid-2/scraps", auth, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = serve(handler, http.MethodGet, "/users/firebase/uid-1/scraps", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(handler, http.MethodDelete, "/users/firebase/me", auth, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"사용자 계정이 성공적으로 삭제되었습니다.","deleted_scraps":1,"deleted_user":true}`,
		rec.Body.String())
}

func TestMakeRouter_PoliticalIndexWithoutProfile(t *testing.T) {
	handler, repo := setupTestRouter(t)
	auth := devAuthHeader(t, "firebase-uid")

	articleID := domain.ArticleID("https://news.example.com/2")
	_, err := repo.InsertArticles(context.Background(), []domain.Article{
		{Title: "여야 합의안 발표", URL: "https://news.example.com/2", PoliticalScore: intPtr(80)},
	})
	require.NoError(t, err)

	rec := serve(handler, http.MethodPost, "/users/firebase/me/scraps", auth,
		`{"article_id":"`+articleID+`","action":"add"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(handler, http.MethodGet, "/users/firebase/me/political-index", auth, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var index domain.PoliticalIndex
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&index))
	assert.Equal(t, domain.PoliticalIndex{
		ProfileScore:        50,
		ProfileAffiliation:  domain.AffiliationNeutral,
		ActivityScore:       80,
		ActivityAffiliation: domain.AffiliationProgressive,
		ActivityFromScraps:  true,
		ScrapCount:          1,
		ScoredScrapCount:    1,
	}, index)
}

func TestMakeRouter_APITokens(t *testing.T) {
	handler, _ := setupTestRouter(t)
	auth := devAuthHeader(t, "uid-1")

	rec := serve(handler, http.MethodPost, "/v1/tokens", auth, `{"name":"scripts"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID    string `json:"id"`
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	require.True(t, domain.IsAPIToken(created.Token))

	tokenAuth := "Bearer " + created.Token

	rec = serve(handler, http.MethodGet, "/v1/tokens", tokenAuth, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), created.ID)

	rec = serve(handler, http.MethodDelete, "/v1/tokens/"+created.ID, auth, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(handler, http.MethodGet, "/v1/tokens", tokenAuth, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func intPtr(v int) *int { return &v }
