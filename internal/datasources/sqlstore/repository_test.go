package sqlstore

import (
	"context"
	"testing"
	"time"

	"github.com/balancednews/news-feed/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEpoch = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func timePtr(t time.Time) *time.Time { return &t }

// setupTestRepository returns a repository over a migrated in-memory SQLite DB whose clock
// advances one second per call.
func setupTestRepository(t *testing.T) *Repository {
	t.Helper()

	ctx := context.Background()
	db, err := Connect(ctx, DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(ctx, db, DriverSQLite))

	repo := New(db, DriverSQLite)
	tick := testEpoch
	repo.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}

	return repo
}

func testArticles() []domain.Article {
	return []domain.Article{
		{
			ID:               domain.ArticleID("https://news.example.com/1"),
			Title:            "국회 예산안 처리 합의",
			URL:              "https://news.example.com/1",
			Summary:          "여야가 내년도 예산안 처리에 합의했다.",
			Content:          "본문 1",
			Source:           "연합뉴스",
			PoliticalLeaning: domain.AffiliationNeutral,
			PoliticalScore:   intPtr(50),
			NeutralityScore:  floatPtr(0.8),
			PublishedAt:      timePtr(time.Date(2025, 2, 28, 10, 0, 0, 0, time.UTC)),
			CreatedAt:        testEpoch.Add(time.Minute),
		},
		{
			ID:               domain.ArticleID("https://news.example.com/2"),
			Title:            "김건희 특검 공방",
			URL:              "https://news.example.com/2",
			Summary:          "특검법을 두고 공방이 이어졌다.",
			Source:           "한겨레",
			ImageURL:         "https://news.example.com/2.jpg",
			PoliticalLeaning: domain.AffiliationProgressive,
			PoliticalScore:   intPtr(73),
			NeutralityScore:  floatPtr(0.6),
			CreatedAt:        testEpoch.Add(2 * time.Minute),
		},
		{
			ID:               domain.ArticleID("https://news.example.com/3"),
			Title:            "이재명 사법리스크 논란",
			URL:              "https://news.example.com/3",
			Summary:          "사법리스크가 다시 제기됐다.",
			Source:           "조선일보",
			PoliticalLeaning: domain.AffiliationConservative,
			PoliticalScore:   intPtr(23),
			CreatedAt:        testEpoch.Add(3 * time.Minute),
		},
	}
}

func seedArticles(t *testing.T, repo *Repository) []domain.Article {
	t.Helper()

	articles := testArticles()
	n, err := repo.InsertArticles(context.Background(), articles)
	require.NoError(t, err)
	require.Equal(t, len(articles), n)

	return articles
}

func articleIDs(articles []domain.Article) []string {
	ids := make([]string, len(articles))
	for i, a := range articles {
		ids[i] = a.ID
	}
	return ids
}

func TestRepository_InsertArticles(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	articles := seedArticles(t, repo)

	n, err := repo.InsertArticles(ctx, articles[:1])
	require.NoError(t, err)
	assert.Equal(t, 0, n, "re-inserting a stored URL is ignored")

	n, err = repo.InsertArticles(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	fetched, err := repo.FetchArticlesByID(ctx, []string{articles[0].ID})
	require.NoError(t, err)
	require.Len(t, fetched, 1)
	if diff := cmp.Diff(articles[0], fetched[0]); diff != "" {
		t.Errorf("stored article mismatch (-want +got):\n%s", diff)
	}
}

func TestRepository_InsertArticles_DerivesMissingFields(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	n, err := repo.InsertArticles(ctx, []domain.Article{{
		Title: "제목",
		URL:   "https://news.example.com/derived",
	}})
	require.NoError(t, err)
	require.Equal(t, 1, n)

	id := domain.ArticleID("https://news.example.com/derived")
	fetched, err := repo.FetchArticlesByID(ctx, []string{id})
	require.NoError(t, err)
	require.Len(t, fetched, 1)

	assert.Equal(t, id, fetched[0].ID)
	assert.Equal(t, domain.AffiliationNeutral, fetched[0].PoliticalLeaning)
	assert.Nil(t, fetched[0].PoliticalScore)
	assert.Nil(t, fetched[0].PublishedAt)
	assert.Equal(t, testEpoch.Add(time.Second), fetched[0].CreatedAt)
}

func TestRepository_ListLatestArticles(t *testing.T) {
	repo := setupTestRepository(t)
	articles := seedArticles(t, repo)

	cases := []struct {
		name     string
		page     int
		pageSize int
		expected []string
	}{
		{
			name:     "first_page",
			page:     1,
			pageSize: 2,
			expected: []string{articles[2].ID, articles[1].ID},
		},
		{
			name:     "second_page",
			page:     2,
			pageSize: 2,
			expected: []string{articles[0].ID},
		},
		{
			name:     "past_the_end",
			page:     3,
			pageSize: 2,
			expected: []string{},
		},
		{
			name:     "page_below_one_is_first",
			page:     0,
			pageSize: 1,
			expected: []string{articles[2].ID},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			results, err := repo.ListLatestArticles(context.Background(), c.page, c.pageSize)
			require.NoError(t, err)
			assert.Equal(t, c.expected, articleIDs(results))
		})
	}
}

func TestRepository_SearchArticles(t *testing.T) {
	repo := setupTestRepository(t)
	articles := seedArticles(t, repo)

	cases := []struct {
		name     string
		query    string
		expected []string
	}{
		{
			name:     "matches_title",
			query:    "특검",
			expected: []string{articles[1].ID},
		},
		{
			name:     "matches_summary",
			query:    "예산안",
			expected: []string{articles[0].ID},
		},
		{
			name:     "no_match",
			query:    "탄소중립",
			expected: []string{},
		},
		{
			name:     "blank_query_lists_latest",
			query:    "  ",
			expected: []string{articles[2].ID, articles[1].ID, articles[0].ID},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			results, err := repo.SearchArticles(context.Background(), c.query, 1, 10)
			require.NoError(t, err)
			assert.Equal(t, c.expected, articleIDs(results))
		})
	}
}

func TestRepository_FetchArticlesByID(t *testing.T) {
	repo := setupTestRepository(t)
	articles := seedArticles(t, repo)

	cases := []struct {
		name     string
		ids      []string
		expected []string
	}{
		{
			name:     "keeps_requested_order",
			ids:      []string{articles[0].ID, articles[2].ID},
			expected: []string{articles[0].ID, articles[2].ID},
		},
		{
			name:     "skips_unknown",
			ids:      []string{"does-not-exist", articles[1].ID},
			expected: []string{articles[1].ID},
		},
		{
			name:     "no_ids",
			ids:      nil,
			expected: []string{},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			results, err := repo.FetchArticlesByID(context.Background(), c.ids)
			require.NoError(t, err)
			assert.Equal(t, c.expected, articleIDs(results))
		})
	}
}

func TestRepository_ListExistingArticleURLs(t *testing.T) {
	repo := setupTestRepository(t)
	seedArticles(t, repo)

	existing, err := repo.ListExistingArticleURLs(context.Background(), []string{
		"https://news.example.com/2",
		"https://news.example.com/new",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"https://news.example.com/2"}, existing)
}

func TestRepository_UpdateArticleScores(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()
	articles := seedArticles(t, repo)

	err := repo.UpdateArticleScores(ctx, domain.ArticleScores{
		ArticleID:        articles[2].ID,
		PoliticalLeaning: domain.AffiliationNeutral,
		PoliticalScore:   48,
		NeutralityScore:  0.75,
	})
	require.NoError(t, err)

	all, err := repo.ListAllArticles(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	assert.Equal(t, articles[2].ID, all[0].ID)
	assert.Equal(t, domain.AffiliationNeutral, all[0].PoliticalLeaning)
	assert.Equal(t, intPtr(48), all[0].PoliticalScore)
	assert.Equal(t, floatPtr(0.75), all[0].NeutralityScore)
}

func TestRepository_Users(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	_, err := repo.GetUser(ctx, "uid-1")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	user := domain.User{
		UID:         "uid-1",
		Email:       "reader@example.com",
		DisplayName: "Reader",
		Nickname:    "reader",
		CreatedAt:   testEpoch,
	}
	require.NoError(t, repo.CreateUser(ctx, user))
	assert.ErrorIs(t, repo.CreateUser(ctx, user), domain.ErrUserExists)

	got, err := repo.GetUser(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, user, got)

	nickname := "new-nick"
	updated, err := repo.UpdateUserProfile(ctx, "uid-1", domain.UserProfileUpdate{
		Nickname:       &nickname,
		PoliticalScore: intPtr(140),
	})
	require.NoError(t, err)
	assert.Equal(t, "new-nick", updated.Nickname)
	assert.Equal(t, "Reader", updated.DisplayName)
	assert.Equal(t, intPtr(100), updated.PoliticalScore)
	require.NotNil(t, updated.LastLoginAt)

	require.NoError(t, repo.SetUserActivityScore(ctx, "uid-1", 62))
	got, err = repo.GetUser(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, intPtr(62), got.ActivityScore)
}

func TestRepository_SetUserPoliticalScore(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SetUserPoliticalScore(ctx, "abcdefghijkl", 30))

	got, err := repo.GetUser(ctx, "abcdefghijkl")
	require.NoError(t, err)
	assert.Equal(t, "user_abcdefgh@example.com", got.Email)
	assert.Equal(t, "user_abcdefgh", got.Nickname)
	assert.Equal(t, intPtr(30), got.PoliticalScore)

	require.NoError(t, repo.SetUserPoliticalScore(ctx, "abcdefghijkl", -5))
	got, err = repo.GetUser(ctx, "abcdefghijkl")
	require.NoError(t, err)
	assert.Equal(t, intPtr(0), got.PoliticalScore)
}

func TestRepository_Scraps(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()
	articles := seedArticles(t, repo)

	require.NoError(t, repo.CreateUser(ctx, domain.User{UID: "uid-1"}))

	added, err := repo.AddScrap(ctx, "uid-1", articles[0].ID)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = repo.AddScrap(ctx, "uid-1", articles[0].ID)
	require.NoError(t, err)
	assert.False(t, added, "scrapping twice is a no-op")

	_, err = repo.AddScrap(ctx, "uid-1", articles[1].ID)
	require.NoError(t, err)

	scrapped, err := repo.ListScrappedArticles(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, []string{articles[1].ID, articles[0].ID}, articleIDs(scrapped))

	scores, err := repo.ListScrapScores(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, []*int{intPtr(73), intPtr(50)}, scores)

	removed, err := repo.RemoveScrap(ctx, "uid-1", articles[1].ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.RemoveScrap(ctx, "uid-1", articles[1].ID)
	require.NoError(t, err)
	assert.False(t, removed)

	scrapped, err = repo.ListScrappedArticles(ctx, "uid-2")
	require.NoError(t, err)
	assert.Empty(t, scrapped)
}

func TestRepository_DeleteUser(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()
	articles := seedArticles(t, repo)

	require.NoError(t, repo.CreateUser(ctx, domain.User{UID: "uid-1"}))
	for _, a := range articles {
		_, err := repo.AddScrap(ctx, "uid-1", a.ID)
		require.NoError(t, err)
	}
	require.NoError(t, repo.CreateAPIToken(ctx, domain.APIToken{
		ID:        "token-1",
		UserID:    "uid-1",
		TokenHash: "hash-1",
		Prefix:    "news_api|abcd",
	}))

	deletion, err := repo.DeleteUser(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, domain.UserDeletion{DeletedScraps: 3, DeletedUser: true}, deletion)

	_, err = repo.GetUser(ctx, "uid-1")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = repo.GetAPITokenByHash(ctx, "hash-1")
	assert.ErrorIs(t, err, domain.ErrAPITokenNotFound)

	_, err = repo.DeleteUser(ctx, "uid-1")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	all, err := repo.ListAllArticles(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3, "articles survive their readers")
}

func TestRepository_APITokens(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	name := "script"
	require.NoError(t, repo.CreateAPIToken(ctx, domain.APIToken{
		ID:        "token-1",
		UserID:    "uid-1",
		TokenHash: "hash-1",
		Prefix:    "news_api|aaaa",
		Name:      &name,
		CreatedAt: testEpoch,
	}))
	require.NoError(t, repo.CreateAPIToken(ctx, domain.APIToken{
		ID:        "token-2",
		UserID:    "uid-1",
		TokenHash: "hash-2",
		Prefix:    "news_api|bbbb",
		CreatedAt: testEpoch.Add(time.Minute),
		ExpiresAt: timePtr(testEpoch.Add(-time.Hour)),
	}))
	require.NoError(t, repo.CreateAPIToken(ctx, domain.APIToken{
		ID:        "token-3",
		UserID:    "uid-2",
		TokenHash: "hash-3",
		Prefix:    "news_api|cccc",
		CreatedAt: testEpoch,
	}))

	token, err := repo.GetAPITokenByHash(ctx, "hash-1")
	require.NoError(t, err)
	assert.Equal(t, "token-1", token.ID)
	assert.Equal(t, "uid-1", token.UserID)
	assert.Equal(t, &name, token.Name)
	assert.Nil(t, token.LastUsedAt)

	require.NoError(t, repo.UpdateAPITokenLastUsed(ctx, "token-1"))
	token, err = repo.GetAPITokenByHash(ctx, "hash-1")
	require.NoError(t, err)
	require.NotNil(t, token.LastUsedAt)

	tokens, err := repo.ListUserAPITokens(ctx, "uid-1")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, "token-2", tokens[0].ID)
	assert.Equal(t, "token-1", tokens[1].ID)

	count, err := repo.CountUserActiveAPITokens(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, 1, count, "expired tokens are not counted")

	assert.ErrorIs(t, repo.RevokeAPIToken(ctx, "token-1", "uid-2"), domain.ErrAPITokenNotFound)
	require.NoError(t, repo.RevokeAPIToken(ctx, "token-1", "uid-1"))
	assert.ErrorIs(t, repo.RevokeAPIToken(ctx, "token-1", "uid-1"), domain.ErrAPITokenNotFound)

	count, err = repo.CountUserActiveAPITokens(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	tokens, err = repo.ListUserAPITokens(ctx, "uid-1")
	require.NoError(t, err)
	assert.Len(t, tokens, 1)
}
