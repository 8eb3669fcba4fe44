package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/balancednews/news-feed/internal/datasources"
	"github.com/balancednews/news-feed/internal/domain"
	"github.com/huandu/go-sqlbuilder"
)

var _ datasources.DatasetRepository = (*Repository)(nil)

type Repository struct {
	db     *sql.DB
	flavor sqlbuilder.Flavor
	now    func() time.Time
}

func New(db *sql.DB, driver Driver) *Repository {
	return &Repository{
		db:     db,
		flavor: driver.flavor(),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *Repository) Close() error {
	return r.db.Close()
}

var articleColumns = []string{
	"hash_id",
	"title",
	"url",
	"summary",
	"content",
	"source",
	"image_url",
	"political_leaning",
	"political_score",
	"neutrality_score",
	"published_at",
	"created_at",
}

func qualified(table string, cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = table + "." + c
	}
	return out
}

func (r *Repository) ListLatestArticles(ctx context.Context, page, pageSize int) ([]domain.Article, error) {
	sb := r.flavor.NewSelectBuilder()
	sb.Select(articleColumns...)
	sb.From("articles")
	sb.OrderBy("created_at DESC", "hash_id")
	sb.Offset(offset(page, pageSize))
	sb.Limit(pageSize)

	return r.queryArticles(ctx, sb)
}

// SearchArticles matches the query against titles and summaries. An empty query lists the
// latest articles.
func (r *Repository) SearchArticles(ctx context.Context, query string, page, pageSize int) ([]domain.Article, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return r.ListLatestArticles(ctx, page, pageSize)
	}

	pattern := "%" + query + "%"

	sb := r.flavor.NewSelectBuilder()
	sb.Select(articleColumns...)
	sb.From("articles")
	sb.Where(sb.Or(
		sb.Like("title", pattern),
		sb.Like("summary", pattern),
	))
	sb.OrderBy("created_at DESC", "hash_id")
	sb.Offset(offset(page, pageSize))
	sb.Limit(pageSize)

	return r.queryArticles(ctx, sb)
}

// FetchArticlesByID returns the stored articles in the order of ids, skipping unknown ones.
func (r *Repository) FetchArticlesByID(ctx context.Context, ids []string) ([]domain.Article, error) {
	if len(ids) == 0 {
		return []domain.Article{}, nil
	}

	sb := r.flavor.NewSelectBuilder()
	sb.Select(articleColumns...)
	sb.From("articles")
	sb.Where(sb.In("hash_id", stringArgs(ids)...))

	dbArticles, err := r.queryArticles(ctx, sb)
	if err != nil {
		return nil, fmt.Errorf("fetching articles by ID: %w", err)
	}

	articleMap := make(map[string]domain.Article, len(dbArticles))
	for _, a := range dbArticles {
		articleMap[a.ID] = a
	}

	articles := make([]domain.Article, 0, len(ids))
	for _, id := range ids {
		if article, exists := articleMap[id]; exists {
			articles = append(articles, article)
		}
	}

	return articles, nil
}

// InsertArticles stores new articles, ignoring any whose URL is already stored, and returns
// how many were inserted.
func (r *Repository) InsertArticles(ctx context.Context, articles []domain.Article) (int, error) {
	if len(articles) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	inserted := 0
	for _, a := range articles {
		id := a.ID
		if id == "" {
			id = domain.ArticleID(a.URL)
		}
		createdAt := a.CreatedAt
		if createdAt.IsZero() {
			createdAt = r.now()
		}
		leaning := a.PoliticalLeaning
		if leaning == "" {
			leaning = domain.AffiliationNeutral
		}

		ib := r.flavor.NewInsertBuilder()
		ib.InsertIgnoreInto("articles")
		ib.Cols(articleColumns...)
		ib.Values(
			id,
			a.Title,
			a.URL,
			a.Summary,
			a.Content,
			a.Source,
			a.ImageURL,
			string(leaning),
			nullInt(a.PoliticalScore),
			nullFloat(a.NeutralityScore),
			nullTimeArg(a.PublishedAt),
			createdAt.UTC(),
		)

		query, args := ib.Build()
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, fmt.Errorf("inserting article [%s]: %w", a.URL, err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("reading inserted row count: %w", err)
		}
		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}

	return inserted, nil
}

func (r *Repository) ListExistingArticleURLs(ctx context.Context, urls []string) ([]string, error) {
	if len(urls) == 0 {
		return []string{}, nil
	}

	sb := r.flavor.NewSelectBuilder()
	sb.Select("url")
	sb.From("articles")
	sb.Where(sb.In("url", stringArgs(urls)...))

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running existing URL query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	existing := []string{}
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, fmt.Errorf("scanning URL: %w", err)
		}
		existing = append(existing, url)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return existing, nil
}

func (r *Repository) ListAllArticles(ctx context.Context) ([]domain.Article, error) {
	sb := r.flavor.NewSelectBuilder()
	sb.Select(articleColumns...)
	sb.From("articles")
	sb.OrderBy("created_at DESC", "hash_id")

	return r.queryArticles(ctx, sb)
}

func (r *Repository) UpdateArticleScores(ctx context.Context, scores domain.ArticleScores) error {
	ub := r.flavor.NewUpdateBuilder()
	ub.Update("articles")
	ub.Set(
		ub.Assign("political_leaning", string(scores.PoliticalLeaning)),
		ub.Assign("political_score", scores.PoliticalScore),
		ub.Assign("neutrality_score", scores.NeutralityScore),
	)
	ub.Where(ub.Equal("hash_id", scores.ArticleID))

	query, args := ub.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("updating scores of article [%s]: %w", scores.ArticleID, err)
	}

	return nil
}

func (r *Repository) queryArticles(ctx context.Context, sb *sqlbuilder.SelectBuilder) ([]domain.Article, error) {
	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running articles query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := []domain.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning articles: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return articles, nil
}

func scanArticle(rows *sql.Rows) (domain.Article, error) {
	var (
		a           domain.Article
		leaning     string
		score       sql.NullInt64
		neutrality  sql.NullFloat64
		publishedAt nullTime
		createdAt   nullTime
	)

	if err := rows.Scan(
		&a.ID,
		&a.Title,
		&a.URL,
		&a.Summary,
		&a.Content,
		&a.Source,
		&a.ImageURL,
		&leaning,
		&score,
		&neutrality,
		&publishedAt,
		&createdAt,
	); err != nil {
		return domain.Article{}, err
	}

	a.ID = strings.TrimSpace(a.ID)
	a.PoliticalLeaning = domain.Affiliation(leaning)
	if score.Valid {
		v := int(score.Int64)
		a.PoliticalScore = &v
	}
	if neutrality.Valid {
		v := neutrality.Float64
		a.NeutralityScore = &v
	}
	a.PublishedAt = publishedAt.ptr()
	a.CreatedAt = createdAt.Time

	return a, nil
}

func offset(page, pageSize int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize
}

func stringArgs(values []string) []interface{} {
	args := make([]interface{}, 0, len(values))
	for _, v := range values {
		args = append(args, v)
	}
	return args
}
