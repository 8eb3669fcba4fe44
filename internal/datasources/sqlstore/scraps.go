package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/balancednews/news-feed/internal/domain"
	"github.com/huandu/go-sqlbuilder"
)

func (r *Repository) AddScrap(ctx context.Context, uid, articleID string) (bool, error) {
	ib := r.flavor.NewInsertBuilder()
	ib.InsertIgnoreInto("user_scraps")
	ib.Cols("user_uid", "article_hash_id", "scrapped_at")
	ib.Values(uid, articleID, r.now())

	query, args := ib.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("inserting scrap: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading inserted row count: %w", err)
	}

	return n > 0, nil
}

func (r *Repository) RemoveScrap(ctx context.Context, uid, articleID string) (bool, error) {
	dlb := r.flavor.NewDeleteBuilder()
	dlb.DeleteFrom("user_scraps")
	dlb.Where(
		dlb.Equal("user_uid", uid),
		dlb.Equal("article_hash_id", articleID),
	)

	query, args := dlb.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("deleting scrap: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading deleted row count: %w", err)
	}

	return n > 0, nil
}

func (r *Repository) scrapsQuery(uid string, cols ...string) *sqlbuilder.SelectBuilder {
	sb := r.flavor.NewSelectBuilder()
	sb.Select(cols...)
	sb.From("user_scraps")
	sb.Join("articles", "articles.hash_id = user_scraps.article_hash_id")
	sb.Where(sb.Equal("user_scraps.user_uid", uid))
	sb.OrderBy("user_scraps.scrapped_at DESC", "articles.hash_id")
	return sb
}

func (r *Repository) ListScrappedArticles(ctx context.Context, uid string) ([]domain.Article, error) {
	articles, err := r.queryArticles(ctx, r.scrapsQuery(uid, qualified("articles", articleColumns)...))
	if err != nil {
		return nil, fmt.Errorf("listing scrapped articles: %w", err)
	}
	return articles, nil
}

func (r *Repository) ListScrapScores(ctx context.Context, uid string) ([]*int, error) {
	query, args := r.scrapsQuery(uid, "articles.political_score").Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running scrap score query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	scores := []*int{}
	for rows.Next() {
		var score sql.NullInt64
		if err := rows.Scan(&score); err != nil {
			return nil, fmt.Errorf("scanning scrap score: %w", err)
		}
		if score.Valid {
			v := int(score.Int64)
			scores = append(scores, &v)
		} else {
			scores = append(scores, nil)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return scores, nil
}
