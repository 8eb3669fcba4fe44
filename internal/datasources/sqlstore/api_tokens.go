package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/balancednews/news-feed/internal/domain"
)

var apiTokenColumns = []string{
	"id",
	"user_id",
	"token_hash",
	"prefix",
	"name",
	"created_at",
	"last_used_at",
	"expires_at",
	"revoked_at",
}

func (r *Repository) CreateAPIToken(ctx context.Context, token domain.APIToken) error {
	createdAt := token.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.now()
	}

	var name sql.NullString
	if token.Name != nil {
		name = sql.NullString{String: *token.Name, Valid: true}
	}

	ib := r.flavor.NewInsertBuilder()
	ib.InsertInto("api_tokens")
	ib.Cols(apiTokenColumns...)
	ib.Values(
		token.ID,
		token.UserID,
		token.TokenHash,
		token.Prefix,
		name,
		createdAt.UTC(),
		nullTimeArg(token.LastUsedAt),
		nullTimeArg(token.ExpiresAt),
		nullTimeArg(token.RevokedAt),
	)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting API token: %w", err)
	}

	return nil
}

func (r *Repository) GetAPITokenByHash(ctx context.Context, tokenHash string) (domain.APIToken, error) {
	sb := r.flavor.NewSelectBuilder()
	sb.Select(apiTokenColumns...)
	sb.From("api_tokens")
	sb.Where(sb.Equal("token_hash", tokenHash))

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return domain.APIToken{}, fmt.Errorf("running API token query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return domain.APIToken{}, fmt.Errorf("iterating rows: %w", err)
		}
		return domain.APIToken{}, domain.ErrAPITokenNotFound
	}

	return scanAPIToken(rows)
}

func (r *Repository) UpdateAPITokenLastUsed(ctx context.Context, tokenID string) error {
	ub := r.flavor.NewUpdateBuilder()
	ub.Update("api_tokens")
	ub.Set(ub.Assign("last_used_at", r.now()))
	ub.Where(ub.Equal("id", tokenID))

	query, args := ub.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("updating API token last used: %w", err)
	}

	return nil
}

func (r *Repository) ListUserAPITokens(ctx context.Context, uid string) ([]domain.APIToken, error) {
	sb := r.flavor.NewSelectBuilder()
	sb.Select(apiTokenColumns...)
	sb.From("api_tokens")
	sb.Where(sb.Equal("user_id", uid), sb.IsNull("revoked_at"))
	sb.OrderBy("created_at DESC", "id")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running API token list query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tokens := []domain.APIToken{}
	for rows.Next() {
		token, err := scanAPIToken(rows)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return tokens, nil
}

func (r *Repository) CountUserActiveAPITokens(ctx context.Context, uid string) (int, error) {
	sb := r.flavor.NewSelectBuilder()
	sb.Select("COUNT(*)")
	sb.From("api_tokens")
	sb.Where(
		sb.Equal("user_id", uid),
		sb.IsNull("revoked_at"),
		sb.Or(sb.IsNull("expires_at"), sb.GreaterThan("expires_at", r.now())),
	)

	query, args := sb.Build()

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting active API tokens: %w", err)
	}

	return count, nil
}

func (r *Repository) RevokeAPIToken(ctx context.Context, tokenID, uid string) error {
	ub := r.flavor.NewUpdateBuilder()
	ub.Update("api_tokens")
	ub.Set(ub.Assign("revoked_at", r.now()))
	ub.Where(
		ub.Equal("id", tokenID),
		ub.Equal("user_id", uid),
		ub.IsNull("revoked_at"),
	)

	query, args := ub.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("revoking API token: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading revoked row count: %w", err)
	}
	if n == 0 {
		return domain.ErrAPITokenNotFound
	}

	return nil
}

func scanAPIToken(rows *sql.Rows) (domain.APIToken, error) {
	var (
		token      domain.APIToken
		name       sql.NullString
		createdAt  nullTime
		lastUsedAt nullTime
		expiresAt  nullTime
		revokedAt  nullTime
	)

	if err := rows.Scan(
		&token.ID,
		&token.UserID,
		&token.TokenHash,
		&token.Prefix,
		&name,
		&createdAt,
		&lastUsedAt,
		&expiresAt,
		&revokedAt,
	); err != nil {
		return domain.APIToken{}, fmt.Errorf("scanning API token: %w", err)
	}

	if name.Valid {
		token.Name = &name.String
	}
	token.CreatedAt = createdAt.Time
	token.LastUsedAt = lastUsedAt.ptr()
	token.ExpiresAt = expiresAt.ptr()
	token.RevokedAt = revokedAt.ptr()

	return token, nil
}
