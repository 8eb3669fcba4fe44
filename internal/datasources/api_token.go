package datasources

import (
	"context"

	"github.com/balancednews/news-feed/internal/domain"
)

// APITokenRepository stores the hashed API tokens used by scripts and the MCP server.
type APITokenRepository interface {
	APITokenCreator
	APITokenByHashGetter
	APITokenLastUsedUpdater
	UserAPITokenLister
	UserAPITokenCounter
	APITokenRevoker
}

type APITokenCreator interface {
	CreateAPIToken(ctx context.Context, token domain.APIToken) error
}

type APITokenByHashGetter interface {
	GetAPITokenByHash(ctx context.Context, tokenHash string) (domain.APIToken, error)
}

type APITokenLastUsedUpdater interface {
	UpdateAPITokenLastUsed(ctx context.Context, tokenID string) error
}

type UserAPITokenLister interface {
	ListUserAPITokens(ctx context.Context, uid string) ([]domain.APIToken, error)
}

// UserAPITokenCounter counts tokens that are neither revoked nor expired.
type UserAPITokenCounter interface {
	CountUserActiveAPITokens(ctx context.Context, uid string) (int, error)
}

// APITokenRevoker returns domain.ErrAPITokenNotFound when uid owns no such token.
type APITokenRevoker interface {
	RevokeAPIToken(ctx context.Context, tokenID, uid string) error
}
