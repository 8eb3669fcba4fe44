package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/balancednews/news-feed/internal/datasources"
	"github.com/balancednews/news-feed/internal/domain"
	"github.com/google/uuid"
)

const (
	// MaxAPITokensPerUser caps how many unrevoked, unexpired tokens a reader may hold.
	MaxAPITokensPerUser = 10

	// MaxAPITokenLifetime bounds the expiry a reader can ask for.
	MaxAPITokenLifetime = 365 * 24 * time.Hour
)

var (
	ErrTokenLimitExceeded = errors.New("user has reached maximum number of active tokens")
	ErrInvalidTokenExpiry = errors.New("token expiry must be positive and at most one year")
)

// CreateAPITokenRequest is the request for the CreateAPIToken command. A zero ExpiresIn
// creates a token that never expires.
type CreateAPITokenRequest struct {
	UserID    string
	Name      *string
	ExpiresIn time.Duration
}

// CreateAPITokenResponse carries the stored token and the full secret, which is only ever
// shown once.
type CreateAPITokenResponse struct {
	Token     domain.APIToken
	FullToken string
}

// CreateAPIToken issues API tokens that the MCP server and readers' scripts use in place of a
// Firebase session.
type CreateAPIToken struct {
	TokenCounter datasources.UserAPITokenCounter
	TokenCreator datasources.APITokenCreator
	Now          func() time.Time
}

// NewCreateAPIToken creates a properly initialized CreateAPIToken command.
func NewCreateAPIToken(
	tokenCounter datasources.UserAPITokenCounter,
	tokenCreator datasources.APITokenCreator,
) *CreateAPIToken {
	return &CreateAPIToken{
		TokenCounter: tokenCounter,
		TokenCreator: tokenCreator,
		Now:          time.Now,
	}
}

func (c *CreateAPIToken) Execute(ctx context.Context, req CreateAPITokenRequest) (CreateAPITokenResponse, error) {
	if req.ExpiresIn < 0 || req.ExpiresIn > MaxAPITokenLifetime {
		return CreateAPITokenResponse{}, fmt.Errorf("%w [%s]", ErrInvalidTokenExpiry, req.ExpiresIn)
	}

	count, err := c.TokenCounter.CountUserActiveAPITokens(ctx, req.UserID)
	if err != nil {
		return CreateAPITokenResponse{}, fmt.Errorf("counting user tokens: %w", err)
	}
	if count >= MaxAPITokensPerUser {
		return CreateAPITokenResponse{}, ErrTokenLimitExceeded
	}

	fullToken, hint, err := domain.GenerateAPIToken()
	if err != nil {
		return CreateAPITokenResponse{}, err
	}

	token := domain.APIToken{
		ID:        uuid.New().String(),
		UserID:    req.UserID,
		TokenHash: domain.HashAPIToken(fullToken),
		Prefix:    hint,
		Name:      req.Name,
	}
	if req.ExpiresIn > 0 {
		expiresAt := c.Now().UTC().Add(req.ExpiresIn).Truncate(time.Second)
		token.ExpiresAt = &expiresAt
	}

	if err := c.TokenCreator.CreateAPIToken(ctx, token); err != nil {
		return CreateAPITokenResponse{}, fmt.Errorf("storing token: %w", err)
	}

	logger := domain.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "created API token", "token", token.ID, "prefix", token.Prefix)

	return CreateAPITokenResponse{Token: token, FullToken: fullToken}, nil
}
