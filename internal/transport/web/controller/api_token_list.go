package controller

import (
	"net/http"
	"time"

	"github.com/balancednews/news-feed/internal/command"
	"github.com/balancednews/news-feed/internal/datasources"
	"github.com/balancednews/news-feed/internal/domain"
)

// APITokenListItem is a stored token without its hash. Prefix is the "news_api|" hint that
// lets a reader tell tokens apart.
type APITokenListItem struct {
	domain.APIToken
	Active  bool `json:"active"`
	Revoked bool `json:"revoked"`
}

type APITokenListResponse struct {
	Data            []APITokenListItem `json:"data"`
	ActiveCount     int                `json:"active_count"`
	MaxActiveTokens int                `json:"max_active_tokens"`
}

// APITokenList handles GET /v1/tokens.
type APITokenList struct {
	TokenLister datasources.UserAPITokenLister
	Now         func() time.Time
}

func (c APITokenList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		writeError(w, r, http.StatusUnauthorized, "인증이 필요합니다.")
		return
	}

	tokens, err := c.TokenLister.ListUserAPITokens(ctx, userID)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to list API tokens", "error", err)
		writeError(w, r, http.StatusInternalServerError, "unable to list API tokens")
		return
	}

	now := time.Now()
	if c.Now != nil {
		now = c.Now()
	}

	resp := APITokenListResponse{
		Data:            make([]APITokenListItem, 0, len(tokens)),
		MaxActiveTokens: command.MaxAPITokensPerUser,
	}
	for _, token := range tokens {
		active := token.ActiveAt(now)
		if active {
			resp.ActiveCount++
		}
		resp.Data = append(resp.Data, APITokenListItem{
			APIToken: token,
			Active:   active,
			Revoked:  token.RevokedAt != nil,
		})
	}

	writeJSON(w, r, http.StatusOK, resp)
}
