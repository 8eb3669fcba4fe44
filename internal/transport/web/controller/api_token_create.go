package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/balancednews/news-feed/internal/command"
	"github.com/balancednews/news-feed/internal/domain"
)

// APITokenCreateRequest is the JSON body for creating a token. Omitting expires_in_days
// creates a token that never expires.
type APITokenCreateRequest struct {
	Name          string `json:"name,omitempty"`
	ExpiresInDays int    `json:"expires_in_days,omitempty"`
}

// APITokenCreateResponse holds the full token, returned only at creation.
type APITokenCreateResponse struct {
	ID        string     `json:"id"`
	Token     string     `json:"token"`
	Prefix    string     `json:"prefix"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// APITokenCreate handles POST /v1/tokens.
type APITokenCreate struct {
	CreateCmd command.Command[command.CreateAPITokenRequest, command.CreateAPITokenResponse]
}

func (c APITokenCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		writeError(w, r, http.StatusUnauthorized, "인증이 필요합니다.")
		return
	}

	var body APITokenCreateRequest
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			logger.ErrorContext(ctx, "unable to parse request body", "error", err)
			writeError(w, r, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	req := command.CreateAPITokenRequest{
		UserID:    userID,
		ExpiresIn: time.Duration(body.ExpiresInDays) * 24 * time.Hour,
	}
	if body.Name != "" {
		req.Name = &body.Name
	}

	result, err := c.CreateCmd.Execute(ctx, req)
	switch {
	case errors.Is(err, command.ErrInvalidTokenExpiry):
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, command.ErrTokenLimitExceeded):
		writeError(w, r, http.StatusConflict, err.Error())
		return
	case err != nil:
		logger.ErrorContext(ctx, "unable to create API token", "error", err)
		writeError(w, r, http.StatusInternalServerError, "unable to create API token")
		return
	}

	writeJSON(w, r, http.StatusCreated, APITokenCreateResponse{
		ID:        result.Token.ID,
		Token:     result.FullToken,
		Prefix:    result.Token.Prefix,
		ExpiresAt: result.Token.ExpiresAt,
	})
}
