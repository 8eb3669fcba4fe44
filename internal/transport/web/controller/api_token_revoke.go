package controller

import (
	"errors"
	"net/http"

	"github.com/balancednews/news-feed/internal/datasources"
	"github.com/balancednews/news-feed/internal/domain"
	"github.com/gorilla/mux"
)

// APITokenRevoke handles DELETE /v1/tokens/{token_id} to revoke a token.
type APITokenRevoke struct {
	TokenRevoker datasources.APITokenRevoker
}

func (c APITokenRevoke) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		writeError(w, r, http.StatusUnauthorized, "인증이 필요합니다.")
		return
	}

	tokenID := mux.Vars(r)["token_id"]
	if tokenID == "" {
		writeError(w, r, http.StatusBadRequest, "token_id is required")
		return
	}

	err := c.TokenRevoker.RevokeAPIToken(ctx, tokenID, userID)
	if errors.Is(err, domain.ErrAPITokenNotFound) {
		writeError(w, r, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		logger.ErrorContext(ctx, "unable to revoke API token", "error", err, "token_id", tokenID)
		writeError(w, r, http.StatusInternalServerError, "unable to revoke API token")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
