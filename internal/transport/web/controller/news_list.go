package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/balancednews/news-feed/internal/command"
	"github.com/balancednews/news-feed/internal/domain"
)

// NewsList serves the latest political news as a JSON array.
type NewsList struct {
	ListCmd     command.Command[command.ListLatestNewsRequest, []domain.Article]
	CacheMaxAge time.Duration
}

func (c NewsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	page, pageSize, err := parsePagination(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse pagination in query string", "error", err)
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	articles, err := c.ListCmd.Execute(ctx, command.ListLatestNewsRequest{Page: page, PageSize: pageSize})
	if err != nil {
		logger.ErrorContext(ctx, "unable to list latest news", "error", err)
		writeError(w, r, http.StatusInternalServerError, "unable to list news")
		return
	}

	if domain.UserIDFromContext(ctx) == "" {
		w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))
	}
	writeJSON(w, r, http.StatusOK, articles)
}
