package controller

import (
	"net/http"

	"github.com/balancednews/news-feed/internal/datasources"
	"github.com/balancednews/news-feed/internal/domain"
)

// NewsSearch matches stored news against the q parameter.
type NewsSearch struct {
	Searcher datasources.ArticleSearcher
}

func (c NewsSearch) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	q := r.URL.Query()
	page, pageSize, err := parsePagination(q)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse pagination in query string", "error", err)
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	articles, err := c.Searcher.SearchArticles(ctx, q.Get("q"), page, pageSize)
	if err != nil {
		logger.ErrorContext(ctx, "unable to search news", "error", err, "query", q.Get("q"))
		writeError(w, r, http.StatusInternalServerError, "unable to search news")
		return
	}

	writeJSON(w, r, http.StatusOK, articles)
}
