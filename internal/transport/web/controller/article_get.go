package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/balancednews/news-feed/internal/datasources"
	"github.com/balancednews/news-feed/internal/domain"
	"github.com/gorilla/mux"
)

type ArticleGet struct {
	Fetcher     datasources.ArticleFetcher
	CacheMaxAge time.Duration
}

func (c ArticleGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["article_id"]

	articles, err := c.Fetcher.FetchArticlesByID(r.Context(), []string{id})
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to fetch article", "error", err, "articleID", id)

		writeError(w, r, http.StatusInternalServerError, "unable to fetch article")
		return
	}

	if len(articles) == 0 {
		writeError(w, r, http.StatusNotFound, domain.ErrArticleNotFound.Error())
		return
	}

	if domain.UserIDFromContext(r.Context()) == "" {
		w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))
	}
	writeJSON(w, r, http.StatusOK, articles[0])
}
