package controller

import (
	"net/http"

	"github.com/balancednews/news-feed/internal/datasources"
	"github.com/balancednews/news-feed/internal/domain"
	"github.com/gorilla/mux"
)

type ScrapsListResponse struct {
	ScrappedNews []domain.Article `json:"scrapped_news"`
}

// ScrapsList handles GET /users/firebase/{uid}/scraps.
type ScrapsList struct {
	Lister datasources.ScrapLister
}

func (c ScrapsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	uid := mux.Vars(r)["uid"]

	articles, err := c.Lister.ListScrappedArticles(ctx, uid)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to list scraps", "error", err)
		writeError(w, r, http.StatusInternalServerError, "스크랩 목록 조회 중 오류가 발생했습니다.")
		return
	}

	writeJSON(w, r, http.StatusOK, ScrapsListResponse{ScrappedNews: articles})
}
