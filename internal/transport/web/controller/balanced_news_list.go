package controller

import (
	"net/http"

	"github.com/balancednews/news-feed/internal/command"
	"github.com/balancednews/news-feed/internal/domain"
	"github.com/gorilla/mux"
)

const maxBalancedLimit = 100

type BalancedNewsResponse struct {
	Data     []domain.BalancedArticle `json:"data"`
	Metadata BalancedNewsMetadata     `json:"metadata"`
}

type BalancedNewsMetadata struct {
	HasProfileScore    bool               `json:"has_profile_score"`
	ProfileScore       int                `json:"profile_score"`
	ProfileAffiliation domain.Affiliation `json:"profile_affiliation"`
	SimilarTarget      int                `json:"similar_target"`
	OppositeTarget     int                `json:"opposite_target"`
}

// BalancedNewsList handles GET /users/firebase/{uid}/balanced-news.
type BalancedNewsList struct {
	RecommendCmd command.Command[command.RecommendBalancedNewsRequest, command.RecommendBalancedNewsResult]
}

func (c BalancedNewsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)
	uid := mux.Vars(r)["uid"]

	limit, err := parseBoundedInt(r.URL.Query(), "limit", 0, maxBalancedLimit)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse limit", "error", err)
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result, err := c.RecommendCmd.Execute(ctx, command.RecommendBalancedNewsRequest{UserID: uid, Limit: limit})
	if err != nil {
		logger.ErrorContext(ctx, "unable to recommend balanced news", "error", err)
		writeError(w, r, http.StatusInternalServerError, "unable to recommend news")
		return
	}

	articles := result.Articles
	if articles == nil {
		articles = []domain.BalancedArticle{}
	}

	writeJSON(w, r, http.StatusOK, BalancedNewsResponse{
		Data: articles,
		Metadata: BalancedNewsMetadata{
			HasProfileScore:    result.HasProfileScore,
			ProfileScore:       result.ProfileScore,
			ProfileAffiliation: result.ProfileAffiliation,
			SimilarTarget:      result.SimilarTarget,
			OppositeTarget:     result.OppositeTarget,
		},
	})
}
