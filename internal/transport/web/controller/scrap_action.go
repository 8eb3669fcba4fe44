package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/balancednews/news-feed/internal/command"
	"github.com/balancednews/news-feed/internal/domain"
	"github.com/gorilla/mux"
)

type ScrapActionRequest struct {
	ArticleID string `json:"article_id"`
	Action    string `json:"action"`
}

type ScrapActionResponse struct {
	Message       string `json:"message"`
	Changed       bool   `json:"changed"`
	ActivityScore int    `json:"activity_score"`
}

// ScrapAction handles POST /users/firebase/{uid}/scraps, adding or removing one scrap.
type ScrapAction struct {
	ScrapCmd command.Command[command.ScrapArticleRequest, command.ScrapArticleResult]
}

func (c ScrapAction) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)
	uid := mux.Vars(r)["uid"]

	var body ScrapActionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.ErrorContext(ctx, "unable to parse request body", "error", err)
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.ArticleID == "" || body.Action == "" {
		writeError(w, r, http.StatusBadRequest, "article_id와 action이 필요합니다.")
		return
	}

	ctx = domain.ContextWithLogger(ctx, logger.With("articleID", body.ArticleID))

	result, err := c.ScrapCmd.Execute(ctx, command.ScrapArticleRequest{
		UserID:    uid,
		ArticleID: body.ArticleID,
		Action:    command.ScrapAction(body.Action),
	})
	switch {
	case errors.Is(err, command.ErrInvalidScrapAction):
		writeError(w, r, http.StatusBadRequest, "잘못된 action입니다. 'add' 또는 'remove'를 사용하세요.")
		return
	case errors.Is(err, domain.ErrArticleNotFound):
		writeError(w, r, http.StatusNotFound, domain.ErrArticleNotFound.Error())
		return
	case err != nil:
		logger.ErrorContext(ctx, "unable to update scrap", "error", err)
		writeError(w, r, http.StatusInternalServerError, "스크랩 처리 중 오류가 발생했습니다.")
		return
	}

	message := "뉴스가 스크랩되었습니다."
	if body.Action == string(command.ScrapActionRemove) {
		message = "스크랩이 해제되었습니다."
	}

	writeJSON(w, r, http.StatusOK, ScrapActionResponse{
		Message:       message,
		Changed:       result.Changed,
		ActivityScore: result.ActivityScore,
	})
}
