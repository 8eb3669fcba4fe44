package controller

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/balancednews/news-feed/internal/command"
	"github.com/balancednews/news-feed/internal/domain"
)

const (
	defaultSerperResults = 20
	maxSerperResults     = 100
)

type SerperLatestResponse struct {
	Message   string           `json:"message"`
	News      []domain.Article `json:"news"`
	SavedToDB bool             `json:"saved_to_db"`
}

// SerperLatest fetches the latest political news on demand, storing it unless save_to_db is
// false.
type SerperLatest struct {
	RefreshCmd command.Command[command.RefreshNewsRequest, command.RefreshNewsResult]
}

func (c SerperLatest) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	q := r.URL.Query()
	num, err := parseBoundedInt(q, "num_results", defaultSerperResults, maxSerperResults)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse num_results", "error", err)
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	save := true
	if q.Has("save_to_db") {
		switch strings.ToLower(q.Get("save_to_db")) {
		case "true":
		case "false":
			save = false
		default:
			writeError(w, r, http.StatusBadRequest, "save_to_db must be true or false")
			return
		}
	}

	result, err := c.RefreshCmd.Execute(ctx, command.RefreshNewsRequest{NumResults: num, Save: save})
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch latest news", "error", err)
		writeError(w, r, http.StatusInternalServerError, fmt.Sprintf("뉴스 가져오기 중 오류가 발생했습니다: %v", err))
		return
	}

	writeJSON(w, r, http.StatusOK, SerperLatestResponse{
		Message:   fmt.Sprintf("총 %d개의 최신 정치 뉴스를 가져왔습니다.", len(result.Articles)),
		News:      result.Articles,
		SavedToDB: save,
	})
}
