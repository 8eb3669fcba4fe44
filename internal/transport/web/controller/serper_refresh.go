package controller

import (
	"fmt"
	"net/http"

	"github.com/balancednews/news-feed/internal/command"
	"github.com/balancednews/news-feed/internal/domain"
)

type SerperRefreshResponse struct {
	Message   string `json:"message"`
	NewsCount int    `json:"news_count"`
}

// SerperRefresh stores a fixed-size batch of the latest political news.
type SerperRefresh struct {
	RefreshCmd command.Command[command.RefreshNewsRequest, command.RefreshNewsResult]
	NumResults int
}

func (c SerperRefresh) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	result, err := c.RefreshCmd.Execute(ctx, command.RefreshNewsRequest{NumResults: c.NumResults, Save: true})
	if err != nil {
		logger.ErrorContext(ctx, "unable to refresh news", "error", err)
		writeError(w, r, http.StatusInternalServerError, fmt.Sprintf("뉴스 새로고침 중 오류가 발생했습니다: %v", err))
		return
	}

	resp := SerperRefreshResponse{Message: "새로운 뉴스를 찾지 못했습니다."}
	if result.Saved > 0 {
		resp = SerperRefreshResponse{
			Message:   fmt.Sprintf("총 %d개의 새로운 정치 뉴스를 데이터베이스에 저장했습니다.", result.Saved),
			NewsCount: result.Saved,
		}
	}

	writeJSON(w, r, http.StatusOK, resp)
}
