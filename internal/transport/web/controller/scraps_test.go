package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/balancednews/news-feed/internal/command"
	cmdmocks "github.com/balancednews/news-feed/internal/command/mocks"
	"github.com/balancednews/news-feed/internal/datasources/mocks"
	"github.com/balancednews/news-feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestScrapsList_ServeHTTP(t *testing.T) {
	t.Run("lists_scraps", func(t *testing.T) {
		lister := mocks.NewMockScrapLister(t)
		lister.EXPECT().
			ListScrappedArticles(mock.Anything, "uid-1").
			Return([]domain.Article{{ID: "a2"}, {ID: "a1"}}, nil)

		rec := httptest.NewRecorder()
		ScrapsList{Lister: lister}.ServeHTTP(rec, userRequest(http.MethodGet, "uid-1", ""))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp ScrapsListResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, []domain.Article{{ID: "a2"}, {ID: "a1"}}, resp.ScrappedNews)
	})

	t.Run("list_error", func(t *testing.T) {
		lister := mocks.NewMockScrapLister(t)
		lister.EXPECT().ListScrappedArticles(mock.Anything, "uid-1").Return(nil, errors.New("database error"))

		rec := httptest.NewRecorder()
		ScrapsList{Lister: lister}.ServeHTTP(rec, userRequest(http.MethodGet, "uid-1", ""))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestScrapAction_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		wantReq    *command.ScrapArticleRequest
		result     command.ScrapArticleResult
		commandErr error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "add",
			body:       `{"article_id":"a1","action":"add"}`,
			wantReq:    &command.ScrapArticleRequest{UserID: "uid-1", ArticleID: "a1", Action: command.ScrapActionAdd},
			result:     command.ScrapArticleResult{Changed: true, ActivityScore: 62, ActivityFromScraps: true},
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"뉴스가 스크랩되었습니다.","changed":true,"activity_score":62}`,
		},
		{
			name:       "remove",
			body:       `{"article_id":"a1","action":"remove"}`,
			wantReq:    &command.ScrapArticleRequest{UserID: "uid-1", ArticleID: "a1", Action: command.ScrapActionRemove},
			result:     command.ScrapArticleResult{ActivityScore: 50},
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"스크랩이 해제되었습니다.","changed":false,"activity_score":50}`,
		},
		{
			name:       "missing_fields",
			body:       `{"article_id":"a1"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"article_id와 action이 필요합니다."}`,
		},
		{
			name:       "invalid_action",
			body:       `{"article_id":"a1","action":"toggle"}`,
			wantReq:    &command.ScrapArticleRequest{UserID: "uid-1", ArticleID: "a1", Action: "toggle"},
			commandErr: fmt.Errorf("%w [toggle]", command.ErrInvalidScrapAction),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"잘못된 action입니다. 'add' 또는 'remove'를 사용하세요."}`,
		},
		{
			name:       "unknown_article",
			body:       `{"article_id":"zz","action":"add"}`,
			wantReq:    &command.ScrapArticleRequest{UserID: "uid-1", ArticleID: "zz", Action: command.ScrapActionAdd},
			commandErr: domain.ErrArticleNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"article not found"}`,
		},
		{
			name:       "command_error",
			body:       `{"article_id":"a1","action":"add"}`,
			wantReq:    &command.ScrapArticleRequest{UserID: "uid-1", ArticleID: "a1", Action: command.ScrapActionAdd},
			commandErr: errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"스크랩 처리 중 오류가 발생했습니다."}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			scrapCmd := cmdmocks.NewMockCommand[command.ScrapArticleRequest, command.ScrapArticleResult](t)
			if tc.wantReq != nil {
				scrapCmd.EXPECT().Execute(mock.Anything, *tc.wantReq).Return(tc.result, tc.commandErr)
			}

			rec := httptest.NewRecorder()
			ScrapAction{ScrapCmd: scrapCmd}.ServeHTTP(rec, userRequest(http.MethodPost, "uid-1", tc.body))

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.JSONEq(t, tc.wantBody, rec.Body.String())
		})
	}
}

func TestPoliticalScoreSet_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		wantScore  int
		result     command.SetPoliticalScoreResult
		commandErr error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "rounds_half_up",
			body:       `{"political_score":55.5}`,
			wantScore:  56,
			result:     command.SetPoliticalScoreResult{Score: 56, Affiliation: domain.AffiliationProgressive},
			wantStatus: http.StatusOK,
			wantBody: `{"message":"정치성향 점수가 성공적으로 업데이트되었습니다.","political_score":56,
				"political_affiliation":"progressive"}`,
		},
		{
			name:       "missing_score_is_neutral",
			body:       `{}`,
			wantScore:  50,
			result:     command.SetPoliticalScoreResult{Score: 50, Affiliation: domain.AffiliationNeutral},
			wantStatus: http.StatusOK,
			wantBody: `{"message":"정치성향 점수가 성공적으로 업데이트되었습니다.","political_score":50,
				"political_affiliation":"neutral"}`,
		},
		{
			name:       "out_of_range_clamped",
			body:       `{"political_score":-20}`,
			wantScore:  0,
			result:     command.SetPoliticalScoreResult{Score: 0, Affiliation: domain.AffiliationConservative},
			wantStatus: http.StatusOK,
			wantBody: `{"message":"정치성향 점수가 성공적으로 업데이트되었습니다.","political_score":0,
				"political_affiliation":"conservative"}`,
		},
		{
			name:       "invalid_body",
			body:       `{"political_score":"high"}`,
			wantScore:  -1,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid request body"}`,
		},
		{
			name:       "command_error",
			body:       `{"political_score":40}`,
			wantScore:  40,
			commandErr: errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"정치성향 점수 업데이트 중 오류가 발생했습니다."}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setCmd := cmdmocks.NewMockCommand[command.SetPoliticalScoreRequest, command.SetPoliticalScoreResult](t)
			if tc.wantScore >= 0 {
				setCmd.EXPECT().
					Execute(mock.Anything, command.SetPoliticalScoreRequest{UserID: "uid-1", Score: tc.wantScore}).
					Return(tc.result, tc.commandErr)
			}

			rec := httptest.NewRecorder()
			PoliticalScoreSet{SetCmd: setCmd}.
				ServeHTTP(rec, userRequest(http.MethodPut, "uid-1", tc.body))

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.JSONEq(t, tc.wantBody, rec.Body.String())
		})
	}
}
