package controller

import (
	"encoding/json"
	"net/http"

	"github.com/balancednews/news-feed/internal/command"
	"github.com/balancednews/news-feed/internal/domain"
	"github.com/gorilla/mux"
)

type PoliticalScoreSetRequest struct {
	PoliticalScore *float64 `json:"political_score"`
}

type PoliticalScoreSetResponse struct {
	Message              string             `json:"message"`
	PoliticalScore       int                `json:"political_score"`
	PoliticalAffiliation domain.Affiliation `json:"political_affiliation"`
}

// PoliticalScoreSet handles PUT /users/firebase/{uid}/political-score. A missing score is
// stored as neutral.
type PoliticalScoreSet struct {
	SetCmd command.Command[command.SetPoliticalScoreRequest, command.SetPoliticalScoreResult]
}

func (c PoliticalScoreSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)
	uid := mux.Vars(r)["uid"]

	var body PoliticalScoreSetRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.ErrorContext(ctx, "unable to parse request body", "error", err)
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	score := domain.NeutralScore
	if body.PoliticalScore != nil {
		score = domain.ScoreFromFloat(*body.PoliticalScore)
	}

	result, err := c.SetCmd.Execute(ctx, command.SetPoliticalScoreRequest{UserID: uid, Score: score})
	if err != nil {
		logger.ErrorContext(ctx, "unable to set political score", "error", err)
		writeError(w, r, http.StatusInternalServerError, "정치성향 점수 업데이트 중 오류가 발생했습니다.")
		return
	}

	writeJSON(w, r, http.StatusOK, PoliticalScoreSetResponse{
		Message:              "정치성향 점수가 성공적으로 업데이트되었습니다.",
		PoliticalScore:       result.Score,
		PoliticalAffiliation: result.Affiliation,
	})
}
