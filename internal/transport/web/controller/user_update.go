package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/balancednews/news-feed/internal/datasources"
	"github.com/balancednews/news-feed/internal/domain"
	"github.com/gorilla/mux"
)

// UserUpdateRequest carries the profile fields to change. Absent fields are left alone.
type UserUpdateRequest struct {
	DisplayName    *string  `json:"display_name"`
	Nickname       *string  `json:"nickname"`
	PoliticalScore *float64 `json:"political_score"`
}

// UserUpdate handles PATCH /users/firebase/{uid}.
type UserUpdate struct {
	Updater    datasources.UserProfileUpdater
	Thresholds domain.Thresholds
}

func (c UserUpdate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)
	uid := mux.Vars(r)["uid"]

	var body UserUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.ErrorContext(ctx, "unable to parse request body", "error", err)
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	update := domain.UserProfileUpdate{
		DisplayName: body.DisplayName,
		Nickname:    body.Nickname,
	}
	if body.PoliticalScore != nil {
		score := domain.ScoreFromFloat(*body.PoliticalScore)
		update.PoliticalScore = &score
	}

	user, err := c.Updater.UpdateUserProfile(ctx, uid, update)
	if errors.Is(err, domain.ErrUserNotFound) {
		writeError(w, r, http.StatusNotFound, "사용자를 찾을 수 없습니다.")
		return
	}
	if err != nil {
		logger.ErrorContext(ctx, "unable to update user", "error", err)
		writeError(w, r, http.StatusInternalServerError, "unable to update user")
		return
	}

	writeJSON(w, r, http.StatusOK, domain.UserView{User: user, Thresholds: c.Thresholds})
}
