package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/balancednews/news-feed/internal/datasources"
	"github.com/balancednews/news-feed/internal/domain"
	"github.com/gorilla/mux"
)

// UserCreateRequest is the JSON body for creating a profile.
type UserCreateRequest struct {
	Email          string   `json:"email"`
	DisplayName    string   `json:"display_name"`
	Nickname       string   `json:"nickname"`
	PoliticalScore *float64 `json:"political_score"`
}

// UserCreate handles POST /users/firebase/{uid}.
type UserCreate struct {
	Users interface {
		datasources.UserCreator
		datasources.UserGetter
	}
	Thresholds domain.Thresholds
}

func (c UserCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)
	uid := mux.Vars(r)["uid"]

	var body UserCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.ErrorContext(ctx, "unable to parse request body", "error", err)
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	user := domain.User{
		UID:         uid,
		Email:       body.Email,
		DisplayName: body.DisplayName,
		Nickname:    body.Nickname,
	}
	if body.PoliticalScore != nil {
		score := domain.ScoreFromFloat(*body.PoliticalScore)
		user.PoliticalScore = &score
	}

	err := c.Users.CreateUser(ctx, user)
	if errors.Is(err, domain.ErrUserExists) {
		writeError(w, r, http.StatusConflict, "이미 존재하는 사용자입니다.")
		return
	}
	if err != nil {
		logger.ErrorContext(ctx, "unable to create user", "error", err)
		writeError(w, r, http.StatusInternalServerError, "unable to create user")
		return
	}

	created, err := c.Users.GetUser(ctx, uid)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch created user", "error", err)
		writeError(w, r, http.StatusInternalServerError, "unable to fetch user")
		return
	}

	writeJSON(w, r, http.StatusCreated, domain.UserView{User: created, Thresholds: c.Thresholds})
}
