package controller

import (
	"errors"
	"net/http"

	"github.com/balancednews/news-feed/internal/datasources"
	"github.com/balancednews/news-feed/internal/domain"
	"github.com/gorilla/mux"
)

// UserGet handles GET /users/firebase/{uid}.
type UserGet struct {
	Getter     datasources.UserGetter
	Thresholds domain.Thresholds
}

func (c UserGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)
	uid := mux.Vars(r)["uid"]

	user, err := c.Getter.GetUser(ctx, uid)
	if errors.Is(err, domain.ErrUserNotFound) {
		writeError(w, r, http.StatusNotFound, "사용자를 찾을 수 없습니다.")
		return
	}
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch user", "error", err)
		writeError(w, r, http.StatusInternalServerError, "unable to fetch user")
		return
	}

	writeJSON(w, r, http.StatusOK, domain.UserView{User: user, Thresholds: c.Thresholds})
}
