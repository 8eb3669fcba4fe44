package controller

import (
	"errors"
	"net/http"

	"github.com/balancednews/news-feed/internal/datasources"
	"github.com/balancednews/news-feed/internal/domain"
	"github.com/gorilla/mux"
)

type UserDeleteResponse struct {
	Message       string `json:"message"`
	DeletedScraps int64  `json:"deleted_scraps"`
	DeletedUser   bool   `json:"deleted_user"`
}

// UserDelete handles DELETE /users/firebase/{uid}, removing the profile with its scraps and
// API tokens.
type UserDelete struct {
	Deleter datasources.UserDeleter
}

func (c UserDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)
	uid := mux.Vars(r)["uid"]

	deletion, err := c.Deleter.DeleteUser(ctx, uid)
	if errors.Is(err, domain.ErrUserNotFound) {
		writeError(w, r, http.StatusNotFound, "사용자를 찾을 수 없습니다.")
		return
	}
	if err != nil {
		logger.ErrorContext(ctx, "unable to delete user", "error", err)
		writeError(w, r, http.StatusInternalServerError, "unable to delete user")
		return
	}

	logger.InfoContext(ctx, "deleted user", "deletedScraps", deletion.DeletedScraps)

	writeJSON(w, r, http.StatusOK, UserDeleteResponse{
		Message:       "사용자 계정이 성공적으로 삭제되었습니다.",
		DeletedScraps: deletion.DeletedScraps,
		DeletedUser:   deletion.DeletedUser,
	})
}
