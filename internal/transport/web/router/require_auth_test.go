package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/balancednews/news-feed/internal/domain"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func TestRequireSelfMiddleware(t *testing.T) {
	echoUID := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(mux.Vars(r)["uid"]))
	})

	cases := []struct {
		name       string
		userID     string
		uid        string
		wantStatus int
		wantBody   string
	}{
		{name: "own_uid", userID: "uid-1", uid: "uid-1", wantStatus: http.StatusOK, wantBody: "uid-1"},
		{name: "me_alias", userID: "uid-1", uid: "me", wantStatus: http.StatusOK, wantBody: "uid-1"},
		{name: "other_uid", userID: "uid-1", uid: "uid-2", wantStatus: http.StatusForbidden},
		{name: "unauthenticated", uid: "uid-1", wantStatus: http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := testRequest(http.MethodGet, "/users/firebase/"+tc.uid, "")
			if tc.userID != "" {
				req = req.WithContext(domain.ContextWithUserID(req.Context(), tc.userID))
			}
			req = mux.SetURLVars(req, map[string]string{"uid": tc.uid})
			rec := httptest.NewRecorder()

			requireSelfMiddleware(echoUID).ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.Equal(t, tc.wantBody, rec.Body.String())
			}
		})
	}
}
