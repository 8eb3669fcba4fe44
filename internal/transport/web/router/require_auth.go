package router

import (
	"net/http"

	"github.com/balancednews/news-feed/internal/domain"
	"github.com/gorilla/mux"
)

// selfAlias stands for the authenticated user in /users/firebase/{uid} paths.
const selfAlias = "me"

func requireAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := domain.UserIDFromContext(r.Context())
		if userID == "" {
			logger := domain.LoggerFromContext(r.Context())
			logger.ErrorContext(r.Context(), "attempt to use endpoint requiring auth without user ID")
			writeUnauthorized(w, "authentication required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requireSelfMiddleware only lets users act on their own {uid}, resolving "me" to the
// authenticated user before the controller runs.
func requireSelfMiddleware(next http.Handler) http.Handler {
	return requireAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := domain.UserIDFromContext(ctx)

		vars := mux.Vars(r)
		uid := vars["uid"]
		if uid == selfAlias {
			resolved := make(map[string]string, len(vars))
			for k, v := range vars {
				resolved[k] = v
			}
			resolved["uid"] = userID
			r = mux.SetURLVars(r, resolved)
			uid = userID
		}

		if uid != userID {
			logger := domain.LoggerFromContext(ctx)
			logger.WarnContext(ctx, "attempt to access another user's data", "uid", uid)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error":"forbidden"}`))
			return
		}

		next.ServeHTTP(w, r)
	}))
}
