package controller

import (
	"net/http"

	"github.com/balancednews/news-feed/internal/command"
	"github.com/balancednews/news-feed/internal/domain"
	"github.com/gorilla/mux"
)

// PoliticalIndexGet handles GET /users/firebase/{uid}/political-index.
type PoliticalIndexGet struct {
	IndexCmd command.Command[command.ComputePoliticalIndexRequest, domain.PoliticalIndex]
}

func (c PoliticalIndexGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	uid := mux.Vars(r)["uid"]

	index, err := c.IndexCmd.Execute(ctx, command.ComputePoliticalIndexRequest{UserID: uid})
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to compute political index", "error", err)
		writeError(w, r, http.StatusInternalServerError, "unable to compute political index")
		return
	}

	writeJSON(w, r, http.StatusOK, index)
}
