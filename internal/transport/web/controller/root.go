package controller

import "net/http"

type Root struct{}

func (Root) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, messageResponse{Message: "News API Server"})
}
