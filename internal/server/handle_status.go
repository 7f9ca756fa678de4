package server

import (
	"net/http"
)

func handleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, statusResponse(session(r).Status()))
	}
}
