package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"

	"github.com/lapwise/lapwise-go/log"
	"github.com/lapwise/lapwise-go/pkg/service"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error("could not write response", log.ErrorField(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// respond maps service errors onto HTTP status codes. Missing rows are a
// 404, everything else is a 500.
func (s *Server) respond(w http.ResponseWriter, payload any, err error) {
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, service.ErrNoData) {
			writeError(w, http.StatusNotFound, "no data found")
			return
		}
		s.l.Error("request failed", log.ErrorField(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, payload)
}
