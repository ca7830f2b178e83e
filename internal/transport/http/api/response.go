package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type errorPayload struct {
	Error string `json:"error"`
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

// Fail writes the flat {"error": message} payload the frontend expects.
func Fail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, errorPayload{Error: message})
}
