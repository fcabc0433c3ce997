package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mmynk/stockroom/internal/storage"
)

// writeJSON serializes data as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// notFoundOrInternal maps a storage error to a plain-text response:
// 404 with the given message when the record is absent, 500 otherwise.
func notFoundOrInternal(w http.ResponseWriter, err error, message string) {
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, message, http.StatusNotFound)
		return
	}
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
