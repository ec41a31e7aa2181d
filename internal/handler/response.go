package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"bankledger/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps domain errors to HTTP statuses: missing records
// become 404, business-rule violations 400, everything else 500.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	var notFound *models.NotFoundError
	if errors.As(err, &notFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	var invalid *models.InvalidOperationError
	if errors.As(err, &invalid) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.log.Errorf("Internal error: %v", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}
