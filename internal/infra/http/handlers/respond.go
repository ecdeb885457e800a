package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/coachflow/coachflow-backend/internal/entity"
	"github.com/coachflow/coachflow-backend/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps the usecase error taxonomy onto HTTP statuses. Read
// handlers do not call this for remote failures; those render as empty lists.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrNotAuthenticated):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
	case usecase.IsValidationError(err):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, entity.ErrLeadNotFound), errors.Is(err, entity.ErrEmailNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
