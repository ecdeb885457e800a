package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/coachflow/coachflow-backend/internal/infra/http/middleware"
	"github.com/coachflow/coachflow-backend/internal/usecase"
)

type EmailHandler struct {
	Service *usecase.EmailAutomationService
}

func NewEmailHandler(service *usecase.EmailAutomationService) *EmailHandler {
	return &EmailHandler{Service: service}
}

func (h *EmailHandler) HandleTrigger(w http.ResponseWriter, r *http.Request) {
	var input usecase.TriggerAutomationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	item, err := h.Service.Trigger(r.Context(), middleware.UserID(r.Context()), input)
	if err != nil {
		middleware.RecordEmailDispatched("failed")
		writeError(w, err)
		return
	}

	middleware.RecordEmailDispatched("queued")
	writeJSON(w, http.StatusCreated, item)
}

type engagementRequest struct {
	EngagementType string `json:"engagement_type"`
}

func (h *EmailHandler) HandleEngagement(w http.ResponseWriter, r *http.Request) {
	emailID := chi.URLParam(r, "emailID")

	var req engagementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	err := h.Service.RecordEngagement(r.Context(), middleware.UserID(r.Context()), emailID, req.EngagementType)
	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *EmailHandler) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	analytics, err := h.Service.Analytics(r.Context(), userID)
	if errors.Is(err, usecase.ErrNotAuthenticated) {
		writeError(w, err)
		return
	}

	// Same read policy as the list endpoints: a remote failure renders as
	// zeroed analytics, not a 5xx.
	writeJSON(w, http.StatusOK, analytics)
}
