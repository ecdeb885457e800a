package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/coachflow/coachflow-backend/internal/infra/http/middleware"
	"github.com/coachflow/coachflow-backend/internal/usecase"
)

type LeadHandler struct {
	Service     *usecase.LeadService
	rateLimiter *RateLimiter
}

func NewLeadHandler(service *usecase.LeadService) *LeadHandler {
	return &LeadHandler{
		Service:     service,
		rateLimiter: NewRateLimiter(30, time.Minute), // per-IP ceiling on form submits
	}
}

func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	leads, err := h.Service.List(r.Context(), userID)
	if errors.Is(err, usecase.ErrNotAuthenticated) {
		writeError(w, err)
		return
	}

	// A failed read was already logged by the service and comes back as an
	// empty slice; the dashboard renders "no data" instead of an error page.
	writeJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "too many requests"})
		return
	}

	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	lead, err := h.Service.Create(r.Context(), middleware.UserID(r.Context()), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordEntityCreated("lead")
	writeJSON(w, http.StatusCreated, lead)
}
