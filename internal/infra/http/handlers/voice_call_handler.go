package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/coachflow/coachflow-backend/internal/infra/http/middleware"
	"github.com/coachflow/coachflow-backend/internal/usecase"
)

type VoiceCallHandler struct {
	Service *usecase.VoiceCallService
}

func NewVoiceCallHandler(service *usecase.VoiceCallService) *VoiceCallHandler {
	return &VoiceCallHandler{Service: service}
}

func (h *VoiceCallHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	calls, err := h.Service.List(r.Context(), userID)
	if errors.Is(err, usecase.ErrNotAuthenticated) {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, calls)
}

func (h *VoiceCallHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateVoiceCallInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	call, err := h.Service.Create(r.Context(), middleware.UserID(r.Context()), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordEntityCreated("voice_call")
	writeJSON(w, http.StatusCreated, call)
}
