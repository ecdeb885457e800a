package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/coachflow/coachflow-backend/internal/infra/http/middleware"
	"github.com/coachflow/coachflow-backend/internal/usecase"
)

type MessageHandler struct {
	Service *usecase.MessageService
}

func NewMessageHandler(service *usecase.MessageService) *MessageHandler {
	return &MessageHandler{Service: service}
}

func (h *MessageHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	messages, err := h.Service.List(r.Context(), userID)
	if errors.Is(err, usecase.ErrNotAuthenticated) {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messages)
}

func (h *MessageHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateMessageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	msg, err := h.Service.Create(r.Context(), middleware.UserID(r.Context()), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordEntityCreated("message")
	writeJSON(w, http.StatusCreated, msg)
}
