package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/coachflow/coachflow-backend/internal/infra/http/middleware"
	"github.com/coachflow/coachflow-backend/internal/usecase"
)

type WorkflowHandler struct {
	Service *usecase.WorkflowService
}

func NewWorkflowHandler(service *usecase.WorkflowService) *WorkflowHandler {
	return &WorkflowHandler{Service: service}
}

func (h *WorkflowHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	workflows, err := h.Service.List(r.Context(), userID)
	if errors.Is(err, usecase.ErrNotAuthenticated) {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, workflows)
}

func (h *WorkflowHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateWorkflowInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	workflow, err := h.Service.Create(r.Context(), middleware.UserID(r.Context()), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordEntityCreated("workflow")
	writeJSON(w, http.StatusCreated, workflow)
}
