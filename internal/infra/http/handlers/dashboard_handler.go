package handlers

import (
	"net/http"

	"github.com/coachflow/coachflow-backend/internal/infra/http/middleware"
	"github.com/coachflow/coachflow-backend/internal/usecase"
)

type DashboardHandler struct {
	Stats *usecase.DashboardStatsUseCase
}

func NewDashboardHandler(stats *usecase.DashboardStatsUseCase) *DashboardHandler {
	return &DashboardHandler{Stats: stats}
}

func (h *DashboardHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	stats, err := h.Stats.Execute(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
