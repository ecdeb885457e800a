package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/coachflow/coachflow-backend/internal/infra/http/middleware"
	"github.com/coachflow/coachflow-backend/internal/usecase"
)

type BookingHandler struct {
	Service *usecase.BookingService
}

func NewBookingHandler(service *usecase.BookingService) *BookingHandler {
	return &BookingHandler{Service: service}
}

func (h *BookingHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	bookings, err := h.Service.List(r.Context(), userID)
	if errors.Is(err, usecase.ErrNotAuthenticated) {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateBookingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	booking, err := h.Service.Create(r.Context(), middleware.UserID(r.Context()), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordEntityCreated("booking")
	writeJSON(w, http.StatusCreated, booking)
}
