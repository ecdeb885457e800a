package usecase

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/coachflow/coachflow-backend/internal/cache"
	"github.com/coachflow/coachflow-backend/internal/entity"
)

const bookingsCacheEntity = "bookings"

type BookingService struct {
	Repo  entity.BookingRepositoryInterface
	Cache *cache.Store
	Log   *zap.Logger
}

func NewBookingService(repo entity.BookingRepositoryInterface, store *cache.Store, log *zap.Logger) *BookingService {
	return &BookingService{Repo: repo, Cache: store, Log: log}
}

func (s *BookingService) List(ctx context.Context, userID string) ([]entity.Booking, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	v, err := s.Cache.GetOrFetch(ctx, cache.Key{Entity: bookingsCacheEntity, UserID: userID}, func(ctx context.Context) (any, error) {
		return s.Repo.ListByUser(ctx, userID)
	})
	if err != nil {
		s.Log.Error("listing bookings failed", zap.String("user_id", userID), zap.Error(err))
		return []entity.Booking{}, err
	}

	return v.([]entity.Booking), nil
}

type CreateBookingInput struct {
	ClientName      string    `json:"client_name"`
	ClientEmail     string    `json:"client_email"`
	BookingType     string    `json:"booking_type"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
}

// Create inserts a booking for the user. scheduled_at is taken as supplied;
// overlapping bookings are allowed (manual scheduling tool).
func (s *BookingService) Create(ctx context.Context, userID string, input CreateBookingInput) (*entity.Booking, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	if errs := ValidateCreateBookingInput(input); len(errs) > 0 {
		return nil, errs
	}

	booking := &entity.Booking{
		UserID:          userID,
		ClientName:      strings.TrimSpace(input.ClientName),
		ClientEmail:     strings.ToLower(strings.TrimSpace(input.ClientEmail)),
		BookingType:     defaultString(input.BookingType, "consultation"),
		ScheduledAt:     input.ScheduledAt,
		DurationMinutes: input.DurationMinutes,
		Status:          defaultString(input.Status, "scheduled"),
	}

	if err := s.Repo.Insert(ctx, booking); err != nil {
		s.Log.Error("creating booking failed", zap.String("user_id", userID), zap.Error(err))
		return nil, &TechnicalError{Code: "BOOKING_INSERT", Message: "failed to create booking", Err: err}
	}

	s.Cache.Invalidate(cache.Key{Entity: bookingsCacheEntity, UserID: userID})
	s.Cache.Invalidate(cache.Key{Entity: statsCacheEntity, UserID: userID})

	return booking, nil
}
