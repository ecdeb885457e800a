package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/coachflow/coachflow-backend/internal/cache"
	"github.com/coachflow/coachflow-backend/internal/entity"
)

const leadsCacheEntity = "leads"

// LeadService reads and creates leads scoped to one user. List results are
// cached per (entity, user) and refreshed by the cache's background loop;
// Create invalidates both the lead list and the dashboard stats for the user.
type LeadService struct {
	Repo  entity.LeadRepositoryInterface
	Cache *cache.Store
	Log   *zap.Logger
}

func NewLeadService(repo entity.LeadRepositoryInterface, store *cache.Store, log *zap.Logger) *LeadService {
	return &LeadService{Repo: repo, Cache: store, Log: log}
}

// List returns the user's leads newest-first. A query failure is logged and
// surfaces as an empty slice plus the error, so callers can render "no data"
// while still seeing the failure.
func (s *LeadService) List(ctx context.Context, userID string) ([]entity.Lead, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	v, err := s.Cache.GetOrFetch(ctx, cache.Key{Entity: leadsCacheEntity, UserID: userID}, func(ctx context.Context) (any, error) {
		return s.Repo.ListByUser(ctx, userID)
	})
	if err != nil {
		s.Log.Error("listing leads failed", zap.String("user_id", userID), zap.Error(err))
		return []entity.Lead{}, err
	}

	return v.([]entity.Lead), nil
}

type CreateLeadInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Source      string `json:"source"`
	Status      string `json:"status"`
	Temperature string `json:"temperature"`
}

func (s *LeadService) Create(ctx context.Context, userID string, input CreateLeadInput) (*entity.Lead, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	if errs := ValidateCreateLeadInput(input); len(errs) > 0 {
		return nil, errs
	}

	lead := &entity.Lead{
		UserID:      userID,
		Name:        strings.TrimSpace(input.Name),
		Email:       strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:       strings.TrimSpace(input.Phone),
		Source:      defaultString(input.Source, "website"),
		Status:      defaultString(input.Status, "new"),
		Temperature: defaultString(input.Temperature, "warm"),
	}

	if err := s.Repo.Insert(ctx, lead); err != nil {
		s.Log.Error("creating lead failed", zap.String("user_id", userID), zap.Error(err))
		return nil, &TechnicalError{Code: "LEAD_INSERT", Message: "failed to create lead", Err: err}
	}

	s.Cache.Invalidate(cache.Key{Entity: leadsCacheEntity, UserID: userID})
	s.Cache.Invalidate(cache.Key{Entity: statsCacheEntity, UserID: userID})

	return lead, nil
}
