package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/coachflow/coachflow-backend/internal/cache"
	"github.com/coachflow/coachflow-backend/internal/entity"
)

const voiceCallsCacheEntity = "voice-calls"

type VoiceCallService struct {
	Repo  entity.VoiceCallRepositoryInterface
	Cache *cache.Store
	Log   *zap.Logger
}

func NewVoiceCallService(repo entity.VoiceCallRepositoryInterface, store *cache.Store, log *zap.Logger) *VoiceCallService {
	return &VoiceCallService{Repo: repo, Cache: store, Log: log}
}

func (s *VoiceCallService) List(ctx context.Context, userID string) ([]entity.VoiceCall, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	v, err := s.Cache.GetOrFetch(ctx, cache.Key{Entity: voiceCallsCacheEntity, UserID: userID}, func(ctx context.Context) (any, error) {
		return s.Repo.ListByUser(ctx, userID)
	})
	if err != nil {
		s.Log.Error("listing voice calls failed", zap.String("user_id", userID), zap.Error(err))
		return []entity.VoiceCall{}, err
	}

	return v.([]entity.VoiceCall), nil
}

type CreateVoiceCallInput struct {
	CallerPhone      string  `json:"caller_phone"`
	DurationSeconds  int     `json:"duration_seconds"`
	Status           string  `json:"status"`
	ResolutionStatus string  `json:"resolution_status"`
	Transcript       *string `json:"transcript"`
}

// Create records a call, typically posted by the voice-agent integration
// rather than the dashboard itself.
func (s *VoiceCallService) Create(ctx context.Context, userID string, input CreateVoiceCallInput) (*entity.VoiceCall, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	if errs := ValidateCreateVoiceCallInput(input); len(errs) > 0 {
		return nil, errs
	}

	call := &entity.VoiceCall{
		UserID:           userID,
		CallerPhone:      strings.TrimSpace(input.CallerPhone),
		DurationSeconds:  input.DurationSeconds,
		Status:           input.Status,
		ResolutionStatus: defaultString(input.ResolutionStatus, "unresolved"),
		Transcript:       input.Transcript,
	}

	if err := s.Repo.Insert(ctx, call); err != nil {
		s.Log.Error("creating voice call failed", zap.String("user_id", userID), zap.Error(err))
		return nil, &TechnicalError{Code: "VOICE_CALL_INSERT", Message: "failed to create voice call", Err: err}
	}

	s.Cache.Invalidate(cache.Key{Entity: voiceCallsCacheEntity, UserID: userID})
	s.Cache.Invalidate(cache.Key{Entity: statsCacheEntity, UserID: userID})

	return call, nil
}
