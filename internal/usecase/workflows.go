package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/coachflow/coachflow-backend/internal/cache"
	"github.com/coachflow/coachflow-backend/internal/entity"
)

const workflowsCacheEntity = "workflows"

type WorkflowService struct {
	Repo  entity.WorkflowRepositoryInterface
	Cache *cache.Store
	Log   *zap.Logger
}

func NewWorkflowService(repo entity.WorkflowRepositoryInterface, store *cache.Store, log *zap.Logger) *WorkflowService {
	return &WorkflowService{Repo: repo, Cache: store, Log: log}
}

func (s *WorkflowService) List(ctx context.Context, userID string) ([]entity.Workflow, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	v, err := s.Cache.GetOrFetch(ctx, cache.Key{Entity: workflowsCacheEntity, UserID: userID}, func(ctx context.Context) (any, error) {
		return s.Repo.ListByUser(ctx, userID)
	})
	if err != nil {
		s.Log.Error("listing workflows failed", zap.String("user_id", userID), zap.Error(err))
		return []entity.Workflow{}, err
	}

	return v.([]entity.Workflow), nil
}

type CreateWorkflowInput struct {
	Name         string `json:"name"`
	Status       string `json:"status"`
	TriggerType  string `json:"trigger_type"`
	ActionsCount int    `json:"actions_count"`
	SuccessRate  int    `json:"success_rate"`
}

func (s *WorkflowService) Create(ctx context.Context, userID string, input CreateWorkflowInput) (*entity.Workflow, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	if errs := ValidateCreateWorkflowInput(input); len(errs) > 0 {
		return nil, errs
	}

	workflow := &entity.Workflow{
		UserID:       userID,
		Name:         strings.TrimSpace(input.Name),
		Status:       defaultString(input.Status, entity.WorkflowStatusActive),
		TriggerType:  defaultString(input.TriggerType, "manual"),
		ActionsCount: input.ActionsCount,
		SuccessRate:  input.SuccessRate,
	}

	if err := s.Repo.Insert(ctx, workflow); err != nil {
		s.Log.Error("creating workflow failed", zap.String("user_id", userID), zap.Error(err))
		return nil, &TechnicalError{Code: "WORKFLOW_INSERT", Message: "failed to create workflow", Err: err}
	}

	s.Cache.Invalidate(cache.Key{Entity: workflowsCacheEntity, UserID: userID})
	s.Cache.Invalidate(cache.Key{Entity: statsCacheEntity, UserID: userID})

	return workflow, nil
}
