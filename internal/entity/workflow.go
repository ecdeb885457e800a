package entity

import (
	"context"
	"time"
)

type Workflow struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	Name         string     `json:"name"`
	Status       string     `json:"status"` // active, paused, failed
	TriggerType  string     `json:"trigger_type"`
	ActionsCount int        `json:"actions_count"`
	SuccessRate  int        `json:"success_rate"`
	LastRunAt    *time.Time `json:"last_run_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

const WorkflowStatusActive = "active"

type WorkflowRepositoryInterface interface {
	ListByUser(ctx context.Context, userID string) ([]Workflow, error)
	Insert(ctx context.Context, workflow *Workflow) error
}
