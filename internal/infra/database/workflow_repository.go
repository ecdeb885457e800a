package database

import (
	"context"
	"database/sql"

	"github.com/coachflow/coachflow-backend/internal/entity"
)

type WorkflowRepository struct {
	DB *sql.DB
}

func NewWorkflowRepository(db *sql.DB) *WorkflowRepository {
	return &WorkflowRepository{DB: db}
}

func (r *WorkflowRepository) ListByUser(ctx context.Context, userID string) ([]entity.Workflow, error) {
	query := `
		SELECT id, user_id, name, status, trigger_type, actions_count, success_rate, last_run_at, created_at
		FROM workflows
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workflows := []entity.Workflow{}
	for rows.Next() {
		var w entity.Workflow
		if err := rows.Scan(
			&w.ID,
			&w.UserID,
			&w.Name,
			&w.Status,
			&w.TriggerType,
			&w.ActionsCount,
			&w.SuccessRate,
			&w.LastRunAt,
			&w.CreatedAt,
		); err != nil {
			return nil, err
		}
		workflows = append(workflows, w)
	}

	return workflows, rows.Err()
}

func (r *WorkflowRepository) Insert(ctx context.Context, workflow *entity.Workflow) error {
	query := `
		INSERT INTO workflows (user_id, name, status, trigger_type, actions_count, success_rate, last_run_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	return r.DB.QueryRowContext(
		ctx,
		query,
		workflow.UserID,
		workflow.Name,
		workflow.Status,
		workflow.TriggerType,
		workflow.ActionsCount,
		workflow.SuccessRate,
		workflow.LastRunAt,
	).Scan(
		&workflow.ID,
		&workflow.CreatedAt,
	)
}
