package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/coachflow/coachflow-backend/internal/entity"
)

type EmailQueueRepository struct {
	DB *sql.DB
}

func NewEmailQueueRepository(db *sql.DB) *EmailQueueRepository {
	return &EmailQueueRepository{DB: db}
}

func (r *EmailQueueRepository) ListByUser(ctx context.Context, userID string) ([]entity.EmailQueueItem, error) {
	query := `
		SELECT id, user_id, lead_id, trigger_type, subject, body, status,
		       sent_at, opened_at, clicked_at, replied_at, created_at
		FROM email_queue
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []entity.EmailQueueItem{}
	for rows.Next() {
		var e entity.EmailQueueItem
		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.LeadID,
			&e.TriggerType,
			&e.Subject,
			&e.Body,
			&e.Status,
			&e.SentAt,
			&e.OpenedAt,
			&e.ClickedAt,
			&e.RepliedAt,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, e)
	}

	return items, rows.Err()
}

func (r *EmailQueueRepository) Insert(ctx context.Context, item *entity.EmailQueueItem) error {
	query := `
		INSERT INTO email_queue (user_id, lead_id, trigger_type, subject, body, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.DB.QueryRowContext(
		ctx,
		query,
		item.UserID,
		item.LeadID,
		item.TriggerType,
		item.Subject,
		item.Body,
		item.Status,
	).Scan(
		&item.ID,
		&item.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return entity.ErrLeadNotFound
		}
		return err
	}

	return nil
}

// SetEngagement stamps one of the engagement columns for an email the user
// owns. kind must already be validated by the caller.
func (r *EmailQueueRepository) SetEngagement(ctx context.Context, userID, id, kind string) error {
	columns := map[string]string{
		"opened":  "opened_at",
		"clicked": "clicked_at",
		"replied": "replied_at",
	}
	column, ok := columns[kind]
	if !ok {
		return fmt.Errorf("unknown engagement kind %q", kind)
	}

	query := fmt.Sprintf(`UPDATE email_queue SET %s = NOW() WHERE user_id = $1 AND id = $2`, column)

	res, err := r.DB.ExecContext(ctx, query, userID, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entity.ErrEmailNotFound
	}

	return nil
}

func (r *EmailQueueRepository) MarkStatus(ctx context.Context, id, status string) error {
	query := `
		UPDATE email_queue
		SET status = $1,
		    sent_at = CASE WHEN $1 = 'sent' THEN NOW() ELSE sent_at END
		WHERE id = $2
	`

	_, err := r.DB.ExecContext(ctx, query, status, id)
	return err
}
