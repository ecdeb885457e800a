package database

import (
	"context"
	"database/sql"

	"github.com/coachflow/coachflow-backend/internal/entity"
)

type MessageRepository struct {
	DB *sql.DB
}

func NewMessageRepository(db *sql.DB) *MessageRepository {
	return &MessageRepository{DB: db}
}

func (r *MessageRepository) ListByUser(ctx context.Context, userID string) ([]entity.Message, error) {
	query := `
		SELECT id, user_id, platform, message_type, content, response_time_seconds, is_automated, created_at
		FROM messages
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []entity.Message{}
	for rows.Next() {
		var m entity.Message
		if err := rows.Scan(
			&m.ID,
			&m.UserID,
			&m.Platform,
			&m.MessageType,
			&m.Content,
			&m.ResponseTimeSeconds,
			&m.IsAutomated,
			&m.CreatedAt,
		); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}

func (r *MessageRepository) Insert(ctx context.Context, msg *entity.Message) error {
	query := `
		INSERT INTO messages (user_id, platform, message_type, content, response_time_seconds, is_automated)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	return r.DB.QueryRowContext(
		ctx,
		query,
		msg.UserID,
		msg.Platform,
		msg.MessageType,
		msg.Content,
		msg.ResponseTimeSeconds,
		msg.IsAutomated,
	).Scan(
		&msg.ID,
		&msg.CreatedAt,
	)
}
