package database

import (
	"context"
	"database/sql"

	"github.com/coachflow/coachflow-backend/internal/entity"
)

type VoiceCallRepository struct {
	DB *sql.DB
}

func NewVoiceCallRepository(db *sql.DB) *VoiceCallRepository {
	return &VoiceCallRepository{DB: db}
}

func (r *VoiceCallRepository) ListByUser(ctx context.Context, userID string) ([]entity.VoiceCall, error) {
	query := `
		SELECT id, user_id, COALESCE(caller_phone, ''), duration_seconds, status, resolution_status, transcript, created_at
		FROM voice_calls
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	calls := []entity.VoiceCall{}
	for rows.Next() {
		var c entity.VoiceCall
		if err := rows.Scan(
			&c.ID,
			&c.UserID,
			&c.CallerPhone,
			&c.DurationSeconds,
			&c.Status,
			&c.ResolutionStatus,
			&c.Transcript,
			&c.CreatedAt,
		); err != nil {
			return nil, err
		}
		calls = append(calls, c)
	}

	return calls, rows.Err()
}

func (r *VoiceCallRepository) Insert(ctx context.Context, call *entity.VoiceCall) error {
	query := `
		INSERT INTO voice_calls (user_id, caller_phone, duration_seconds, status, resolution_status, transcript)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	return r.DB.QueryRowContext(
		ctx,
		query,
		call.UserID,
		nullString(call.CallerPhone),
		call.DurationSeconds,
		call.Status,
		call.ResolutionStatus,
		call.Transcript,
	).Scan(
		&call.ID,
		&call.CreatedAt,
	)
}
