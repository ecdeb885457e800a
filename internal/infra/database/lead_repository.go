package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/coachflow/coachflow-backend/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) ListByUser(ctx context.Context, userID string) ([]entity.Lead, error) {
	query := `
		SELECT id, user_id, name, email, COALESCE(phone, ''), source, status, temperature, created_at, updated_at
		FROM leads
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []entity.Lead{}
	for rows.Next() {
		var l entity.Lead
		if err := rows.Scan(
			&l.ID,
			&l.UserID,
			&l.Name,
			&l.Email,
			&l.Phone,
			&l.Source,
			&l.Status,
			&l.Temperature,
			&l.CreatedAt,
			&l.UpdatedAt,
		); err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}

	return leads, rows.Err()
}

func (r *LeadRepository) FindByUser(ctx context.Context, userID, id string) (*entity.Lead, error) {
	query := `
		SELECT id, user_id, name, email, COALESCE(phone, ''), source, status, temperature, created_at, updated_at
		FROM leads
		WHERE user_id = $1 AND id = $2
	`

	var l entity.Lead
	err := r.DB.QueryRowContext(ctx, query, userID, id).Scan(
		&l.ID,
		&l.UserID,
		&l.Name,
		&l.Email,
		&l.Phone,
		&l.Source,
		&l.Status,
		&l.Temperature,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}

	return &l, nil
}

func (r *LeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (user_id, name, email, phone, source, status, temperature)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(
		ctx,
		query,
		lead.UserID,
		lead.Name,
		lead.Email,
		nullString(lead.Phone),
		lead.Source,
		lead.Status,
		lead.Temperature,
	).Scan(
		&lead.ID,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
