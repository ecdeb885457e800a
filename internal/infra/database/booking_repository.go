package database

import (
	"context"
	"database/sql"

	"github.com/coachflow/coachflow-backend/internal/entity"
)

type BookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{DB: db}
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]entity.Booking, error) {
	query := `
		SELECT id, user_id, COALESCE(client_name, ''), COALESCE(client_email, ''),
		       booking_type, scheduled_at, duration_minutes, status, created_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []entity.Booking{}
	for rows.Next() {
		var b entity.Booking
		if err := rows.Scan(
			&b.ID,
			&b.UserID,
			&b.ClientName,
			&b.ClientEmail,
			&b.BookingType,
			&b.ScheduledAt,
			&b.DurationMinutes,
			&b.Status,
			&b.CreatedAt,
		); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}

func (r *BookingRepository) Insert(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (user_id, client_name, client_email, booking_type, scheduled_at, duration_minutes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	return r.DB.QueryRowContext(
		ctx,
		query,
		booking.UserID,
		nullString(booking.ClientName),
		nullString(booking.ClientEmail),
		booking.BookingType,
		booking.ScheduledAt,
		booking.DurationMinutes,
		booking.Status,
	).Scan(
		&booking.ID,
		&booking.CreatedAt,
	)
}
