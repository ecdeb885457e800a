package entity

import (
	"context"
	"time"
)

type Booking struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	ClientName      string    `json:"client_name,omitempty"`
	ClientEmail     string    `json:"client_email,omitempty"`
	BookingType     string    `json:"booking_type"` // consultation, coaching_session, follow_up, discovery_call
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"` // scheduled, completed, cancelled, no_show
	CreatedAt       time.Time `json:"created_at"`
}

type BookingRepositoryInterface interface {
	ListByUser(ctx context.Context, userID string) ([]Booking, error)
	Insert(ctx context.Context, booking *Booking) error
}
