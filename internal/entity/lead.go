package entity

import (
	"context"
	"time"
)

type Lead struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Source      string    `json:"source"`      // website, social_media, referral, email_campaign, cold_outreach, other
	Status      string    `json:"status"`      // new, contacted, qualified, converted
	Temperature string    `json:"temperature"` // hot, warm, cold
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

const LeadStatusConverted = "converted"

type LeadRepositoryInterface interface {
	ListByUser(ctx context.Context, userID string) ([]Lead, error)
	FindByUser(ctx context.Context, userID, id string) (*Lead, error)
	Insert(ctx context.Context, lead *Lead) error
}
