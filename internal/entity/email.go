package entity

import (
	"context"
	"time"
)

// EmailQueueItem is one automation email scheduled for a lead. The worker
// flips Status from pending to sent (or failed) after dispatch; engagement
// timestamps are filled in later by tracking callbacks.
type EmailQueueItem struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	LeadID      string     `json:"lead_id"`
	TriggerType string     `json:"trigger_type"`
	Subject     string     `json:"subject"`
	Body        string     `json:"body"`
	Status      string     `json:"status"` // pending, sent, failed
	SentAt      *time.Time `json:"sent_at,omitempty"`
	OpenedAt    *time.Time `json:"opened_at,omitempty"`
	ClickedAt   *time.Time `json:"clicked_at,omitempty"`
	RepliedAt   *time.Time `json:"replied_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

const (
	EmailStatusPending = "pending"
	EmailStatusSent    = "sent"
	EmailStatusFailed  = "failed"
)

type EmailQueueRepositoryInterface interface {
	ListByUser(ctx context.Context, userID string) ([]EmailQueueItem, error)
	Insert(ctx context.Context, item *EmailQueueItem) error
	SetEngagement(ctx context.Context, userID, id, kind string) error
	MarkStatus(ctx context.Context, id, status string) error
}
