package entity

import (
	"context"
	"time"
)

type VoiceCall struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	CallerPhone      string    `json:"caller_phone,omitempty"`
	DurationSeconds  int       `json:"duration_seconds"`
	Status           string    `json:"status"` // completed, failed, in_progress
	ResolutionStatus string    `json:"resolution_status"`
	Transcript       *string   `json:"transcript,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type VoiceCallRepositoryInterface interface {
	ListByUser(ctx context.Context, userID string) ([]VoiceCall, error)
	Insert(ctx context.Context, call *VoiceCall) error
}
