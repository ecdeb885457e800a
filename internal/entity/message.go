package entity

import (
	"context"
	"time"
)

type Message struct {
	ID                  string    `json:"id"`
	UserID              string    `json:"user_id"`
	Platform            string    `json:"platform"`     // whatsapp, email, website, sms
	MessageType         string    `json:"message_type"` // incoming, outgoing
	Content             string    `json:"content"`
	ResponseTimeSeconds int       `json:"response_time_seconds"`
	IsAutomated         bool      `json:"is_automated"`
	CreatedAt           time.Time `json:"created_at"`
}

type MessageRepositoryInterface interface {
	ListByUser(ctx context.Context, userID string) ([]Message, error)
	Insert(ctx context.Context, msg *Message) error
}
