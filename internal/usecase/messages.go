package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/coachflow/coachflow-backend/internal/cache"
	"github.com/coachflow/coachflow-backend/internal/entity"
)

const messagesCacheEntity = "messages"

type MessageService struct {
	Repo  entity.MessageRepositoryInterface
	Cache *cache.Store
	Log   *zap.Logger
}

func NewMessageService(repo entity.MessageRepositoryInterface, store *cache.Store, log *zap.Logger) *MessageService {
	return &MessageService{Repo: repo, Cache: store, Log: log}
}

func (s *MessageService) List(ctx context.Context, userID string) ([]entity.Message, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	v, err := s.Cache.GetOrFetch(ctx, cache.Key{Entity: messagesCacheEntity, UserID: userID}, func(ctx context.Context) (any, error) {
		return s.Repo.ListByUser(ctx, userID)
	})
	if err != nil {
		s.Log.Error("listing messages failed", zap.String("user_id", userID), zap.Error(err))
		return []entity.Message{}, err
	}

	return v.([]entity.Message), nil
}

type CreateMessageInput struct {
	Platform            string `json:"platform"`
	MessageType         string `json:"message_type"`
	Content             string `json:"content"`
	ResponseTimeSeconds int    `json:"response_time_seconds"`
	IsAutomated         bool   `json:"is_automated"`
}

func (s *MessageService) Create(ctx context.Context, userID string, input CreateMessageInput) (*entity.Message, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	if errs := ValidateCreateMessageInput(input); len(errs) > 0 {
		return nil, errs
	}

	msg := &entity.Message{
		UserID:              userID,
		Platform:            input.Platform,
		MessageType:         input.MessageType,
		Content:             strings.TrimSpace(input.Content),
		ResponseTimeSeconds: input.ResponseTimeSeconds,
		IsAutomated:         input.IsAutomated,
	}

	if err := s.Repo.Insert(ctx, msg); err != nil {
		s.Log.Error("creating message failed", zap.String("user_id", userID), zap.Error(err))
		return nil, &TechnicalError{Code: "MESSAGE_INSERT", Message: "failed to create message", Err: err}
	}

	s.Cache.Invalidate(cache.Key{Entity: messagesCacheEntity, UserID: userID})
	s.Cache.Invalidate(cache.Key{Entity: statsCacheEntity, UserID: userID})

	return msg, nil
}
