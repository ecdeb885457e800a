package usecase

import (
	"context"

	"github.com/coachflow/coachflow-backend/internal/infra/queue"
)

type QueueProducerInterface interface {
	PublishEmailJob(ctx context.Context, job queue.EmailJob) error
}
