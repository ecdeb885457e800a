package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/coachflow/coachflow-backend/internal/entity"
	"github.com/coachflow/coachflow-backend/internal/infra/queue"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) ListByUser(ctx context.Context, userID string) ([]entity.Lead, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindByUser(ctx context.Context, userID, id string) (*entity.Lead, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

// MockBookingRepository
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, userID string) ([]entity.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) Insert(ctx context.Context, booking *entity.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

// MockVoiceCallRepository
type MockVoiceCallRepository struct {
	mock.Mock
}

func (m *MockVoiceCallRepository) ListByUser(ctx context.Context, userID string) ([]entity.VoiceCall, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.VoiceCall), args.Error(1)
}

func (m *MockVoiceCallRepository) Insert(ctx context.Context, call *entity.VoiceCall) error {
	args := m.Called(ctx, call)
	return args.Error(0)
}

// MockMessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) ListByUser(ctx context.Context, userID string) ([]entity.Message, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Message), args.Error(1)
}

func (m *MockMessageRepository) Insert(ctx context.Context, msg *entity.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

// MockWorkflowRepository
type MockWorkflowRepository struct {
	mock.Mock
}

func (m *MockWorkflowRepository) ListByUser(ctx context.Context, userID string) ([]entity.Workflow, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Workflow), args.Error(1)
}

func (m *MockWorkflowRepository) Insert(ctx context.Context, workflow *entity.Workflow) error {
	args := m.Called(ctx, workflow)
	return args.Error(0)
}

// MockEmailQueueRepository
type MockEmailQueueRepository struct {
	mock.Mock
}

func (m *MockEmailQueueRepository) ListByUser(ctx context.Context, userID string) ([]entity.EmailQueueItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.EmailQueueItem), args.Error(1)
}

func (m *MockEmailQueueRepository) Insert(ctx context.Context, item *entity.EmailQueueItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockEmailQueueRepository) SetEngagement(ctx context.Context, userID, id, kind string) error {
	args := m.Called(ctx, userID, id, kind)
	return args.Error(0)
}

func (m *MockEmailQueueRepository) MarkStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishEmailJob(ctx context.Context, job queue.EmailJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}
