package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/coachflow/coachflow-backend/internal/entity"
)

type statsFixture struct {
	leadRepo     *MockLeadRepository
	bookingRepo  *MockBookingRepository
	callRepo     *MockVoiceCallRepository
	messageRepo  *MockMessageRepository
	workflowRepo *MockWorkflowRepository
	uc           *DashboardStatsUseCase
}

func newStatsFixture(t *testing.T) *statsFixture {
	t.Helper()
	store := newTestCache(t)
	log := zap.NewNop()

	f := &statsFixture{
		leadRepo:     new(MockLeadRepository),
		bookingRepo:  new(MockBookingRepository),
		callRepo:     new(MockVoiceCallRepository),
		messageRepo:  new(MockMessageRepository),
		workflowRepo: new(MockWorkflowRepository),
	}
	f.uc = NewDashboardStatsUseCase(
		NewLeadService(f.leadRepo, store, log),
		NewBookingService(f.bookingRepo, store, log),
		NewVoiceCallService(f.callRepo, store, log),
		NewMessageService(f.messageRepo, store, log),
		NewWorkflowService(f.workflowRepo, store, log),
		store,
		log,
	)
	return f
}

func (f *statsFixture) returns(
	leads []entity.Lead,
	bookings []entity.Booking,
	calls []entity.VoiceCall,
	messages []entity.Message,
	workflows []entity.Workflow,
) {
	f.leadRepo.On("ListByUser", mock.Anything, mock.Anything).Return(leads, nil)
	f.bookingRepo.On("ListByUser", mock.Anything, mock.Anything).Return(bookings, nil)
	f.callRepo.On("ListByUser", mock.Anything, mock.Anything).Return(calls, nil)
	f.messageRepo.On("ListByUser", mock.Anything, mock.Anything).Return(messages, nil)
	f.workflowRepo.On("ListByUser", mock.Anything, mock.Anything).Return(workflows, nil)
}

func TestDashboardStatsRequiresAuthentication(t *testing.T) {
	f := newStatsFixture(t)

	_, err := f.uc.Execute(context.Background(), "")

	assert.ErrorIs(t, err, ErrNotAuthenticated)
	f.leadRepo.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
}

func TestDashboardStatsAggregatesTotals(t *testing.T) {
	f := newStatsFixture(t)
	f.returns(
		[]entity.Lead{{Status: "new"}, {Status: "contacted"}, {Status: entity.LeadStatusConverted}},
		[]entity.Booking{{}, {}},
		[]entity.VoiceCall{{DurationSeconds: 120}},
		[]entity.Message{{}, {}, {}, {}},
		[]entity.Workflow{
			{Status: entity.WorkflowStatusActive},
			{Status: "paused"},
			{Status: entity.WorkflowStatusActive},
		},
	)

	stats, err := f.uc.Execute(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Equal(t, 3, stats.TotalLeads)
	assert.Equal(t, 2, stats.TotalBookings)
	assert.Equal(t, 1, stats.TotalCalls)
	assert.Equal(t, 4, stats.TotalMessages)
	assert.Equal(t, 2, stats.ActiveWorkflows)
}

func TestDashboardStatsConversionRateRounds(t *testing.T) {
	leads := make([]entity.Lead, 0, 25)
	for i := 0; i < 25; i++ {
		status := "new"
		if i < 6 {
			status = entity.LeadStatusConverted
		}
		leads = append(leads, entity.Lead{Status: status})
	}

	f := newStatsFixture(t)
	f.returns(leads, nil, nil, nil, nil)

	stats, err := f.uc.Execute(context.Background(), "user-1")

	assert.NoError(t, err)
	// 6/25 = 24%
	assert.Equal(t, 24, stats.ConversionRate)
}

func TestDashboardStatsZeroLeadsZeroRate(t *testing.T) {
	f := newStatsFixture(t)
	f.returns(nil, nil, nil, nil, nil)

	stats, err := f.uc.Execute(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Equal(t, 0, stats.TotalLeads)
	assert.Equal(t, 0, stats.ConversionRate)
	assert.Equal(t, 0, stats.AvgCallDuration)
}

func TestDashboardStatsAvgCallDurationRounds(t *testing.T) {
	f := newStatsFixture(t)
	f.returns(nil, nil, []entity.VoiceCall{
		{DurationSeconds: 100},
		{DurationSeconds: 101},
		{DurationSeconds: 101},
	}, nil, nil)

	stats, err := f.uc.Execute(context.Background(), "user-1")

	assert.NoError(t, err)
	// 302/3 = 100.67 rounds to 101
	assert.Equal(t, 101, stats.AvgCallDuration)
}

func TestDashboardStatsSurvivesPartialFailure(t *testing.T) {
	f := newStatsFixture(t)
	f.leadRepo.On("ListByUser", mock.Anything, mock.Anything).
		Return([]entity.Lead{{Status: entity.LeadStatusConverted}, {Status: "new"}}, nil)
	f.bookingRepo.On("ListByUser", mock.Anything, mock.Anything).
		Return([]entity.Booking{{}}, nil)
	f.callRepo.On("ListByUser", mock.Anything, mock.Anything).
		Return(nil, errors.New("voice provider timeout"))
	f.messageRepo.On("ListByUser", mock.Anything, mock.Anything).
		Return([]entity.Message{{}, {}}, nil)
	f.workflowRepo.On("ListByUser", mock.Anything, mock.Anything).
		Return([]entity.Workflow{{Status: entity.WorkflowStatusActive}}, nil)

	stats, err := f.uc.Execute(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Equal(t, 0, stats.TotalCalls)
	assert.Equal(t, 0, stats.AvgCallDuration)
	assert.Equal(t, 2, stats.TotalLeads)
	assert.Equal(t, 1, stats.TotalBookings)
	assert.Equal(t, 2, stats.TotalMessages)
	assert.Equal(t, 50, stats.ConversionRate)
	assert.Equal(t, 1, stats.ActiveWorkflows)
}

func TestDashboardStatsResponseRateBaseline(t *testing.T) {
	f := newStatsFixture(t)
	f.returns(nil, nil, nil, nil, nil)

	stats, err := f.uc.Execute(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Equal(t, 94, stats.ResponseRate)
}

func TestDashboardStatsIsCached(t *testing.T) {
	f := newStatsFixture(t)
	f.leadRepo.On("ListByUser", mock.Anything, mock.Anything).Return([]entity.Lead{{}}, nil).Once()
	f.bookingRepo.On("ListByUser", mock.Anything, mock.Anything).Return(nil, nil).Once()
	f.callRepo.On("ListByUser", mock.Anything, mock.Anything).Return(nil, nil).Once()
	f.messageRepo.On("ListByUser", mock.Anything, mock.Anything).Return(nil, nil).Once()
	f.workflowRepo.On("ListByUser", mock.Anything, mock.Anything).Return(nil, nil).Once()

	first, err := f.uc.Execute(context.Background(), "user-1")
	assert.NoError(t, err)

	second, err := f.uc.Execute(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Equal(t, first, second)

	f.leadRepo.AssertExpectations(t)
}
