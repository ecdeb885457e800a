package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/coachflow/coachflow-backend/internal/cache"
	"github.com/coachflow/coachflow-backend/internal/entity"
)

func newTestCache(t *testing.T) *cache.Store {
	t.Helper()
	store := cache.New(time.Minute, zap.NewNop())
	t.Cleanup(store.Close)
	return store
}

func TestLeadListRequiresAuthentication(t *testing.T) {
	repo := new(MockLeadRepository)
	service := NewLeadService(repo, newTestCache(t), zap.NewNop())

	_, err := service.List(context.Background(), "")

	assert.ErrorIs(t, err, ErrNotAuthenticated)
	repo.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
}

func TestLeadListReturnsRows(t *testing.T) {
	repo := new(MockLeadRepository)
	leads := []entity.Lead{
		{ID: "lead-2", UserID: "user-1", Name: "Bia"},
		{ID: "lead-1", UserID: "user-1", Name: "Ana"},
	}
	repo.On("ListByUser", mock.Anything, "user-1").Return(leads, nil)

	service := NewLeadService(repo, newTestCache(t), zap.NewNop())

	result, err := service.List(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Equal(t, leads, result)
	repo.AssertExpectations(t)
}

func TestLeadListFailureYieldsEmptySlice(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("ListByUser", mock.Anything, "user-1").Return(nil, errors.New("connection refused"))

	service := NewLeadService(repo, newTestCache(t), zap.NewNop())

	result, err := service.List(context.Background(), "user-1")

	assert.Error(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestLeadListIsCachedPerUser(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("ListByUser", mock.Anything, "user-a").Return([]entity.Lead{{ID: "a-1"}}, nil).Once()
	repo.On("ListByUser", mock.Anything, "user-b").Return([]entity.Lead{{ID: "b-1"}}, nil).Once()

	service := NewLeadService(repo, newTestCache(t), zap.NewNop())

	for i := 0; i < 3; i++ {
		a, err := service.List(context.Background(), "user-a")
		assert.NoError(t, err)
		assert.Equal(t, "a-1", a[0].ID)
	}
	b, err := service.List(context.Background(), "user-b")
	assert.NoError(t, err)
	assert.Equal(t, "b-1", b[0].ID)

	repo.AssertExpectations(t)
}

func TestLeadCreateValidatesInput(t *testing.T) {
	repo := new(MockLeadRepository)
	service := NewLeadService(repo, newTestCache(t), zap.NewNop())

	_, err := service.Create(context.Background(), "user-1", CreateLeadInput{
		Name:  "",
		Email: "not-an-email",
	})

	assert.True(t, IsValidationError(err))
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestLeadCreateRejectsUnknownEnums(t *testing.T) {
	repo := new(MockLeadRepository)
	service := NewLeadService(repo, newTestCache(t), zap.NewNop())

	_, err := service.Create(context.Background(), "user-1", CreateLeadInput{
		Name:        "Ana",
		Email:       "ana@example.com",
		Source:      "carrier_pigeon",
		Temperature: "lukewarm",
	})

	var errs ValidationErrors
	assert.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 2)
}

func TestLeadCreateAppliesDefaults(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("Insert", mock.Anything, mock.MatchedBy(func(l *entity.Lead) bool {
		return l.Source == "website" && l.Status == "new" && l.Temperature == "warm"
	})).Return(nil)

	service := NewLeadService(repo, newTestCache(t), zap.NewNop())

	lead, err := service.Create(context.Background(), "user-1", CreateLeadInput{
		Name:  "  Ana  ",
		Email: "Ana@Example.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Ana", lead.Name)
	assert.Equal(t, "ana@example.com", lead.Email)
	repo.AssertExpectations(t)
}

func TestLeadCreateThenListSeesNewRow(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("ListByUser", mock.Anything, "user-1").
		Return([]entity.Lead{{ID: "lead-1", Name: "Ana"}}, nil).Once()
	repo.On("Insert", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			lead := args.Get(1).(*entity.Lead)
			lead.ID = "lead-2"
			lead.CreatedAt = time.Now()
		}).Return(nil)
	repo.On("ListByUser", mock.Anything, "user-1").
		Return([]entity.Lead{
			{ID: "lead-2", Name: "Bia"},
			{ID: "lead-1", Name: "Ana"},
		}, nil).Once()

	service := NewLeadService(repo, newTestCache(t), zap.NewNop())

	before, err := service.List(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Len(t, before, 1)

	_, err = service.Create(context.Background(), "user-1", CreateLeadInput{
		Name:  "Bia",
		Email: "bia@example.com",
	})
	assert.NoError(t, err)

	after, err := service.List(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Len(t, after, 2)
	assert.Equal(t, "lead-2", after[0].ID)
	repo.AssertExpectations(t)
}

func TestLeadCreateRepoFailureKeepsCache(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("ListByUser", mock.Anything, "user-1").
		Return([]entity.Lead{{ID: "lead-1"}}, nil).Once()
	repo.On("Insert", mock.Anything, mock.Anything).Return(errors.New("constraint violation"))

	service := NewLeadService(repo, newTestCache(t), zap.NewNop())

	_, err := service.List(context.Background(), "user-1")
	assert.NoError(t, err)

	_, err = service.Create(context.Background(), "user-1", CreateLeadInput{
		Name:  "Bia",
		Email: "bia@example.com",
	})
	assert.True(t, IsTechnicalError(err))

	// The failed write must not have dropped the cached list.
	result, err := service.List(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Len(t, result, 1)
	repo.AssertExpectations(t)
}
