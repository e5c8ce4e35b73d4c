package expense

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/recipecost-backend/internal/domain"
)

// MockExpenseRepository is a mock implementation of ExpenseRepository for testing
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) Update(ctx context.Context, expense *domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockExpenseRepository) List(ctx context.Context) ([]*domain.Expense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Expense), args.Error(1)
}

func TestRegister_Success(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockExpenseRepository)
	service := NewExpenseService(mockRepo, nil)

	mockRepo.On("Create", ctx, mock.MatchedBy(func(e *domain.Expense) bool {
		return e.Name == "Aluguel" &&
			e.MonthlyCost.Equal(decimal.NewFromInt(3000)) &&
			e.OperatingHoursPerDay.Equal(decimal.NewFromInt(10))
	})).Return(nil)

	expense, err := service.Register(ctx, ExpenseInput{
		Name:                 "  Aluguel ",
		MonthlyCost:          decimal.NewFromInt(3000),
		OperatingHoursPerDay: decimal.NewFromInt(10),
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, expense.ID)
	assert.False(t, expense.CreatedAt.IsZero())
	mockRepo.AssertExpectations(t)
}

func TestRegister_ZeroHoursRejected(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockExpenseRepository)
	service := NewExpenseService(mockRepo, nil)

	_, err := service.Register(ctx, ExpenseInput{
		Name:                 "Energia",
		MonthlyCost:          decimal.NewFromInt(500),
		OperatingHoursPerDay: decimal.Zero,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestUpdate_Success(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockExpenseRepository)
	service := NewExpenseService(mockRepo, nil)

	current := &domain.Expense{
		ID:                   uuid.New(),
		Name:                 "Energia",
		MonthlyCost:          decimal.NewFromInt(500),
		OperatingHoursPerDay: decimal.NewFromInt(8),
	}

	mockRepo.On("GetByID", ctx, current.ID).Return(current, nil)
	mockRepo.On("Update", ctx, mock.MatchedBy(func(e *domain.Expense) bool {
		return e.ID == current.ID && e.MonthlyCost.Equal(decimal.NewFromInt(650))
	})).Return(nil)

	updated, err := service.Update(ctx, current.ID, ExpenseInput{
		Name:                 "Energia",
		MonthlyCost:          decimal.NewFromInt(650),
		OperatingHoursPerDay: decimal.NewFromInt(8),
	})

	require.NoError(t, err)
	assert.True(t, updated.MonthlyCost.Equal(decimal.NewFromInt(650)))
	mockRepo.AssertExpectations(t)
}

func TestDelete_NotFound(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockExpenseRepository)
	service := NewExpenseService(mockRepo, nil)
	id := uuid.New()

	mockRepo.On("GetByID", ctx, id).Return(nil, domain.ErrNotFound)

	err := service.Delete(ctx, id)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	mockRepo.AssertNotCalled(t, "Delete")
}

func TestDelete_Success(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockExpenseRepository)
	service := NewExpenseService(mockRepo, nil)
	current := &domain.Expense{ID: uuid.New(), Name: "Gás"}

	mockRepo.On("GetByID", ctx, current.ID).Return(current, nil)
	mockRepo.On("Delete", ctx, current.ID).Return(nil)

	require.NoError(t, service.Delete(ctx, current.ID))
	mockRepo.AssertExpectations(t)
}
