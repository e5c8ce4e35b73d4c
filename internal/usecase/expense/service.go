package expense

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/simaogato/recipecost-backend/internal/domain"
)

// ExpenseInput represents the input for registering or editing an operational expense
type ExpenseInput struct {
	Name                 string
	MonthlyCost          decimal.Decimal
	OperatingHoursPerDay decimal.Decimal
}

// ExpenseService handles the operational expense registry
type ExpenseService struct {
	ExpenseRepo domain.ExpenseRepository

	logger *zap.Logger
}

// NewExpenseService creates a new ExpenseService instance
func NewExpenseService(expenseRepo domain.ExpenseRepository, logger *zap.Logger) *ExpenseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExpenseService{
		ExpenseRepo: expenseRepo,
		logger:      logger,
	}
}

// Register creates a new operational expense
// Logic:
//  1. Build the expense from the input
//  2. Validate (name, non-negative cost, positive operating hours)
//  3. Save using ExpenseRepo.Create
func (s *ExpenseService) Register(ctx context.Context, input ExpenseInput) (*domain.Expense, error) {
	expense := &domain.Expense{
		ID:                   uuid.New(),
		Name:                 strings.TrimSpace(input.Name),
		MonthlyCost:          input.MonthlyCost,
		OperatingHoursPerDay: input.OperatingHoursPerDay,
		CreatedAt:            time.Now().UTC(),
	}

	if err := expense.Validate(); err != nil {
		return nil, err
	}

	if err := s.ExpenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	s.logger.Info("expense registered",
		zap.String("expense_id", expense.ID.String()),
		zap.String("name", expense.Name),
		zap.String("monthly_cost", expense.MonthlyCost.String()),
	)

	return expense, nil
}

// Update overwrites the editable fields of an existing expense
func (s *ExpenseService) Update(ctx context.Context, id uuid.UUID, input ExpenseInput) (*domain.Expense, error) {
	current, err := s.ExpenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	updated.Name = strings.TrimSpace(input.Name)
	updated.MonthlyCost = input.MonthlyCost
	updated.OperatingHoursPerDay = input.OperatingHoursPerDay

	if err := updated.Validate(); err != nil {
		return nil, err
	}

	if err := s.ExpenseRepo.Update(ctx, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

// Delete removes an expense
func (s *ExpenseService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.ExpenseRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.ExpenseRepo.Delete(ctx, id)
}

// List retrieves every registered expense
func (s *ExpenseService) List(ctx context.Context) ([]*domain.Expense, error) {
	return s.ExpenseRepo.List(ctx)
}
