package tax

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/simaogato/recipecost-backend/internal/domain"
)

// TaxInput represents the input for registering a tax
type TaxInput struct {
	Name      string
	Category  string
	Frequency domain.PaymentFrequency
}

// PaymentInput represents one payment of a registered tax
type PaymentInput struct {
	TaxID  uuid.UUID
	Amount decimal.Decimal
	Date   time.Time // Optional: zero means now
}

// TaxService handles tax registration and payment history
type TaxService struct {
	TaxRepo domain.TaxRepository
	Tx      domain.Transactor

	logger *zap.Logger
	now    func() time.Time
}

// NewTaxService creates a new TaxService instance
func NewTaxService(taxRepo domain.TaxRepository, tx domain.Transactor, logger *zap.Logger) *TaxService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TaxService{
		TaxRepo: taxRepo,
		Tx:      tx,
		logger:  logger,
		now:     time.Now,
	}
}

// Register creates a new tax with no payments (average value zero)
func (s *TaxService) Register(ctx context.Context, input TaxInput) (*domain.Tax, error) {
	tax := &domain.Tax{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(input.Name),
		Category:     strings.TrimSpace(input.Category),
		Frequency:    domain.PaymentFrequency(strings.ToLower(string(input.Frequency))),
		AverageValue: decimal.Zero,
		CreatedAt:    s.now().UTC(),
	}

	if err := tax.Validate(); err != nil {
		return nil, err
	}

	if err := s.TaxRepo.Create(ctx, tax); err != nil {
		return nil, err
	}

	s.logger.Info("tax registered",
		zap.String("tax_id", tax.ID.String()),
		zap.String("name", tax.Name),
		zap.String("frequency", string(tax.Frequency)),
	)

	return tax, nil
}

// RecordPayment appends a payment and recomputes the tax's average value
// Logic:
//  1. Lock the tax row (must exist) so concurrent payments are averaged in turn
//  2. Append the payment using TaxRepo.AddPayment
//  3. Reload every payment and recompute the arithmetic mean
//  4. Persist the new average using TaxRepo.UpdateAverage
//
// All four steps share one transaction: a failure leaves neither the payment
// nor the average behind.
func (s *TaxService) RecordPayment(ctx context.Context, input PaymentInput) (*domain.Tax, error) {
	if input.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: tax payment amount cannot be negative", domain.ErrInvalidInput)
	}

	date := input.Date
	if date.IsZero() {
		date = s.now()
	}

	var tax *domain.Tax
	var count int
	payment := &domain.TaxPayment{
		ID:     uuid.New(),
		TaxID:  input.TaxID,
		Amount: input.Amount,
		Date:   date.UTC(),
	}

	err := s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		// 1. Lock
		locked, err := s.TaxRepo.LockByID(ctx, input.TaxID)
		if err != nil {
			return err
		}

		// 2. Append
		if err := s.TaxRepo.AddPayment(ctx, payment); err != nil {
			return err
		}

		// 3. Recompute
		stored, err := s.TaxRepo.ListPayments(ctx, locked.ID)
		if err != nil {
			return err
		}
		payments := make([]domain.TaxPayment, 0, len(stored))
		for _, p := range stored {
			payments = append(payments, *p)
		}
		locked.AverageValue = domain.AveragePayment(payments)

		// 4. Persist
		if err := s.TaxRepo.UpdateAverage(ctx, locked); err != nil {
			return err
		}

		tax, count = locked, len(payments)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("tax payment recorded",
		zap.String("tax_id", tax.ID.String()),
		zap.String("amount", payment.Amount.String()),
		zap.Int("payments", count),
		zap.String("average_value", tax.AverageValue.String()),
	)

	return tax, nil
}

// Payments retrieves the payment history of a tax
func (s *TaxService) Payments(ctx context.Context, taxID uuid.UUID) ([]*domain.TaxPayment, error) {
	if _, err := s.TaxRepo.GetByID(ctx, taxID); err != nil {
		return nil, err
	}
	return s.TaxRepo.ListPayments(ctx, taxID)
}

// List retrieves every registered tax
func (s *TaxService) List(ctx context.Context) ([]*domain.Tax, error) {
	return s.TaxRepo.List(ctx)
}
