package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentFrequency is how often a tax is paid
type PaymentFrequency string

const (
	PaymentFrequencyMonthly PaymentFrequency = "monthly"
	PaymentFrequencyAnnual  PaymentFrequency = "annual"
)

// Tax represents a recurring tax whose cost is spread over a 24-hour day
type Tax struct {
	ID           uuid.UUID
	Name         string
	Category     string // Free text
	Frequency    PaymentFrequency
	AverageValue decimal.Decimal // Mean of all recorded payments
	CreatedAt    time.Time
}

// TaxPayment is one entry of a tax's append-only payment history
type TaxPayment struct {
	ID     uuid.UUID
	TaxID  uuid.UUID
	Amount decimal.Decimal
	Date   time.Time
}

// Validate ensures the tax adheres to domain rules
func (t *Tax) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: tax name cannot be empty", ErrInvalidInput)
	}

	if t.Frequency != PaymentFrequencyMonthly && t.Frequency != PaymentFrequencyAnnual {
		return fmt.Errorf("%w: tax frequency must be monthly or annual", ErrInvalidInput)
	}

	if t.AverageValue.IsNegative() {
		return fmt.Errorf("%w: tax average value cannot be negative", ErrInvalidInput)
	}

	return nil
}

// MonthlyEquivalent returns the average value expressed as a monthly cost
func (t *Tax) MonthlyEquivalent() decimal.Decimal {
	if t.Frequency == PaymentFrequencyAnnual {
		return t.AverageValue.Div(decimal.NewFromInt(12))
	}
	return t.AverageValue
}

// AveragePayment returns the arithmetic mean of the payment amounts (zero when empty)
func AveragePayment(payments []TaxPayment) decimal.Decimal {
	if len(payments) == 0 {
		return decimal.Zero
	}

	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}

	return total.Div(decimal.NewFromInt(int64(len(payments))))
}
