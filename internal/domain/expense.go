package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents a fixed operational expense (rent, power, salaries)
// that is amortized over the kitchen's operating time
type Expense struct {
	ID                   uuid.UUID
	Name                 string
	MonthlyCost          decimal.Decimal
	OperatingHoursPerDay decimal.Decimal
	CreatedAt            time.Time
}

// Validate ensures the expense adheres to domain rules
func (e *Expense) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: expense name cannot be empty", ErrInvalidInput)
	}

	if e.MonthlyCost.IsNegative() {
		return fmt.Errorf("%w: expense monthly cost cannot be negative", ErrInvalidInput)
	}

	if !e.OperatingHoursPerDay.IsPositive() {
		return fmt.Errorf("%w: expense operating hours must be positive", ErrInvalidInput)
	}

	return nil
}
