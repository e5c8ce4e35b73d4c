package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/simaogato/recipecost-backend/internal/domain"
)

// taxRepository implements domain.TaxRepository
type taxRepository struct {
	db *DB
}

// NewTaxRepository creates a new tax repository
func NewTaxRepository(db *DB) domain.TaxRepository {
	return &taxRepository{db: db}
}

func scanTax(row rowScanner) (*domain.Tax, error) {
	var tax domain.Tax
	var frequency, averageStr string

	if err := row.Scan(&tax.ID, &tax.Name, &tax.Category, &frequency, &averageStr, &tax.CreatedAt); err != nil {
		return nil, err
	}
	tax.Frequency = domain.PaymentFrequency(frequency)

	average, err := parseDecimal(averageStr, "average_value")
	if err != nil {
		return nil, err
	}
	tax.AverageValue = average

	return &tax, nil
}

// GetByID retrieves a tax by its ID
func (r *taxRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tax, error) {
	return r.get(ctx, id, "")
}

// LockByID retrieves a tax with SELECT ... FOR UPDATE; outside a transaction the lock ends with the statement
func (r *taxRepository) LockByID(ctx context.Context, id uuid.UUID) (*domain.Tax, error) {
	return r.get(ctx, id, "FOR UPDATE")
}

func (r *taxRepository) get(ctx context.Context, id uuid.UUID, suffix string) (*domain.Tax, error) {
	query := `
		SELECT id, name, category, frequency, average_value, created_at
		FROM taxes
		WHERE id = $1
	` + suffix

	tax, err := scanTax(r.db.conn(ctx).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("tax %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get tax by ID: %w", err)
	}

	return tax, nil
}

// Create creates a new tax
func (r *taxRepository) Create(ctx context.Context, tax *domain.Tax) error {
	query := `
		INSERT INTO taxes (id, name, category, frequency, average_value, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.conn(ctx).ExecContext(ctx, query,
		tax.ID,
		tax.Name,
		tax.Category,
		string(tax.Frequency),
		tax.AverageValue.String(),
		tax.CreatedAt,
	)
	if err != nil {
		return translateWriteError(err, "create tax")
	}

	return nil
}

// List retrieves all taxes ordered by name
func (r *taxRepository) List(ctx context.Context) ([]*domain.Tax, error) {
	query := `
		SELECT id, name, category, frequency, average_value, created_at
		FROM taxes
		ORDER BY name
	`

	rows, err := r.db.conn(ctx).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list taxes: %w", err)
	}
	defer rows.Close()

	taxes := make([]*domain.Tax, 0)
	for rows.Next() {
		tax, err := scanTax(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tax: %w", err)
		}
		taxes = append(taxes, tax)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate taxes: %w", err)
	}

	return taxes, nil
}

// AddPayment appends a payment to the tax's history
func (r *taxRepository) AddPayment(ctx context.Context, payment *domain.TaxPayment) error {
	query := `
		INSERT INTO tax_payments (id, tax_id, amount, paid_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.conn(ctx).ExecContext(ctx, query, payment.ID, payment.TaxID, payment.Amount.String(), payment.Date)
	if err != nil {
		return translateWriteError(err, "add tax payment")
	}

	return nil
}

// ListPayments retrieves every payment of a tax ordered by date
func (r *taxRepository) ListPayments(ctx context.Context, taxID uuid.UUID) ([]*domain.TaxPayment, error) {
	query := `
		SELECT id, tax_id, amount, paid_at
		FROM tax_payments
		WHERE tax_id = $1
		ORDER BY paid_at, id
	`

	rows, err := r.db.conn(ctx).QueryContext(ctx, query, taxID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tax payments: %w", err)
	}
	defer rows.Close()

	payments := make([]*domain.TaxPayment, 0)
	for rows.Next() {
		var payment domain.TaxPayment
		var amountStr string

		if err := rows.Scan(&payment.ID, &payment.TaxID, &amountStr, &payment.Date); err != nil {
			return nil, fmt.Errorf("failed to scan tax payment: %w", err)
		}
		if payment.Amount, err = parseDecimal(amountStr, "amount"); err != nil {
			return nil, err
		}
		payments = append(payments, &payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tax payments: %w", err)
	}

	return payments, nil
}

// UpdateAverage persists the recomputed average value of a tax
func (r *taxRepository) UpdateAverage(ctx context.Context, tax *domain.Tax) error {
	result, err := r.db.conn(ctx).ExecContext(ctx,
		`UPDATE taxes SET average_value = $2 WHERE id = $1`,
		tax.ID,
		tax.AverageValue.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to update tax average: %w", err)
	}

	return expectOneRow(result, "tax", tax.ID)
}
