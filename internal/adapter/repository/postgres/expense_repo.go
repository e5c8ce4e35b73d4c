package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/simaogato/recipecost-backend/internal/domain"
)

// expenseRepository implements domain.ExpenseRepository
type expenseRepository struct {
	db *DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *DB) domain.ExpenseRepository {
	return &expenseRepository{db: db}
}

func scanExpense(row rowScanner) (*domain.Expense, error) {
	var expense domain.Expense
	var costStr, hoursStr string

	if err := row.Scan(&expense.ID, &expense.Name, &costStr, &hoursStr, &expense.CreatedAt); err != nil {
		return nil, err
	}

	var err error
	if expense.MonthlyCost, err = parseDecimal(costStr, "monthly_cost"); err != nil {
		return nil, err
	}
	if expense.OperatingHoursPerDay, err = parseDecimal(hoursStr, "operating_hours_per_day"); err != nil {
		return nil, err
	}

	return &expense, nil
}

// GetByID retrieves an expense by its ID
func (r *expenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Expense, error) {
	query := `
		SELECT id, name, monthly_cost, operating_hours_per_day, created_at
		FROM expenses
		WHERE id = $1
	`

	expense, err := scanExpense(r.db.conn(ctx).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("expense %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get expense by ID: %w", err)
	}

	return expense, nil
}

// Create creates a new expense
func (r *expenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	query := `
		INSERT INTO expenses (id, name, monthly_cost, operating_hours_per_day, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.conn(ctx).ExecContext(ctx, query,
		expense.ID,
		expense.Name,
		expense.MonthlyCost.String(),
		expense.OperatingHoursPerDay.String(),
		expense.CreatedAt,
	)
	if err != nil {
		return translateWriteError(err, "create expense")
	}

	return nil
}

// Update overwrites the mutable fields of an expense
func (r *expenseRepository) Update(ctx context.Context, expense *domain.Expense) error {
	query := `
		UPDATE expenses
		SET name = $2, monthly_cost = $3, operating_hours_per_day = $4
		WHERE id = $1
	`

	result, err := r.db.conn(ctx).ExecContext(ctx, query,
		expense.ID,
		expense.Name,
		expense.MonthlyCost.String(),
		expense.OperatingHoursPerDay.String(),
	)
	if err != nil {
		return translateWriteError(err, "update expense")
	}

	return expectOneRow(result, "expense", expense.ID)
}

// Delete removes an expense
func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.conn(ctx).ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	return expectOneRow(result, "expense", id)
}

// List retrieves all expenses ordered by name
func (r *expenseRepository) List(ctx context.Context) ([]*domain.Expense, error) {
	query := `
		SELECT id, name, monthly_cost, operating_hours_per_day, created_at
		FROM expenses
		ORDER BY name
	`

	rows, err := r.db.conn(ctx).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses := make([]*domain.Expense, 0)
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	return expenses, nil
}
