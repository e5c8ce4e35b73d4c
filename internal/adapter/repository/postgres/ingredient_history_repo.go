package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/simaogato/recipecost-backend/internal/domain"
)

// ingredientHistoryRepository implements domain.IngredientHistoryRepository
type ingredientHistoryRepository struct {
	db *DB
}

// NewIngredientHistoryRepository creates a new ingredient history repository
func NewIngredientHistoryRepository(db *DB) domain.IngredientHistoryRepository {
	return &ingredientHistoryRepository{db: db}
}

// Add appends a history entry; rows are never updated
func (r *ingredientHistoryRepository) Add(ctx context.Context, entry *domain.IngredientHistoryEntry) error {
	query := `
		INSERT INTO ingredient_history (id, ingredient_id, cost_per_unit, waste_rate, recorded_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.conn(ctx).ExecContext(ctx, query,
		entry.ID,
		entry.IngredientID,
		entry.CostPerUnit.String(),
		entry.WasteRate.String(),
		entry.RecordedAt,
	)
	if err != nil {
		return translateWriteError(err, "add ingredient history entry")
	}

	return nil
}

// ListByIngredient retrieves all entries of an ingredient
func (r *ingredientHistoryRepository) ListByIngredient(ctx context.Context, ingredientID uuid.UUID) ([]*domain.IngredientHistoryEntry, error) {
	query := `
		SELECT id, ingredient_id, cost_per_unit, waste_rate, recorded_at
		FROM ingredient_history
		WHERE ingredient_id = $1
	`

	rows, err := r.db.conn(ctx).QueryContext(ctx, query, ingredientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredient history: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.IngredientHistoryEntry, 0)
	for rows.Next() {
		var entry domain.IngredientHistoryEntry
		var costStr, wasteStr string

		if err := rows.Scan(&entry.ID, &entry.IngredientID, &costStr, &wasteStr, &entry.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ingredient history entry: %w", err)
		}
		if entry.CostPerUnit, err = parseDecimal(costStr, "cost_per_unit"); err != nil {
			return nil, err
		}
		if entry.WasteRate, err = parseDecimal(wasteStr, "waste_rate"); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ingredient history: %w", err)
	}

	return entries, nil
}
