package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Recipe represents a menu item priced from its ingredients and preparation time
type Recipe struct {
	ID              uuid.UUID
	Name            string
	Category        string
	PrepTimeMinutes decimal.Decimal
	ProfitMarginPct decimal.Decimal // No upper bound
	Ingredients     []RecipeIngredient
	TotalCost       decimal.Decimal // Ingredients + operational, BEFORE margin
	FinalPrice      decimal.Decimal // TotalCost with the profit margin applied
	PricedAt        *time.Time      // NULL until priced at least once
	CreatedAt       time.Time
}

// RecipeIngredient links a recipe to an ingredient with the quantity it uses.
// Quantity is expressed in the base unit of the ingredient's unit family (g, ml or unit).
// The usage does not snapshot cost: it is resolved against the ingredient's current values.
type RecipeIngredient struct {
	ID           uuid.UUID
	RecipeID     uuid.UUID
	IngredientID uuid.UUID
	Quantity     decimal.Decimal
}

// Validate ensures the recipe adheres to domain rules
func (r *Recipe) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: recipe name cannot be empty", ErrInvalidInput)
	}

	if r.PrepTimeMinutes.IsNegative() {
		return fmt.Errorf("%w: recipe preparation time cannot be negative", ErrInvalidInput)
	}

	if r.ProfitMarginPct.IsNegative() {
		return fmt.Errorf("%w: recipe profit margin cannot be negative", ErrInvalidInput)
	}

	seen := make(map[uuid.UUID]bool, len(r.Ingredients))
	for _, usage := range r.Ingredients {
		if usage.IngredientID == uuid.Nil {
			return fmt.Errorf("%w: recipe usage must reference an ingredient", ErrInvalidInput)
		}
		if seen[usage.IngredientID] {
			return fmt.Errorf("%w: ingredient %s used twice in recipe", ErrInvalidInput, usage.IngredientID)
		}
		seen[usage.IngredientID] = true

		if usage.Quantity.IsNegative() {
			return fmt.Errorf("%w: recipe usage quantity cannot be negative", ErrInvalidInput)
		}
	}

	return nil
}
