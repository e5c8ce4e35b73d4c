package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IngredientCategory groups ingredients for reporting
type IngredientCategory string

const (
	IngredientCategoryProtein   IngredientCategory = "PROTEIN"
	IngredientCategoryDairy     IngredientCategory = "DAIRY"
	IngredientCategoryProduce   IngredientCategory = "PRODUCE"
	IngredientCategoryGrain     IngredientCategory = "GRAIN"
	IngredientCategorySpice     IngredientCategory = "SPICE"
	IngredientCategoryBeverage  IngredientCategory = "BEVERAGE"
	IngredientCategoryPackaging IngredientCategory = "PACKAGING"
	IngredientCategoryOther     IngredientCategory = "OTHER"
)

// IsValid reports whether c is one of the fixed categories
func (c IngredientCategory) IsValid() bool {
	switch c {
	case IngredientCategoryProtein,
		IngredientCategoryDairy,
		IngredientCategoryProduce,
		IngredientCategoryGrain,
		IngredientCategorySpice,
		IngredientCategoryBeverage,
		IngredientCategoryPackaging,
		IngredientCategoryOther:
		return true
	}
	return false
}

// Ingredient represents a purchased raw material used by recipes
type Ingredient struct {
	ID               uuid.UUID
	Name             string
	PurchaseCost     decimal.Decimal // Price paid for PurchaseQuantity units of PurchaseUnit
	PurchaseUnit     string          // Unit symbol as typed by the user (kg, l, un, ...)
	PurchaseQuantity decimal.Decimal // Zero means "use the default quantity for the unit"
	WasteRate        decimal.Decimal // Percentage, not capped at 100
	Category         IngredientCategory
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Validate ensures the ingredient adheres to domain rules
func (i *Ingredient) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("%w: ingredient name cannot be empty", ErrInvalidInput)
	}

	if strings.TrimSpace(i.PurchaseUnit) == "" {
		return fmt.Errorf("%w: ingredient purchase unit cannot be empty", ErrInvalidInput)
	}

	if i.PurchaseCost.IsNegative() {
		return fmt.Errorf("%w: ingredient purchase cost cannot be negative", ErrInvalidInput)
	}

	// Zero is allowed and falls back to the unit default table
	if i.PurchaseQuantity.IsNegative() {
		return fmt.Errorf("%w: ingredient purchase quantity cannot be negative", ErrInvalidInput)
	}

	if i.WasteRate.IsNegative() {
		return fmt.Errorf("%w: ingredient waste rate cannot be negative", ErrInvalidInput)
	}

	if !i.Category.IsValid() {
		return fmt.Errorf("%w: unknown ingredient category %q", ErrInvalidInput, i.Category)
	}

	return nil
}

// CostAffectingChange reports whether other differs from i in any field that changes
// the ingredient's effective cost (cost, waste, unit or purchase quantity)
func (i *Ingredient) CostAffectingChange(other *Ingredient) bool {
	return !i.PurchaseCost.Equal(other.PurchaseCost) ||
		!i.WasteRate.Equal(other.WasteRate) ||
		!i.PurchaseQuantity.Equal(other.PurchaseQuantity) ||
		NormalizeUnit(i.PurchaseUnit) != NormalizeUnit(other.PurchaseUnit)
}

// CostPerPurchaseUnit returns the purchase cost divided by the purchase quantity.
// An absent quantity counts as a single purchase unit.
func (i *Ingredient) CostPerPurchaseUnit() decimal.Decimal {
	if !i.PurchaseQuantity.IsPositive() {
		return i.PurchaseCost
	}
	return i.PurchaseCost.Div(i.PurchaseQuantity)
}

// NormalizeUnit lower-cases and trims a unit symbol
func NormalizeUnit(symbol string) string {
	return strings.ToLower(strings.TrimSpace(symbol))
}
