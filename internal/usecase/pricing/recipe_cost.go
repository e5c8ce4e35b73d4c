package pricing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/recipecost-backend/internal/domain"
)

// Usage is one resolved recipe line: the quantity used (base units) and the ingredient
// record as it currently stands
type Usage struct {
	Quantity   decimal.Decimal
	Ingredient *domain.Ingredient
}

// LineCost is the contribution of a single usage to the ingredients cost
type LineCost struct {
	IngredientID uuid.UUID
	Quantity     decimal.Decimal
	Cost         decimal.Decimal
}

// RecipeInput groups everything PriceRecipe needs
type RecipeInput struct {
	Usages          []Usage
	PrepTimeMinutes decimal.Decimal
	Expenses        []*domain.Expense
	Taxes           []*domain.Tax
	ProfitMarginPct decimal.Decimal
}

// Breakdown is the full result of pricing a recipe.
// Nothing is rounded; use RoundCurrency at the presentation boundary.
type Breakdown struct {
	Lines                    []LineCost
	IngredientsCost          decimal.Decimal
	OperationalRatePerMinute decimal.Decimal
	OperationalCost          decimal.Decimal
	TotalCost                decimal.Decimal // Before margin
	FinalPrice               decimal.Decimal // After margin
}

// PriceRecipe computes the production cost and sale price of one unit of a recipe
// Logic:
//  1. ingredientsCost = sum of UsageCost over all usages
//  2. operationalCost = OperationalRatePerMinute(all expenses, all taxes) * prepTimeMinutes
//  3. totalCost = ingredientsCost + operationalCost
//  4. finalPrice = totalCost * (1 + profitMarginPct / 100)
//
// Degenerate lines contribute zero instead of failing the whole recipe.
// Negative preparation time or margin count as zero.
func PriceRecipe(input RecipeInput) Breakdown {
	lines := make([]LineCost, 0, len(input.Usages))
	ingredientsCost := decimal.Zero

	// 1. Ingredients
	for _, usage := range input.Usages {
		cost := UsageCost(usage.Quantity, usage.Ingredient)
		line := LineCost{Quantity: usage.Quantity, Cost: cost}
		if usage.Ingredient != nil {
			line.IngredientID = usage.Ingredient.ID
		}
		lines = append(lines, line)
		ingredientsCost = ingredientsCost.Add(cost)
	}

	// 2. Operational time
	rate := OperationalRatePerMinute(input.Expenses, input.Taxes)
	operationalCost := decimal.Zero
	if input.PrepTimeMinutes.IsPositive() {
		operationalCost = rate.Mul(input.PrepTimeMinutes)
	}

	// 3. Total production cost
	totalCost := ingredientsCost.Add(operationalCost)

	// 4. Margin
	finalPrice := totalCost
	if input.ProfitMarginPct.IsPositive() {
		finalPrice = totalCost.Mul(decimal.NewFromInt(1).Add(input.ProfitMarginPct.Div(hundred)))
	}

	return Breakdown{
		Lines:                    lines,
		IngredientsCost:          ingredientsCost,
		OperationalRatePerMinute: rate,
		OperationalCost:          operationalCost,
		TotalCost:                totalCost,
		FinalPrice:               finalPrice,
	}
}

// RoundCurrency rounds a monetary value to cents (half away from zero)
func RoundCurrency(value decimal.Decimal) decimal.Decimal {
	return value.Round(2)
}

// ResolveUsages pairs stored recipe usages with the current ingredient records.
// A usage whose ingredient is missing from byID resolves to a nil ingredient and prices at zero.
func ResolveUsages(usages []domain.RecipeIngredient, byID map[uuid.UUID]*domain.Ingredient) []Usage {
	resolved := make([]Usage, 0, len(usages))
	for _, u := range usages {
		resolved = append(resolved, Usage{Quantity: u.Quantity, Ingredient: byID[u.IngredientID]})
	}
	return resolved
}

// IndexIngredients maps ingredients by ID
func IndexIngredients(ingredients []*domain.Ingredient) map[uuid.UUID]*domain.Ingredient {
	byID := make(map[uuid.UUID]*domain.Ingredient, len(ingredients))
	for _, ingredient := range ingredients {
		if ingredient != nil {
			byID[ingredient.ID] = ingredient
		}
	}
	return byID
}
