package pricing

import (
	"github.com/shopspring/decimal"
	"github.com/simaogato/recipecost-backend/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// IngredientCost returns the waste-adjusted cost of using usedQty out of a purchase of
// purchaseQty that cost purchaseCost. Both quantities must already be in the same unit.
//
// Logic:
//   - base = usedQty / purchaseQty * purchaseCost
//   - result = base * (1 + wasteRatePct / 100)
//
// Waste inflates the cost, not the consumed quantity. A zero or negative usedQty,
// purchaseQty or purchaseCost yields zero; a negative waste rate counts as no waste.
func IngredientCost(usedQty, purchaseQty, purchaseCost, wasteRatePct decimal.Decimal) decimal.Decimal {
	if !usedQty.IsPositive() || !purchaseQty.IsPositive() || !purchaseCost.IsPositive() {
		return decimal.Zero
	}

	base := usedQty.Div(purchaseQty).Mul(purchaseCost)

	if !wasteRatePct.IsPositive() {
		return base
	}

	return base.Mul(decimal.NewFromInt(1).Add(wasteRatePct.Div(hundred)))
}

// UsageCost prices a recipe usage against the ingredient's current values.
// The usage quantity is in base units, so the purchase side is converted with BaseQuantity.
func UsageCost(usedQty decimal.Decimal, ingredient *domain.Ingredient) decimal.Decimal {
	if ingredient == nil {
		return decimal.Zero
	}

	purchaseQty := BaseQuantity(ingredient.PurchaseQuantity, ingredient.PurchaseUnit)

	return IngredientCost(usedQty, purchaseQty, ingredient.PurchaseCost, ingredient.WasteRate)
}
