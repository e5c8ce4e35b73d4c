package recipecostv1

import (
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Decimal values travel as strings ("12.50") so no precision is lost on the wire.

type Ingredient struct {
	Id               string                 `json:"id"`
	Name             string                 `json:"name"`
	PurchaseCost     string                 `json:"purchase_cost"`
	PurchaseUnit     string                 `json:"purchase_unit"`
	PurchaseQuantity string                 `json:"purchase_quantity"`
	WasteRate        string                 `json:"waste_rate"`
	Category         string                 `json:"category"`
	CreatedAt        *timestamppb.Timestamp `json:"created_at,omitempty"`
	UpdatedAt        *timestamppb.Timestamp `json:"updated_at,omitempty"`
}

type RegisterIngredientRequest struct {
	Name             string `json:"name"`
	PurchaseCost     string `json:"purchase_cost"`
	PurchaseUnit     string `json:"purchase_unit"`
	PurchaseQuantity string `json:"purchase_quantity,omitempty"`
	WasteRate        string `json:"waste_rate,omitempty"`
	Category         string `json:"category"`
}

type RegisterIngredientResponse struct {
	Ingredient *Ingredient `json:"ingredient"`
}

type UpdateIngredientRequest struct {
	IngredientId     string `json:"ingredient_id"`
	Name             string `json:"name"`
	PurchaseCost     string `json:"purchase_cost"`
	PurchaseUnit     string `json:"purchase_unit"`
	PurchaseQuantity string `json:"purchase_quantity,omitempty"`
	WasteRate        string `json:"waste_rate,omitempty"`
	Category         string `json:"category"`
}

type UpdateIngredientResponse struct {
	Ingredient *Ingredient `json:"ingredient"`
}

type GetIngredientRequest struct {
	IngredientId string `json:"ingredient_id"`
}

type GetIngredientResponse struct {
	Ingredient *Ingredient `json:"ingredient"`
}

type DeleteIngredientRequest struct {
	IngredientId string `json:"ingredient_id"`
}

type DeleteIngredientResponse struct{}

type ListIngredientsRequest struct{}

type ListIngredientsResponse struct {
	Ingredients []*Ingredient `json:"ingredients"`
}

type Expense struct {
	Id                   string                 `json:"id"`
	Name                 string                 `json:"name"`
	MonthlyCost          string                 `json:"monthly_cost"`
	OperatingHoursPerDay string                 `json:"operating_hours_per_day"`
	CostPerMinute        string                 `json:"cost_per_minute"`
	CreatedAt            *timestamppb.Timestamp `json:"created_at,omitempty"`
}

type RegisterExpenseRequest struct {
	Name                 string `json:"name"`
	MonthlyCost          string `json:"monthly_cost"`
	OperatingHoursPerDay string `json:"operating_hours_per_day"`
}

type RegisterExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type UpdateExpenseRequest struct {
	ExpenseId            string `json:"expense_id"`
	Name                 string `json:"name"`
	MonthlyCost          string `json:"monthly_cost"`
	OperatingHoursPerDay string `json:"operating_hours_per_day"`
}

type UpdateExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type DeleteExpenseRequest struct {
	ExpenseId string `json:"expense_id"`
}

type DeleteExpenseResponse struct{}

type ListExpensesRequest struct{}

type ListExpensesResponse struct {
	Expenses []*Expense `json:"expenses"`
}

type Tax struct {
	Id            string                 `json:"id"`
	Name          string                 `json:"name"`
	Category      string                 `json:"category"`
	Frequency     string                 `json:"frequency"`
	AverageValue  string                 `json:"average_value"`
	CostPerMinute string                 `json:"cost_per_minute"`
	CreatedAt     *timestamppb.Timestamp `json:"created_at,omitempty"`
}

type RegisterTaxRequest struct {
	Name      string `json:"name"`
	Category  string `json:"category,omitempty"`
	Frequency string `json:"frequency"`
}

type RegisterTaxResponse struct {
	Tax *Tax `json:"tax"`
}

type RecordTaxPaymentRequest struct {
	TaxId  string                 `json:"tax_id"`
	Amount string                 `json:"amount"`
	PaidAt *timestamppb.Timestamp `json:"paid_at,omitempty"`
}

type RecordTaxPaymentResponse struct {
	Tax *Tax `json:"tax"`
}

type ListTaxesRequest struct{}

type ListTaxesResponse struct {
	Taxes []*Tax `json:"taxes"`
}

type TaxPayment struct {
	Id     string                 `json:"id"`
	TaxId  string                 `json:"tax_id"`
	Amount string                 `json:"amount"`
	PaidAt *timestamppb.Timestamp `json:"paid_at,omitempty"`
}

type ListTaxPaymentsRequest struct {
	TaxId string `json:"tax_id"`
}

type ListTaxPaymentsResponse struct {
	Payments []*TaxPayment `json:"payments"`
}

type RecipeUsage struct {
	IngredientId string `json:"ingredient_id"`
	Quantity     string `json:"quantity"`
}

type LineCost struct {
	IngredientId string `json:"ingredient_id"`
	Quantity     string `json:"quantity"`
	Cost         string `json:"cost"`
}

type PriceBreakdown struct {
	Lines                    []*LineCost `json:"lines"`
	IngredientsCost          string      `json:"ingredients_cost"`
	OperationalRatePerMinute string      `json:"operational_rate_per_minute"`
	OperationalCost          string      `json:"operational_cost"`
	TotalCost                string      `json:"total_cost"`
	FinalPrice               string      `json:"final_price"`
}

type Recipe struct {
	Id              string                 `json:"id"`
	Name            string                 `json:"name"`
	Category        string                 `json:"category"`
	PrepTimeMinutes string                 `json:"prep_time_minutes"`
	ProfitMarginPct string                 `json:"profit_margin_pct"`
	Usages          []*RecipeUsage         `json:"usages"`
	TotalCost       string                 `json:"total_cost"`
	FinalPrice      string                 `json:"final_price"`
	PricedAt        *timestamppb.Timestamp `json:"priced_at,omitempty"`
	CreatedAt       *timestamppb.Timestamp `json:"created_at,omitempty"`
}

type CreateRecipeRequest struct {
	Name            string         `json:"name"`
	Category        string         `json:"category,omitempty"`
	PrepTimeMinutes string         `json:"prep_time_minutes,omitempty"`
	ProfitMarginPct string         `json:"profit_margin_pct,omitempty"`
	Usages          []*RecipeUsage `json:"usages"`
}

type CreateRecipeResponse struct {
	Recipe    *Recipe         `json:"recipe"`
	Breakdown *PriceBreakdown `json:"breakdown"`
}

type PriceRecipeRequest struct {
	RecipeId string `json:"recipe_id"`
}

type PriceRecipeResponse struct {
	Recipe    *Recipe         `json:"recipe"`
	Breakdown *PriceBreakdown `json:"breakdown"`
}

type QuoteRecipeRequest struct {
	PrepTimeMinutes string         `json:"prep_time_minutes,omitempty"`
	ProfitMarginPct string         `json:"profit_margin_pct,omitempty"`
	Usages          []*RecipeUsage `json:"usages"`
}

type QuoteRecipeResponse struct {
	Breakdown *PriceBreakdown `json:"breakdown"`
}

type HistoryPoint struct {
	Id          string                 `json:"id"`
	CostPerUnit string                 `json:"cost_per_unit"`
	WasteRate   string                 `json:"waste_rate"`
	RecordedAt  *timestamppb.Timestamp `json:"recorded_at,omitempty"`
}

type GetIngredientHistoryRequest struct {
	IngredientId string `json:"ingredient_id"`
}

type GetIngredientHistoryResponse struct {
	Ingredient *Ingredient     `json:"ingredient"`
	Points     []*HistoryPoint `json:"points"`
	AxisMin    string          `json:"axis_min"`
	AxisMax    string          `json:"axis_max"` // "auto" when the chart should pick the bound
}

type GetPricingOverviewRequest struct{}

type RecipeOverview struct {
	Recipe    *Recipe         `json:"recipe"`
	Breakdown *PriceBreakdown `json:"breakdown"`
	Stale     bool            `json:"stale"`
}

type GetPricingOverviewResponse struct {
	OperationalRatePerMinute string            `json:"operational_rate_per_minute"`
	Recipes                  []*RecipeOverview `json:"recipes"`
	StaleCount               int32             `json:"stale_count"`
}
