package grpc

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	recipecostv1 "github.com/simaogato/recipecost-backend/internal/adapter/grpc/recipecost/v1"
	"github.com/simaogato/recipecost-backend/internal/domain"
	"github.com/simaogato/recipecost-backend/internal/usecase/pricing"
	"github.com/simaogato/recipecost-backend/internal/usecase/recipe"
)

// parseDecimal parses a required decimal field
func parseDecimal(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", field, err)
	}
	return d, nil
}

// parseOptionalDecimal parses a decimal field where empty means zero
func parseOptionalDecimal(field, value string) (decimal.Decimal, error) {
	if strings.TrimSpace(value) == "" {
		return decimal.Zero, nil
	}
	return parseDecimal(field, value)
}

func parseID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", field, err)
	}
	return id, nil
}

func parseUsages(usages []*recipecostv1.RecipeUsage) ([]recipe.UsageInput, error) {
	inputs := make([]recipe.UsageInput, 0, len(usages))
	for _, u := range usages {
		if u == nil {
			continue
		}
		id, err := parseID("ingredient_id", u.IngredientId)
		if err != nil {
			return nil, err
		}
		quantity, err := parseDecimal("quantity", u.Quantity)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, recipe.UsageInput{IngredientID: id, Quantity: quantity})
	}
	return inputs, nil
}

func money(d decimal.Decimal) string {
	return pricing.RoundCurrency(d).StringFixed(2)
}

func domainIngredientToProto(ingredient *domain.Ingredient) *recipecostv1.Ingredient {
	return &recipecostv1.Ingredient{
		Id:               ingredient.ID.String(),
		Name:             ingredient.Name,
		PurchaseCost:     ingredient.PurchaseCost.String(),
		PurchaseUnit:     ingredient.PurchaseUnit,
		PurchaseQuantity: ingredient.PurchaseQuantity.String(),
		WasteRate:        ingredient.WasteRate.String(),
		Category:         string(ingredient.Category),
		CreatedAt:        timestamppb.New(ingredient.CreatedAt),
		UpdatedAt:        timestamppb.New(ingredient.UpdatedAt),
	}
}

func domainExpenseToProto(expense *domain.Expense) *recipecostv1.Expense {
	return &recipecostv1.Expense{
		Id:                   expense.ID.String(),
		Name:                 expense.Name,
		MonthlyCost:          expense.MonthlyCost.String(),
		OperatingHoursPerDay: expense.OperatingHoursPerDay.String(),
		CostPerMinute:        pricing.ExpenseCostPerMinute(expense).String(),
		CreatedAt:            timestamppb.New(expense.CreatedAt),
	}
}

func domainTaxToProto(tax *domain.Tax) *recipecostv1.Tax {
	return &recipecostv1.Tax{
		Id:            tax.ID.String(),
		Name:          tax.Name,
		Category:      tax.Category,
		Frequency:     string(tax.Frequency),
		AverageValue:  tax.AverageValue.String(),
		CostPerMinute: pricing.TaxCostPerMinute(tax).String(),
		CreatedAt:     timestamppb.New(tax.CreatedAt),
	}
}

func domainTaxPaymentToProto(payment *domain.TaxPayment) *recipecostv1.TaxPayment {
	return &recipecostv1.TaxPayment{
		Id:     payment.ID.String(),
		TaxId:  payment.TaxID.String(),
		Amount: payment.Amount.String(),
		PaidAt: timestamppb.New(payment.Date),
	}
}

func domainRecipeToProto(r *domain.Recipe) *recipecostv1.Recipe {
	usages := make([]*recipecostv1.RecipeUsage, 0, len(r.Ingredients))
	for _, u := range r.Ingredients {
		usages = append(usages, &recipecostv1.RecipeUsage{
			IngredientId: u.IngredientID.String(),
			Quantity:     u.Quantity.String(),
		})
	}

	protoRecipe := &recipecostv1.Recipe{
		Id:              r.ID.String(),
		Name:            r.Name,
		Category:        r.Category,
		PrepTimeMinutes: r.PrepTimeMinutes.String(),
		ProfitMarginPct: r.ProfitMarginPct.String(),
		Usages:          usages,
		TotalCost:       money(r.TotalCost),
		FinalPrice:      money(r.FinalPrice),
		CreatedAt:       timestamppb.New(r.CreatedAt),
	}

	// Set priced_at if the recipe was priced
	if r.PricedAt != nil {
		protoRecipe.PricedAt = timestamppb.New(*r.PricedAt)
	}

	return protoRecipe
}

// breakdownToProto rounds money to cents; the per-minute rate keeps full precision
func breakdownToProto(b pricing.Breakdown) *recipecostv1.PriceBreakdown {
	lines := make([]*recipecostv1.LineCost, 0, len(b.Lines))
	for _, line := range b.Lines {
		lines = append(lines, &recipecostv1.LineCost{
			IngredientId: line.IngredientID.String(),
			Quantity:     line.Quantity.String(),
			Cost:         money(line.Cost),
		})
	}

	return &recipecostv1.PriceBreakdown{
		Lines:                    lines,
		IngredientsCost:          money(b.IngredientsCost),
		OperationalRatePerMinute: b.OperationalRatePerMinute.String(),
		OperationalCost:          money(b.OperationalCost),
		TotalCost:                money(b.TotalCost),
		FinalPrice:               money(b.FinalPrice),
	}
}

func historyEntryToProto(entry *domain.IngredientHistoryEntry) *recipecostv1.HistoryPoint {
	point := &recipecostv1.HistoryPoint{
		Id:          entry.ID.String(),
		CostPerUnit: entry.CostPerUnit.String(),
		WasteRate:   entry.WasteRate.String(),
	}
	if !entry.RecordedAt.IsZero() {
		point.RecordedAt = timestamppb.New(entry.RecordedAt)
	}
	return point
}
