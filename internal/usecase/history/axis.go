package history

import (
	"github.com/shopspring/decimal"

	"github.com/simaogato/recipecost-backend/internal/domain"
)

var (
	tenPercent  = decimal.New(1, -1)
	fivePercent = decimal.New(5, -2)
	minMargin   = decimal.New(1, -1)
	fallbackPad = decimal.RequireFromString("1.2")
	one         = decimal.NewFromInt(1)
)

// AxisDomain is the y-axis range used to chart a cost series.
// AutoMax means the upper bound is left to the charting side ("auto").
type AxisDomain struct {
	Min     decimal.Decimal
	Max     decimal.Decimal
	AutoMax bool
}

// MaxLabel returns the upper bound as rendered for the chart
func (a AxisDomain) MaxLabel() string {
	if a.AutoMax {
		return "auto"
	}
	return a.Max.String()
}

// ComputeAxisDomain picks a y-axis range that neither clips nor flattens the series.
// Logic:
//  1. Keep the non-negative costs; none left -> [0, auto]
//  2. range == 0: margin = max(maxCost*0.1, 0.1)
//     else:       margin = max(range*0.1, maxCost*0.05)
//  3. [max(0, minCost-margin), maxCost+margin]
//  4. Degenerate range -> [0, max(maxCost*1.2, 1)]
func ComputeAxisDomain(series []*domain.IngredientHistoryEntry) AxisDomain {
	costs := make([]decimal.Decimal, 0, len(series))
	for _, entry := range series {
		if entry == nil || entry.CostPerUnit.IsNegative() {
			continue
		}
		costs = append(costs, entry.CostPerUnit)
	}

	// 1. Nothing to scale
	if len(costs) == 0 {
		return AxisDomain{Min: decimal.Zero, AutoMax: true}
	}

	minCost := decimal.Min(costs[0], costs[1:]...)
	maxCost := decimal.Max(costs[0], costs[1:]...)
	spread := maxCost.Sub(minCost)

	// 2. Margin
	var margin decimal.Decimal
	if spread.IsZero() {
		margin = decimal.Max(maxCost.Mul(tenPercent), minMargin)
	} else {
		margin = decimal.Max(spread.Mul(tenPercent), maxCost.Mul(fivePercent))
	}

	// 3. Padded range
	yMin := decimal.Max(decimal.Zero, minCost.Sub(margin))
	yMax := maxCost.Add(margin)

	// 4. Degenerate
	if yMax.LessThanOrEqual(yMin) {
		return AxisDomain{Min: decimal.Zero, Max: decimal.Max(maxCost.Mul(fallbackPad), one)}
	}

	return AxisDomain{Min: yMin, Max: yMax}
}
