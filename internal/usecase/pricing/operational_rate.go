package pricing

import (
	"github.com/shopspring/decimal"
	"github.com/simaogato/recipecost-backend/internal/domain"
)

var (
	// daysPerMonth is the fixed month length used to amortize monthly costs
	daysPerMonth = decimal.NewFromInt(30)

	minutesPerHour = decimal.NewFromInt(60)

	// taxHoursPerDay: taxes accrue around the clock, unlike kitchen expenses
	taxHoursPerDay = decimal.NewFromInt(24)
)

// CostPerMinute amortizes a monthly cost over the operating minutes of a month.
//
// Logic:
//   - costPerDay = monthlyCost / 30
//   - costPerHour = costPerDay / operatingHoursPerDay
//   - result = costPerHour / 60
//
// Zero or negative inputs yield zero.
func CostPerMinute(monthlyCost, operatingHoursPerDay decimal.Decimal) decimal.Decimal {
	if !monthlyCost.IsPositive() || !operatingHoursPerDay.IsPositive() {
		return decimal.Zero
	}

	costPerDay := monthlyCost.Div(daysPerMonth)
	costPerHour := costPerDay.Div(operatingHoursPerDay)

	return costPerHour.Div(minutesPerHour)
}

// ExpenseCostPerMinute returns the per-minute cost of an operational expense
func ExpenseCostPerMinute(expense *domain.Expense) decimal.Decimal {
	if expense == nil {
		return decimal.Zero
	}
	return CostPerMinute(expense.MonthlyCost, expense.OperatingHoursPerDay)
}

// TaxCostPerMinute returns the per-minute cost of a tax over a 24-hour day.
// Annual taxes are converted to a monthly equivalent first.
func TaxCostPerMinute(tax *domain.Tax) decimal.Decimal {
	if tax == nil {
		return decimal.Zero
	}
	return CostPerMinute(tax.MonthlyEquivalent(), taxHoursPerDay)
}

// OperationalRatePerMinute sums the per-minute cost of every expense and every tax.
// All of them apply to every recipe; there is no per-recipe selection.
func OperationalRatePerMinute(expenses []*domain.Expense, taxes []*domain.Tax) decimal.Decimal {
	rate := decimal.Zero

	for _, expense := range expenses {
		rate = rate.Add(ExpenseCostPerMinute(expense))
	}

	for _, tax := range taxes {
		rate = rate.Add(TaxCostPerMinute(tax))
	}

	return rate
}
