package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/simaogato/recipecost-backend/internal/domain"
)

func TestCostPerMinute_Chain(t *testing.T) {
	got := CostPerMinute(d("300"), d("10"))

	// monthly -> daily -> hourly -> minute
	want := d("300").Div(d("30")).Div(d("10")).Div(d("60"))
	assert.True(t, got.Equal(want), "got %s, want %s", got, want)
	assert.InDelta(t, 300.0/30.0/10.0/60.0, got.InexactFloat64(), 1e-15)

	// Reproducible
	assert.True(t, got.Equal(CostPerMinute(d("300"), d("10"))))
}

func TestCostPerMinute_DivisionGuards(t *testing.T) {
	assertDecimal(t, "0", CostPerMinute(d("0"), d("10")))
	assertDecimal(t, "0", CostPerMinute(d("300"), d("0")))
	assertDecimal(t, "0", CostPerMinute(d("-300"), d("10")))
	assertDecimal(t, "0", CostPerMinute(d("300"), d("-1")))
}

func TestTaxCostPerMinute(t *testing.T) {
	monthly := &domain.Tax{Frequency: domain.PaymentFrequencyMonthly, AverageValue: d("720")}
	// 720 / 30 / 24 / 60 = 0.0166...
	assert.True(t, TaxCostPerMinute(monthly).Equal(CostPerMinute(d("720"), d("24"))))

	annual := &domain.Tax{Frequency: domain.PaymentFrequencyAnnual, AverageValue: d("8640")}
	// 8640 / 12 = 720 per month, same rate as above
	assert.True(t, TaxCostPerMinute(annual).Equal(CostPerMinute(d("720"), d("24"))))

	noPayments := &domain.Tax{Frequency: domain.PaymentFrequencyMonthly}
	assertDecimal(t, "0", TaxCostPerMinute(noPayments))

	assertDecimal(t, "0", TaxCostPerMinute(nil))
}

func TestOperationalRatePerMinute_SumsEverything(t *testing.T) {
	expenses := []*domain.Expense{
		{Name: "Aluguel", MonthlyCost: d("1800"), OperatingHoursPerDay: d("10")}, // 0.1
		{Name: "Energia", MonthlyCost: d("900"), OperatingHoursPerDay: d("10")},  // 0.05
		{Name: "Quebrado", MonthlyCost: d("900"), OperatingHoursPerDay: d("0")},  // 0
		nil,
	}
	taxes := []*domain.Tax{
		{Name: "DAS", Frequency: domain.PaymentFrequencyMonthly, AverageValue: d("4320")}, // 4320/30/24/60 = 0.1
	}

	rate := OperationalRatePerMinute(expenses, taxes)
	assertDecimal(t, "0.25", rate)

	assertDecimal(t, "0", OperationalRatePerMinute(nil, nil))
	assert.True(t, OperationalRatePerMinute(expenses, nil).Equal(decimal.RequireFromString("0.15")))
}
