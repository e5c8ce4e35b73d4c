package history

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/simaogato/recipecost-backend/internal/domain"
)

func seriesOf(costs ...string) []*domain.IngredientHistoryEntry {
	series := make([]*domain.IngredientHistoryEntry, 0, len(costs))
	for _, cost := range costs {
		series = append(series, &domain.IngredientHistoryEntry{CostPerUnit: decimal.RequireFromString(cost)})
	}
	return series
}

func TestComputeAxisDomain(t *testing.T) {
	tests := []struct {
		name    string
		series  []*domain.IngredientHistoryEntry
		wantMin string
		wantMax string
	}{
		{name: "flat series", series: seriesOf("5", "5"), wantMin: "4.5", wantMax: "5.5"},
		{name: "spread series", series: seriesOf("2", "10"), wantMin: "1.2", wantMax: "10.8"},
		{name: "flat zero uses minimum margin", series: seriesOf("0", "0"), wantMin: "0", wantMax: "0.1"},
		{name: "small flat value uses minimum margin", series: seriesOf("0.5"), wantMin: "0.4", wantMax: "0.6"},
		{name: "narrow spread uses max-based margin", series: seriesOf("100", "101"), wantMin: "94.95", wantMax: "106.05"},
		{name: "lower bound clamps to zero", series: seriesOf("0.1", "10"), wantMin: "0", wantMax: "10.99"},
		{name: "negative costs are ignored", series: seriesOf("-3", "5", "5"), wantMin: "4.5", wantMax: "5.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeAxisDomain(tt.series)

			assert.False(t, got.AutoMax)
			assert.True(t, got.Min.Equal(decimal.RequireFromString(tt.wantMin)), "min = %s, want %s", got.Min, tt.wantMin)
			assert.True(t, got.Max.Equal(decimal.RequireFromString(tt.wantMax)), "max = %s, want %s", got.Max, tt.wantMax)
		})
	}
}

func TestComputeAxisDomain_EmptySeries(t *testing.T) {
	for _, series := range [][]*domain.IngredientHistoryEntry{nil, {}, seriesOf("-1", "-2"), {nil}} {
		got := ComputeAxisDomain(series)

		assert.True(t, got.AutoMax)
		assert.True(t, got.Min.IsZero())
		assert.Equal(t, "auto", got.MaxLabel())
	}
}

func TestAxisDomain_MaxLabel(t *testing.T) {
	got := ComputeAxisDomain(seriesOf("2", "10"))
	assert.Equal(t, "10.8", got.MaxLabel())
}
