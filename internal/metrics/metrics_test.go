package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.RecipePriced()
	m.RecipePriced()
	m.RepricingFailed()
	m.RepricingFinished("partial")
	m.ObserveRPC("/recipecost.v1.RecipeCostService/PriceRecipe", "OK", 12*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RecipesPriced))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RepricingFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RepricingRuns.WithLabelValues("partial")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RPCRequests.WithLabelValues("/recipecost.v1.RecipeCostService/PriceRecipe", "OK")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecipePriced()
		m.RepricingFailed()
		m.RepricingFinished("ok")
		m.ObserveRPC("x", "OK", time.Second)
	})
}

func TestDurationMillis(t *testing.T) {
	assert.Equal(t, 1.5, DurationMillis(1500*time.Microsecond))
}
