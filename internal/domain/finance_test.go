package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinanceShares(t *testing.T) {
	t.Parallel()

	sum := FinanceSummary{
		Services: []ServiceRevenue{
			{Service: "Oil change", Amount: 300},
			{Service: "Brakes", Amount: 100},
		},
	}

	shares := sum.ServiceShares()
	assert.InDelta(t, 0.75, shares[0], 0.001)
	assert.InDelta(t, 0.25, shares[1], 0.001)

	var total float64
	for _, s := range shares {
		total += s
	}
	assert.InDelta(t, 1.0, total, 0.001)
}

func TestFinanceSharesZeroTotal(t *testing.T) {
	t.Parallel()

	sum := FinanceSummary{Payments: []PaymentSlice{{Method: "card", Amount: 0}}}
	shares := sum.PaymentShares()
	assert.Equal(t, []float64{0}, shares, "zero total must yield zero shares, not NaN")
}

func TestFinanceNet(t *testing.T) {
	t.Parallel()

	sum := FinanceSummary{MonthRevenue: 500, MonthExpense: 180}
	assert.InDelta(t, 320, sum.Net(), 0.001)
}

func TestAmountOf(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 42.5, AmountOf(42.5), 0.001)
	assert.InDelta(t, 42.5, AmountOf(map[string]any{"amount": 42.5}), 0.001)
	assert.InDelta(t, 42.5, AmountOf(map[string]any{"total": "42.5"}), 0.001)
	assert.InDelta(t, 0, AmountOf(nil), 0.001)
}
