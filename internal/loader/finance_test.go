package loader

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFinanceAPI implements FinanceAPI; individual aggregates can fail.
type fakeFinanceAPI struct {
	revenue    float64
	expense    float64
	services   []map[string]any
	payments   []map[string]any
	revenueErr error
	serviceErr error
}

func (f *fakeFinanceAPI) MonthRevenue(ctx context.Context) (float64, error) {
	return f.revenue, f.revenueErr
}

func (f *fakeFinanceAPI) MonthExpense(ctx context.Context) (float64, error) {
	return f.expense, nil
}

func (f *fakeFinanceAPI) RevenueByService(ctx context.Context) ([]map[string]any, error) {
	return f.services, f.serviceErr
}

func (f *fakeFinanceAPI) PaymentMethods(ctx context.Context) ([]map[string]any, error) {
	return f.payments, nil
}

func sampleFinance() *fakeFinanceAPI {
	return &fakeFinanceAPI{
		revenue: 4000,
		expense: 1500,
		services: []map[string]any{
			{"service": "Oil change", "revenue": 3000.0},
			{"service": "Brakes", "revenue": 1000.0},
		},
		payments: []map[string]any{
			{"method": "card", "amount": 3500.0},
			{"method": "cash", "amount": 500.0},
		},
	}
}

func TestFinanceLoadAssemblesSummary(t *testing.T) {
	t.Parallel()

	l := NewFinanceLoader(sampleFinance(), "USD")
	require.NoError(t, l.Load(context.Background()))

	sum := l.Snapshot().Data
	assert.Equal(t, 4000.0, sum.MonthRevenue)
	assert.Equal(t, 1500.0, sum.MonthExpense)
	assert.Equal(t, 2500.0, sum.Net())
	assert.Equal(t, "USD", sum.Currency)

	shares := sum.ServiceShares()
	require.Len(t, shares, 2)
	assert.InDelta(t, 0.75, shares[0], 0.001)
	assert.InDelta(t, 0.25, shares[1], 0.001)
}

func TestFinancePartialFailureFailsCycle(t *testing.T) {
	t.Parallel()

	client := sampleFinance()
	l := NewFinanceLoader(client, "USD")
	require.NoError(t, l.Load(context.Background()))

	client.serviceErr = errors.New("aggregate unavailable")
	require.Error(t, l.Retry(context.Background()))

	st := l.Snapshot()
	assert.NotEmpty(t, st.Err, "one failed aggregate fails the cycle")
	assert.Equal(t, 4000.0, st.Data.MonthRevenue, "previous summary stays visible")
}
