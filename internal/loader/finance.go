package loader

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/garagehub/garagectl/internal/api"
	"github.com/garagehub/garagectl/internal/domain"
)

// FinanceAPI is the slice of the API client the finance dashboard
// needs: four independent aggregates.
type FinanceAPI interface {
	MonthRevenue(ctx context.Context) (float64, error)
	MonthExpense(ctx context.Context) (float64, error)
	RevenueByService(ctx context.Context) ([]map[string]any, error)
	PaymentMethods(ctx context.Context) ([]map[string]any, error)
}

// FinanceLoader fetches the four finance aggregates concurrently and
// assembles the dashboard summary. Any aggregate failing fails the
// whole cycle; the previous summary stays visible.
type FinanceLoader struct {
	sm       stateMachine[domain.FinanceSummary]
	client   FinanceAPI
	currency string
}

// NewFinanceLoader creates a FinanceLoader reporting in the given
// currency.
func NewFinanceLoader(client FinanceAPI, currency string) *FinanceLoader {
	return &FinanceLoader{client: client, currency: currency}
}

// Load fetches all four aggregates in parallel.
func (l *FinanceLoader) Load(ctx context.Context) error {
	seq := l.sm.begin()

	var (
		revenue  float64
		expense  float64
		services []map[string]any
		payments []map[string]any
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		revenue, err = l.client.MonthRevenue(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		expense, err = l.client.MonthExpense(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		services, err = l.client.RevenueByService(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = l.client.PaymentMethods(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		l.sm.fail(seq, api.Classify(err))
		return err
	}

	summary := domain.FinanceSummary{
		MonthRevenue: revenue,
		MonthExpense: expense,
		Currency:     l.currency,
	}
	for _, item := range services {
		summary.Services = append(summary.Services, domain.NormalizeServiceRevenue(item))
	}
	for _, item := range payments {
		summary.Payments = append(summary.Payments, domain.NormalizePaymentSlice(item))
	}

	l.sm.succeed(seq, summary)
	return nil
}

// Retry re-fetches. Identical contract to Load.
func (l *FinanceLoader) Retry(ctx context.Context) error {
	return l.Load(ctx)
}

// Snapshot returns the current render state.
func (l *FinanceLoader) Snapshot() State[domain.FinanceSummary] {
	return l.sm.snapshot()
}
