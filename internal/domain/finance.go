package domain

import "github.com/spf13/cast"

// FinanceSummary aggregates the four finance endpoints for the
// current-month dashboard.
type FinanceSummary struct {
	MonthRevenue float64          `json:"month_revenue"`
	MonthExpense float64          `json:"month_expense"`
	Currency     string           `json:"currency"`
	Services     []ServiceRevenue `json:"services"`
	Payments     []PaymentSlice   `json:"payments"`
}

// ServiceRevenue is revenue attributed to one service type.
type ServiceRevenue struct {
	Service string  `json:"service"`
	Amount  float64 `json:"amount"`
}

// PaymentSlice is the share of one payment method.
type PaymentSlice struct {
	Method string  `json:"method"`
	Amount float64 `json:"amount"`
}

// Net returns revenue minus expense for the month.
func (f FinanceSummary) Net() float64 {
	return f.MonthRevenue - f.MonthExpense
}

// ServiceShares returns each service's fraction of total service
// revenue in [0,1], index-aligned with Services. All shares are 0 when
// the total is 0.
func (f FinanceSummary) ServiceShares() []float64 {
	return shares(f.Services, func(s ServiceRevenue) float64 { return s.Amount })
}

// PaymentShares returns each payment method's fraction of the total,
// index-aligned with Payments.
func (f FinanceSummary) PaymentShares() []float64 {
	return shares(f.Payments, func(p PaymentSlice) float64 { return p.Amount })
}

func shares[T any](items []T, amount func(T) float64) []float64 {
	var total float64
	for _, it := range items {
		total += amount(it)
	}
	out := make([]float64, len(items))
	if total <= 0 {
		return out
	}
	for i, it := range items {
		out[i] = amount(it) / total
	}
	return out
}

// NormalizeServiceRevenue maps one revenue-by-service row.
func NormalizeServiceRevenue(raw map[string]any) ServiceRevenue {
	return ServiceRevenue{
		Service: firstString(raw, "service", "service_name", "serviceName", "service_type", "name"),
		Amount:  firstFloat(raw, "amount", "revenue", "total"),
	}
}

// NormalizePaymentSlice maps one payment-method row.
func NormalizePaymentSlice(raw map[string]any) PaymentSlice {
	return PaymentSlice{
		Method: firstString(raw, "method", "payment_method", "paymentMethod", "name"),
		Amount: firstFloat(raw, "amount", "total", "count"),
	}
}

// AmountOf extracts a single monetary value from an aggregate payload
// that may be either a bare number or an object with a known field.
func AmountOf(raw any) float64 {
	if m, ok := raw.(map[string]any); ok {
		return firstFloat(m, "amount", "total", "revenue", "expense", "value")
	}
	return cast.ToFloat64(raw)
}
