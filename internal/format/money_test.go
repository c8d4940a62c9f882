package format

import (
	"math"
	"strings"
	"testing"
)

func TestMoney(t *testing.T) {
	t.Parallel()

	got := Money(1250, "USD", "en")
	if !strings.Contains(got, "1,250") || !strings.Contains(got, "$") {
		t.Errorf("Money(1250, USD, en) = %q, want dollar amount with grouping", got)
	}
}

func TestMoneyNaN(t *testing.T) {
	t.Parallel()

	if got := Money(math.NaN(), "USD", "en"); got != Placeholder {
		t.Errorf("Money(NaN) = %q, want %q", got, Placeholder)
	}
	if got := Money(math.Inf(1), "USD", "en"); got != Placeholder {
		t.Errorf("Money(+Inf) = %q, want %q", got, Placeholder)
	}
}

func TestMoneyUnknownCurrency(t *testing.T) {
	t.Parallel()

	got := Money(10, "???", "en")
	if !strings.Contains(got, "10.00") || !strings.Contains(got, "???") {
		t.Errorf("Money(unknown currency) = %q, want amount with raw code", got)
	}
}

func TestMoneyBadLocaleFallsBack(t *testing.T) {
	t.Parallel()

	// An unparsable locale must not panic or error; English is used.
	got := Money(5, "USD", "not a locale!!")
	if got == "" || got == Placeholder {
		t.Errorf("Money(bad locale) = %q, want formatted amount", got)
	}
}

func TestPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		share float64
		want  string
	}{
		{0, "0%"},
		{0.42, "42%"},
		{1, "100%"},
	}
	for _, tt := range tests {
		if got := Percent(tt.share); got != tt.want {
			t.Errorf("Percent(%v) = %q, want %q", tt.share, got, tt.want)
		}
	}

	if got := Percent(math.NaN()); got != Placeholder {
		t.Errorf("Percent(NaN) = %q, want %q", got, Placeholder)
	}
}
