package format

import (
	"fmt"
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money renders an amount as a localized currency string, e.g.
// "$1,250.00" for ("1250", "USD", "en"). Invalid amounts render as the
// placeholder; an unknown currency code falls back to "<amount> <code>".
func Money(amount float64, code string, locale string) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Placeholder
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		p := message.NewPrinter(tag)
		return p.Sprintf("%.2f %s", amount, code)
	}
	p := message.NewPrinter(tag)
	return p.Sprint(currency.NarrowSymbol(unit.Amount(amount)))
}

// Percent renders a fraction in [0,1] as a whole percent, e.g. "42%".
func Percent(share float64) string {
	if math.IsNaN(share) || math.IsInf(share, 0) || share < 0 {
		return Placeholder
	}
	return fmt.Sprintf("%.0f%%", share*100)
}
