// Package money formats amounts for display.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter formats amounts in a fixed currency for a fixed locale.
type Formatter struct {
	unit    currency.Unit
	printer *message.Printer
}

// NewFormatter returns a Formatter for an ISO 4217 currency code
// and a BCP 47 locale.
func NewFormatter(currencyCode, locale string) (Formatter, error) {
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return Formatter{}, fmt.Errorf("invalid currency code %q: %w", currencyCode, err)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return Formatter{}, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	return Formatter{
		unit:    unit,
		printer: message.NewPrinter(tag),
	}, nil
}

// Currency returns the ISO code of the currency.
func (f Formatter) Currency() string {
	return f.unit.String()
}

// Format returns the amount with the currency symbol in the formatter's locale.
func (f Formatter) Format(amount decimal.Decimal) string {
	return f.printer.Sprint(currency.Symbol(f.unit.Amount(amount.InexactFloat64())))
}
