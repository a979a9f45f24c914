// Package formatter contiene helpers de presentación compartidos por las
// vistas y el PDF.
package formatter

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var usPrinter = message.NewPrinter(language.AmericanEnglish)

// USDollar formatea un monto como dólares US con separador de miles y dos
// decimales, ej: $1,234.50.
func USDollar(d decimal.Decimal) string {
	f, _ := d.Float64()
	return usPrinter.Sprintf("$%v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
