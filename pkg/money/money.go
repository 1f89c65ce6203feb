// Package money formatea montos en reales para mostrar en la app (R$ 1.234,50).
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL redondea a centavos y aplica separadores pt-BR.
func FormatBRL(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	return "R$ " + printer.Sprintf("%v", number.Decimal(f, number.Scale(2)))
}
