// Package money formatea montos para mostrar. La moneda de la tienda es el
// rand (R) y el agrupado de miles sigue la convención en-ZA del backend.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Format devuelve el monto con símbolo y miles agrupados: "R 1,234.50".
func Format(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("R %.2f", f)
}

// FormatPlain devuelve el monto agrupado sin símbolo: "1,234.50".
func FormatPlain(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("%.2f", f)
}
