// Package moneda formatea montos para la presentación (S/. 1,234.56).
package moneda

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Separador de miles "," y decimal "." como en los reportes del facturador.
var printer = message.NewPrinter(language.English)

// Formatear devuelve "<simbolo> 1,234.56". Sin símbolo devuelve solo el número.
func Formatear(monto decimal.Decimal, simbolo string) string {
	n := printer.Sprintf("%.2f", monto.Round(2).InexactFloat64())
	if simbolo == "" {
		return n
	}
	return simbolo + " " + n
}

// FormatearNull formatea un monto nullable; NULL se muestra vacío.
func FormatearNull(monto decimal.NullDecimal, simbolo string) string {
	if !monto.Valid {
		return ""
	}
	return Formatear(monto.Decimal, simbolo)
}
