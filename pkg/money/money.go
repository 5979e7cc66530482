// Package money formatea valores monetarios para exportaciones (PDF, XLSX) en pt-BR.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// BRL devuelve el valor con símbolo y separadores brasileños, ej: "R$ 1.234,56".
func BRL(v decimal.Decimal) string {
	return printer.Sprintf("R$ %.2f", v.Round(2).InexactFloat64())
}

// Number devuelve el valor con dos decimales y separadores brasileños, sin símbolo.
func Number(v decimal.Decimal) string {
	return printer.Sprintf("%.2f", v.Round(2).InexactFloat64())
}
