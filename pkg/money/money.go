// Package money utilidades compartidas de redondeo y formato monetario.
// La precisión por moneda sale de los datos ISO-4217 de golang.org/x/text.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// defaultDigits precisión usada cuando el código de moneda no se reconoce.
const defaultDigits = 2

// Digits dígitos de la unidad mínima de la moneda (USD/COP: 2, JPY: 0).
func Digits(code string) int32 {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return defaultDigits
	}
	scale, _ := currency.Standard.Rounding(unit)
	return int32(scale)
}

// Round redondea al múltiplo de la unidad mínima de la moneda
// (mitad hacia arriba, alejándose de cero).
func Round(amount decimal.Decimal, code string) decimal.Decimal {
	return amount.Round(Digits(code))
}

// Format representación para mostrar: "COP 1190000.00", "JPY 1200".
func Format(amount decimal.Decimal, code string) string {
	return fmt.Sprintf("%s %s", code, amount.StringFixed(Digits(code)))
}

// ValidCode valida un código ISO-4217 en el borde (la moneda es un campo
// explícito de la cotización, nunca inferida de estado global).
func ValidCode(code string) bool {
	_, err := currency.ParseISO(code)
	return err == nil
}
