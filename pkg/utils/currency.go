package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL formata um valor em reais com separadores brasileiros (ex: R$ 1.234,56).
// Os centavos saem do próprio decimal, sem passar por float.
func FormatBRL(v decimal.Decimal) string {
	rounded := v.Round(2)
	abs := rounded.Abs()

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}

	_, cents, _ := strings.Cut(abs.StringFixed(2), ".")
	return "R$ " + sign + brPrinter.Sprint(number.Decimal(abs.IntPart())) + "," + cents
}

// FormatBRLShort formata valores de eixo de gráfico (ex: R$ 1.5k)
func FormatBRLShort(v float64) string {
	if v >= 1000 {
		return fmt.Sprintf("R$ %.1fk", v/1000)
	}
	return fmt.Sprintf("R$ %.0f", v)
}
