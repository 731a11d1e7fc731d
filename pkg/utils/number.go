package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// RoundOneDecimal arredonda para uma casa decimal
func RoundOneDecimal(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}

// CapPercentage limita o percentual entre 0 e 100, usado apenas para exibição
func CapPercentage(p float64) float64 {
	return math.Max(0, math.Min(p, 100))
}

// Percentage retorna realizado/meta*100, ou 0 quando a meta não é positiva
func Percentage(realized, target decimal.Decimal) float64 {
	if !target.IsPositive() {
		return 0
	}

	return realized.Div(target).Mul(hundred).InexactFloat64()
}
