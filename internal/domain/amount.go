// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "github.com/shopspring/decimal"

// OrZero converte um valor numérico anulável em decimal, tratando NULL como zero
func OrZero(v decimal.NullDecimal) decimal.Decimal {
	if !v.Valid {
		return decimal.Zero
	}
	return v.Decimal
}

// Amount cria um valor anulável válido a partir de um float
func Amount(v float64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromFloat(v))
}

// SumAmounts soma valores anuláveis ignorando os NULL
func SumAmounts(values ...decimal.NullDecimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(OrZero(v))
	}
	return total
}
