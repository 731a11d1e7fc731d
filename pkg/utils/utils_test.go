package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"Valor com milhar", "1234.56", "R$ 1.234,56"},
		{"Valor negativo", "-1234.56", "R$ -1.234,56"},
		{"Zero", "0", "R$ 0,00"},
		{"Milhões", "1234567.8", "R$ 1.234.567,80"},
		{"Arredonda para duas casas", "10.005", "R$ 10,01"},
		{"Valor alto mantém os centavos", "99999999999999.99", "R$ 99.999.999.999.999,99"},
		{"Negativo menor que um real", "-0.5", "R$ -0,50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBRL(decimal.RequireFromString(tt.value)))
		})
	}
}

func TestFormatBRLShort(t *testing.T) {
	assert.Equal(t, "R$ 1.5k", FormatBRLShort(1500))
	assert.Equal(t, "R$ 12", FormatBRLShort(12))
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 50.0, Percentage(decimal.NewFromInt(500), decimal.NewFromInt(1000)))
	assert.Equal(t, 0.0, Percentage(decimal.NewFromInt(500), decimal.Zero))
	assert.Equal(t, 0.0, Percentage(decimal.NewFromInt(500), decimal.NewFromInt(-10)))
	assert.Equal(t, 150.0, Percentage(decimal.NewFromInt(1500), decimal.NewFromInt(1000)))
}

func TestRoundingAndCap(t *testing.T) {
	assert.Equal(t, 33.3, RoundOneDecimal(33.333))
	assert.Equal(t, 66.7, RoundOneDecimal(66.666))
	assert.Equal(t, 100.0, CapPercentage(150))
	assert.Equal(t, 0.0, CapPercentage(-5))
	assert.Equal(t, 42.0, CapPercentage(42))
}

func TestWeekOfMonth(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		// Junho de 2024 começa em um sábado
		{"Primeiro dia em um sábado", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), 1},
		{"Domingo seguinte inicia a semana 2", time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), 2},
		{"Último dia do mês", time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), 6},
		// Setembro de 2024 começa em um domingo
		{"Mês iniciando no domingo", time.Date(2024, 9, 7, 0, 0, 0, 0, time.UTC), 1},
		{"Segundo domingo", time.Date(2024, 9, 8, 0, 0, 0, 0, time.UTC), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekOfMonth(tt.date))
		})
	}
}

func TestMonthRange(t *testing.T) {
	first, last, err := MonthRange("2024-02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), first)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), last)
	assert.Equal(t, "2024-02", MonthKey(last))

	_, _, err = MonthRange("02-2024")
	assert.Error(t, err)
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, 6)
	assert.Regexp(t, "^[A-Z0-9]{6}$", id)
}
