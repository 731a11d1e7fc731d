package utils

import (
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(DateLayout, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// MonthKey retorna o mês no formato yyyy-mm
func MonthKey(t time.Time) string {
	return t.Format(MonthLayout)
}

// ParseMonth converte um mês no formato yyyy-mm para o primeiro dia do mês em UTC
func ParseMonth(month string) (time.Time, error) {
	t, err := time.Parse(MonthLayout, month)
	if err != nil {
		return time.Time{}, fmt.Errorf("mês inválido %q, formato esperado yyyy-mm: %w", month, err)
	}
	return t, nil
}

// MonthRange retorna o primeiro e o último dia do mês
func MonthRange(month string) (time.Time, time.Time, error) {
	first, err := ParseMonth(month)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return first, first.AddDate(0, 1, -1), nil
}

// WeekOfMonth retorna a semana do mês da data, com domingo como primeiro dia
// da semana: ceil((dia + dia da semana do dia 1) / 7)
func WeekOfMonth(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	offset := t.Day() + int(first.Weekday())
	return (offset + 6) / 7
}

// StartOfDay zera o horário da data mantendo o fuso
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
