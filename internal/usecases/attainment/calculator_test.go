package attainment

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-finance-api/internal/domain"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
		want domain.GoalStatus
	}{
		{"Exatamente 80 está no caminho", 80, domain.GoalStatusOnTrack},
		{"Acima de 100", 150, domain.GoalStatusOnTrack},
		{"Logo abaixo de 80", 79.9, domain.GoalStatusWarning},
		{"Exatamente 50 é alerta", 50, domain.GoalStatusWarning},
		{"Logo abaixo de 50", 49.9, domain.GoalStatusCritical},
		{"Zero", 0, domain.GoalStatusCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.pct))
		})
	}
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 50.0, Percentage(decimal.NewFromInt(500), decimal.NewFromInt(1000)))
	assert.Equal(t, 33.3, Percentage(decimal.NewFromInt(1), decimal.NewFromInt(3)))
	assert.Equal(t, 0.0, Percentage(decimal.NewFromInt(500), decimal.Zero))
	assert.Equal(t, 125.0, Percentage(decimal.NewFromInt(1250), decimal.NewFromInt(1000)))
}

func TestEvaluate(t *testing.T) {
	store := &domain.Store{ID: "loja-1", Name: "Centro"}

	t.Run("Meta superada tem percentual exibido limitado a 100", func(t *testing.T) {
		goal := &domain.Goal{
			ID:             "meta-1",
			StoreID:        "loja-1",
			TargetRevenue:  domain.Amount(1000),
			TargetProfit:   domain.Amount(200),
			RealizedProfit: domain.Amount(50),
		}

		a := Evaluate(store, "2024-06", goal, decimal.NewFromInt(1500))

		assert.True(t, a.HasGoal)
		assert.Equal(t, "meta-1", a.GoalID)
		assert.Equal(t, 150.0, a.RevenuePercentage)
		assert.Equal(t, 100.0, a.RevenueDisplayPercentage)
		assert.Equal(t, 25.0, a.ProfitPercentage)
		assert.Equal(t, domain.GoalStatusOnTrack, a.Status)
		assert.Equal(t, "R$ 1.000,00", a.TargetRevenueLabel)
		assert.Equal(t, "R$ 1.500,00", a.RealizedRevenueLabel)
	})

	t.Run("Loja sem meta fica com meta zero", func(t *testing.T) {
		a := Evaluate(store, "2024-06", nil, decimal.NewFromInt(700))

		assert.False(t, a.HasGoal)
		assert.Equal(t, noGoalMessage, a.Message)
		assert.True(t, a.TargetRevenue.IsZero())
		assert.Equal(t, 0.0, a.RevenuePercentage)
		assert.Equal(t, domain.GoalStatusCritical, a.Status)
	})

	t.Run("Metade da meta é alerta", func(t *testing.T) {
		goal := &domain.Goal{TargetRevenue: domain.Amount(1000)}
		a := Evaluate(store, "2024-06", goal, decimal.NewFromInt(500))

		assert.Equal(t, 50.0, a.RevenuePercentage)
		assert.Equal(t, domain.GoalStatusWarning, a.Status)
	})
}

func weekly(week int, target float64) *domain.WeeklyGoal {
	return &domain.WeeklyGoal{Week: week, TargetRevenue: domain.Amount(target)}
}

func TestDistributeWeekly(t *testing.T) {
	tests := []struct {
		name      string
		realized  int64
		goals     []*domain.WeeklyGoal
		wantWeeks []int
		wantAlloc []string
		wantPct   []float64
	}{
		{
			name:      "Distribui a partir da semana 1 e leva a sobra adiante",
			realized:  2500,
			goals:     []*domain.WeeklyGoal{weekly(3, 1000), weekly(1, 1000), weekly(2, 1000)},
			wantWeeks: []int{1, 2, 3},
			wantAlloc: []string{"1000", "1000", "500"},
			wantPct:   []float64{100, 100, 50},
		},
		{
			name:      "Semana com meta zero não recebe valor",
			realized:  1500,
			goals:     []*domain.WeeklyGoal{weekly(1, 1000), weekly(2, 0), weekly(3, 1000)},
			wantWeeks: []int{1, 2, 3},
			wantAlloc: []string{"1000", "0", "500"},
			wantPct:   []float64{100, 0, 50},
		},
		{
			name:      "Realizado acima da soma das metas",
			realized:  5000,
			goals:     []*domain.WeeklyGoal{weekly(1, 1000), weekly(2, 1000)},
			wantWeeks: []int{1, 2},
			wantAlloc: []string{"1000", "1000"},
			wantPct:   []float64{100, 100},
		},
		{
			name:      "Sem semanas",
			realized:  1000,
			goals:     nil,
			wantWeeks: []int{},
			wantAlloc: []string{},
			wantPct:   []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			estimates := DistributeWeekly(decimal.NewFromInt(tt.realized), tt.goals)
			require.Len(t, estimates, len(tt.wantWeeks))

			for i, e := range estimates {
				assert.Equal(t, tt.wantWeeks[i], e.Week)
				assert.Equal(t, tt.wantAlloc[i], e.EstimatedRealized.String())
				assert.Equal(t, tt.wantPct[i], e.Percentage)
				assert.True(t, e.Estimated)
			}
		})
	}
}

func TestWeeklyProgress(t *testing.T) {
	// Junho de 2024 começa em um sábado: dia 1 é a semana 1 e dia 3 a semana 2
	closings := []*domain.CashClosing{
		{StoreID: "loja-1", Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Cash: domain.Amount(300)},
		{StoreID: "loja-1", Date: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), Pix: domain.Amount(400), Card: domain.Amount(300), AccessoriesSales: domain.Amount(50)},
		{StoreID: "loja-2", Date: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), Cash: domain.Amount(999)},
	}
	goals := []*domain.WeeklyGoal{
		{ID: "ms-1", StoreID: "loja-1", Month: "2024-06", Week: 2, TargetRevenue: domain.Amount(1000), TargetAccessories: domain.Amount(100)},
		{ID: "ms-2", StoreID: "loja-1", Month: "2024-06", Week: 3, TargetRevenue: domain.Amount(1000)},
	}

	progress := WeeklyProgress(goals, closings)
	require.Len(t, progress, 2)

	week2 := progress[0]
	assert.Equal(t, "700", week2.RealizedRevenue.String())
	assert.Equal(t, 70.0, week2.RevenuePercentage)
	assert.Equal(t, "50", week2.RealizedAccessories.String())
	assert.Equal(t, 50.0, week2.AccessoriesPercentage)
	assert.Equal(t, domain.GoalStatusWarning, week2.Status)

	week3 := progress[1]
	assert.True(t, week3.RealizedRevenue.IsZero())
	assert.Equal(t, 0.0, week3.AccessoriesPercentage)
	assert.Equal(t, domain.GoalStatusCritical, week3.Status)
}
