package attainment

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/store-finance-api/internal/domain"
	"github.com/vfg2006/store-finance-api/pkg/utils"
)

// Limites inferiores inclusivos das faixas de status
const (
	onTrackThreshold = 80.0
	warningThreshold = 50.0
)

const noGoalMessage = "Sem meta configurada"

// Percentage retorna realizado/meta*100 arredondado em uma casa, 0 quando não há meta positiva.
// O valor pode passar de 100.
func Percentage(realized, target decimal.Decimal) float64 {
	return utils.RoundOneDecimal(utils.Percentage(realized, target))
}

// StatusFor classifica o percentual: >= 80 on-track, >= 50 warning, abaixo disso critical
func StatusFor(pct float64) domain.GoalStatus {
	switch {
	case pct >= onTrackThreshold:
		return domain.GoalStatusOnTrack
	case pct >= warningThreshold:
		return domain.GoalStatusWarning
	}
	return domain.GoalStatusCritical
}

// Evaluate calcula o atingimento da meta mensal da loja com o faturamento realizado.
// Sem meta, a loja fica com meta zero, has_goal false e status critical.
func Evaluate(store *domain.Store, month string, goal *domain.Goal, realized decimal.Decimal) *domain.GoalAttainment {
	a := &domain.GoalAttainment{
		StoreID:         store.ID,
		StoreName:       store.Name,
		Month:           month,
		RealizedRevenue: realized,
	}

	if goal != nil {
		a.GoalID = goal.ID
		a.HasGoal = true
		a.TargetRevenue = domain.OrZero(goal.TargetRevenue)
		a.TargetProfit = domain.OrZero(goal.TargetProfit)
		a.RealizedProfit = domain.OrZero(goal.RealizedProfit)
	} else {
		a.Message = noGoalMessage
	}

	revenuePct := utils.Percentage(a.RealizedRevenue, a.TargetRevenue)
	a.RevenuePercentage = utils.RoundOneDecimal(revenuePct)
	a.RevenueDisplayPercentage = utils.CapPercentage(a.RevenuePercentage)
	a.ProfitPercentage = Percentage(a.RealizedProfit, a.TargetProfit)
	a.ProfitDisplayPercentage = utils.CapPercentage(a.ProfitPercentage)
	a.Status = StatusFor(revenuePct)

	a.TargetRevenueLabel = utils.FormatBRL(a.TargetRevenue)
	a.RealizedRevenueLabel = utils.FormatBRL(a.RealizedRevenue)

	return a
}

// DistributeWeekly distribui o realizado do mês pelas metas semanais a partir da semana 1,
// limitando cada semana à sua meta e levando a sobra para as seguintes.
// O resultado é uma estimativa: não existe realizado gravado por semana.
func DistributeWeekly(monthlyRealized decimal.Decimal, goals []*domain.WeeklyGoal) []*domain.WeeklyEstimate {
	sorted := make([]*domain.WeeklyGoal, 0, len(goals))
	for _, g := range goals {
		if g != nil {
			sorted = append(sorted, g)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Week < sorted[j].Week
	})

	remaining := decimal.Max(monthlyRealized, decimal.Zero)
	estimates := make([]*domain.WeeklyEstimate, 0, len(sorted))

	for _, g := range sorted {
		target := domain.OrZero(g.TargetRevenue)

		allocated := decimal.Zero
		if target.IsPositive() {
			allocated = decimal.Min(remaining, target)
			remaining = remaining.Sub(allocated)
		}

		pct := utils.Percentage(allocated, target)
		estimates = append(estimates, &domain.WeeklyEstimate{
			Week:              g.Week,
			Target:            target,
			EstimatedRealized: allocated,
			Percentage:        utils.RoundOneDecimal(pct),
			Status:            StatusFor(pct),
			Estimated:         true,
		})
	}

	return estimates
}

type weekKey struct {
	storeID string
	month   string
	week    int
}

type weekTotals struct {
	revenue     decimal.Decimal
	accessories decimal.Decimal
}

// WeeklyProgress calcula o realizado de cada meta semanal somando os fechamentos
// da loja na mesma semana do mês (domingo inicia a semana)
func WeeklyProgress(goals []*domain.WeeklyGoal, closings []*domain.CashClosing) []*domain.WeeklyProgress {
	totals := make(map[weekKey]*weekTotals)
	for _, c := range closings {
		if c == nil {
			continue
		}
		key := weekKey{storeID: c.StoreID, month: utils.MonthKey(c.Date), week: utils.WeekOfMonth(c.Date)}
		t, ok := totals[key]
		if !ok {
			t = &weekTotals{}
			totals[key] = t
		}
		t.revenue = t.revenue.Add(c.Inflow())
		t.accessories = t.accessories.Add(domain.OrZero(c.AccessoriesSales))
	}

	progress := make([]*domain.WeeklyProgress, 0, len(goals))
	for _, g := range goals {
		if g == nil {
			continue
		}

		realized := totals[weekKey{storeID: g.StoreID, month: g.Month, week: g.Week}]
		if realized == nil {
			realized = &weekTotals{}
		}

		p := &domain.WeeklyProgress{
			WeeklyGoalID:        g.ID,
			StoreID:             g.StoreID,
			StoreName:           g.StoreName,
			Month:               g.Month,
			Week:                g.Week,
			TargetRevenue:       domain.OrZero(g.TargetRevenue),
			RealizedRevenue:     realized.revenue,
			TargetAccessories:   domain.OrZero(g.TargetAccessories),
			RealizedAccessories: realized.accessories,
		}

		revenuePct := utils.Percentage(p.RealizedRevenue, p.TargetRevenue)
		p.RevenuePercentage = utils.RoundOneDecimal(revenuePct)
		p.RevenueDisplayPercentage = utils.CapPercentage(p.RevenuePercentage)
		p.AccessoriesPercentage = Percentage(p.RealizedAccessories, p.TargetAccessories)
		p.AccessoriesDisplayPercentage = utils.CapPercentage(p.AccessoriesPercentage)
		p.Status = StatusFor(revenuePct)

		progress = append(progress, p)
	}

	return progress
}
