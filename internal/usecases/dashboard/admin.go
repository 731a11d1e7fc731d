package dashboard

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/store-finance-api/internal/domain"
	"github.com/vfg2006/store-finance-api/internal/usecases/attainment"
	"github.com/vfg2006/store-finance-api/internal/usecases/closing"
	"github.com/vfg2006/store-finance-api/internal/usecases/ranking"
	"github.com/vfg2006/store-finance-api/internal/usecases/reconciling"
	"github.com/vfg2006/store-finance-api/pkg/utils"
)

// adminData são as leituras do painel administrativo
type adminData struct {
	stores          []*domain.Store
	employees       []*domain.Employee
	closings        []*domain.CashClosing
	payables        []*domain.LedgerEntry
	receivables     []*domain.LedgerEntry
	audits          []*domain.AuditOccurrence
	campaigns       []*domain.Campaign
	goals           []*domain.Goal
	reconciliations []*domain.StoreReconciliation
}

// BuildAdmin agrega as leituras do mês no painel administrativo
func BuildAdmin(companyID, month string, data *adminData) *domain.AdminDashboard {
	summary := closing.Aggregate(data.closings)
	timeline := reconciling.Merge(data.payables, data.receivables)

	realized := attainment.RealizedByStore(data.closings)
	goals := attainment.GoalsByStore(data.goals)
	divergent := ranking.DivergentStores(data.reconciliations)
	items := ranking.Rank(companyID, month, data.stores, realized, goals, divergent)

	dashboard := &domain.AdminDashboard{
		Month:            month,
		ActiveStores:     len(data.stores),
		ActiveEmployees:  len(data.employees),
		Revenue:          summary.Total.TotalInflow,
		Delinquency:      timeline.OverdueInflow,
		OpenPayables:     timeline.OpenOutflow,
		OpenReceivables:  timeline.OpenInflow,
		PendingAudits:    countPendingAudits(data.audits),
		ActiveCampaigns:  countActiveCampaigns(data.campaigns),
		Divergences:      len(data.reconciliations),
		Payroll:          payroll(data.employees),
		OpenRegisters:    summary.Total.OpenRegisters,
		ClosedRegisters:  summary.Total.ClosedRegisters,
		Ranking:          items,
		Semaphore:        ranking.CountSemaphores(items),
		ProjectedBalance: timeline.ProjectedBalance,
	}
	dashboard.AverageAttainment = averageAttainment(goals, realized)

	dashboard.RevenueLabel = utils.FormatBRL(dashboard.Revenue)
	dashboard.DelinquencyLabel = utils.FormatBRL(dashboard.Delinquency)
	dashboard.OpenPayablesLabel = utils.FormatBRL(dashboard.OpenPayables)
	dashboard.OpenReceivablesLabel = utils.FormatBRL(dashboard.OpenReceivables)
	dashboard.PayrollLabel = utils.FormatBRL(dashboard.Payroll)
	dashboard.ProjectedBalanceLabel = utils.FormatBRL(dashboard.ProjectedBalance)

	return dashboard
}

func countPendingAudits(audits []*domain.AuditOccurrence) int {
	pending := 0
	for _, a := range audits {
		if a.Status != domain.AuditStatusResolved {
			pending++
		}
	}
	return pending
}

func countActiveCampaigns(campaigns []*domain.Campaign) int {
	active := 0
	for _, c := range campaigns {
		if c.Active {
			active++
		}
	}
	return active
}

func payroll(employees []*domain.Employee) decimal.Decimal {
	total := decimal.Zero
	for _, e := range employees {
		total = total.Add(e.MonthlyCost())
	}
	return total
}

// averageAttainment é a média do atingimento das metas com valor positivo
func averageAttainment(goals map[string]*domain.Goal, realized map[string]decimal.Decimal) float64 {
	var sum float64
	count := 0

	for _, g := range goals {
		target := domain.OrZero(g.TargetRevenue)
		if !target.IsPositive() {
			continue
		}
		sum += utils.Percentage(realized[g.StoreID], target)
		count++
	}

	if count == 0 {
		return 0
	}
	return utils.RoundOneDecimal(sum / float64(count))
}
