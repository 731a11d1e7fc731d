package planning

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/store-finance-api/internal/domain"
	"github.com/vfg2006/store-finance-api/pkg/utils"
)

// BoardKPIs resume o histórico de DRE do ano para o painel da diretoria
func BoardKPIs(year int, entries []*domain.DREEntry) *domain.BoardKPIs {
	kpis := &domain.BoardKPIs{Year: year}

	revenueByStore := make(map[string]decimal.Decimal)
	byMonth := make(map[int]*domain.DREMonth)

	for _, e := range entries {
		amount := domain.OrZero(e.Amount)

		switch e.Category {
		case domain.DRECategoryRevenue:
			kpis.Revenue = kpis.Revenue.Add(amount)

			store := e.StoreName
			if store == "" {
				store = domain.DREHeadquarters
			}
			revenueByStore[store] = revenueByStore[store].Add(amount)
		case domain.DRECategoryNetProfit, domain.DRECategoryNetResult:
			kpis.NetProfit = kpis.NetProfit.Add(amount)
		}

		month, ok := byMonth[e.Month]
		if !ok {
			month = &domain.DREMonth{Month: e.Month}
			byMonth[e.Month] = month
		}

		switch e.Category {
		case domain.DRECategoryRevenue:
			month.Revenue = month.Revenue.Add(amount)
		case domain.DRECategoryOperational, domain.DRECategoryCMV:
			month.Expenses = month.Expenses.Add(amount)
		case domain.DRECategoryNetProfit:
			month.Profit = month.Profit.Add(amount)
		}
	}

	kpis.Margin = utils.RoundOneDecimal(utils.Percentage(kpis.NetProfit, kpis.Revenue))
	kpis.RevenueLabel = utils.FormatBRL(kpis.Revenue)
	kpis.NetProfitLabel = utils.FormatBRL(kpis.NetProfit)

	kpis.StoreRanking = make([]*domain.DREStoreRevenue, 0, len(revenueByStore))
	for name, revenue := range revenueByStore {
		kpis.StoreRanking = append(kpis.StoreRanking, &domain.DREStoreRevenue{
			StoreName:    name,
			Revenue:      revenue,
			RevenueLabel: utils.FormatBRL(revenue),
		})
	}
	sort.Slice(kpis.StoreRanking, func(i, j int) bool {
		if cmp := kpis.StoreRanking[i].Revenue.Cmp(kpis.StoreRanking[j].Revenue); cmp != 0 {
			return cmp > 0
		}
		return kpis.StoreRanking[i].StoreName < kpis.StoreRanking[j].StoreName
	})

	kpis.Evolution = make([]*domain.DREMonth, 0, len(byMonth))
	for _, month := range byMonth {
		kpis.Evolution = append(kpis.Evolution, month)
	}
	sort.Slice(kpis.Evolution, func(i, j int) bool {
		return kpis.Evolution[i].Month < kpis.Evolution[j].Month
	})

	return kpis
}

// BuildPlanning monta os 12 meses do planejamento com lucro = receitas - despesas
func BuildPlanning(year int, storeName string, entries []*domain.DREEntry) *domain.Planning {
	planning := &domain.Planning{
		Year:      year,
		StoreName: storeName,
		Months:    make([]*domain.PlanningMonth, 12),
	}
	for i := range planning.Months {
		planning.Months[i] = &domain.PlanningMonth{Month: i + 1}
	}

	for _, e := range entries {
		if e.Month < 1 || e.Month > 12 {
			continue
		}
		month := planning.Months[e.Month-1]
		amount := domain.OrZero(e.Amount)

		switch e.Category {
		case domain.DREPlanningRevenue:
			month.Revenue = month.Revenue.Add(amount)
			planning.TotalRevenue = planning.TotalRevenue.Add(amount)
		case domain.DREPlanningExpense:
			month.Expenses = month.Expenses.Add(amount)
			planning.TotalExpenses = planning.TotalExpenses.Add(amount)
		}
	}

	for _, month := range planning.Months {
		month.Profit = month.Revenue.Sub(month.Expenses)
	}
	planning.TotalProfit = planning.TotalRevenue.Sub(planning.TotalExpenses)
	planning.Margin = utils.RoundOneDecimal(utils.Percentage(planning.TotalProfit, planning.TotalRevenue))

	return planning
}
