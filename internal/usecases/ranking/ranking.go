package ranking

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/store-finance-api/internal/domain"
	"github.com/vfg2006/store-finance-api/pkg/utils"
)

// Limites inferiores inclusivos do semáforo, em fração da meta
const (
	redThreshold    = 0.5
	yellowThreshold = 0.8
)

// Semaphore retorna vermelho quando a loja tem divergência ou atingiu menos de 50% da meta,
// amarelo abaixo de 80% e verde a partir disso
func Semaphore(pct float64, divergent bool) domain.Semaphore {
	switch {
	case divergent || pct < redThreshold:
		return domain.SemaphoreRed
	case pct < yellowThreshold:
		return domain.SemaphoreYellow
	}
	return domain.SemaphoreGreen
}

// Rank ordena as lojas por faturamento decrescente, desempatando pelo nome e depois pelo ID.
// Lojas sem meta entram com meta zero, has_goal false e semáforo vermelho.
func Rank(
	companyID, month string,
	stores []*domain.Store,
	revenue map[string]decimal.Decimal,
	goals map[string]*domain.Goal,
	divergent map[string]bool,
) []*domain.StoreRankingItem {
	items := make([]*domain.StoreRankingItem, 0, len(stores))

	for _, store := range stores {
		item := &domain.StoreRankingItem{
			CompanyID: companyID,
			StoreID:   store.ID,
			StoreName: store.Name,
			Month:     month,
			Revenue:   revenue[store.ID],
			Divergent: divergent[store.ID],
		}

		if goal, ok := goals[store.ID]; ok && goal != nil {
			item.HasGoal = true
			item.Target = domain.OrZero(goal.TargetRevenue)
		}

		ratio := 0.0
		if item.Target.IsPositive() {
			ratio = item.Revenue.Div(item.Target).InexactFloat64()
		}

		item.Percentage = utils.RoundOneDecimal(utils.Percentage(item.Revenue, item.Target))
		item.Semaphore = Semaphore(ratio, item.Divergent)
		item.RevenueLabel = utils.FormatBRL(item.Revenue)

		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if cmp := items[i].Revenue.Cmp(items[j].Revenue); cmp != 0 {
			return cmp > 0
		}
		if items[i].StoreName != items[j].StoreName {
			return items[i].StoreName < items[j].StoreName
		}
		return items[i].StoreID < items[j].StoreID
	})

	for i, item := range items {
		item.Position = i + 1
	}

	return items
}

// ApplyPreviousPositions preenche a posição anterior e a variação a partir do último ranking
// salvo. Variação positiva significa que a loja subiu.
func ApplyPreviousPositions(current []*domain.StoreRankingItem, previous map[string]*domain.StoreRankingItem) {
	for _, item := range current {
		before, exists := previous[item.StoreID]
		if !exists || before == nil || before.Position == 0 {
			continue
		}

		item.PreviousPosition = before.Position
		item.PositionChange = before.Position - item.Position
	}
}

// DivergentStores retorna as lojas com conferência de caixa Divergente
func DivergentStores(recs []*domain.StoreReconciliation) map[string]bool {
	divergent := make(map[string]bool)
	for _, rec := range recs {
		if rec.Status == domain.ReconciliationStatusDivergent {
			divergent[rec.StoreID] = true
		}
	}
	return divergent
}

// CountSemaphores conta as lojas em cada cor do semáforo
func CountSemaphores(items []*domain.StoreRankingItem) map[domain.Semaphore]int {
	counts := map[domain.Semaphore]int{
		domain.SemaphoreGreen:  0,
		domain.SemaphoreYellow: 0,
		domain.SemaphoreRed:    0,
	}
	for _, item := range items {
		counts[item.Semaphore]++
	}
	return counts
}
