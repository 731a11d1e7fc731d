package closing

import (
	"sort"

	"github.com/vfg2006/store-finance-api/internal/domain"
	"github.com/vfg2006/store-finance-api/pkg/utils"
)

// Aggregate soma os fechamentos por loja e no total geral.
// Fechamentos com status Aberto contam como caixas abertos, os demais como fechados.
func Aggregate(closings []*domain.CashClosing) *domain.CashClosingSummary {
	byStore := make(map[string]*domain.CashClosingTotals)
	total := &domain.CashClosingTotals{}

	for _, c := range closings {
		if c == nil {
			continue
		}

		storeTotals, ok := byStore[c.StoreID]
		if !ok {
			storeTotals = &domain.CashClosingTotals{StoreID: c.StoreID, StoreName: c.StoreName}
			byStore[c.StoreID] = storeTotals
		}

		accumulate(storeTotals, c)
		accumulate(total, c)
	}

	storeIDs := make([]string, 0, len(byStore))
	for id := range byStore {
		storeIDs = append(storeIDs, id)
	}
	sort.Strings(storeIDs)

	summary := &domain.CashClosingSummary{
		Stores: make([]*domain.CashClosingTotals, 0, len(storeIDs)),
		Total:  withLabels(total),
	}
	for _, id := range storeIDs {
		summary.Stores = append(summary.Stores, withLabels(byStore[id]))
	}

	return summary
}

func accumulate(t *domain.CashClosingTotals, c *domain.CashClosing) {
	t.Count++
	if c.Status == domain.CashClosingStatusOpen {
		t.OpenRegisters++
	} else {
		t.ClosedRegisters++
	}

	t.Cash = t.Cash.Add(domain.OrZero(c.Cash))
	t.Pix = t.Pix.Add(domain.OrZero(c.Pix))
	t.Card = t.Card.Add(domain.OrZero(c.Card))
	t.AccessoriesSales = t.AccessoriesSales.Add(domain.OrZero(c.AccessoriesSales))
	t.TotalInflow = t.TotalInflow.Add(c.Inflow())
	t.TotalOutflow = t.TotalOutflow.Add(c.Outflow())
	t.ClosingBalance = t.ClosingBalance.Add(c.Balance())
}

func withLabels(t *domain.CashClosingTotals) *domain.CashClosingTotals {
	t.TotalInflowLabel = utils.FormatBRL(t.TotalInflow)
	t.TotalOutflowLabel = utils.FormatBRL(t.TotalOutflow)
	t.ClosingBalanceLabel = utils.FormatBRL(t.ClosingBalance)
	return t
}
