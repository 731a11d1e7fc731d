package reconciling

import (
	"sort"

	"github.com/vfg2006/store-finance-api/internal/domain"
	"github.com/vfg2006/store-finance-api/pkg/utils"
)

// Merge junta contas a pagar (SAIDA) e a receber (ENTRADA) em uma linha do tempo ordenada
// por vencimento. A ordenação é estável: no mesmo vencimento as contas a pagar vêm antes
// e a ordem de entrada é mantida. O saldo projetado considera todos os títulos,
// independente do status.
func Merge(payables, receivables []*domain.LedgerEntry) *domain.ReconciliationTimeline {
	entries := make([]*domain.TimelineEntry, 0, len(payables)+len(receivables))
	entries = appendTagged(entries, payables, domain.DirectionOutflow)
	entries = appendTagged(entries, receivables, domain.DirectionInflow)

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DueDate.Before(entries[j].DueDate)
	})

	timeline := &domain.ReconciliationTimeline{Entries: entries}
	for _, e := range entries {
		amount := domain.OrZero(e.Amount)

		switch e.Direction {
		case domain.DirectionOutflow:
			timeline.TotalOutflow = timeline.TotalOutflow.Add(amount)
			if !e.Status.IsSettled() {
				timeline.OpenOutflow = timeline.OpenOutflow.Add(amount)
			}
			if e.Status == domain.LedgerStatusOverdue {
				timeline.OverdueOutflow = timeline.OverdueOutflow.Add(amount)
			}
		case domain.DirectionInflow:
			timeline.TotalInflow = timeline.TotalInflow.Add(amount)
			if !e.Status.IsSettled() {
				timeline.OpenInflow = timeline.OpenInflow.Add(amount)
			}
			if e.Status == domain.LedgerStatusOverdue {
				timeline.OverdueInflow = timeline.OverdueInflow.Add(amount)
			}
		}
	}

	timeline.ProjectedBalance = timeline.TotalInflow.Sub(timeline.TotalOutflow)
	timeline.OpenOutflowLabel = utils.FormatBRL(timeline.OpenOutflow)
	timeline.OpenInflowLabel = utils.FormatBRL(timeline.OpenInflow)
	timeline.ProjectedBalanceLabel = utils.FormatBRL(timeline.ProjectedBalance)

	return timeline
}

func appendTagged(entries []*domain.TimelineEntry, ledger []*domain.LedgerEntry, direction domain.LedgerDirection) []*domain.TimelineEntry {
	for _, l := range ledger {
		if l == nil {
			continue
		}
		tagged := *l
		tagged.Direction = direction
		entries = append(entries, &domain.TimelineEntry{
			LedgerEntry: &tagged,
			AmountLabel: utils.FormatBRL(domain.OrZero(l.Amount)),
		})
	}
	return entries
}
