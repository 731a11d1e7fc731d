package reconciling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-finance-api/internal/domain"
)

func entry(id string, day int, amount float64, status domain.LedgerStatus) *domain.LedgerEntry {
	return &domain.LedgerEntry{
		ID:      id,
		Amount:  domain.Amount(amount),
		DueDate: time.Date(2024, 6, day, 0, 0, 0, 0, time.UTC),
		Status:  status,
	}
}

func TestMerge(t *testing.T) {
	payables := []*domain.LedgerEntry{
		entry("p1", 10, 500, domain.LedgerStatusPending),
		entry("p2", 5, 300, domain.LedgerStatusPaid),
		entry("p3", 10, 200, domain.LedgerStatusOverdue),
	}
	receivables := []*domain.LedgerEntry{
		entry("r1", 10, 1000, domain.LedgerStatusPending),
		entry("r2", 1, 400, domain.LedgerStatusReceived),
		entry("r3", 7, 150, domain.LedgerStatusOverdue),
	}

	timeline := Merge(payables, receivables)
	require.Len(t, timeline.Entries, 6)

	ids := make([]string, 0, len(timeline.Entries))
	for _, e := range timeline.Entries {
		ids = append(ids, e.ID)
	}
	// No mesmo vencimento, contas a pagar antes e ordem de entrada preservada
	assert.Equal(t, []string{"r2", "p2", "r3", "p1", "p3", "r1"}, ids)

	assert.Equal(t, domain.DirectionInflow, timeline.Entries[0].Direction)
	assert.Equal(t, domain.DirectionOutflow, timeline.Entries[1].Direction)
	assert.Equal(t, "R$ 400,00", timeline.Entries[0].AmountLabel)

	assert.Equal(t, "700", timeline.OpenOutflow.String())
	assert.Equal(t, "1150", timeline.OpenInflow.String())
	assert.Equal(t, "200", timeline.OverdueOutflow.String())
	assert.Equal(t, "150", timeline.OverdueInflow.String())
	assert.Equal(t, "1000", timeline.TotalOutflow.String())
	assert.Equal(t, "1550", timeline.TotalInflow.String())
	assert.Equal(t, "550", timeline.ProjectedBalance.String())
	assert.Equal(t, "R$ 550,00", timeline.ProjectedBalanceLabel)
}

func TestMerge_DoesNotMutateInput(t *testing.T) {
	payable := entry("p1", 1, 100, domain.LedgerStatusPending)

	Merge([]*domain.LedgerEntry{payable}, nil)

	assert.Empty(t, payable.Direction)
}

func TestMerge_EmptyAndNullAmounts(t *testing.T) {
	timeline := Merge(nil, []*domain.LedgerEntry{{ID: "r1", Status: domain.LedgerStatusPending}})

	require.Len(t, timeline.Entries, 1)
	assert.True(t, timeline.OpenInflow.IsZero())
	assert.True(t, timeline.ProjectedBalance.IsZero())
	assert.Equal(t, "R$ 0,00", timeline.OpenOutflowLabel)
}
