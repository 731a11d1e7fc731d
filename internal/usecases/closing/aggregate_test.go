package closing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-finance-api/internal/domain"
)

func closingOf(storeID, storeName string, status domain.CashClosingStatus, cash, pix, card, outflows, withdrawals float64) *domain.CashClosing {
	c := &domain.CashClosing{
		StoreID:     storeID,
		StoreName:   storeName,
		Cash:        domain.Amount(cash),
		Pix:         domain.Amount(pix),
		Card:        domain.Amount(card),
		Outflows:    domain.Amount(outflows),
		Withdrawals: domain.Amount(withdrawals),
		Status:      status,
	}
	c.Recompute()
	return c
}

func TestAggregate(t *testing.T) {
	closings := []*domain.CashClosing{
		closingOf("loja-b", "Loja B", domain.CashClosingStatusClosed, 100, 50, 0, 10, 20),
		closingOf("loja-a", "Loja A", domain.CashClosingStatusOpen, 200, 0, 100, 0, 0),
		closingOf("loja-b", "Loja B", domain.CashClosingStatusChecked, 0, 0, 80, 5, 0),
		{StoreID: "loja-a", StoreName: "Loja A", Status: domain.CashClosingStatusDivergent},
	}

	summary := Aggregate(closings)
	require.Len(t, summary.Stores, 2)

	storeA := summary.Stores[0]
	assert.Equal(t, "loja-a", storeA.StoreID)
	assert.Equal(t, 2, storeA.Count)
	assert.Equal(t, 1, storeA.OpenRegisters)
	assert.Equal(t, 1, storeA.ClosedRegisters)
	assert.Equal(t, "300", storeA.TotalInflow.String())
	assert.Equal(t, "0", storeA.TotalOutflow.String())
	assert.Equal(t, "R$ 300,00", storeA.TotalInflowLabel)

	storeB := summary.Stores[1]
	assert.Equal(t, "loja-b", storeB.StoreID)
	assert.Equal(t, 2, storeB.ClosedRegisters)
	assert.Equal(t, "230", storeB.TotalInflow.String())
	assert.Equal(t, "35", storeB.TotalOutflow.String())
	assert.Equal(t, "195", storeB.ClosingBalance.String())

	total := summary.Total
	assert.Equal(t, 4, total.Count)
	assert.Equal(t, 1, total.OpenRegisters)
	assert.Equal(t, 3, total.ClosedRegisters)
	assert.Equal(t, "300", total.Cash.String())
	assert.Equal(t, "50", total.Pix.String())
	assert.Equal(t, "180", total.Card.String())
	assert.Equal(t, "530", total.TotalInflow.String())
	assert.Equal(t, "495", total.ClosingBalance.String())
	assert.Equal(t, "R$ 495,00", total.ClosingBalanceLabel)
}

func TestAggregate_Empty(t *testing.T) {
	summary := Aggregate(nil)

	assert.NotNil(t, summary.Stores)
	assert.Empty(t, summary.Stores)
	assert.Equal(t, 0, summary.Total.Count)
	assert.True(t, summary.Total.ClosingBalance.IsZero())
	assert.Equal(t, "R$ 0,00", summary.Total.TotalInflowLabel)
}
