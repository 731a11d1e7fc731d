package planning

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-finance-api/infrastructure/repository/mocks"
	"github.com/vfg2006/store-finance-api/internal/domain"
	errorcodes "github.com/vfg2006/store-finance-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func dre(month int, category, store string, amount float64) *domain.DREEntry {
	return &domain.DREEntry{Year: 2024, Month: month, Category: category, StoreName: store, Amount: domain.Amount(amount)}
}

func TestBoardKPIs(t *testing.T) {
	entries := []*domain.DREEntry{
		dre(1, domain.DRECategoryRevenue, "Centro", 10000),
		dre(1, domain.DRECategoryRevenue, "", 4000),
		dre(2, domain.DRECategoryRevenue, "Centro", 6000),
		dre(1, domain.DRECategoryOperational, "", 3000),
		dre(1, domain.DRECategoryCMV, "", 2000),
		dre(1, domain.DRECategoryNetProfit, "", 2500),
		dre(2, domain.DRECategoryNetResult, "", 1500),
		{Year: 2024, Month: 2, Category: domain.DRECategoryOperational},
	}

	kpis := BoardKPIs(2024, entries)

	assert.Equal(t, "20000", kpis.Revenue.String())
	assert.Equal(t, "4000", kpis.NetProfit.String())
	assert.Equal(t, 20.0, kpis.Margin)
	assert.Equal(t, "R$ 20.000,00", kpis.RevenueLabel)

	require.Len(t, kpis.StoreRanking, 2)
	assert.Equal(t, "Centro", kpis.StoreRanking[0].StoreName)
	assert.Equal(t, "16000", kpis.StoreRanking[0].Revenue.String())
	assert.Equal(t, domain.DREHeadquarters, kpis.StoreRanking[1].StoreName)

	require.Len(t, kpis.Evolution, 2)
	assert.Equal(t, 1, kpis.Evolution[0].Month)
	assert.Equal(t, "5000", kpis.Evolution[0].Expenses.String())
	assert.Equal(t, "2500", kpis.Evolution[0].Profit.String())
	// Resultado Líquido entra no total do ano mas não na evolução mensal
	assert.True(t, kpis.Evolution[1].Profit.IsZero())
}

func TestBoardKPIs_NoRevenue(t *testing.T) {
	kpis := BoardKPIs(2024, []*domain.DREEntry{dre(1, domain.DRECategoryNetProfit, "", -500)})

	assert.Equal(t, 0.0, kpis.Margin)
	assert.Empty(t, kpis.StoreRanking)
}

func TestBuildPlanning(t *testing.T) {
	planning := BuildPlanning(2024, "", []*domain.DREEntry{
		dre(1, domain.DREPlanningRevenue, "", 1000),
		dre(1, domain.DREPlanningExpense, "", 600),
		dre(3, domain.DREPlanningRevenue, "", 500),
		dre(13, domain.DREPlanningRevenue, "", 999),
	})

	require.Len(t, planning.Months, 12)
	assert.Equal(t, "400", planning.Months[0].Profit.String())
	assert.True(t, planning.Months[1].Revenue.IsZero())
	assert.Equal(t, "500", planning.Months[2].Profit.String())
	assert.Equal(t, "1500", planning.TotalRevenue.String())
	assert.Equal(t, "900", planning.TotalProfit.String())
	assert.Equal(t, 60.0, planning.Margin)
}

func TestService_BoardKPIs(t *testing.T) {
	ctrl := gomock.NewController(t)
	dreRepo := mocks.NewMockDRERepository(ctrl)

	svc := NewService(dreRepo).(*Service)
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }

	board := &domain.Principal{CompanyID: "empresa-1", PrimaryRole: domain.RoleBoard}

	dreRepo.EXPECT().List(gomock.Any(), domain.DREFilter{CompanyID: "empresa-1", Year: 2024}).
		Return([]*domain.DREEntry{dre(1, domain.DRECategoryRevenue, "Centro", 100)}, nil)

	kpis, err := svc.BoardKPIs(context.Background(), board, 0)
	require.NoError(t, err)
	assert.Equal(t, 2024, kpis.Year)

	_, err = svc.BoardKPIs(context.Background(), board, 1999)
	var opErr *domain.OperationError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, errorcodes.ErrInvalidFormat, opErr.Code)
}
