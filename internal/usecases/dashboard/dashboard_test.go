package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-finance-api/infrastructure/repository/mocks"
	"github.com/vfg2006/store-finance-api/internal/config"
	"github.com/vfg2006/store-finance-api/internal/domain"
	"github.com/vfg2006/store-finance-api/internal/usecases/planning"
	errorcodes "github.com/vfg2006/store-finance-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var (
	financeUser = &domain.Principal{UserID: "u-1", CompanyID: "empresa-1", PrimaryRole: domain.RoleFinance}
	storeUser   = &domain.Principal{UserID: "u-2", CompanyID: "empresa-1", StoreID: "s1", PrimaryRole: domain.RoleStore}
)

type serviceMocks struct {
	stores          *mocks.MockStoreRepository
	employees       *mocks.MockEmployeeRepository
	closings        *mocks.MockCashClosingRepository
	ledger          *mocks.MockLedgerRepository
	audits          *mocks.MockAuditRepository
	campaigns       *mocks.MockCampaignRepository
	goals           *mocks.MockGoalRepository
	reconciliations *mocks.MockReconciliationRepository
	dre             *mocks.MockDRERepository
}

func newTestService(t *testing.T) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		stores:          mocks.NewMockStoreRepository(ctrl),
		employees:       mocks.NewMockEmployeeRepository(ctrl),
		closings:        mocks.NewMockCashClosingRepository(ctrl),
		ledger:          mocks.NewMockLedgerRepository(ctrl),
		audits:          mocks.NewMockAuditRepository(ctrl),
		campaigns:       mocks.NewMockCampaignRepository(ctrl),
		goals:           mocks.NewMockGoalRepository(ctrl),
		reconciliations: mocks.NewMockReconciliationRepository(ctrl),
		dre:             mocks.NewMockDRERepository(ctrl),
	}

	cfg := &config.Config{Dashboard: config.Dashboard{HistoryDays: 7, FetchTimeout: time.Second}}
	repos := Repositories{
		Stores:          m.stores,
		Employees:       m.employees,
		Closings:        m.closings,
		Ledger:          m.ledger,
		Audits:          m.audits,
		Campaigns:       m.campaigns,
		Goals:           m.goals,
		Reconciliations: m.reconciliations,
	}

	svc := NewService(repos, planning.NewService(m.dre), cfg).(*Service)
	svc.now = func() time.Time { return time.Date(2024, 6, 12, 15, 30, 0, 0, time.UTC) }
	return svc, m
}

func day(d int) time.Time {
	return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC)
}

func TestService_Admin(t *testing.T) {
	svc, m := newTestService(t)

	m.stores.EXPECT().List(gomock.Any(), domain.StoreFilter{CompanyID: "empresa-1", OnlyActive: true}).
		Return([]*domain.Store{{ID: "s1", Name: "Centro"}, {ID: "s2", Name: "Bairro"}}, nil)
	m.employees.EXPECT().List(gomock.Any(), domain.EmployeeFilter{CompanyID: "empresa-1", OnlyActive: true}).
		Return([]*domain.Employee{
			{Salary: domain.Amount(2000), Allowance: domain.Amount(300), Transport: domain.Amount(200)},
			{Salary: domain.Amount(1500)},
		}, nil)
	m.closings.EXPECT().List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter domain.CashClosingFilter) ([]*domain.CashClosing, error) {
			assert.Equal(t, day(1), *filter.StartDate)
			assert.Equal(t, day(30), *filter.EndDate)
			return []*domain.CashClosing{
				{StoreID: "s1", Cash: domain.Amount(800), Status: domain.CashClosingStatusClosed},
				{StoreID: "s2", Pix: domain.Amount(300), Status: domain.CashClosingStatusOpen},
			}, nil
		})
	m.ledger.EXPECT().List(gomock.Any(), domain.DirectionOutflow, domain.LedgerFilter{CompanyID: "empresa-1"}).
		Return([]*domain.LedgerEntry{
			{Amount: domain.Amount(400), Status: domain.LedgerStatusPending, DueDate: day(5)},
			{Amount: domain.Amount(100), Status: domain.LedgerStatusPaid, DueDate: day(6)},
		}, nil)
	m.ledger.EXPECT().List(gomock.Any(), domain.DirectionInflow, domain.LedgerFilter{CompanyID: "empresa-1"}).
		Return([]*domain.LedgerEntry{
			{Amount: domain.Amount(250), Status: domain.LedgerStatusOverdue, DueDate: day(2)},
			{Amount: domain.Amount(900), Status: domain.LedgerStatusReceived, DueDate: day(3)},
		}, nil)
	m.audits.EXPECT().List(gomock.Any(), domain.AuditFilter{CompanyID: "empresa-1"}).
		Return([]*domain.AuditOccurrence{
			{Status: domain.AuditStatusOpen},
			{Status: domain.AuditStatusAnalysis},
			{Status: domain.AuditStatusResolved},
		}, nil)
	m.campaigns.EXPECT().List(gomock.Any(), domain.CampaignFilter{CompanyID: "empresa-1", OnlyActive: true}).
		Return([]*domain.Campaign{{Active: true}}, nil)
	m.goals.EXPECT().ListMonthly(gomock.Any(), "empresa-1", "", "2024-06").
		Return([]*domain.Goal{
			{StoreID: "s1", TargetRevenue: domain.Amount(1000)},
			{StoreID: "s2", TargetRevenue: domain.Amount(1000)},
		}, nil)
	m.reconciliations.EXPECT().List(gomock.Any(), gomock.Any()).
		Return([]*domain.StoreReconciliation{{StoreID: "s2", Status: domain.ReconciliationStatusDivergent}}, nil)

	result, err := svc.Admin(context.Background(), financeUser, "")
	require.NoError(t, err)

	assert.Equal(t, "2024-06", result.Month)
	assert.Equal(t, 2, result.ActiveStores)
	assert.Equal(t, 2, result.ActiveEmployees)
	assert.Equal(t, "1100", result.Revenue.String())
	assert.Equal(t, "250", result.Delinquency.String())
	assert.Equal(t, "400", result.OpenPayables.String())
	assert.Equal(t, "250", result.OpenReceivables.String())
	assert.Equal(t, 2, result.PendingAudits)
	assert.Equal(t, 1, result.ActiveCampaigns)
	assert.Equal(t, 55.0, result.AverageAttainment)
	assert.Equal(t, 1, result.Divergences)
	assert.Equal(t, "4000", result.Payroll.String())
	assert.Equal(t, 1, result.OpenRegisters)
	assert.Equal(t, 1, result.ClosedRegisters)
	assert.Equal(t, "650", result.ProjectedBalance.String())

	require.Len(t, result.Ranking, 2)
	assert.Equal(t, "s1", result.Ranking[0].StoreID)
	assert.Equal(t, domain.SemaphoreGreen, result.Ranking[0].Semaphore)
	assert.Equal(t, domain.SemaphoreRed, result.Ranking[1].Semaphore)
	assert.Equal(t, 1, result.Semaphore[domain.SemaphoreGreen])
	assert.Equal(t, 0, result.Semaphore[domain.SemaphoreYellow])
	assert.Equal(t, 1, result.Semaphore[domain.SemaphoreRed])
}

func TestService_Admin_FetchFailure(t *testing.T) {
	svc, m := newTestService(t)

	m.stores.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("conexão perdida")).AnyTimes()
	m.employees.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	m.closings.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	m.ledger.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	m.audits.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	m.campaigns.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	m.goals.EXPECT().ListMonthly(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	m.reconciliations.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	result, err := svc.Admin(context.Background(), financeUser, "2024-06")
	assert.Nil(t, result)

	var opErr *domain.OperationError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, errorcodes.ErrFetchFailed, opErr.Code)
}

func TestService_Admin_InvalidMonth(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Admin(context.Background(), financeUser, "06/2024")
	assert.ErrorIs(t, err, domain.ErrInvalidFormat)
}

func TestService_Store(t *testing.T) {
	svc, m := newTestService(t)

	m.stores.EXPECT().GetByID(gomock.Any(), "s1").
		Return(&domain.Store{ID: "s1", CompanyID: "empresa-1", Name: "Centro"}, nil)
	m.goals.EXPECT().ListMonthly(gomock.Any(), "empresa-1", "s1", "2024-06").
		Return([]*domain.Goal{{StoreID: "s1", DailyTarget: domain.Amount(1000)}}, nil)
	m.closings.EXPECT().List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter domain.CashClosingFilter) ([]*domain.CashClosing, error) {
			assert.Equal(t, "s1", filter.StoreID)
			assert.Equal(t, day(6), *filter.StartDate)
			assert.Equal(t, day(12), *filter.EndDate)
			return []*domain.CashClosing{
				{StoreID: "s1", Date: day(10), Cash: domain.Amount(900)},
				{StoreID: "s1", Date: day(12), Cash: domain.Amount(500), Pix: domain.Amount(100), Status: domain.CashClosingStatusOpen},
			}, nil
		})

	// usuário de loja sempre consulta a própria loja
	result, err := svc.Store(context.Background(), storeUser, "s2", 0)
	require.NoError(t, err)

	assert.True(t, result.HasGoal)
	assert.Equal(t, "600", result.TodayRevenue.String())
	assert.Equal(t, 60.0, result.Percentage)
	assert.Equal(t, "400", result.Remaining.String())
	require.NotNil(t, result.RegisterStatus)
	assert.Equal(t, domain.CashClosingStatusOpen, *result.RegisterStatus)

	require.Len(t, result.History, 7)
	assert.Equal(t, "2024-06-06", result.History[0].Date)
	assert.Equal(t, "qui 06", result.History[0].AxisLabel)
	assert.Equal(t, "900", result.History[4].Revenue.String())
	assert.Equal(t, "R$ 900", result.History[4].ValueLabel)
	assert.Equal(t, "R$ 0", result.History[0].ValueLabel)
	assert.Equal(t, "1000", result.History[6].DailyTarget.String())
}

func TestService_Store_InvalidDays(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Store(context.Background(), financeUser, "s1", 10)
	assert.ErrorIs(t, err, domain.ErrInvalidFormat)

	_, err = svc.Store(context.Background(), financeUser, "", 7)
	assert.ErrorIs(t, err, domain.ErrMissingRequiredData)
}

func TestService_Store_OtherCompany(t *testing.T) {
	svc, m := newTestService(t)

	m.stores.EXPECT().GetByID(gomock.Any(), "s9").
		Return(&domain.Store{ID: "s9", CompanyID: "empresa-2"}, nil)
	m.goals.EXPECT().ListMonthly(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.closings.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := svc.Store(context.Background(), financeUser, "s9", 15)
	assert.ErrorIs(t, err, domain.ErrForbiddenStore)
}

func TestBuildStore_WithoutGoal(t *testing.T) {
	result := BuildStore(&domain.Store{ID: "s1"}, day(12), 7, nil, []*domain.CashClosing{
		{Date: day(12), Cash: domain.Amount(300)},
	})

	assert.False(t, result.HasGoal)
	assert.Equal(t, 0.0, result.Percentage)
	assert.True(t, result.Remaining.IsZero())
	assert.True(t, result.History[0].Revenue.IsZero())
	assert.Equal(t, "300", result.History[6].Revenue.String())
}

func TestService_Board(t *testing.T) {
	svc, m := newTestService(t)

	m.dre.EXPECT().List(gomock.Any(), domain.DREFilter{CompanyID: "empresa-1", Year: 2024}).
		Return([]*domain.DREEntry{{Month: 1, Category: domain.DRECategoryRevenue, Amount: domain.Amount(500)}}, nil)

	kpis, err := svc.Board(context.Background(), financeUser, 2024)
	require.NoError(t, err)
	assert.Equal(t, "500", kpis.Revenue.String())
}
