package closing

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

var (
	financeUser = &domain.Principal{UserID: "u-1", CompanyID: "empresa-1", PrimaryRole: domain.RoleFinance}
	storeUser   = &domain.Principal{UserID: "u-2", CompanyID: "empresa-1", StoreID: "loja-1", PrimaryRole: domain.RoleStore}
)

func newTestService(t *testing.T) (*Service, *mocks.MockCashClosingRepository, *mocks.MockStoreRepository) {
	ctrl := gomock.NewController(t)
	closingRepo := mocks.NewMockCashClosingRepository(ctrl)
	storeRepo := mocks.NewMockStoreRepository(ctrl)

	svc := NewService(closingRepo, storeRepo).(*Service)
	svc.now = func() time.Time { return time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC) }
	return svc, closingRepo, storeRepo
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var opErr *domain.OperationError
	require.True(t, errors.As(err, &opErr), "erro esperado do tipo OperationError: %v", err)
	assert.Equal(t, code, opErr.Code)
}

func TestService_List_StoreUserIsScoped(t *testing.T) {
	svc, closingRepo, _ := newTestService(t)

	closingRepo.EXPECT().
		List(gomock.Any(), domain.CashClosingFilter{CompanyID: "empresa-1", StoreID: "loja-1"}).
		Return([]*domain.CashClosing{}, nil)

	_, err := svc.List(context.Background(), storeUser, domain.CashClosingFilter{CompanyID: "empresa-2", StoreID: "loja-2"})
	require.NoError(t, err)
}

func TestService_List_StoreUserWithoutStoreIsForbidden(t *testing.T) {
	svc, closingRepo, _ := newTestService(t)
	unlinked := &domain.Principal{UserID: "u-3", CompanyID: "empresa-1", PrimaryRole: domain.RoleStore}

	closingRepo.EXPECT().List(gomock.Any(), gomock.Any()).Times(0)

	closings, err := svc.List(context.Background(), unlinked, domain.CashClosingFilter{})
	assert.Nil(t, closings)
	assertCode(t, err, errorcodes.ErrForbiddenStore)

	summary, err := svc.Summary(context.Background(), unlinked, domain.CashClosingFilter{})
	assert.Nil(t, summary)
	assertCode(t, err, errorcodes.ErrForbiddenStore)
}

func TestService_Summary_DatabaseError(t *testing.T) {
	svc, closingRepo, _ := newTestService(t)

	closingRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("conexão recusada"))

	summary, err := svc.Summary(context.Background(), financeUser, domain.CashClosingFilter{})
	assert.Nil(t, summary)
	assertCode(t, err, errorcodes.ErrDatabaseOperation)
}

func TestService_Create(t *testing.T) {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		principal *domain.Principal
		closing   *domain.CashClosing
		setup     func(*mocks.MockCashClosingRepository, *mocks.MockStoreRepository)
		wantCode  string
		validate  func(t *testing.T, c *domain.CashClosing)
	}{
		{
			name:      "Cria fechamento recalculando o saldo final",
			principal: storeUser,
			closing: &domain.CashClosing{
				StoreID:        "loja-1",
				Date:           date,
				OpeningBalance: domain.Amount(100),
				Cash:           domain.Amount(300),
				Pix:            domain.Amount(200),
				Withdrawals:    domain.Amount(50),
			},
			setup: func(closingRepo *mocks.MockCashClosingRepository, storeRepo *mocks.MockStoreRepository) {
				storeRepo.EXPECT().GetByID(gomock.Any(), "loja-1").
					Return(&domain.Store{ID: "loja-1", CompanyID: "empresa-1", Name: "Centro"}, nil)
				closingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *domain.CashClosing) error {
						c.ID = "fech-1"
						return nil
					})
			},
			validate: func(t *testing.T, c *domain.CashClosing) {
				assert.Equal(t, "fech-1", c.ID)
				assert.Equal(t, "empresa-1", c.CompanyID)
				assert.Equal(t, domain.CashClosingStatusOpen, c.Status)
				assert.Equal(t, "500", c.TotalInflow.String())
				assert.Equal(t, "550", c.ClosingBalance.String())
			},
		},
		{
			name:      "Loja e data são obrigatórias",
			principal: financeUser,
			closing:   &domain.CashClosing{StoreID: "loja-1"},
			setup:     func(*mocks.MockCashClosingRepository, *mocks.MockStoreRepository) {},
			wantCode:  errorcodes.ErrMissingRequiredData,
		},
		{
			name:      "Status inválido",
			principal: financeUser,
			closing:   &domain.CashClosing{StoreID: "loja-1", Date: date, Status: "Cancelado"},
			setup:     func(*mocks.MockCashClosingRepository, *mocks.MockStoreRepository) {},
			wantCode:  errorcodes.ErrInvalidStatus,
		},
		{
			name:      "Usuário de loja não grava em outra loja",
			principal: storeUser,
			closing:   &domain.CashClosing{StoreID: "loja-2", Date: date},
			setup: func(_ *mocks.MockCashClosingRepository, storeRepo *mocks.MockStoreRepository) {
				storeRepo.EXPECT().GetByID(gomock.Any(), "loja-2").
					Return(&domain.Store{ID: "loja-2", CompanyID: "empresa-1"}, nil)
			},
			wantCode: errorcodes.ErrForbiddenStore,
		},
		{
			name:      "Loja inexistente",
			principal: financeUser,
			closing:   &domain.CashClosing{StoreID: "loja-9", Date: date},
			setup: func(_ *mocks.MockCashClosingRepository, storeRepo *mocks.MockStoreRepository) {
				storeRepo.EXPECT().GetByID(gomock.Any(), "loja-9").Return(nil, nil)
			},
			wantCode: errorcodes.ErrResourceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, closingRepo, storeRepo := newTestService(t)
			tt.setup(closingRepo, storeRepo)

			result, err := svc.Create(context.Background(), tt.principal, tt.closing)
			if tt.wantCode != "" {
				assert.Nil(t, result)
				assertCode(t, err, tt.wantCode)
				return
			}

			require.NoError(t, err)
			tt.validate(t, result)
		})
	}
}

func TestService_Update_KeepsStoreAndRecomputes(t *testing.T) {
	svc, closingRepo, _ := newTestService(t)

	existing := &domain.CashClosing{
		ID:        "fech-1",
		CompanyID: "empresa-1",
		StoreID:   "loja-1",
		Date:      time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC),
		Status:    domain.CashClosingStatusOpen,
	}
	closingRepo.EXPECT().GetByID(gomock.Any(), "fech-1").Return(existing, nil)
	closingRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := svc.Update(context.Background(), storeUser, &domain.CashClosing{
		ID:      "fech-1",
		StoreID: "loja-2",
		Card:    domain.Amount(120),
		Status:  domain.CashClosingStatusClosed,
	})
	require.NoError(t, err)

	assert.Equal(t, "loja-1", updated.StoreID)
	assert.Equal(t, existing.Date, updated.Date)
	assert.Equal(t, domain.CashClosingStatusClosed, updated.Status)
	assert.Equal(t, "120", updated.ClosingBalance.String())
}

func TestService_Update_NotFound(t *testing.T) {
	svc, closingRepo, _ := newTestService(t)

	closingRepo.EXPECT().GetByID(gomock.Any(), "fech-9").Return(nil, nil)

	_, err := svc.Update(context.Background(), financeUser, &domain.CashClosing{ID: "fech-9"})
	assertCode(t, err, errorcodes.ErrResourceNotFound)
	assert.True(t, domain.IsNotFound(err))
}

func TestService_Delete(t *testing.T) {
	svc, closingRepo, _ := newTestService(t)

	closingRepo.EXPECT().GetByID(gomock.Any(), "fech-1").
		Return(&domain.CashClosing{ID: "fech-1", CompanyID: "empresa-1", StoreID: "loja-1"}, nil)
	closingRepo.EXPECT().SoftDelete(gomock.Any(), "fech-1", time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), storeUser, "fech-1"))
}

func TestService_Delete_OtherStoreIsForbidden(t *testing.T) {
	svc, closingRepo, _ := newTestService(t)

	closingRepo.EXPECT().GetByID(gomock.Any(), "fech-2").
		Return(&domain.CashClosing{ID: "fech-2", CompanyID: "empresa-1", StoreID: "loja-2"}, nil)

	err := svc.Delete(context.Background(), storeUser, "fech-2")
	assertCode(t, err, errorcodes.ErrForbiddenStore)
}
