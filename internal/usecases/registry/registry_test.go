package registry

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-finance-api/infrastructure/repository/mocks"
	"github.com/vfg2006/store-finance-api/internal/domain"
	errorcodes "github.com/vfg2006/store-finance-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var (
	adminUser   = &domain.Principal{UserID: "admin", CompanyID: "empresa-1", PrimaryRole: domain.RoleAdmin}
	financeUser = &domain.Principal{UserID: "u-1", CompanyID: "empresa-1", PrimaryRole: domain.RoleFinance}
	storeUser   = &domain.Principal{UserID: "u-2", CompanyID: "empresa-1", StoreID: "s1", PrimaryRole: domain.RoleStore}
)

func ptr[T any](v T) *T {
	return &v
}

func TestCompanyService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	companyRepo := mocks.NewMockCompanyRepository(ctrl)
	svc := NewCompanyService(companyRepo)

	companyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *domain.Company) error {
			assert.Equal(t, "12345678000199", c.Document)
			assert.True(t, c.Active)
			return nil
		})

	company, err := svc.Create(context.Background(), &domain.Company{Name: " Ótica Central ", Document: "12.345.678/0001-99"})
	require.NoError(t, err)
	assert.Equal(t, "Ótica Central", company.Name)

	_, err = svc.Create(context.Background(), &domain.Company{Name: " "})
	assert.ErrorIs(t, err, domain.ErrMissingRequiredData)

	companyRepo.EXPECT().SetActive(gomock.Any(), "e9", false).Return(sql.ErrNoRows)
	err = svc.SetActive(context.Background(), "e9", false)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStoreService(t *testing.T) {
	ctrl := gomock.NewController(t)
	storeRepo := mocks.NewMockStoreRepository(ctrl)
	companyRepo := mocks.NewMockCompanyRepository(ctrl)
	svc := NewStoreService(storeRepo, companyRepo)

	t.Run("Financeiro cria loja sempre na própria empresa", func(t *testing.T) {
		companyRepo.EXPECT().GetByID(gomock.Any(), "empresa-1").Return(&domain.Company{ID: "empresa-1"}, nil)
		storeRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		store, err := svc.Create(context.Background(), financeUser, &domain.Store{Name: "Shopping", CompanyID: "empresa-2"})
		require.NoError(t, err)
		assert.Equal(t, "empresa-1", store.CompanyID)
		assert.True(t, store.Active)
	})

	t.Run("Admin lista lojas de outra empresa", func(t *testing.T) {
		storeRepo.EXPECT().List(gomock.Any(), domain.StoreFilter{CompanyID: "empresa-2"}).Return(nil, nil)

		_, err := svc.List(context.Background(), adminUser, "empresa-2", false)
		require.NoError(t, err)
	})

	t.Run("Financeiro não altera loja de outra empresa", func(t *testing.T) {
		storeRepo.EXPECT().GetByID(gomock.Any(), "s9").Return(&domain.Store{ID: "s9", CompanyID: "empresa-2"}, nil)

		err := svc.SetActive(context.Background(), financeUser, "s9", false)
		var opErr *domain.OperationError
		require.True(t, errors.As(err, &opErr))
		assert.Equal(t, errorcodes.ErrInsufficientPrivilege, opErr.Code)
	})
}

func TestSummarizePayroll(t *testing.T) {
	summary := SummarizePayroll([]*domain.Employee{
		{Salary: domain.Amount(2000), Allowance: domain.Amount(300), Transport: domain.Amount(180)},
		{Salary: domain.Amount(1500)},
	})

	assert.Equal(t, 2, summary.Employees)
	assert.Equal(t, "3500", summary.Salaries.String())
	assert.Equal(t, "300", summary.Allowances.String())
	assert.Equal(t, "180", summary.Transport.String())
	assert.Equal(t, "3980", summary.Total.String())
	assert.Equal(t, "R$ 3.980,00", summary.TotalLabel)
}

func TestEmployeeService(t *testing.T) {
	ctrl := gomock.NewController(t)
	employeeRepo := mocks.NewMockEmployeeRepository(ctrl)
	storeRepo := mocks.NewMockStoreRepository(ctrl)
	svc := NewEmployeeService(employeeRepo, storeRepo)

	t.Run("Salário negativo", func(t *testing.T) {
		_, err := svc.Create(context.Background(), financeUser, &domain.Employee{Name: "Ana", Salary: domain.Amount(-1)})
		assert.ErrorIs(t, err, domain.ErrInvalidFormat)
	})

	t.Run("Cadastro vinculado à loja", func(t *testing.T) {
		storeRepo.EXPECT().GetByID(gomock.Any(), "s1").Return(&domain.Store{ID: "s1", CompanyID: "empresa-1", Name: "Centro"}, nil)
		employeeRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		employee, err := svc.Create(context.Background(), financeUser, &domain.Employee{Name: "Ana", StoreID: ptr("s1")})
		require.NoError(t, err)
		assert.Equal(t, "Centro", employee.StoreName)
		assert.True(t, employee.Active)
	})

	t.Run("Desativação restrita à empresa", func(t *testing.T) {
		employeeRepo.EXPECT().SetActive(gomock.Any(), "empresa-1", "f1", false).Return(nil)
		require.NoError(t, svc.SetActive(context.Background(), financeUser, "f1", false))

		employeeRepo.EXPECT().SetActive(gomock.Any(), "", "f2", true).Return(sql.ErrNoRows)
		assert.ErrorIs(t, svc.SetActive(context.Background(), adminUser, "f2", true), domain.ErrNotFound)
	})

	t.Run("Folha usa apenas ativos", func(t *testing.T) {
		employeeRepo.EXPECT().List(gomock.Any(), domain.EmployeeFilter{CompanyID: "empresa-1", OnlyActive: true}).
			Return([]*domain.Employee{{Salary: domain.Amount(1000)}}, nil)

		summary, err := svc.Payroll(context.Background(), financeUser, "")
		require.NoError(t, err)
		assert.Equal(t, "1000", summary.Total.String())
	})
}

func TestUserService(t *testing.T) {
	ctrl := gomock.NewController(t)
	profileRepo := mocks.NewMockProfileRepository(ctrl)
	storeRepo := mocks.NewMockStoreRepository(ctrl)
	svc := NewUserService(profileRepo, storeRepo)

	t.Run("Loja de outra empresa", func(t *testing.T) {
		profileRepo.EXPECT().GetByUserID(gomock.Any(), "u-9").Return(&domain.Profile{UserID: "u-9"}, nil)
		storeRepo.EXPECT().GetByID(gomock.Any(), "s9").Return(&domain.Store{ID: "s9", CompanyID: "empresa-2"}, nil)

		err := svc.UpdateLink(context.Background(), adminUser, &domain.UpdateProfileRequest{
			UserID:    "u-9",
			CompanyID: ptr("empresa-1"),
			StoreID:   ptr("s9"),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidFormat)
	})

	t.Run("Admin vincula usuário", func(t *testing.T) {
		req := &domain.UpdateProfileRequest{UserID: "u-9", CompanyID: ptr("empresa-2"), StoreID: ptr("s9")}
		profileRepo.EXPECT().GetByUserID(gomock.Any(), "u-9").Return(&domain.Profile{UserID: "u-9"}, nil)
		storeRepo.EXPECT().GetByID(gomock.Any(), "s9").Return(&domain.Store{ID: "s9", CompanyID: "empresa-2"}, nil)
		profileRepo.EXPECT().Update(gomock.Any(), req).Return(nil)

		require.NoError(t, svc.UpdateLink(context.Background(), adminUser, req))
	})

	t.Run("Financeiro não altera usuário de outra empresa", func(t *testing.T) {
		profileRepo.EXPECT().GetByUserID(gomock.Any(), "u-8").Return(&domain.Profile{UserID: "u-8", CompanyID: ptr("empresa-2")}, nil)

		err := svc.SetActive(context.Background(), financeUser, "u-8", false)
		assert.ErrorIs(t, err, domain.ErrForbiddenStore)
	})

	t.Run("Usuário não desativa a si mesmo", func(t *testing.T) {
		err := svc.SetActive(context.Background(), adminUser, "admin", false)
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})
}

func TestMaintenanceService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	maintenanceRepo := mocks.NewMockMaintenanceRepository(ctrl)
	storeRepo := mocks.NewMockStoreRepository(ctrl)
	svc := NewMaintenanceService(maintenanceRepo, storeRepo).(*maintenanceService)
	svc.newCode = func() (string, error) { return "X1Y2Z3", nil }

	storeRepo.EXPECT().GetByID(gomock.Any(), "s1").Return(&domain.Store{ID: "s1", CompanyID: "empresa-1"}, nil)
	maintenanceRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	ticket, err := svc.Create(context.Background(), storeUser, &domain.MaintenanceTicket{
		StoreID:       "s2",
		CustomerName:  "João",
		Device:        "iPhone 12",
		PaymentMethod: ptr("PIX"),
		LaborAmount:   domain.Amount(150),
		PartsAmount:   domain.Amount(200),
		PartsCost:     domain.Amount(120),
		MachineFee:    domain.Amount(10),
	})
	require.NoError(t, err)

	assert.Equal(t, "s1", ticket.StoreID)
	assert.Equal(t, "X1Y2Z3", ticket.Code)
	assert.Equal(t, domain.MaintenanceStatusPending, ticket.Status)
	assert.Equal(t, "350", ticket.TotalAmount.String())
	assert.Equal(t, "220", ticket.NetProfit.String())

	_, err = svc.Create(context.Background(), storeUser, &domain.MaintenanceTicket{
		CustomerName:  "João",
		Device:        "iPhone 12",
		PaymentMethod: ptr("BOLETO"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidFormat)
}

func TestMaintenanceService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name    string
		current domain.MaintenanceStatus
		next    domain.MaintenanceStatus
		wantErr error
	}{
		{"Pendente para em andamento", domain.MaintenanceStatusPending, domain.MaintenanceStatusInProgress, nil},
		{"Concluído para entregue", domain.MaintenanceStatusDone, domain.MaintenanceStatusDelivered, nil},
		{"Entregue não volta", domain.MaintenanceStatusDelivered, domain.MaintenanceStatusPending, domain.ErrInvalidStatus},
		{"Cancelado é final", domain.MaintenanceStatusCanceled, domain.MaintenanceStatusInProgress, domain.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			maintenanceRepo := mocks.NewMockMaintenanceRepository(ctrl)
			svc := NewMaintenanceService(maintenanceRepo, mocks.NewMockStoreRepository(ctrl))

			maintenanceRepo.EXPECT().GetByID(gomock.Any(), "m1").
				Return(&domain.MaintenanceTicket{ID: "m1", CompanyID: "empresa-1", StoreID: "s1", Status: tt.current}, nil)
			if tt.wantErr == nil {
				maintenanceRepo.EXPECT().UpdateStatus(gomock.Any(), "m1", tt.next).Return(nil)
			}

			err := svc.UpdateStatus(context.Background(), storeUser, "m1", tt.next)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
