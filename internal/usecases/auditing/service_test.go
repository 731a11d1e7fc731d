package auditing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-finance-api/infrastructure/repository/mocks"
	"github.com/vfg2006/store-finance-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var financeUser = &domain.Principal{UserID: "u-1", CompanyID: "empresa-1", PrimaryRole: domain.RoleFinance}

func newTestService(t *testing.T) (*Service, *mocks.MockAuditRepository, *mocks.MockStoreRepository) {
	ctrl := gomock.NewController(t)
	auditRepo := mocks.NewMockAuditRepository(ctrl)
	storeRepo := mocks.NewMockStoreRepository(ctrl)

	svc := NewService(auditRepo, storeRepo).(*Service)
	svc.newCode = func() (string, error) { return "AB12CD", nil }
	return svc, auditRepo, storeRepo
}

func TestStatusesFor(t *testing.T) {
	tests := []struct {
		name   string
		filter string
		want   []domain.AuditStatus
		ok     bool
	}{
		{"Todos", domain.AuditFilterAll, nil, true},
		{"Sem filtro", "", nil, true},
		{"Aberto inclui em análise", domain.AuditFilterOpen, []domain.AuditStatus{domain.AuditStatusOpen, domain.AuditStatusAnalysis}, true},
		{"Concluído", domain.AuditFilterResolved, []domain.AuditStatus{domain.AuditStatusResolved}, true},
		{"Filtro desconhecido", "pendente", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := StatusesFor(tt.filter)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSummarize(t *testing.T) {
	summary := Summarize([]*domain.AuditOccurrence{
		{Status: domain.AuditStatusOpen, ImpactedAmount: domain.Amount(100)},
		{Status: domain.AuditStatusOpen},
		{Status: domain.AuditStatusAnalysis, ImpactedAmount: domain.Amount(50.5)},
		{Status: domain.AuditStatusResolved, ImpactedAmount: domain.Amount(1000)},
	})

	assert.Equal(t, 2, summary.Open)
	assert.Equal(t, 1, summary.InAnalysis)
	assert.Equal(t, 1, summary.Resolved)
	assert.Equal(t, "150.5", summary.ImpactedTotal.String())
	assert.Equal(t, "R$ 150,50", summary.ImpactedLabel)
}

func TestService_List(t *testing.T) {
	svc, auditRepo, _ := newTestService(t)

	auditRepo.EXPECT().List(gomock.Any(), domain.AuditFilter{
		CompanyID: "empresa-1",
		Statuses:  []domain.AuditStatus{domain.AuditStatusResolved},
	}).Return([]*domain.AuditOccurrence{{ID: "a1"}}, nil)

	audits, err := svc.List(context.Background(), financeUser, "", domain.AuditFilterResolved)
	require.NoError(t, err)
	assert.Len(t, audits, 1)

	_, err = svc.List(context.Background(), financeUser, "", "qualquer")
	assert.ErrorIs(t, err, domain.ErrInvalidFormat)
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name      string
		audit     *domain.AuditOccurrence
		setup     func(auditRepo *mocks.MockAuditRepository, storeRepo *mocks.MockStoreRepository)
		wantErr   error
		wantCode  string
		wantStore string
	}{
		{
			name:  "Ocorrência criada com código gerado",
			audit: &domain.AuditOccurrence{StoreID: "s1", Date: time.Now(), Type: " Quebra de caixa "},
			setup: func(auditRepo *mocks.MockAuditRepository, storeRepo *mocks.MockStoreRepository) {
				storeRepo.EXPECT().GetByID(gomock.Any(), "s1").
					Return(&domain.Store{ID: "s1", CompanyID: "empresa-1", Name: "Centro"}, nil)
				auditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a *domain.AuditOccurrence) error {
						assert.Equal(t, domain.AuditStatusOpen, a.Status)
						assert.Equal(t, "Quebra de caixa", a.Type)
						a.ID = "a1"
						return nil
					})
			},
			wantCode:  "AB12CD",
			wantStore: "Centro",
		},
		{
			name:    "Tipo ausente",
			audit:   &domain.AuditOccurrence{StoreID: "s1", Date: time.Now()},
			setup:   func(*mocks.MockAuditRepository, *mocks.MockStoreRepository) {},
			wantErr: domain.ErrMissingRequiredData,
		},
		{
			name:    "Status inválido",
			audit:   &domain.AuditOccurrence{StoreID: "s1", Date: time.Now(), Type: "Falta", Status: "FECHADA"},
			setup:   func(*mocks.MockAuditRepository, *mocks.MockStoreRepository) {},
			wantErr: domain.ErrInvalidStatus,
		},
		{
			name:  "Loja de outra empresa",
			audit: &domain.AuditOccurrence{StoreID: "s9", Date: time.Now(), Type: "Falta"},
			setup: func(_ *mocks.MockAuditRepository, storeRepo *mocks.MockStoreRepository) {
				storeRepo.EXPECT().GetByID(gomock.Any(), "s9").
					Return(&domain.Store{ID: "s9", CompanyID: "empresa-2"}, nil)
			},
			wantErr: domain.ErrForbiddenStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, auditRepo, storeRepo := newTestService(t)
			tt.setup(auditRepo, storeRepo)

			result, err := svc.Create(context.Background(), financeUser, tt.audit)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, result.Code)
			assert.Equal(t, tt.wantStore, result.StoreName)
			assert.Equal(t, "empresa-1", result.CompanyID)
		})
	}
}

func TestService_UpdateStatus(t *testing.T) {
	svc, auditRepo, _ := newTestService(t)

	auditRepo.EXPECT().GetByID(gomock.Any(), "a1").
		Return(&domain.AuditOccurrence{ID: "a1", CompanyID: "empresa-1", StoreID: "s1"}, nil)
	auditRepo.EXPECT().UpdateStatus(gomock.Any(), "a1", domain.AuditStatusResolved).Return(nil)

	require.NoError(t, svc.UpdateStatus(context.Background(), financeUser, "a1", domain.AuditStatusResolved))

	auditRepo.EXPECT().GetByID(gomock.Any(), "a2").Return(nil, nil)
	err := svc.UpdateStatus(context.Background(), financeUser, "a2", domain.AuditStatusResolved)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.UpdateStatus(context.Background(), financeUser, "a1", "X")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	auditRepo.EXPECT().GetByID(gomock.Any(), "a3").Return(nil, errors.New("timeout"))
	err = svc.UpdateStatus(context.Background(), financeUser, "a3", domain.AuditStatusOpen)
	assert.ErrorIs(t, err, domain.ErrDatabaseOperation)
}
