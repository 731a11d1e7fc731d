package campaign

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-finance-api/infrastructure/repository/mocks"
	"github.com/vfg2006/store-finance-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var financeUser = &domain.Principal{UserID: "u-1", CompanyID: "empresa-1", PrimaryRole: domain.RoleFinance}

func TestWithProgress(t *testing.T) {
	tests := []struct {
		name        string
		progress    int
		target      int
		wantPct     float64
		wantDisplay float64
	}{
		{"Meio do caminho", 25, 50, 50, 50},
		{"Acima da meta mantém o percentual real", 75, 50, 150, 100},
		{"Arredonda uma casa", 1, 3, 33.3, 33.3},
		{"Meta zerada", 10, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := WithProgress(&domain.Campaign{Progress: tt.progress, TargetQuantity: tt.target})
			assert.Equal(t, tt.wantPct, c.Percentage)
			assert.Equal(t, tt.wantDisplay, c.DisplayPercentage)
		})
	}
}

func validCampaign() *domain.Campaign {
	return &domain.Campaign{
		Name:           "Lentes de inverno",
		Product:        "Lente multifocal",
		Period:         domain.CampaignPeriodMonthly,
		StartDate:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		TargetQuantity: 40,
		Progress:       10,
	}
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *domain.Campaign)
		wantErr error
	}{
		{"Campanha válida", func(*domain.Campaign) {}, nil},
		{"Período desconhecido", func(c *domain.Campaign) { c.Period = "ANUAL" }, domain.ErrInvalidFormat},
		{"Data final antes da inicial", func(c *domain.Campaign) { c.EndDate = c.StartDate.AddDate(0, 0, -1) }, domain.ErrInvalidFormat},
		{"Meta zerada", func(c *domain.Campaign) { c.TargetQuantity = 0 }, domain.ErrInvalidFormat},
		{"Sem nome", func(c *domain.Campaign) { c.Name = "  " }, domain.ErrMissingRequiredData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			campaignRepo := mocks.NewMockCampaignRepository(ctrl)
			svc := NewService(campaignRepo, mocks.NewMockStoreRepository(ctrl))

			c := validCampaign()
			tt.mutate(c)

			if tt.wantErr == nil {
				campaignRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			}

			result, err := svc.Create(context.Background(), financeUser, c)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.True(t, result.Active)
			assert.Equal(t, "empresa-1", result.CompanyID)
			assert.Equal(t, 25.0, result.Percentage)
		})
	}
}

func TestService_UpdateProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	svc := NewService(campaignRepo, mocks.NewMockStoreRepository(ctrl))

	storeID := "s1"
	campaignRepo.EXPECT().GetByID(gomock.Any(), "c1").
		Return(&domain.Campaign{ID: "c1", CompanyID: "empresa-1", StoreID: &storeID, TargetQuantity: 20}, nil)
	campaignRepo.EXPECT().UpdateProgress(gomock.Any(), "c1", 30).Return(nil)

	result, err := svc.UpdateProgress(context.Background(), financeUser, "c1", 30)
	require.NoError(t, err)
	assert.Equal(t, 150.0, result.Percentage)
	assert.Equal(t, 100.0, result.DisplayPercentage)

	_, err = svc.UpdateProgress(context.Background(), financeUser, "c1", -1)
	assert.ErrorIs(t, err, domain.ErrInvalidFormat)

	otherStore := &domain.Principal{CompanyID: "empresa-1", StoreID: "s2", PrimaryRole: domain.RoleStore}
	campaignRepo.EXPECT().GetByID(gomock.Any(), "c1").
		Return(&domain.Campaign{ID: "c1", CompanyID: "empresa-1", StoreID: &storeID}, nil)
	_, err = svc.UpdateProgress(context.Background(), otherStore, "c1", 5)
	assert.ErrorIs(t, err, domain.ErrForbiddenStore)
}

func TestService_SetActive_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	svc := NewService(campaignRepo, mocks.NewMockStoreRepository(ctrl))

	campaignRepo.EXPECT().GetByID(gomock.Any(), "c9").Return(nil, nil)

	err := svc.SetActive(context.Background(), financeUser, "c9", false)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
