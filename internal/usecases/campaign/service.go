// Package campaign mantém as campanhas de vendas e o progresso de cada uma
package campaign

import (
	"context"
	"strings"

	"github.com/vfg2006/store-finance-api/infrastructure/repository"
	"github.com/vfg2006/store-finance-api/internal/domain"
	"github.com/vfg2006/store-finance-api/pkg/utils"
)

type CampaignService interface {
	List(ctx context.Context, principal *domain.Principal, storeID string, onlyActive bool) ([]*domain.Campaign, error)
	Create(ctx context.Context, principal *domain.Principal, campaign *domain.Campaign) (*domain.Campaign, error)
	UpdateProgress(ctx context.Context, principal *domain.Principal, id string, progress int) (*domain.Campaign, error)
	SetActive(ctx context.Context, principal *domain.Principal, id string, active bool) error
}

type Service struct {
	campaignRepo repository.CampaignRepository
	storeRepo    repository.StoreRepository
}

func NewService(campaignRepo repository.CampaignRepository, storeRepo repository.StoreRepository) CampaignService {
	return &Service{
		campaignRepo: campaignRepo,
		storeRepo:    storeRepo,
	}
}

// WithProgress preenche o percentual da campanha. O percentual fica sem limite,
// apenas o valor de exibição é limitado a 100.
func WithProgress(c *domain.Campaign) *domain.Campaign {
	c.Percentage = 0
	if c.TargetQuantity > 0 {
		c.Percentage = utils.RoundOneDecimal(float64(c.Progress) / float64(c.TargetQuantity) * 100)
	}
	c.DisplayPercentage = utils.CapPercentage(c.Percentage)
	return c
}

func (s *Service) List(ctx context.Context, principal *domain.Principal, storeID string, onlyActive bool) ([]*domain.Campaign, error) {
	scoped, ok := principal.ScopeStore(storeID)
	if !ok {
		return nil, errForbiddenStore(storeID)
	}

	campaigns, err := s.campaignRepo.List(ctx, domain.CampaignFilter{
		CompanyID:  principal.ScopeCompany(""),
		StoreID:    scoped,
		OnlyActive: onlyActive,
	})
	if err != nil {
		return nil, errDatabase(err, "Erro ao listar campanhas")
	}

	for _, c := range campaigns {
		WithProgress(c)
	}
	return campaigns, nil
}

func (s *Service) Create(ctx context.Context, principal *domain.Principal, campaign *domain.Campaign) (*domain.Campaign, error) {
	campaign.Name = strings.TrimSpace(campaign.Name)
	campaign.Product = strings.TrimSpace(campaign.Product)
	if campaign.Name == "" || campaign.Product == "" {
		return nil, errMissingData("Nome e produto/serviço da campanha são obrigatórios")
	}
	if campaign.StartDate.IsZero() || campaign.EndDate.IsZero() {
		return nil, errMissingData("Período da campanha é obrigatório")
	}
	if !campaign.Period.IsValid() {
		return nil, errInvalidFormat("Tipo de período deve ser DIARIA, SEMANAL ou MENSAL")
	}
	if campaign.EndDate.Before(campaign.StartDate) {
		return nil, errInvalidFormat("Data final deve ser igual ou posterior à data inicial")
	}
	if campaign.TargetQuantity <= 0 {
		return nil, errInvalidFormat("Meta de quantidade deve ser positiva")
	}
	if campaign.Progress < 0 {
		return nil, errInvalidFormat("Progresso não pode ser negativo")
	}

	campaign.CompanyID = principal.ScopeCompany(campaign.CompanyID)
	if campaign.StoreID != nil && *campaign.StoreID != "" {
		store, err := s.storeRepo.GetByID(ctx, *campaign.StoreID)
		if err != nil {
			return nil, errDatabase(err, "Erro ao buscar loja da campanha")
		}
		if store == nil {
			return nil, errNotFound(*campaign.StoreID, "Loja não encontrada")
		}
		if !principal.CanWrite(store.CompanyID, store.ID) {
			return nil, errForbiddenStore(store.ID)
		}
		campaign.CompanyID = store.CompanyID
	}
	campaign.Active = true

	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, errDatabase(err, "Erro ao criar campanha")
	}
	return WithProgress(campaign), nil
}

func (s *Service) UpdateProgress(ctx context.Context, principal *domain.Principal, id string, progress int) (*domain.Campaign, error) {
	if progress < 0 {
		return nil, errInvalidFormat("Progresso não pode ser negativo")
	}

	campaign, err := s.writable(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	if err := s.campaignRepo.UpdateProgress(ctx, id, progress); err != nil {
		if domain.IsNotFound(err) {
			return nil, errNotFound(id, "Campanha não encontrada")
		}
		return nil, errDatabase(err, "Erro ao atualizar progresso da campanha")
	}

	campaign.Progress = progress
	return WithProgress(campaign), nil
}

func (s *Service) SetActive(ctx context.Context, principal *domain.Principal, id string, active bool) error {
	if _, err := s.writable(ctx, principal, id); err != nil {
		return err
	}

	if err := s.campaignRepo.SetActive(ctx, id, active); err != nil {
		if domain.IsNotFound(err) {
			return errNotFound(id, "Campanha não encontrada")
		}
		return errDatabase(err, "Erro ao alterar situação da campanha")
	}
	return nil
}

func (s *Service) writable(ctx context.Context, principal *domain.Principal, id string) (*domain.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errDatabase(err, "Erro ao buscar campanha")
	}
	if campaign == nil {
		return nil, errNotFound(id, "Campanha não encontrada")
	}

	storeID := ""
	if campaign.StoreID != nil {
		storeID = *campaign.StoreID
	}
	if !principal.CanWrite(campaign.CompanyID, storeID) {
		return nil, errForbiddenStore(storeID)
	}
	return campaign, nil
}
