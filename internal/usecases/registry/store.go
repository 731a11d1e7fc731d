package registry

import (
	"context"
	"strings"

	"github.com/vfg2006/store-finance-api/infrastructure/repository"
	"github.com/vfg2006/store-finance-api/internal/domain"
)

type StoreService interface {
	List(ctx context.Context, principal *domain.Principal, companyID string, onlyActive bool) ([]*domain.Store, error)
	Create(ctx context.Context, principal *domain.Principal, store *domain.Store) (*domain.Store, error)
	SetActive(ctx context.Context, principal *domain.Principal, id string, active bool) error
}

type storeService struct {
	storeRepo   repository.StoreRepository
	companyRepo repository.CompanyRepository
}

func NewStoreService(storeRepo repository.StoreRepository, companyRepo repository.CompanyRepository) StoreService {
	return &storeService{
		storeRepo:   storeRepo,
		companyRepo: companyRepo,
	}
}

func (s *storeService) List(ctx context.Context, principal *domain.Principal, companyID string, onlyActive bool) ([]*domain.Store, error) {
	stores, err := s.storeRepo.List(ctx, domain.StoreFilter{
		CompanyID:  principal.ScopeCompany(companyID),
		OnlyActive: onlyActive,
	})
	if err != nil {
		return nil, errDatabase(err, "Erro ao listar lojas")
	}
	return stores, nil
}

func (s *storeService) Create(ctx context.Context, principal *domain.Principal, store *domain.Store) (*domain.Store, error) {
	store.Name = strings.TrimSpace(store.Name)
	if store.Name == "" {
		return nil, errMissingData("Nome da loja é obrigatório")
	}

	store.CompanyID = principal.ScopeCompany(store.CompanyID)
	if store.CompanyID == "" {
		return nil, errMissingData("Empresa da loja é obrigatória")
	}

	company, err := s.companyRepo.GetByID(ctx, store.CompanyID)
	if err != nil {
		return nil, errDatabase(err, "Erro ao buscar empresa da loja")
	}
	if company == nil {
		return nil, errNotFound(store.CompanyID, "Empresa não encontrada")
	}
	store.Active = true

	if err := s.storeRepo.Create(ctx, store); err != nil {
		return nil, errDatabase(err, "Erro ao criar loja")
	}
	return store, nil
}

func (s *storeService) SetActive(ctx context.Context, principal *domain.Principal, id string, active bool) error {
	store, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		return errDatabase(err, "Erro ao buscar loja")
	}
	if store == nil {
		return errNotFound(id, "Loja não encontrada")
	}
	if restriction := principal.CompanyRestriction(); restriction != "" && restriction != store.CompanyID {
		return errForbiddenCompany(store.CompanyID)
	}

	if err := s.storeRepo.SetActive(ctx, id, active); err != nil {
		if domain.IsNotFound(err) {
			return errNotFound(id, "Loja não encontrada")
		}
		return errDatabase(err, "Erro ao alterar situação da loja")
	}
	return nil
}
