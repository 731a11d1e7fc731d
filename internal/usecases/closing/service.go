// Package closing agrega e mantém os fechamentos diários de caixa das lojas
package closing

import (
	"context"
	"time"

	"github.com/vfg2006/store-finance-api/infrastructure/repository"
	"github.com/vfg2006/store-finance-api/internal/domain"
)

type CashClosingService interface {
	List(ctx context.Context, principal *domain.Principal, filter domain.CashClosingFilter) ([]*domain.CashClosing, error)
	Summary(ctx context.Context, principal *domain.Principal, filter domain.CashClosingFilter) (*domain.CashClosingSummary, error)
	Create(ctx context.Context, principal *domain.Principal, closing *domain.CashClosing) (*domain.CashClosing, error)
	Update(ctx context.Context, principal *domain.Principal, closing *domain.CashClosing) (*domain.CashClosing, error)
	Delete(ctx context.Context, principal *domain.Principal, id string) error
}

type Service struct {
	closingRepo repository.CashClosingRepository
	storeRepo   repository.StoreRepository
	now         func() time.Time
}

func NewService(closingRepo repository.CashClosingRepository, storeRepo repository.StoreRepository) CashClosingService {
	return &Service{
		closingRepo: closingRepo,
		storeRepo:   storeRepo,
		now:         time.Now,
	}
}

func (s *Service) List(ctx context.Context, principal *domain.Principal, filter domain.CashClosingFilter) ([]*domain.CashClosing, error) {
	filter.CompanyID = principal.ScopeCompany(filter.CompanyID)
	storeID, ok := principal.ScopeStore(filter.StoreID)
	if !ok {
		return nil, errForbiddenStore(filter.StoreID)
	}
	filter.StoreID = storeID

	closings, err := s.closingRepo.List(ctx, filter)
	if err != nil {
		return nil, errDatabase(err, "Erro ao listar fechamentos de caixa")
	}

	return closings, nil
}

func (s *Service) Summary(ctx context.Context, principal *domain.Principal, filter domain.CashClosingFilter) (*domain.CashClosingSummary, error) {
	closings, err := s.List(ctx, principal, filter)
	if err != nil {
		return nil, err
	}

	return Aggregate(closings), nil
}

// Create valida e grava um fechamento, sempre recalculando entradas e saldo final
func (s *Service) Create(ctx context.Context, principal *domain.Principal, closing *domain.CashClosing) (*domain.CashClosing, error) {
	if closing.StoreID == "" || closing.Date.IsZero() {
		return nil, errMissingData("Loja e data do fechamento são obrigatórias")
	}

	if closing.Status == "" {
		closing.Status = domain.CashClosingStatusOpen
	}
	if !closing.Status.IsValid() {
		return nil, errInvalidStatus(closing.Status)
	}

	store, err := s.storeRepo.GetByID(ctx, closing.StoreID)
	if err != nil {
		return nil, errDatabase(err, "Erro ao buscar loja do fechamento")
	}
	if store == nil {
		return nil, errNotFound(closing.StoreID, "Loja não encontrada")
	}

	if !principal.CanWrite(store.CompanyID, store.ID) {
		return nil, errForbiddenStore(store.ID)
	}

	closing.CompanyID = store.CompanyID
	closing.StoreName = store.Name
	closing.Recompute()

	if err := s.closingRepo.Create(ctx, closing); err != nil {
		return nil, errDatabase(err, "Erro ao criar fechamento de caixa")
	}

	return closing, nil
}

// Update substitui os valores de um fechamento existente. Loja e empresa não mudam.
func (s *Service) Update(ctx context.Context, principal *domain.Principal, closing *domain.CashClosing) (*domain.CashClosing, error) {
	if closing.ID == "" {
		return nil, errMissingData("ID do fechamento é obrigatório")
	}

	existing, err := s.getWritable(ctx, principal, closing.ID)
	if err != nil {
		return nil, err
	}

	closing.CompanyID = existing.CompanyID
	closing.StoreID = existing.StoreID
	closing.StoreName = existing.StoreName
	closing.CreatedAt = existing.CreatedAt
	if closing.Date.IsZero() {
		closing.Date = existing.Date
	}
	if closing.Status == "" {
		closing.Status = existing.Status
	}
	if !closing.Status.IsValid() {
		return nil, errInvalidStatus(closing.Status)
	}

	closing.Recompute()

	if err := s.closingRepo.Update(ctx, closing); err != nil {
		if domain.IsNotFound(err) {
			return nil, errNotFound(closing.ID, "Fechamento de caixa não encontrado")
		}
		return nil, errDatabase(err, "Erro ao atualizar fechamento de caixa")
	}

	return closing, nil
}

func (s *Service) Delete(ctx context.Context, principal *domain.Principal, id string) error {
	if id == "" {
		return errMissingData("ID do fechamento é obrigatório")
	}

	if _, err := s.getWritable(ctx, principal, id); err != nil {
		return err
	}

	if err := s.closingRepo.SoftDelete(ctx, id, s.now()); err != nil {
		if domain.IsNotFound(err) {
			return errNotFound(id, "Fechamento de caixa não encontrado")
		}
		return errDatabase(err, "Erro ao excluir fechamento de caixa")
	}

	return nil
}

func (s *Service) getWritable(ctx context.Context, principal *domain.Principal, id string) (*domain.CashClosing, error) {
	existing, err := s.closingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errDatabase(err, "Erro ao buscar fechamento de caixa")
	}
	if existing == nil {
		return nil, errNotFound(id, "Fechamento de caixa não encontrado")
	}

	if !principal.CanWrite(existing.CompanyID, existing.StoreID) {
		return nil, errForbiddenStore(existing.StoreID)
	}

	return existing, nil
}
