// Package reconciling mantém as contas a pagar e a receber e monta a conciliação entre elas
package reconciling

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-finance-api/infrastructure/repository"
	"github.com/vfg2006/store-finance-api/internal/domain"
	"github.com/vfg2006/store-finance-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

type ReconciliationService interface {
	ListLedger(ctx context.Context, principal *domain.Principal, direction domain.LedgerDirection, filter domain.LedgerFilter) ([]*domain.LedgerEntry, error)
	CreateLedger(ctx context.Context, principal *domain.Principal, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
	UpdateLedgerStatus(ctx context.Context, principal *domain.Principal, direction domain.LedgerDirection, id string, status domain.LedgerStatus) error
	DeleteLedger(ctx context.Context, principal *domain.Principal, direction domain.LedgerDirection, id string) error
	Timeline(ctx context.Context, principal *domain.Principal, filter domain.LedgerFilter) (*domain.ReconciliationTimeline, error)
	SweepOverdue(ctx context.Context, today time.Time) (int64, error)

	ListReconciliations(ctx context.Context, principal *domain.Principal, filter domain.ReconciliationFilter) ([]*domain.StoreReconciliation, error)
	CreateReconciliation(ctx context.Context, principal *domain.Principal, rec *domain.StoreReconciliation) (*domain.StoreReconciliation, error)
	UpdateReconciliationStatus(ctx context.Context, principal *domain.Principal, id string, status domain.ReconciliationStatus, notes string) error
}

type Service struct {
	ledgerRepo         repository.LedgerRepository
	reconciliationRepo repository.ReconciliationRepository
	storeRepo          repository.StoreRepository
}

func NewService(
	ledgerRepo repository.LedgerRepository,
	reconciliationRepo repository.ReconciliationRepository,
	storeRepo repository.StoreRepository,
) ReconciliationService {
	return &Service{
		ledgerRepo:         ledgerRepo,
		reconciliationRepo: reconciliationRepo,
		storeRepo:          storeRepo,
	}
}

func validDirection(direction domain.LedgerDirection) bool {
	return direction == domain.DirectionOutflow || direction == domain.DirectionInflow
}

func (s *Service) ListLedger(ctx context.Context, principal *domain.Principal, direction domain.LedgerDirection, filter domain.LedgerFilter) ([]*domain.LedgerEntry, error) {
	if !validDirection(direction) {
		return nil, errInvalidFormat("Direção do lançamento inválida")
	}

	filter.CompanyID = principal.ScopeCompany(filter.CompanyID)
	storeID, ok := principal.ScopeStore(filter.StoreID)
	if !ok {
		return nil, errForbiddenStore(filter.StoreID)
	}
	filter.StoreID = storeID

	entries, err := s.ledgerRepo.List(ctx, direction, filter)
	if err != nil {
		return nil, errDatabase(err, "Erro ao listar lançamentos")
	}
	return entries, nil
}

// CreateLedger valida e grava uma conta a pagar ou a receber
func (s *Service) CreateLedger(ctx context.Context, principal *domain.Principal, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	if !validDirection(entry.Direction) {
		return nil, errInvalidFormat("Direção do lançamento inválida")
	}

	entry.Counterparty = strings.TrimSpace(entry.Counterparty)
	if entry.Counterparty == "" || entry.DueDate.IsZero() {
		return nil, errMissingData("Fornecedor/cliente e vencimento são obrigatórios")
	}
	if !domain.OrZero(entry.Amount).IsPositive() {
		return nil, errInvalidFormat("Valor do lançamento deve ser positivo")
	}

	if entry.Status == "" {
		entry.Status = domain.LedgerStatusPending
	}
	if !entry.Status.AllowedFor(entry.Direction) {
		return nil, errInvalidStatus("Status " + string(entry.Status) + " não permitido para " + string(entry.Direction))
	}

	entry.CompanyID = principal.ScopeCompany(entry.CompanyID)
	if entry.StoreID != nil && *entry.StoreID != "" {
		store, err := s.storeRepo.GetByID(ctx, *entry.StoreID)
		if err != nil {
			return nil, errDatabase(err, "Erro ao buscar loja do lançamento")
		}
		if store == nil {
			return nil, errNotFound(*entry.StoreID, "Loja não encontrada")
		}
		if !principal.CanWrite(store.CompanyID, store.ID) {
			return nil, errForbiddenStore(store.ID)
		}
		entry.CompanyID = store.CompanyID
	}

	if err := s.ledgerRepo.Create(ctx, entry); err != nil {
		return nil, errDatabase(err, "Erro ao criar lançamento")
	}
	return entry, nil
}

// UpdateLedgerStatus altera o status do título. Pago só vale para contas a pagar
// e Recebido só para contas a receber.
func (s *Service) UpdateLedgerStatus(ctx context.Context, principal *domain.Principal, direction domain.LedgerDirection, id string, status domain.LedgerStatus) error {
	if !validDirection(direction) {
		return errInvalidFormat("Direção do lançamento inválida")
	}
	if !status.AllowedFor(direction) {
		return errInvalidStatus("Status " + string(status) + " não permitido para " + string(direction))
	}

	if _, err := s.writableEntry(ctx, principal, direction, id); err != nil {
		return err
	}

	if err := s.ledgerRepo.UpdateStatus(ctx, direction, id, status); err != nil {
		if domain.IsNotFound(err) {
			return errNotFound(id, "Lançamento não encontrado")
		}
		return errDatabase(err, "Erro ao atualizar status do lançamento")
	}
	return nil
}

func (s *Service) DeleteLedger(ctx context.Context, principal *domain.Principal, direction domain.LedgerDirection, id string) error {
	if !validDirection(direction) {
		return errInvalidFormat("Direção do lançamento inválida")
	}

	if _, err := s.writableEntry(ctx, principal, direction, id); err != nil {
		return err
	}

	if err := s.ledgerRepo.Delete(ctx, direction, id); err != nil {
		if domain.IsNotFound(err) {
			return errNotFound(id, "Lançamento não encontrado")
		}
		return errDatabase(err, "Erro ao excluir lançamento")
	}
	return nil
}

func (s *Service) writableEntry(ctx context.Context, principal *domain.Principal, direction domain.LedgerDirection, id string) (*domain.LedgerEntry, error) {
	entry, err := s.ledgerRepo.GetByID(ctx, direction, id)
	if err != nil {
		return nil, errDatabase(err, "Erro ao buscar lançamento")
	}
	if entry == nil {
		return nil, errNotFound(id, "Lançamento não encontrado")
	}

	storeID := ""
	if entry.StoreID != nil {
		storeID = *entry.StoreID
	}
	if !principal.CanWrite(entry.CompanyID, storeID) {
		return nil, errForbiddenStore(storeID)
	}
	return entry, nil
}

// Timeline busca as contas a pagar e a receber do período em paralelo e as concilia
func (s *Service) Timeline(ctx context.Context, principal *domain.Principal, filter domain.LedgerFilter) (*domain.ReconciliationTimeline, error) {
	filter.CompanyID = principal.ScopeCompany(filter.CompanyID)
	storeID, ok := principal.ScopeStore(filter.StoreID)
	if !ok {
		return nil, errForbiddenStore(filter.StoreID)
	}
	filter.StoreID = storeID

	var payables, receivables []*domain.LedgerEntry

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		payables, err = s.ledgerRepo.List(gctx, domain.DirectionOutflow, filter)
		return err
	})
	g.Go(func() error {
		var err error
		receivables, err = s.ledgerRepo.List(gctx, domain.DirectionInflow, filter)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, errFetch(err, "Erro ao carregar lançamentos da conciliação")
	}

	return Merge(payables, receivables), nil
}

// SweepOverdue marca como Atrasado os títulos pendentes vencidos antes de hoje
func (s *Service) SweepOverdue(ctx context.Context, today time.Time) (int64, error) {
	cutoff := utils.StartOfDay(today)
	var total int64

	for _, direction := range []domain.LedgerDirection{domain.DirectionOutflow, domain.DirectionInflow} {
		affected, err := s.ledgerRepo.MarkOverdue(ctx, direction, cutoff)
		if err != nil {
			return total, errDatabase(err, "Erro ao marcar títulos atrasados")
		}
		logrus.Infof("%d títulos %s marcados como atrasados (vencimento anterior a %s)",
			affected, direction, cutoff.Format(utils.DateLayout))
		total += affected
	}

	return total, nil
}

func (s *Service) ListReconciliations(ctx context.Context, principal *domain.Principal, filter domain.ReconciliationFilter) ([]*domain.StoreReconciliation, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, errInvalidStatus("Status de conciliação inválido: " + string(filter.Status))
	}

	filter.CompanyID = principal.ScopeCompany(filter.CompanyID)
	storeID, ok := principal.ScopeStore(filter.StoreID)
	if !ok {
		return nil, errForbiddenStore(filter.StoreID)
	}
	filter.StoreID = storeID

	recs, err := s.reconciliationRepo.List(ctx, filter)
	if err != nil {
		return nil, errDatabase(err, "Erro ao listar conciliações")
	}
	return recs, nil
}

func (s *Service) CreateReconciliation(ctx context.Context, principal *domain.Principal, rec *domain.StoreReconciliation) (*domain.StoreReconciliation, error) {
	if rec.StoreID == "" || rec.Date.IsZero() {
		return nil, errMissingData("Loja e data da conciliação são obrigatórias")
	}
	if rec.Status == "" {
		rec.Status = domain.ReconciliationStatusPending
	}
	if !rec.Status.IsValid() {
		return nil, errInvalidStatus("Status de conciliação inválido: " + string(rec.Status))
	}

	store, err := s.storeRepo.GetByID(ctx, rec.StoreID)
	if err != nil {
		return nil, errDatabase(err, "Erro ao buscar loja da conciliação")
	}
	if store == nil {
		return nil, errNotFound(rec.StoreID, "Loja não encontrada")
	}
	if !principal.CanWrite(store.CompanyID, store.ID) {
		return nil, errForbiddenStore(store.ID)
	}

	rec.CompanyID = store.CompanyID
	rec.StoreName = store.Name

	if err := s.reconciliationRepo.Create(ctx, rec); err != nil {
		return nil, errDatabase(err, "Erro ao criar conciliação")
	}
	return rec, nil
}

func (s *Service) UpdateReconciliationStatus(ctx context.Context, principal *domain.Principal, id string, status domain.ReconciliationStatus, notes string) error {
	if !status.IsValid() {
		return errInvalidStatus("Status de conciliação inválido: " + string(status))
	}

	err := s.reconciliationRepo.UpdateStatus(ctx, principal.CompanyRestriction(), id, status, strings.TrimSpace(notes))
	if err != nil {
		if domain.IsNotFound(err) {
			return errNotFound(id, "Conciliação não encontrada")
		}
		return errDatabase(err, "Erro ao atualizar conciliação")
	}
	return nil
}
