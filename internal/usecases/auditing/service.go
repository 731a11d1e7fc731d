// Package auditing registra e acompanha as ocorrências de auditoria das lojas
package auditing

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-finance-api/infrastructure/repository"
	"github.com/vfg2006/store-finance-api/internal/domain"
	"github.com/vfg2006/store-finance-api/pkg/utils"
)

type AuditService interface {
	List(ctx context.Context, principal *domain.Principal, storeID, statusFilter string) ([]*domain.AuditOccurrence, error)
	Summary(ctx context.Context, principal *domain.Principal, storeID string) (*domain.AuditSummary, error)
	Create(ctx context.Context, principal *domain.Principal, audit *domain.AuditOccurrence) (*domain.AuditOccurrence, error)
	UpdateStatus(ctx context.Context, principal *domain.Principal, id string, status domain.AuditStatus) error
}

type Service struct {
	auditRepo repository.AuditRepository
	storeRepo repository.StoreRepository
	newCode   func() (string, error)
}

func NewService(auditRepo repository.AuditRepository, storeRepo repository.StoreRepository) AuditService {
	return &Service{
		auditRepo: auditRepo,
		storeRepo: storeRepo,
		newCode:   utils.GenerateID,
	}
}

// StatusesFor converte o filtro da listagem nos status pesquisados.
// "aberto" inclui as ocorrências em análise.
func StatusesFor(filter string) ([]domain.AuditStatus, bool) {
	switch filter {
	case "", domain.AuditFilterAll:
		return nil, true
	case domain.AuditFilterOpen:
		return []domain.AuditStatus{domain.AuditStatusOpen, domain.AuditStatusAnalysis}, true
	case domain.AuditFilterResolved:
		return []domain.AuditStatus{domain.AuditStatusResolved}, true
	}
	return nil, false
}

func (s *Service) List(ctx context.Context, principal *domain.Principal, storeID, statusFilter string) ([]*domain.AuditOccurrence, error) {
	statuses, ok := StatusesFor(statusFilter)
	if !ok {
		return nil, errInvalidFormat("Filtro deve ser todos, aberto ou concluido")
	}

	scoped, ok := principal.ScopeStore(storeID)
	if !ok {
		return nil, errForbiddenStore(storeID)
	}

	audits, err := s.auditRepo.List(ctx, domain.AuditFilter{
		CompanyID: principal.ScopeCompany(""),
		StoreID:   scoped,
		Statuses:  statuses,
	})
	if err != nil {
		return nil, errDatabase(err, "Erro ao listar ocorrências")
	}
	return audits, nil
}

func (s *Service) Summary(ctx context.Context, principal *domain.Principal, storeID string) (*domain.AuditSummary, error) {
	audits, err := s.List(ctx, principal, storeID, domain.AuditFilterAll)
	if err != nil {
		return nil, err
	}
	return Summarize(audits), nil
}

// Summarize conta as ocorrências por status e soma o valor impactado das não resolvidas
func Summarize(audits []*domain.AuditOccurrence) *domain.AuditSummary {
	summary := &domain.AuditSummary{ImpactedTotal: decimal.Zero}

	for _, a := range audits {
		switch a.Status {
		case domain.AuditStatusOpen:
			summary.Open++
		case domain.AuditStatusAnalysis:
			summary.InAnalysis++
		case domain.AuditStatusResolved:
			summary.Resolved++
			continue
		}
		summary.ImpactedTotal = summary.ImpactedTotal.Add(domain.OrZero(a.ImpactedAmount))
	}

	summary.ImpactedLabel = utils.FormatBRL(summary.ImpactedTotal)
	return summary
}

// Create registra a ocorrência com um código curto gerado para consulta
func (s *Service) Create(ctx context.Context, principal *domain.Principal, audit *domain.AuditOccurrence) (*domain.AuditOccurrence, error) {
	audit.Type = strings.TrimSpace(audit.Type)
	if audit.StoreID == "" || audit.Date.IsZero() || audit.Type == "" {
		return nil, errMissingData("Loja, data e tipo da ocorrência são obrigatórios")
	}
	if domain.OrZero(audit.ImpactedAmount).IsNegative() {
		return nil, errInvalidFormat("Valor impactado não pode ser negativo")
	}

	if audit.Status == "" {
		audit.Status = domain.AuditStatusOpen
	}
	if !audit.Status.IsValid() {
		return nil, errInvalidStatus(audit.Status)
	}

	store, err := s.storeRepo.GetByID(ctx, audit.StoreID)
	if err != nil {
		return nil, errDatabase(err, "Erro ao buscar loja da ocorrência")
	}
	if store == nil {
		return nil, errNotFound(audit.StoreID, "Loja não encontrada")
	}
	if !principal.CanWrite(store.CompanyID, store.ID) {
		return nil, errForbiddenStore(store.ID)
	}
	audit.CompanyID = store.CompanyID
	audit.StoreName = store.Name

	code, err := s.newCode()
	if err != nil {
		return nil, errInternal(err, "Erro ao gerar código da ocorrência")
	}
	audit.Code = code

	if err := s.auditRepo.Create(ctx, audit); err != nil {
		return nil, errDatabase(err, "Erro ao registrar ocorrência")
	}

	logrus.WithFields(logrus.Fields{
		"audit_id": audit.ID,
		"code":     audit.Code,
		"store_id": audit.StoreID,
	}).Info("Ocorrência de auditoria registrada")

	return audit, nil
}

func (s *Service) UpdateStatus(ctx context.Context, principal *domain.Principal, id string, status domain.AuditStatus) error {
	if !status.IsValid() {
		return errInvalidStatus(status)
	}

	audit, err := s.auditRepo.GetByID(ctx, id)
	if err != nil {
		return errDatabase(err, "Erro ao buscar ocorrência")
	}
	if audit == nil {
		return errNotFound(id, "Ocorrência não encontrada")
	}
	if !principal.CanWrite(audit.CompanyID, audit.StoreID) {
		return errForbiddenStore(audit.StoreID)
	}

	if err := s.auditRepo.UpdateStatus(ctx, id, status); err != nil {
		if domain.IsNotFound(err) {
			return errNotFound(id, "Ocorrência não encontrada")
		}
		return errDatabase(err, "Erro ao atualizar ocorrência")
	}
	return nil
}
