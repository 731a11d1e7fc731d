// Package registry mantém os cadastros da empresa: empresas, lojas, funcionários,
// usuários e ordens de serviço de manutenção
package registry

import (
	"context"
	"strings"

	"github.com/vfg2006/store-finance-api/infrastructure/repository"
	"github.com/vfg2006/store-finance-api/internal/domain"
)

type CompanyService interface {
	List(ctx context.Context, onlyActive bool) ([]*domain.Company, error)
	Create(ctx context.Context, company *domain.Company) (*domain.Company, error)
	SetActive(ctx context.Context, id string, active bool) error
}

type companyService struct {
	companyRepo repository.CompanyRepository
}

func NewCompanyService(companyRepo repository.CompanyRepository) CompanyService {
	return &companyService{
		companyRepo: companyRepo,
	}
}

func (s *companyService) List(ctx context.Context, onlyActive bool) ([]*domain.Company, error) {
	companies, err := s.companyRepo.List(ctx, onlyActive)
	if err != nil {
		return nil, errDatabase(err, "Erro ao listar empresas")
	}
	return companies, nil
}

func (s *companyService) Create(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	company.Name = strings.TrimSpace(company.Name)
	if company.Name == "" {
		return nil, errMissingData("Nome da empresa é obrigatório")
	}
	company.Document = onlyDigits(company.Document)
	company.Active = true

	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, errDatabase(err, "Erro ao criar empresa")
	}
	return company, nil
}

func (s *companyService) SetActive(ctx context.Context, id string, active bool) error {
	if err := s.companyRepo.SetActive(ctx, id, active); err != nil {
		if domain.IsNotFound(err) {
			return errNotFound(id, "Empresa não encontrada")
		}
		return errDatabase(err, "Erro ao alterar situação da empresa")
	}
	return nil
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
