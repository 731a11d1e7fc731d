// Package planning lê o histórico de DRE para o painel da diretoria e o planejamento anual
package planning

import (
	"context"
	"time"

	"github.com/vfg2006/store-finance-api/infrastructure/repository"
	"github.com/vfg2006/store-finance-api/internal/domain"
)

const minYear = 2000

type PlanningService interface {
	BoardKPIs(ctx context.Context, principal *domain.Principal, year int) (*domain.BoardKPIs, error)
	Planning(ctx context.Context, principal *domain.Principal, year int, storeName string) (*domain.Planning, error)
}

type Service struct {
	dreRepo repository.DRERepository
	now     func() time.Time
}

func NewService(dreRepo repository.DRERepository) PlanningService {
	return &Service{
		dreRepo: dreRepo,
		now:     time.Now,
	}
}

func (s *Service) BoardKPIs(ctx context.Context, principal *domain.Principal, year int) (*domain.BoardKPIs, error) {
	year, err := s.resolveYear(year)
	if err != nil {
		return nil, err
	}

	entries, err := s.dreRepo.List(ctx, domain.DREFilter{CompanyID: principal.ScopeCompany(""), Year: year})
	if err != nil {
		return nil, errDatabase(err, "Erro ao buscar histórico de DRE")
	}

	return BoardKPIs(year, entries), nil
}

func (s *Service) Planning(ctx context.Context, principal *domain.Principal, year int, storeName string) (*domain.Planning, error) {
	year, err := s.resolveYear(year)
	if err != nil {
		return nil, err
	}

	entries, err := s.dreRepo.List(ctx, domain.DREFilter{
		CompanyID: principal.ScopeCompany(""),
		Year:      year,
		StoreName: storeName,
	})
	if err != nil {
		return nil, errDatabase(err, "Erro ao buscar planejamento de DRE")
	}

	return BuildPlanning(year, storeName, entries), nil
}

// resolveYear usa o ano corrente quando nenhum ano é informado
func (s *Service) resolveYear(year int) (int, error) {
	if year == 0 {
		return s.now().Year(), nil
	}
	if year < minYear || year > s.now().Year()+1 {
		return 0, errInvalidFormat("Ano inválido")
	}
	return year, nil
}
