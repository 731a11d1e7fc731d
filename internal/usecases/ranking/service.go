// Package ranking monta o ranking de faturamento das lojas e o semáforo de status
package ranking

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-finance-api/infrastructure/repository"
	"github.com/vfg2006/store-finance-api/internal/domain"
	"github.com/vfg2006/store-finance-api/internal/usecases/attainment"
	"github.com/vfg2006/store-finance-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

type RankingService interface {
	GetStoreRanking(ctx context.Context, principal *domain.Principal, month string) (*domain.StoreRankingResponse, error)
	GetSnapshot(ctx context.Context, principal *domain.Principal, month string) (*domain.StoreRankingResponse, error)
	Compute(ctx context.Context, companyID, month string) ([]*domain.StoreRankingItem, error)
	Snapshot(ctx context.Context, companyID, month string) ([]*domain.StoreRankingItem, error)
}

type StoreRankingService struct {
	storeRepo          repository.StoreRepository
	closingRepo        repository.CashClosingRepository
	goalRepo           repository.GoalRepository
	reconciliationRepo repository.ReconciliationRepository
	rankingRepo        repository.StoreRankingRepository
	now                func() time.Time
}

func NewStoreRankingService(
	storeRepo repository.StoreRepository,
	closingRepo repository.CashClosingRepository,
	goalRepo repository.GoalRepository,
	reconciliationRepo repository.ReconciliationRepository,
	rankingRepo repository.StoreRankingRepository,
) RankingService {
	return &StoreRankingService{
		storeRepo:          storeRepo,
		closingRepo:        closingRepo,
		goalRepo:           goalRepo,
		reconciliationRepo: reconciliationRepo,
		rankingRepo:        rankingRepo,
		now:                time.Now,
	}
}

// GetStoreRanking calcula o ranking ao vivo do mês. Sem mês, usa o mês corrente.
func (s *StoreRankingService) GetStoreRanking(ctx context.Context, principal *domain.Principal, month string) (*domain.StoreRankingResponse, error) {
	if month == "" {
		month = utils.MonthKey(s.now())
	}

	items, err := s.Compute(ctx, principal.ScopeCompany(""), month)
	if err != nil {
		return nil, err
	}

	return &domain.StoreRankingResponse{
		Month:      month,
		Ranking:    items,
		LastUpdate: s.now(),
	}, nil
}

// GetSnapshot lê o último ranking salvo pelo agendador
func (s *StoreRankingService) GetSnapshot(ctx context.Context, principal *domain.Principal, month string) (*domain.StoreRankingResponse, error) {
	if month == "" {
		month = utils.MonthKey(s.now())
	}
	if _, err := utils.ParseMonth(month); err != nil {
		return nil, errInvalidFormat("Mês deve estar no formato yyyy-mm")
	}

	ranking, err := s.rankingRepo.GetStoreRanking(ctx, principal.ScopeCompany(""), month)
	if err != nil {
		return nil, errDatabase(err, "Erro ao buscar ranking salvo")
	}
	if ranking == nil {
		ranking = &domain.StoreRankingResponse{Month: month, Ranking: []*domain.StoreRankingItem{}}
	}
	return ranking, nil
}

// Compute busca em paralelo lojas, fechamentos, metas e conferências divergentes do mês
// e devolve o ranking. Qualquer falha de leitura cancela o cálculo inteiro.
func (s *StoreRankingService) Compute(ctx context.Context, companyID, month string) ([]*domain.StoreRankingItem, error) {
	first, last, err := utils.MonthRange(month)
	if err != nil {
		return nil, errInvalidFormat("Mês deve estar no formato yyyy-mm")
	}

	var (
		stores   []*domain.Store
		closings []*domain.CashClosing
		goals    []*domain.Goal
		recs     []*domain.StoreReconciliation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stores, err = s.storeRepo.List(gctx, domain.StoreFilter{CompanyID: companyID, OnlyActive: true})
		return err
	})
	g.Go(func() (err error) {
		closings, err = s.closingRepo.List(gctx, domain.CashClosingFilter{CompanyID: companyID, StartDate: &first, EndDate: &last})
		return err
	})
	g.Go(func() (err error) {
		goals, err = s.goalRepo.ListMonthly(gctx, companyID, "", month)
		return err
	})
	g.Go(func() (err error) {
		recs, err = s.reconciliationRepo.List(gctx, domain.ReconciliationFilter{
			CompanyID: companyID,
			Status:    domain.ReconciliationStatusDivergent,
			StartDate: &first,
			EndDate:   &last,
		})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, errFetch(err, "Erro ao carregar dados do ranking de lojas")
	}

	return Rank(
		companyID,
		month,
		stores,
		attainment.RealizedByStore(closings),
		attainment.GoalsByStore(goals),
		DivergentStores(recs),
	), nil
}

// Snapshot recalcula o ranking do mês, compara com o último salvo de cada loja e grava o resultado
func (s *StoreRankingService) Snapshot(ctx context.Context, companyID, month string) ([]*domain.StoreRankingItem, error) {
	items, err := s.Compute(ctx, companyID, month)
	if err != nil {
		return nil, err
	}

	previous := make([]*domain.StoreRankingItem, len(items))
	g, gctx := errgroup.WithContext(ctx)
	for i, item := range items {
		g.Go(func() error {
			before, err := s.rankingRepo.GetByStoreID(gctx, item.StoreID, month)
			if err != nil {
				return err
			}
			previous[i] = before
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errDatabase(err, "Erro ao buscar ranking anterior das lojas")
	}

	previousByStore := make(map[string]*domain.StoreRankingItem, len(previous))
	for _, before := range previous {
		if before != nil {
			previousByStore[before.StoreID] = before
		}
	}
	ApplyPreviousPositions(items, previousByStore)

	if err := s.rankingRepo.SaveOrUpdateStoreRanking(ctx, items); err != nil {
		return nil, errDatabase(err, "Erro ao salvar ranking de lojas")
	}

	logrus.WithFields(logrus.Fields{
		"company_id": companyID,
		"month":      month,
		"stores":     len(items),
	}).Info("Ranking de lojas atualizado")

	return items, nil
}
