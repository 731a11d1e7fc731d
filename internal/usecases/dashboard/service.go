// Package dashboard carrega os painéis administrativo, da loja e da diretoria.
// Cada painel busca suas leituras em paralelo e só agrega quando todas terminam.
package dashboard

import (
	"context"
	"time"

	"github.com/vfg2006/store-finance-api/infrastructure/repository"
	"github.com/vfg2006/store-finance-api/internal/config"
	"github.com/vfg2006/store-finance-api/internal/domain"
	"github.com/vfg2006/store-finance-api/internal/usecases/attainment"
	"github.com/vfg2006/store-finance-api/internal/usecases/planning"
	"github.com/vfg2006/store-finance-api/pkg/metrics"
	"github.com/vfg2006/store-finance-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

type DashboardService interface {
	Admin(ctx context.Context, principal *domain.Principal, month string) (*domain.AdminDashboard, error)
	Store(ctx context.Context, principal *domain.Principal, storeID string, days int) (*domain.StoreDashboard, error)
	Board(ctx context.Context, principal *domain.Principal, year int) (*domain.BoardKPIs, error)
}

// Repositories agrupa as fontes lidas pelos painéis
type Repositories struct {
	Stores          repository.StoreRepository
	Employees       repository.EmployeeRepository
	Closings        repository.CashClosingRepository
	Ledger          repository.LedgerRepository
	Audits          repository.AuditRepository
	Campaigns       repository.CampaignRepository
	Goals           repository.GoalRepository
	Reconciliations repository.ReconciliationRepository
}

type Service struct {
	repos        Repositories
	planning     planning.PlanningService
	historyDays  int
	fetchTimeout time.Duration
	now          func() time.Time
}

func NewService(repos Repositories, planningService planning.PlanningService, cfg *config.Config) DashboardService {
	return &Service{
		repos:        repos,
		planning:     planningService,
		historyDays:  cfg.Dashboard.HistoryDays,
		fetchTimeout: cfg.Dashboard.FetchTimeout,
		now:          time.Now,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.fetchTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.fetchTimeout)
}

// Admin carrega o painel macro da empresa no mês. Contas e auditorias são lidas
// sem filtro de data, fechamentos, metas e conferências apenas do mês.
func (s *Service) Admin(ctx context.Context, principal *domain.Principal, month string) (*domain.AdminDashboard, error) {
	if month == "" {
		month = utils.MonthKey(s.now())
	}
	first, last, err := utils.MonthRange(month)
	if err != nil {
		return nil, errInvalidFormat("Mês deve estar no formato yyyy-mm")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	companyID := principal.ScopeCompany("")
	data := &adminData{}
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		data.stores, err = s.repos.Stores.List(gctx, domain.StoreFilter{CompanyID: companyID, OnlyActive: true})
		return err
	})
	g.Go(func() (err error) {
		data.employees, err = s.repos.Employees.List(gctx, domain.EmployeeFilter{CompanyID: companyID, OnlyActive: true})
		return err
	})
	g.Go(func() (err error) {
		data.closings, err = s.repos.Closings.List(gctx, domain.CashClosingFilter{CompanyID: companyID, StartDate: &first, EndDate: &last})
		return err
	})
	g.Go(func() (err error) {
		data.payables, err = s.repos.Ledger.List(gctx, domain.DirectionOutflow, domain.LedgerFilter{CompanyID: companyID})
		return err
	})
	g.Go(func() (err error) {
		data.receivables, err = s.repos.Ledger.List(gctx, domain.DirectionInflow, domain.LedgerFilter{CompanyID: companyID})
		return err
	})
	g.Go(func() (err error) {
		data.audits, err = s.repos.Audits.List(gctx, domain.AuditFilter{CompanyID: companyID})
		return err
	})
	g.Go(func() (err error) {
		data.campaigns, err = s.repos.Campaigns.List(gctx, domain.CampaignFilter{CompanyID: companyID, OnlyActive: true})
		return err
	})
	g.Go(func() (err error) {
		data.goals, err = s.repos.Goals.ListMonthly(gctx, companyID, "", month)
		return err
	})
	g.Go(func() (err error) {
		data.reconciliations, err = s.repos.Reconciliations.List(gctx, domain.ReconciliationFilter{
			CompanyID: companyID,
			Status:    domain.ReconciliationStatusDivergent,
			StartDate: &first,
			EndDate:   &last,
		})
		return err
	})

	err = g.Wait()
	metrics.ObserveDashboard("admin", start, err)
	if err != nil {
		return nil, errFetch(err, "Erro ao carregar painel administrativo")
	}

	return BuildAdmin(companyID, month, data), nil
}

// Store carrega o painel do dia de uma loja. Usuários de loja sempre veem a própria loja.
func (s *Service) Store(ctx context.Context, principal *domain.Principal, storeID string, days int) (*domain.StoreDashboard, error) {
	scoped, ok := principal.ScopeStore(storeID)
	if !ok {
		return nil, errForbiddenStore(storeID)
	}
	storeID = scoped
	if storeID == "" {
		return nil, errMissingData("Loja é obrigatória")
	}

	if days == 0 {
		days = s.historyDays
	}
	if !allowedHistoryDays[days] {
		return nil, errInvalidFormat("Período do histórico deve ser 7, 15 ou 30 dias")
	}

	today := utils.StartOfDay(s.now())
	start := today.AddDate(0, 0, -(days - 1))
	month := utils.MonthKey(today)
	companyID := principal.ScopeCompany("")

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var (
		store    *domain.Store
		goals    []*domain.Goal
		closings []*domain.CashClosing
	)

	loadStart := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		store, err = s.repos.Stores.GetByID(gctx, storeID)
		return err
	})
	g.Go(func() (err error) {
		goals, err = s.repos.Goals.ListMonthly(gctx, companyID, storeID, month)
		return err
	})
	g.Go(func() (err error) {
		closings, err = s.repos.Closings.List(gctx, domain.CashClosingFilter{
			CompanyID: companyID,
			StoreID:   storeID,
			StartDate: &start,
			EndDate:   &today,
		})
		return err
	})

	err := g.Wait()
	metrics.ObserveDashboard("store", loadStart, err)
	if err != nil {
		return nil, errFetch(err, "Erro ao carregar painel da loja")
	}

	if store == nil {
		return nil, errNotFound(storeID, "Loja não encontrada")
	}
	if !principal.CanWrite(store.CompanyID, store.ID) {
		return nil, errForbiddenStore(store.ID)
	}

	goal := attainment.GoalsByStore(goals)[storeID]

	return BuildStore(store, today, days, goal, closings), nil
}

// Board devolve os indicadores de DRE do painel da diretoria
func (s *Service) Board(ctx context.Context, principal *domain.Principal, year int) (*domain.BoardKPIs, error) {
	return s.planning.BoardKPIs(ctx, principal, year)
}
