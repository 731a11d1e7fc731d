// Package attainment calcula o atingimento das metas mensais e semanais das lojas
package attainment

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/store-finance-api/infrastructure/repository"
	"github.com/vfg2006/store-finance-api/internal/domain"
	"github.com/vfg2006/store-finance-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

const maxWeekOfMonth = 6

type GoalService interface {
	ListMonthly(ctx context.Context, principal *domain.Principal, storeID, month string) ([]*domain.Goal, error)
	SaveMonthly(ctx context.Context, principal *domain.Principal, goal *domain.Goal) (*domain.Goal, error)
	DeleteMonthly(ctx context.Context, principal *domain.Principal, id string) error
	ListWeekly(ctx context.Context, principal *domain.Principal, storeID, month string) ([]*domain.WeeklyGoal, error)
	SaveWeekly(ctx context.Context, principal *domain.Principal, goal *domain.WeeklyGoal) (*domain.WeeklyGoal, error)
	DeleteWeekly(ctx context.Context, principal *domain.Principal, id string) error
	MonthlyAttainment(ctx context.Context, principal *domain.Principal, storeID, month string) ([]*domain.GoalAttainment, error)
	WeeklyAttainment(ctx context.Context, principal *domain.Principal, storeID, month string) ([]*domain.WeeklyAttainment, error)
}

type Service struct {
	goalRepo    repository.GoalRepository
	closingRepo repository.CashClosingRepository
	storeRepo   repository.StoreRepository
}

func NewService(goalRepo repository.GoalRepository, closingRepo repository.CashClosingRepository, storeRepo repository.StoreRepository) GoalService {
	return &Service{
		goalRepo:    goalRepo,
		closingRepo: closingRepo,
		storeRepo:   storeRepo,
	}
}

func (s *Service) ListMonthly(ctx context.Context, principal *domain.Principal, storeID, month string) ([]*domain.Goal, error) {
	if err := validateMonth(month, false); err != nil {
		return nil, err
	}

	scoped, ok := principal.ScopeStore(storeID)
	if !ok {
		return nil, errForbiddenStore(storeID)
	}

	goals, err := s.goalRepo.ListMonthly(ctx, principal.ScopeCompany(""), scoped, month)
	if err != nil {
		return nil, errDatabase(err, "Erro ao listar metas")
	}
	return goals, nil
}

// SaveMonthly cria a meta quando não há ID, senão atualiza a existente
func (s *Service) SaveMonthly(ctx context.Context, principal *domain.Principal, goal *domain.Goal) (*domain.Goal, error) {
	if goal.StoreID == "" || goal.Month == "" {
		return nil, errMissingData("Loja e mês da meta são obrigatórios")
	}
	if err := validateMonth(goal.Month, true); err != nil {
		return nil, err
	}
	if goal.Week != nil && (*goal.Week < 1 || *goal.Week > maxWeekOfMonth) {
		return nil, errInvalidFormat("Semana deve estar entre 1 e 6")
	}
	if domain.OrZero(goal.TargetRevenue).IsNegative() || domain.OrZero(goal.TargetProfit).IsNegative() {
		return nil, errInvalidFormat("Valores da meta não podem ser negativos")
	}

	store, err := s.writableStore(ctx, principal, goal.StoreID)
	if err != nil {
		return nil, err
	}
	goal.CompanyID = store.CompanyID
	goal.StoreName = store.Name

	if goal.ID == "" {
		if err := s.goalRepo.CreateMonthly(ctx, goal); err != nil {
			return nil, errDatabase(err, "Erro ao criar meta")
		}
		return goal, nil
	}

	existing, err := s.goalRepo.GetMonthlyByID(ctx, goal.ID)
	if err != nil {
		return nil, errDatabase(err, "Erro ao buscar meta")
	}
	if existing == nil {
		return nil, errNotFound(goal.ID, "Meta não encontrada")
	}
	if !principal.CanWrite(existing.CompanyID, existing.StoreID) {
		return nil, errForbiddenStore(existing.StoreID)
	}

	if err := s.goalRepo.UpdateMonthly(ctx, goal); err != nil {
		if domain.IsNotFound(err) {
			return nil, errNotFound(goal.ID, "Meta não encontrada")
		}
		return nil, errDatabase(err, "Erro ao atualizar meta")
	}
	return goal, nil
}

func (s *Service) DeleteMonthly(ctx context.Context, principal *domain.Principal, id string) error {
	existing, err := s.goalRepo.GetMonthlyByID(ctx, id)
	if err != nil {
		return errDatabase(err, "Erro ao buscar meta")
	}
	if existing == nil {
		return errNotFound(id, "Meta não encontrada")
	}
	if !principal.CanWrite(existing.CompanyID, existing.StoreID) {
		return errForbiddenStore(existing.StoreID)
	}

	if err := s.goalRepo.DeleteMonthly(ctx, id); err != nil {
		if domain.IsNotFound(err) {
			return errNotFound(id, "Meta não encontrada")
		}
		return errDatabase(err, "Erro ao excluir meta")
	}
	return nil
}

func (s *Service) ListWeekly(ctx context.Context, principal *domain.Principal, storeID, month string) ([]*domain.WeeklyGoal, error) {
	if err := validateMonth(month, false); err != nil {
		return nil, err
	}

	scoped, ok := principal.ScopeStore(storeID)
	if !ok {
		return nil, errForbiddenStore(storeID)
	}

	goals, err := s.goalRepo.ListWeekly(ctx, principal.ScopeCompany(""), scoped, month)
	if err != nil {
		return nil, errDatabase(err, "Erro ao listar metas semanais")
	}
	return goals, nil
}

// SaveWeekly grava a meta da semana, substituindo a existente para a mesma loja, mês e semana
func (s *Service) SaveWeekly(ctx context.Context, principal *domain.Principal, goal *domain.WeeklyGoal) (*domain.WeeklyGoal, error) {
	if goal.StoreID == "" || goal.Month == "" {
		return nil, errMissingData("Loja e mês da meta semanal são obrigatórios")
	}
	if err := validateMonth(goal.Month, true); err != nil {
		return nil, err
	}
	if goal.Week < 1 || goal.Week > maxWeekOfMonth {
		return nil, errInvalidFormat("Semana deve estar entre 1 e 6")
	}
	if domain.OrZero(goal.TargetRevenue).IsNegative() || domain.OrZero(goal.TargetAccessories).IsNegative() {
		return nil, errInvalidFormat("Valores da meta não podem ser negativos")
	}

	store, err := s.writableStore(ctx, principal, goal.StoreID)
	if err != nil {
		return nil, err
	}
	goal.CompanyID = store.CompanyID
	goal.StoreName = store.Name

	if err := s.goalRepo.SaveWeekly(ctx, goal); err != nil {
		return nil, errDatabase(err, "Erro ao salvar meta semanal")
	}
	return goal, nil
}

func (s *Service) DeleteWeekly(ctx context.Context, principal *domain.Principal, id string) error {
	if err := s.goalRepo.DeleteWeekly(ctx, principal.CompanyRestriction(), id); err != nil {
		if domain.IsNotFound(err) {
			return errNotFound(id, "Meta semanal não encontrada")
		}
		return errDatabase(err, "Erro ao excluir meta semanal")
	}
	return nil
}

// monthData são as leituras de um mês usadas pelos cálculos de atingimento
type monthData struct {
	stores   []*domain.Store
	goals    []*domain.Goal
	weekly   []*domain.WeeklyGoal
	closings []*domain.CashClosing
}

// loadMonth busca lojas, metas e fechamentos do mês em paralelo.
// Qualquer falha cancela as demais leituras e nada é agregado.
func (s *Service) loadMonth(ctx context.Context, principal *domain.Principal, storeID, month string, weekly bool) (*monthData, error) {
	first, last, err := utils.MonthRange(month)
	if err != nil {
		return nil, errInvalidFormat(err.Error())
	}

	companyID := principal.ScopeCompany("")
	scoped, ok := principal.ScopeStore(storeID)
	if !ok {
		return nil, errForbiddenStore(storeID)
	}
	storeID = scoped
	data := &monthData{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stores, err := s.storeRepo.List(gctx, domain.StoreFilter{CompanyID: companyID, OnlyActive: true})
		data.stores = stores
		return err
	})
	g.Go(func() error {
		closings, err := s.closingRepo.List(gctx, domain.CashClosingFilter{
			CompanyID: companyID,
			StoreID:   storeID,
			StartDate: &first,
			EndDate:   &last,
		})
		data.closings = closings
		return err
	})
	if weekly {
		g.Go(func() error {
			goals, err := s.goalRepo.ListWeekly(gctx, companyID, storeID, month)
			data.weekly = goals
			return err
		})
	} else {
		g.Go(func() error {
			goals, err := s.goalRepo.ListMonthly(gctx, companyID, storeID, month)
			data.goals = goals
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errFetch(err, "Erro ao carregar dados das metas")
	}

	if storeID != "" {
		data.stores = filterStores(data.stores, storeID)
	}
	return data, nil
}

// MonthlyAttainment calcula o atingimento de cada loja ativa no mês.
// O realizado vem dos fechamentos do mês (dinheiro + pix + cartão).
func (s *Service) MonthlyAttainment(ctx context.Context, principal *domain.Principal, storeID, month string) ([]*domain.GoalAttainment, error) {
	data, err := s.loadMonth(ctx, principal, storeID, month, false)
	if err != nil {
		return nil, err
	}

	realized := RealizedByStore(data.closings)
	goals := GoalsByStore(data.goals)

	result := make([]*domain.GoalAttainment, 0, len(data.stores))
	for _, store := range data.stores {
		result = append(result, Evaluate(store, month, goals[store.ID], realized[store.ID]))
	}
	return result, nil
}

// WeeklyAttainment devolve, para cada loja com metas semanais, o realizado por semana
// calculado dos fechamentos e a distribuição estimada do realizado mensal
func (s *Service) WeeklyAttainment(ctx context.Context, principal *domain.Principal, storeID, month string) ([]*domain.WeeklyAttainment, error) {
	data, err := s.loadMonth(ctx, principal, storeID, month, true)
	if err != nil {
		return nil, err
	}

	realized := RealizedByStore(data.closings)
	weeklyByStore := make(map[string][]*domain.WeeklyGoal)
	for _, g := range data.weekly {
		weeklyByStore[g.StoreID] = append(weeklyByStore[g.StoreID], g)
	}

	result := make([]*domain.WeeklyAttainment, 0)
	for _, store := range data.stores {
		goals := weeklyByStore[store.ID]
		if len(goals) == 0 {
			continue
		}

		result = append(result, &domain.WeeklyAttainment{
			StoreID:   store.ID,
			StoreName: store.Name,
			Month:     month,
			Progress:  WeeklyProgress(goals, data.closings),
			Estimates: DistributeWeekly(realized[store.ID], goals),
		})
	}
	return result, nil
}

// RealizedByStore soma as entradas dos fechamentos por loja
func RealizedByStore(closings []*domain.CashClosing) map[string]decimal.Decimal {
	realized := make(map[string]decimal.Decimal)
	for _, c := range closings {
		realized[c.StoreID] = realized[c.StoreID].Add(c.Inflow())
	}
	return realized
}

// GoalsByStore indexa as metas mensais por loja, preferindo a meta sem semana
func GoalsByStore(goals []*domain.Goal) map[string]*domain.Goal {
	byStore := make(map[string]*domain.Goal)
	for _, g := range goals {
		current, ok := byStore[g.StoreID]
		if !ok || (current.Week != nil && g.Week == nil) {
			byStore[g.StoreID] = g
		}
	}
	return byStore
}

func (s *Service) writableStore(ctx context.Context, principal *domain.Principal, storeID string) (*domain.Store, error) {
	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, errDatabase(err, "Erro ao buscar loja da meta")
	}
	if store == nil {
		return nil, errNotFound(storeID, "Loja não encontrada")
	}
	if !principal.CanWrite(store.CompanyID, store.ID) {
		return nil, errForbiddenStore(store.ID)
	}
	return store, nil
}

func validateMonth(month string, required bool) error {
	if month == "" && !required {
		return nil
	}
	if _, err := utils.ParseMonth(month); err != nil {
		return errInvalidFormat("Mês deve estar no formato yyyy-mm")
	}
	return nil
}

func filterStores(stores []*domain.Store, storeID string) []*domain.Store {
	filtered := make([]*domain.Store, 0, 1)
	for _, store := range stores {
		if store.ID == storeID {
			filtered = append(filtered, store)
		}
	}
	return filtered
}
