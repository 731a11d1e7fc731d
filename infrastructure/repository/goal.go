package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/store-finance-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-finance-api/internal/domain"
)

const (
	goalsTable       = "metas"
	weeklyGoalsTable = "metas_semanais"
)

type GoalRepository interface {
	ListMonthly(ctx context.Context, companyID, storeID, month string) ([]*domain.Goal, error)
	GetMonthlyByID(ctx context.Context, id string) (*domain.Goal, error)
	CreateMonthly(ctx context.Context, goal *domain.Goal) error
	UpdateMonthly(ctx context.Context, goal *domain.Goal) error
	DeleteMonthly(ctx context.Context, id string) error

	ListWeekly(ctx context.Context, companyID, storeID, month string) ([]*domain.WeeklyGoal, error)
	SaveWeekly(ctx context.Context, goal *domain.WeeklyGoal) error
	DeleteWeekly(ctx context.Context, companyID, id string) error
}

type goalRepository struct {
	conn *postgres.Connection
}

func NewGoalRepository(conn *postgres.Connection) GoalRepository {
	return &goalRepository{
		conn: conn,
	}
}

func (r *goalRepository) monthlyQuery() squirrel.SelectBuilder {
	return psql.
		Select(
			"m.id", "m.empresa_id", "m.loja_id", "COALESCE(l.nome, '')", "m.mes", "m.semana",
			"m.meta_mensal", "m.meta_diaria", "m.meta_lucro", "m.realizado_faturamento",
			"m.realizado_lucro", "m.created_at", "m.updated_at",
		).
		From(goalsTable + " m").
		LeftJoin(storesTable + " l ON l.id = m.loja_id")
}

func (r *goalRepository) ListMonthly(ctx context.Context, companyID, storeID, month string) ([]*domain.Goal, error) {
	query := r.monthlyQuery().OrderBy("m.mes DESC", "l.nome ASC")

	if companyID != "" {
		query = query.Where("m.empresa_id = ?", companyID)
	}
	if storeID != "" {
		query = query.Where("m.loja_id = ?", storeID)
	}
	if month != "" {
		query = query.Where("m.mes = ?", month)
	}

	return queryAll(ctx, r.conn, query, scanGoal)
}

func (r *goalRepository) GetMonthlyByID(ctx context.Context, id string) (*domain.Goal, error) {
	return queryOne(ctx, r.conn, r.monthlyQuery().Where("m.id = ?", id), scanGoal)
}

func (r *goalRepository) CreateMonthly(ctx context.Context, g *domain.Goal) error {
	sqlQuery, args, err := psql.
		Insert(goalsTable).
		Columns(
			"empresa_id", "loja_id", "mes", "semana", "meta_mensal", "meta_diaria",
			"meta_lucro", "realizado_faturamento", "realizado_lucro",
		).
		Values(
			g.CompanyID, g.StoreID, g.Month, g.Week, g.TargetRevenue, g.DailyTarget,
			g.TargetProfit, g.RealizedRevenue, g.RealizedProfit,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return fmt.Errorf("erro ao inserir meta: %w", err)
	}
	return nil
}

func (r *goalRepository) UpdateMonthly(ctx context.Context, g *domain.Goal) error {
	affected, err := exec(ctx, r.conn, psql.
		Update(goalsTable).
		SetMap(map[string]interface{}{
			"loja_id":               g.StoreID,
			"mes":                   g.Month,
			"semana":                g.Week,
			"meta_mensal":           g.TargetRevenue,
			"meta_diaria":           g.DailyTarget,
			"meta_lucro":            g.TargetProfit,
			"realizado_faturamento": g.RealizedRevenue,
			"realizado_lucro":       g.RealizedProfit,
			"updated_at":            squirrel.Expr("CURRENT_TIMESTAMP"),
		}).
		Where("id = ?", g.ID))
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *goalRepository) DeleteMonthly(ctx context.Context, id string) error {
	return deleteByID(ctx, r.conn, goalsTable, id)
}

func (r *goalRepository) ListWeekly(ctx context.Context, companyID, storeID, month string) ([]*domain.WeeklyGoal, error) {
	query := psql.
		Select(
			"ms.id", "ms.empresa_id", "ms.loja_id", "COALESCE(l.nome, '')", "ms.mes", "ms.semana",
			"ms.meta_faturamento", "ms.meta_acessorios", "ms.created_at", "ms.updated_at",
		).
		From(weeklyGoalsTable + " ms").
		LeftJoin(storesTable + " l ON l.id = ms.loja_id").
		OrderBy("ms.mes DESC", "ms.semana ASC", "l.nome ASC")

	if companyID != "" {
		query = query.Where("ms.empresa_id = ?", companyID)
	}
	if storeID != "" {
		query = query.Where("ms.loja_id = ?", storeID)
	}
	if month != "" {
		query = query.Where("ms.mes = ?", month)
	}

	return queryAll(ctx, r.conn, query, scanWeeklyGoal)
}

// SaveWeekly insere ou atualiza a meta da semana da loja
func (r *goalRepository) SaveWeekly(ctx context.Context, g *domain.WeeklyGoal) error {
	sqlQuery, args, err := psql.
		Insert(weeklyGoalsTable).
		Columns("empresa_id", "loja_id", "mes", "semana", "meta_faturamento", "meta_acessorios").
		Values(g.CompanyID, g.StoreID, g.Month, g.Week, g.TargetRevenue, g.TargetAccessories).
		Suffix(`
			ON CONFLICT (loja_id, mes, semana) DO UPDATE SET
				meta_faturamento = EXCLUDED.meta_faturamento,
				meta_acessorios = EXCLUDED.meta_acessorios,
				updated_at = CURRENT_TIMESTAMP
			RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return fmt.Errorf("erro ao salvar meta semanal: %w", err)
	}
	return nil
}

// DeleteWeekly remove a meta semanal. Com companyID vazio não restringe a empresa.
func (r *goalRepository) DeleteWeekly(ctx context.Context, companyID, id string) error {
	query := psql.Delete(weeklyGoalsTable).Where("id = ?", id)
	if companyID != "" {
		query = query.Where("empresa_id = ?", companyID)
	}

	affected, err := exec(ctx, r.conn, query)
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func scanGoal(row scanner) (*domain.Goal, error) {
	g := &domain.Goal{}
	var week sql.NullInt64

	err := row.Scan(
		&g.ID,
		&g.CompanyID,
		&g.StoreID,
		&g.StoreName,
		&g.Month,
		&week,
		&g.TargetRevenue,
		&g.DailyTarget,
		&g.TargetProfit,
		&g.RealizedRevenue,
		&g.RealizedProfit,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if week.Valid {
		w := int(week.Int64)
		g.Week = &w
	}
	return g, nil
}

func scanWeeklyGoal(row scanner) (*domain.WeeklyGoal, error) {
	g := &domain.WeeklyGoal{}

	err := row.Scan(
		&g.ID,
		&g.CompanyID,
		&g.StoreID,
		&g.StoreName,
		&g.Month,
		&g.Week,
		&g.TargetRevenue,
		&g.TargetAccessories,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return g, nil
}
