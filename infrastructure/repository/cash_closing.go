package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/store-finance-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-finance-api/internal/domain"
)

const cashClosingsTable = "fechamentos"

type CashClosingRepository interface {
	List(ctx context.Context, filter domain.CashClosingFilter) ([]*domain.CashClosing, error)
	GetByID(ctx context.Context, id string) (*domain.CashClosing, error)
	Create(ctx context.Context, closing *domain.CashClosing) error
	Update(ctx context.Context, closing *domain.CashClosing) error
	SoftDelete(ctx context.Context, id string, deletedAt time.Time) error
}

type cashClosingRepository struct {
	conn *postgres.Connection
}

func NewCashClosingRepository(conn *postgres.Connection) CashClosingRepository {
	return &cashClosingRepository{
		conn: conn,
	}
}

func (r *cashClosingRepository) baseQuery() squirrel.SelectBuilder {
	return psql.
		Select(
			"f.id",
			"f.empresa_id",
			"f.loja_id",
			"COALESCE(l.nome, '')",
			"f.data",
			"f.saldo_inicial",
			"f.dinheiro",
			"f.pix",
			"f.cartao",
			"f.saidas",
			"f.suprimentos",
			"f.sangrias",
			"f.venda_acessorios",
			"f.status",
			"f.created_at",
			"f.updated_at",
		).
		From(cashClosingsTable + " f").
		LeftJoin(storesTable + " l ON l.id = f.loja_id").
		Where("f.deleted_at IS NULL")
}

func (r *cashClosingRepository) List(ctx context.Context, filter domain.CashClosingFilter) ([]*domain.CashClosing, error) {
	query := r.baseQuery().
		Where(dateRange("f.data", filter.StartDate, filter.EndDate)).
		OrderBy("f.data DESC", "l.nome ASC")

	if filter.CompanyID != "" {
		query = query.Where("f.empresa_id = ?", filter.CompanyID)
	}
	if filter.StoreID != "" {
		query = query.Where("f.loja_id = ?", filter.StoreID)
	}

	return queryAll(ctx, r.conn, query, scanCashClosing)
}

func (r *cashClosingRepository) GetByID(ctx context.Context, id string) (*domain.CashClosing, error) {
	return queryOne(ctx, r.conn, r.baseQuery().Where("f.id = ?", id), scanCashClosing)
}

// Create grava o fechamento com os totais derivados já recalculados
func (r *cashClosingRepository) Create(ctx context.Context, c *domain.CashClosing) error {
	sqlQuery, args, err := psql.
		Insert(cashClosingsTable).
		Columns(
			"empresa_id", "loja_id", "data", "saldo_inicial", "dinheiro", "pix", "cartao",
			"saidas", "suprimentos", "sangrias", "venda_acessorios", "total_entradas",
			"saldo_final", "status",
		).
		Values(
			c.CompanyID, c.StoreID, c.Date.Format("2006-01-02"), c.OpeningBalance, c.Cash, c.Pix, c.Card,
			c.Outflows, c.Supplies, c.Withdrawals, c.AccessoriesSales, c.TotalInflow,
			c.ClosingBalance, string(c.Status),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao inserir fechamento: %w", err)
	}
	return nil
}

func (r *cashClosingRepository) Update(ctx context.Context, c *domain.CashClosing) error {
	affected, err := exec(ctx, r.conn, psql.
		Update(cashClosingsTable).
		SetMap(map[string]interface{}{
			"data":             c.Date.Format("2006-01-02"),
			"saldo_inicial":    c.OpeningBalance,
			"dinheiro":         c.Cash,
			"pix":              c.Pix,
			"cartao":           c.Card,
			"saidas":           c.Outflows,
			"suprimentos":      c.Supplies,
			"sangrias":         c.Withdrawals,
			"venda_acessorios": c.AccessoriesSales,
			"total_entradas":   c.TotalInflow,
			"saldo_final":      c.ClosingBalance,
			"status":           string(c.Status),
			"updated_at":       squirrel.Expr("CURRENT_TIMESTAMP"),
		}).
		Where("id = ? AND deleted_at IS NULL", c.ID))
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *cashClosingRepository) SoftDelete(ctx context.Context, id string, deletedAt time.Time) error {
	affected, err := exec(ctx, r.conn, psql.
		Update(cashClosingsTable).
		Set("deleted_at", deletedAt).
		Where("id = ? AND deleted_at IS NULL", id))
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// scanCashClosing ignora os totais gravados e recalcula a partir dos componentes
func scanCashClosing(row scanner) (*domain.CashClosing, error) {
	c := &domain.CashClosing{}
	var status string

	err := row.Scan(
		&c.ID,
		&c.CompanyID,
		&c.StoreID,
		&c.StoreName,
		&c.Date,
		&c.OpeningBalance,
		&c.Cash,
		&c.Pix,
		&c.Card,
		&c.Outflows,
		&c.Supplies,
		&c.Withdrawals,
		&c.AccessoriesSales,
		&status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Status = domain.CashClosingStatus(status)
	c.Recompute()
	return c, nil
}
