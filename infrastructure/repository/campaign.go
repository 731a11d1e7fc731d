package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/store-finance-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-finance-api/internal/domain"
)

const campaignsTable = "campanhas"

type CampaignRepository interface {
	List(ctx context.Context, filter domain.CampaignFilter) ([]*domain.Campaign, error)
	GetByID(ctx context.Context, id string) (*domain.Campaign, error)
	Create(ctx context.Context, campaign *domain.Campaign) error
	UpdateProgress(ctx context.Context, id string, progress int) error
	SetActive(ctx context.Context, id string, active bool) error
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) baseQuery() squirrel.SelectBuilder {
	return psql.
		Select(
			"id", "empresa_id", "loja_id", "nome", "tipo_periodo", "data_inicio", "data_fim",
			"COALESCE(produto_servico, '')", "meta_quantidade", "progresso", "ativa",
			"created_at", "updated_at",
		).
		From(campaignsTable)
}

func (r *campaignRepository) List(ctx context.Context, filter domain.CampaignFilter) ([]*domain.Campaign, error) {
	query := r.baseQuery().OrderBy("data_inicio DESC", "nome ASC")

	if filter.CompanyID != "" {
		query = query.Where("empresa_id = ?", filter.CompanyID)
	}
	if filter.StoreID != "" {
		query = query.Where("(loja_id = ? OR loja_id IS NULL)", filter.StoreID)
	}
	if filter.OnlyActive {
		query = query.Where("ativa = TRUE")
	}

	return queryAll(ctx, r.conn, query, scanCampaign)
}

func (r *campaignRepository) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	return queryOne(ctx, r.conn, r.baseQuery().Where("id = ?", id), scanCampaign)
}

func (r *campaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	sqlQuery, args, err := psql.
		Insert(campaignsTable).
		Columns(
			"empresa_id", "loja_id", "nome", "tipo_periodo", "data_inicio", "data_fim",
			"produto_servico", "meta_quantidade", "progresso", "ativa",
		).
		Values(
			c.CompanyID, nullString(c.StoreID), c.Name, string(c.Period), c.StartDate.Format("2006-01-02"),
			c.EndDate.Format("2006-01-02"), nullString(&c.Product), c.TargetQuantity, c.Progress, c.Active,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return fmt.Errorf("erro ao inserir campanha: %w", err)
	}
	return nil
}

func (r *campaignRepository) UpdateProgress(ctx context.Context, id string, progress int) error {
	return r.update(ctx, id, "progresso", progress)
}

func (r *campaignRepository) SetActive(ctx context.Context, id string, active bool) error {
	return r.update(ctx, id, "ativa", active)
}

func (r *campaignRepository) update(ctx context.Context, id, column string, value interface{}) error {
	affected, err := exec(ctx, r.conn, psql.
		Update(campaignsTable).
		Set(column, value).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where("id = ?", id))
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func scanCampaign(row scanner) (*domain.Campaign, error) {
	c := &domain.Campaign{}
	var (
		storeID sql.NullString
		period  string
	)

	err := row.Scan(
		&c.ID,
		&c.CompanyID,
		&storeID,
		&c.Name,
		&period,
		&c.StartDate,
		&c.EndDate,
		&c.Product,
		&c.TargetQuantity,
		&c.Progress,
		&c.Active,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.StoreID = stringPtr(storeID)
	c.Period = domain.CampaignPeriod(period)
	return c, nil
}
