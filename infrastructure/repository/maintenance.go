package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/store-finance-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-finance-api/internal/domain"
)

const maintenanceTable = "manutencoes"

type MaintenanceRepository interface {
	List(ctx context.Context, filter domain.MaintenanceFilter) ([]*domain.MaintenanceTicket, error)
	GetByID(ctx context.Context, id string) (*domain.MaintenanceTicket, error)
	Create(ctx context.Context, ticket *domain.MaintenanceTicket) error
	UpdateStatus(ctx context.Context, id string, status domain.MaintenanceStatus) error
}

type maintenanceRepository struct {
	conn *postgres.Connection
}

func NewMaintenanceRepository(conn *postgres.Connection) MaintenanceRepository {
	return &maintenanceRepository{
		conn: conn,
	}
}

func (r *maintenanceRepository) baseQuery() squirrel.SelectBuilder {
	return psql.
		Select(
			"m.id", "m.codigo", "m.empresa_id", "m.loja_id", "COALESCE(l.nome, '')",
			"m.cliente_nome", "COALESCE(m.cliente_telefone, '')", "m.aparelho_modelo",
			"COALESCE(m.descricao_problema, '')", "COALESCE(m.descricao_servico, '')", "m.forma_pagamento",
			"m.valor_mao_de_obra", "m.valor_pecas", "m.custo_pecas", "m.taxa_maquina",
			"m.status", "m.created_at", "m.updated_at",
		).
		From(maintenanceTable + " m").
		LeftJoin(storesTable + " l ON l.id = m.loja_id")
}

func (r *maintenanceRepository) List(ctx context.Context, filter domain.MaintenanceFilter) ([]*domain.MaintenanceTicket, error) {
	query := r.baseQuery().OrderBy("m.created_at DESC")

	if filter.CompanyID != "" {
		query = query.Where("m.empresa_id = ?", filter.CompanyID)
	}
	if filter.StoreID != "" {
		query = query.Where("m.loja_id = ?", filter.StoreID)
	}
	if filter.Status != "" {
		query = query.Where("m.status = ?", string(filter.Status))
	}

	return queryAll(ctx, r.conn, query, scanMaintenance)
}

func (r *maintenanceRepository) GetByID(ctx context.Context, id string) (*domain.MaintenanceTicket, error) {
	return queryOne(ctx, r.conn, r.baseQuery().Where("m.id = ?", id), scanMaintenance)
}

func (r *maintenanceRepository) Create(ctx context.Context, m *domain.MaintenanceTicket) error {
	sqlQuery, args, err := psql.
		Insert(maintenanceTable).
		Columns(
			"codigo", "empresa_id", "loja_id", "cliente_nome", "cliente_telefone", "aparelho_modelo",
			"descricao_problema", "descricao_servico", "forma_pagamento", "valor_mao_de_obra",
			"valor_pecas", "custo_pecas", "taxa_maquina", "valor_total", "lucro_liquido", "status",
		).
		Values(
			m.Code, m.CompanyID, m.StoreID, m.CustomerName, nullString(&m.CustomerPhone), m.Device,
			nullString(&m.Problem), nullString(&m.Service), nullString(m.PaymentMethod), m.LaborAmount,
			m.PartsAmount, m.PartsCost, m.MachineFee, m.TotalAmount, m.NetProfit, string(m.Status),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return fmt.Errorf("erro ao inserir ordem de serviço: %w", err)
	}
	return nil
}

func (r *maintenanceRepository) UpdateStatus(ctx context.Context, id string, status domain.MaintenanceStatus) error {
	affected, err := exec(ctx, r.conn, psql.
		Update(maintenanceTable).
		Set("status", string(status)).
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

// scanMaintenance recalcula total e lucro a partir dos valores da ordem
func scanMaintenance(row scanner) (*domain.MaintenanceTicket, error) {
	m := &domain.MaintenanceTicket{}
	var (
		paymentMethod sql.NullString
		status        string
	)

	err := row.Scan(
		&m.ID,
		&m.Code,
		&m.CompanyID,
		&m.StoreID,
		&m.StoreName,
		&m.CustomerName,
		&m.CustomerPhone,
		&m.Device,
		&m.Problem,
		&m.Service,
		&paymentMethod,
		&m.LaborAmount,
		&m.PartsAmount,
		&m.PartsCost,
		&m.MachineFee,
		&status,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	m.PaymentMethod = stringPtr(paymentMethod)
	m.Status = domain.MaintenanceStatus(status)
	m.Recompute()
	return m, nil
}
