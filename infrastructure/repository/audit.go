package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/store-finance-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-finance-api/internal/domain"
)

const auditsTable = "auditorias"

type AuditRepository interface {
	List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditOccurrence, error)
	GetByID(ctx context.Context, id string) (*domain.AuditOccurrence, error)
	Create(ctx context.Context, audit *domain.AuditOccurrence) error
	UpdateStatus(ctx context.Context, id string, status domain.AuditStatus) error
}

type auditRepository struct {
	conn *postgres.Connection
}

func NewAuditRepository(conn *postgres.Connection) AuditRepository {
	return &auditRepository{
		conn: conn,
	}
}

func (r *auditRepository) baseQuery() squirrel.SelectBuilder {
	return psql.
		Select(
			"a.id", "a.codigo", "a.empresa_id", "a.loja_id", "COALESCE(l.nome, '')", "a.data",
			"a.tipo", "COALESCE(a.descricao, '')", "a.valor_impactado", "a.status",
			"a.created_at", "a.updated_at",
		).
		From(auditsTable + " a").
		LeftJoin(storesTable + " l ON l.id = a.loja_id")
}

func (r *auditRepository) List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditOccurrence, error) {
	query := r.baseQuery().
		Where(dateRange("a.data", filter.StartDate, filter.EndDate)).
		OrderBy("a.data DESC", "a.created_at DESC")

	if filter.CompanyID != "" {
		query = query.Where("a.empresa_id = ?", filter.CompanyID)
	}
	if filter.StoreID != "" {
		query = query.Where("a.loja_id = ?", filter.StoreID)
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		query = query.Where(squirrel.Eq{"a.status": statuses})
	}

	return queryAll(ctx, r.conn, query, scanAudit)
}

func (r *auditRepository) GetByID(ctx context.Context, id string) (*domain.AuditOccurrence, error) {
	return queryOne(ctx, r.conn, r.baseQuery().Where("a.id = ?", id), scanAudit)
}

func (r *auditRepository) Create(ctx context.Context, a *domain.AuditOccurrence) error {
	sqlQuery, args, err := psql.
		Insert(auditsTable).
		Columns("codigo", "empresa_id", "loja_id", "data", "tipo", "descricao", "valor_impactado", "status").
		Values(
			a.Code, a.CompanyID, a.StoreID, a.Date.Format("2006-01-02"), a.Type,
			nullString(&a.Description), a.ImpactedAmount, string(a.Status),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return fmt.Errorf("erro ao inserir auditoria: %w", err)
	}
	return nil
}

func (r *auditRepository) UpdateStatus(ctx context.Context, id string, status domain.AuditStatus) error {
	affected, err := exec(ctx, r.conn, psql.
		Update(auditsTable).
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

func scanAudit(row scanner) (*domain.AuditOccurrence, error) {
	a := &domain.AuditOccurrence{}
	var status string

	err := row.Scan(
		&a.ID,
		&a.Code,
		&a.CompanyID,
		&a.StoreID,
		&a.StoreName,
		&a.Date,
		&a.Type,
		&a.Description,
		&a.ImpactedAmount,
		&status,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.Status = domain.AuditStatus(status)
	return a, nil
}
