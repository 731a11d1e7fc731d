package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/store-finance-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-finance-api/internal/domain"
)

const reconciliationsTable = "conciliacoes"

type ReconciliationRepository interface {
	List(ctx context.Context, filter domain.ReconciliationFilter) ([]*domain.StoreReconciliation, error)
	Create(ctx context.Context, rec *domain.StoreReconciliation) error
	UpdateStatus(ctx context.Context, companyID, id string, status domain.ReconciliationStatus, notes string) error
}

type reconciliationRepository struct {
	conn *postgres.Connection
}

func NewReconciliationRepository(conn *postgres.Connection) ReconciliationRepository {
	return &reconciliationRepository{
		conn: conn,
	}
}

func (r *reconciliationRepository) List(ctx context.Context, filter domain.ReconciliationFilter) ([]*domain.StoreReconciliation, error) {
	query := psql.
		Select(
			"c.id", "c.empresa_id", "c.loja_id", "COALESCE(l.nome, '')", "c.data", "c.status",
			"c.diferenca", "COALESCE(c.observacao, '')", "c.created_at", "c.updated_at",
		).
		From(reconciliationsTable + " c").
		LeftJoin(storesTable + " l ON l.id = c.loja_id").
		Where(dateRange("c.data", filter.StartDate, filter.EndDate)).
		OrderBy("c.data DESC", "l.nome ASC")

	if filter.CompanyID != "" {
		query = query.Where("c.empresa_id = ?", filter.CompanyID)
	}
	if filter.StoreID != "" {
		query = query.Where("c.loja_id = ?", filter.StoreID)
	}
	if filter.Status != "" {
		query = query.Where("c.status = ?", string(filter.Status))
	}

	return queryAll(ctx, r.conn, query, scanReconciliation)
}

func (r *reconciliationRepository) Create(ctx context.Context, rec *domain.StoreReconciliation) error {
	sqlQuery, args, err := psql.
		Insert(reconciliationsTable).
		Columns("empresa_id", "loja_id", "data", "status", "diferenca", "observacao").
		Values(rec.CompanyID, rec.StoreID, rec.Date.Format("2006-01-02"), string(rec.Status), rec.Difference, nullString(&rec.Notes)).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return fmt.Errorf("erro ao inserir conciliação: %w", err)
	}
	return nil
}

// UpdateStatus altera o status da conferência. Com companyID vazio não restringe a empresa.
func (r *reconciliationRepository) UpdateStatus(ctx context.Context, companyID, id string, status domain.ReconciliationStatus, notes string) error {
	query := psql.
		Update(reconciliationsTable).
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where("id = ?", id)

	if companyID != "" {
		query = query.Where("empresa_id = ?", companyID)
	}

	if notes != "" {
		query = query.Set("observacao", notes)
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

func scanReconciliation(row scanner) (*domain.StoreReconciliation, error) {
	rec := &domain.StoreReconciliation{}
	var status string

	err := row.Scan(
		&rec.ID,
		&rec.CompanyID,
		&rec.StoreID,
		&rec.StoreName,
		&rec.Date,
		&status,
		&rec.Difference,
		&rec.Notes,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	rec.Status = domain.ReconciliationStatus(status)
	return rec, nil
}
