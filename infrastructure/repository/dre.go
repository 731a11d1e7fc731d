package repository

import (
	"context"
	"database/sql"

	"github.com/vfg2006/store-finance-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-finance-api/internal/domain"
)

const dreTable = "dre_historico"

type DRERepository interface {
	List(ctx context.Context, filter domain.DREFilter) ([]*domain.DREEntry, error)
}

type dreRepository struct {
	conn *postgres.Connection
}

func NewDRERepository(conn *postgres.Connection) DRERepository {
	return &dreRepository{
		conn: conn,
	}
}

func (r *dreRepository) List(ctx context.Context, filter domain.DREFilter) ([]*domain.DREEntry, error) {
	query := psql.
		Select("id", "empresa_id", "ano", "mes", "categoria", "subcategoria", "loja_nome", "valor").
		From(dreTable).
		OrderBy("mes ASC", "categoria ASC")

	if filter.CompanyID != "" {
		query = query.Where("empresa_id = ?", filter.CompanyID)
	}
	if filter.Year > 0 {
		query = query.Where("ano = ?", filter.Year)
	}
	if filter.StoreName != "" {
		query = query.Where("loja_nome = ?", filter.StoreName)
	}

	return queryAll(ctx, r.conn, query, scanDREEntry)
}

func scanDREEntry(row scanner) (*domain.DREEntry, error) {
	e := &domain.DREEntry{}
	var subcategory, storeName sql.NullString

	err := row.Scan(
		&e.ID,
		&e.CompanyID,
		&e.Year,
		&e.Month,
		&e.Category,
		&subcategory,
		&storeName,
		&e.Amount,
	)
	if err != nil {
		return nil, err
	}

	e.Subcategory = subcategory.String
	e.StoreName = storeName.String
	return e, nil
}
