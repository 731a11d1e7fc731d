package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vfg2006/store-finance-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-finance-api/internal/domain"
)

const storesTable = "lojas"

type StoreRepository interface {
	List(ctx context.Context, filter domain.StoreFilter) ([]*domain.Store, error)
	GetByID(ctx context.Context, id string) (*domain.Store, error)
	Create(ctx context.Context, store *domain.Store) error
	SetActive(ctx context.Context, id string, active bool) error
}

type storeRepository struct {
	conn *postgres.Connection
}

func NewStoreRepository(conn *postgres.Connection) StoreRepository {
	return &storeRepository{
		conn: conn,
	}
}

func (r *storeRepository) List(ctx context.Context, filter domain.StoreFilter) ([]*domain.Store, error) {
	query := psql.
		Select("id", "empresa_id", "nome", "cidade", "ativa", "created_at").
		From(storesTable).
		OrderBy("nome ASC")

	if filter.CompanyID != "" {
		query = query.Where("empresa_id = ?", filter.CompanyID)
	}
	if filter.OnlyActive {
		query = query.Where("ativa = TRUE")
	}

	return queryAll(ctx, r.conn, query, scanStore)
}

func (r *storeRepository) GetByID(ctx context.Context, id string) (*domain.Store, error) {
	query := psql.
		Select("id", "empresa_id", "nome", "cidade", "ativa", "created_at").
		From(storesTable).
		Where("id = ?", id)

	return queryOne(ctx, r.conn, query, scanStore)
}

func (r *storeRepository) Create(ctx context.Context, store *domain.Store) error {
	sqlQuery, args, err := psql.
		Insert(storesTable).
		Columns("empresa_id", "nome", "cidade", "ativa").
		Values(store.CompanyID, store.Name, nullString(&store.City), store.Active).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&store.ID, &store.CreatedAt); err != nil {
		return fmt.Errorf("erro ao inserir loja: %w", err)
	}
	return nil
}

func (r *storeRepository) SetActive(ctx context.Context, id string, active bool) error {
	affected, err := exec(ctx, r.conn, psql.
		Update(storesTable).
		Set("ativa", active).
		Where("id = ?", id))
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func scanStore(row scanner) (*domain.Store, error) {
	store := &domain.Store{}
	var city sql.NullString

	err := row.Scan(&store.ID, &store.CompanyID, &store.Name, &city, &store.Active, &store.CreatedAt)
	if err != nil {
		return nil, err
	}

	store.City = city.String
	return store, nil
}
