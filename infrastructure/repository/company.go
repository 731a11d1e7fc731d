package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vfg2006/store-finance-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-finance-api/internal/domain"
)

const companiesTable = "empresas"

type CompanyRepository interface {
	List(ctx context.Context, onlyActive bool) ([]*domain.Company, error)
	GetByID(ctx context.Context, id string) (*domain.Company, error)
	Create(ctx context.Context, company *domain.Company) error
	SetActive(ctx context.Context, id string, active bool) error
}

type companyRepository struct {
	conn *postgres.Connection
}

func NewCompanyRepository(conn *postgres.Connection) CompanyRepository {
	return &companyRepository{
		conn: conn,
	}
}

func (r *companyRepository) List(ctx context.Context, onlyActive bool) ([]*domain.Company, error) {
	query := psql.
		Select("id", "nome", "cnpj", "ativo", "created_at").
		From(companiesTable).
		OrderBy("nome ASC")

	if onlyActive {
		query = query.Where("ativo = TRUE")
	}

	return queryAll(ctx, r.conn, query, scanCompany)
}

func (r *companyRepository) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	query := psql.
		Select("id", "nome", "cnpj", "ativo", "created_at").
		From(companiesTable).
		Where("id = ?", id)

	return queryOne(ctx, r.conn, query, scanCompany)
}

func (r *companyRepository) Create(ctx context.Context, company *domain.Company) error {
	sqlQuery, args, err := psql.
		Insert(companiesTable).
		Columns("nome", "cnpj", "ativo").
		Values(company.Name, nullString(&company.Document), company.Active).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&company.ID, &company.CreatedAt); err != nil {
		return fmt.Errorf("erro ao inserir empresa: %w", err)
	}
	return nil
}

func (r *companyRepository) SetActive(ctx context.Context, id string, active bool) error {
	affected, err := exec(ctx, r.conn, psql.
		Update(companiesTable).
		Set("ativo", active).
		Where("id = ?", id))
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func scanCompany(row scanner) (*domain.Company, error) {
	company := &domain.Company{}
	var document sql.NullString

	err := row.Scan(&company.ID, &company.Name, &document, &company.Active, &company.CreatedAt)
	if err != nil {
		return nil, err
	}

	company.Document = document.String
	return company, nil
}
