package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vfg2006/store-finance-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-finance-api/internal/domain"
)

const employeesTable = "funcionarios"

type EmployeeRepository interface {
	List(ctx context.Context, filter domain.EmployeeFilter) ([]*domain.Employee, error)
	Create(ctx context.Context, employee *domain.Employee) error
	SetActive(ctx context.Context, companyID, id string, active bool) error
}

type employeeRepository struct {
	conn *postgres.Connection
}

func NewEmployeeRepository(conn *postgres.Connection) EmployeeRepository {
	return &employeeRepository{
		conn: conn,
	}
}

func (r *employeeRepository) List(ctx context.Context, filter domain.EmployeeFilter) ([]*domain.Employee, error) {
	query := psql.
		Select(
			"f.id", "f.empresa_id", "f.loja_id", "COALESCE(l.nome, '')", "f.nome", "COALESCE(f.cargo, '')",
			"f.salario", "f.ajuda_custo", "f.passagem", "f.data_admissao", "f.ativo", "f.created_at",
		).
		From(employeesTable + " f").
		LeftJoin(storesTable + " l ON l.id = f.loja_id").
		OrderBy("f.nome ASC")

	if filter.CompanyID != "" {
		query = query.Where("f.empresa_id = ?", filter.CompanyID)
	}
	if filter.StoreID != "" {
		query = query.Where("f.loja_id = ?", filter.StoreID)
	}
	if filter.OnlyActive {
		query = query.Where("f.ativo = TRUE")
	}

	return queryAll(ctx, r.conn, query, scanEmployee)
}

func (r *employeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	var hiredAt interface{}
	if e.HiredAt != nil {
		hiredAt = e.HiredAt.Format("2006-01-02")
	}

	sqlQuery, args, err := psql.
		Insert(employeesTable).
		Columns("empresa_id", "loja_id", "nome", "cargo", "salario", "ajuda_custo", "passagem", "data_admissao", "ativo").
		Values(
			e.CompanyID, nullString(e.StoreID), e.Name, nullString(&e.Role), e.Salary,
			e.Allowance, e.Transport, hiredAt, e.Active,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&e.ID, &e.CreatedAt); err != nil {
		return fmt.Errorf("erro ao inserir funcionário: %w", err)
	}
	return nil
}

func (r *employeeRepository) SetActive(ctx context.Context, companyID, id string, active bool) error {
	query := psql.
		Update(employeesTable).
		Set("ativo", active).
		Where("id = ?", id)
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

func scanEmployee(row scanner) (*domain.Employee, error) {
	e := &domain.Employee{}
	var (
		storeID sql.NullString
		hiredAt sql.NullTime
	)

	err := row.Scan(
		&e.ID,
		&e.CompanyID,
		&storeID,
		&e.StoreName,
		&e.Name,
		&e.Role,
		&e.Salary,
		&e.Allowance,
		&e.Transport,
		&hiredAt,
		&e.Active,
		&e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	e.StoreID = stringPtr(storeID)
	if hiredAt.Valid {
		e.HiredAt = &hiredAt.Time
	}
	return e, nil
}
