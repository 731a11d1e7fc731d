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

const (
	payablesTable    = "contas_pagar"
	receivablesTable = "contas_receber"
)

type LedgerRepository interface {
	List(ctx context.Context, direction domain.LedgerDirection, filter domain.LedgerFilter) ([]*domain.LedgerEntry, error)
	GetByID(ctx context.Context, direction domain.LedgerDirection, id string) (*domain.LedgerEntry, error)
	Create(ctx context.Context, entry *domain.LedgerEntry) error
	UpdateStatus(ctx context.Context, direction domain.LedgerDirection, id string, status domain.LedgerStatus) error
	Delete(ctx context.Context, direction domain.LedgerDirection, id string) error
	MarkOverdue(ctx context.Context, direction domain.LedgerDirection, before time.Time) (int64, error)
}

type ledgerRepository struct {
	conn *postgres.Connection
}

func NewLedgerRepository(conn *postgres.Connection) LedgerRepository {
	return &ledgerRepository{
		conn: conn,
	}
}

// ledgerTable retorna a tabela e a coluna da contraparte da direção
func ledgerTable(direction domain.LedgerDirection) (string, string, error) {
	switch direction {
	case domain.DirectionOutflow:
		return payablesTable, "fornecedor", nil
	case domain.DirectionInflow:
		return receivablesTable, "cliente", nil
	}
	return "", "", fmt.Errorf("direção de título desconhecida: %q", direction)
}

func (r *ledgerRepository) baseQuery(direction domain.LedgerDirection) (squirrel.SelectBuilder, error) {
	table, counterparty, err := ledgerTable(direction)
	if err != nil {
		return squirrel.SelectBuilder{}, err
	}

	return psql.
		Select(
			"id", "empresa_id", "loja_id", counterparty, "descricao", "categoria",
			"valor", "vencimento", "status", "created_at", "updated_at",
		).
		From(table), nil
}

func (r *ledgerRepository) List(ctx context.Context, direction domain.LedgerDirection, filter domain.LedgerFilter) ([]*domain.LedgerEntry, error) {
	query, err := r.baseQuery(direction)
	if err != nil {
		return nil, err
	}

	query = query.
		Where(dateRange("vencimento", filter.StartDate, filter.EndDate)).
		OrderBy("vencimento ASC", "created_at ASC")

	if filter.CompanyID != "" {
		query = query.Where("empresa_id = ?", filter.CompanyID)
	}
	if filter.StoreID != "" {
		query = query.Where("loja_id = ?", filter.StoreID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	return queryAll(ctx, r.conn, query, ledgerScanner(direction))
}

func (r *ledgerRepository) GetByID(ctx context.Context, direction domain.LedgerDirection, id string) (*domain.LedgerEntry, error) {
	query, err := r.baseQuery(direction)
	if err != nil {
		return nil, err
	}
	return queryOne(ctx, r.conn, query.Where("id = ?", id), ledgerScanner(direction))
}

func (r *ledgerRepository) Create(ctx context.Context, e *domain.LedgerEntry) error {
	table, counterparty, err := ledgerTable(e.Direction)
	if err != nil {
		return err
	}

	sqlQuery, args, err := psql.
		Insert(table).
		Columns("empresa_id", "loja_id", counterparty, "descricao", "categoria", "valor", "vencimento", "status").
		Values(
			e.CompanyID, nullString(e.StoreID), e.Counterparty, nullString(&e.Description),
			nullString(&e.Category), e.Amount, e.DueDate.Format("2006-01-02"), string(e.Status),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return fmt.Errorf("erro ao inserir título em %s: %w", table, err)
	}
	return nil
}

func (r *ledgerRepository) UpdateStatus(ctx context.Context, direction domain.LedgerDirection, id string, status domain.LedgerStatus) error {
	table, _, err := ledgerTable(direction)
	if err != nil {
		return err
	}

	affected, err := exec(ctx, r.conn, psql.
		Update(table).
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

func (r *ledgerRepository) Delete(ctx context.Context, direction domain.LedgerDirection, id string) error {
	table, _, err := ledgerTable(direction)
	if err != nil {
		return err
	}
	return deleteByID(ctx, r.conn, table, id)
}

// MarkOverdue marca como atrasados os títulos pendentes com vencimento anterior a before
func (r *ledgerRepository) MarkOverdue(ctx context.Context, direction domain.LedgerDirection, before time.Time) (int64, error) {
	table, _, err := ledgerTable(direction)
	if err != nil {
		return 0, err
	}

	return exec(ctx, r.conn, psql.
		Update(table).
		Set("status", string(domain.LedgerStatusOverdue)).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"status": string(domain.LedgerStatusPending)}).
		Where(squirrel.Lt{"vencimento": before.Format("2006-01-02")}))
}

func ledgerScanner(direction domain.LedgerDirection) func(scanner) (*domain.LedgerEntry, error) {
	return func(row scanner) (*domain.LedgerEntry, error) {
		e := &domain.LedgerEntry{Direction: direction}
		var (
			storeID, description, category sql.NullString
			status                         string
		)

		err := row.Scan(
			&e.ID,
			&e.CompanyID,
			&storeID,
			&e.Counterparty,
			&description,
			&category,
			&e.Amount,
			&e.DueDate,
			&status,
			&e.CreatedAt,
			&e.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		e.StoreID = stringPtr(storeID)
		e.Description = description.String
		e.Category = category.String
		e.Status = domain.LedgerStatus(status)
		return e, nil
	}
}
