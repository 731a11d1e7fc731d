// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

//go:generate mockgen -source=company.go -destination=mocks/company_mock.go -package=mocks
//go:generate mockgen -source=store.go -destination=mocks/store_mock.go -package=mocks
//go:generate mockgen -source=profile.go -destination=mocks/profile_mock.go -package=mocks
//go:generate mockgen -source=cash_closing.go -destination=mocks/cash_closing_mock.go -package=mocks
//go:generate mockgen -source=goal.go -destination=mocks/goal_mock.go -package=mocks
//go:generate mockgen -source=ledger.go -destination=mocks/ledger_mock.go -package=mocks
//go:generate mockgen -source=reconciliation.go -destination=mocks/reconciliation_mock.go -package=mocks
//go:generate mockgen -source=audit.go -destination=mocks/audit_mock.go -package=mocks
//go:generate mockgen -source=campaign.go -destination=mocks/campaign_mock.go -package=mocks
//go:generate mockgen -source=employee.go -destination=mocks/employee_mock.go -package=mocks
//go:generate mockgen -source=maintenance.go -destination=mocks/maintenance_mock.go -package=mocks
//go:generate mockgen -source=dre.go -destination=mocks/dre_mock.go -package=mocks
//go:generate mockgen -source=store_ranking.go -destination=mocks/store_ranking_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/store-finance-api/infrastructure/database/postgres"
)

// scanner é satisfeito por *sql.Row e *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

// psql é o builder com placeholders do Postgres
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// queryAll executa a consulta e escaneia todas as linhas com scan
func queryAll[T any](ctx context.Context, q postgres.Queryer, builder squirrel.Sqlizer, scan func(scanner) (*T, error)) ([]*T, error) {
	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := q.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	items := make([]*T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear linha: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}

// queryOne retorna nil, nil quando a consulta não encontra registros
func queryOne[T any](ctx context.Context, q postgres.Queryer, builder squirrel.Sqlizer, scan func(scanner) (*T, error)) (*T, error) {
	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	item, err := scan(q.QueryRowContext(ctx, sqlQuery, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear registro: %w", err)
	}
	return item, nil
}

// exec executa o comando e retorna a quantidade de linhas afetadas
func exec(ctx context.Context, q postgres.Queryer, builder squirrel.Sqlizer) (int64, error) {
	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := q.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}
	return affected, nil
}

func dateRange(column string, start, end *time.Time) squirrel.And {
	conditions := squirrel.And{}
	if start != nil {
		conditions = append(conditions, squirrel.GtOrEq{column: start.Format("2006-01-02")})
	}
	if end != nil {
		conditions = append(conditions, squirrel.LtOrEq{column: end.Format("2006-01-02")})
	}
	return conditions
}

func nullString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func deleteByID(ctx context.Context, q postgres.Queryer, table, id string) error {
	affected, err := exec(ctx, q, psql.Delete(table).Where("id = ?", id))
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
