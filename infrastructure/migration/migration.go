// Package migration aplica o schema do banco e carrega dados de demonstração
package migration

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-finance-api/infrastructure/database/postgres"
)

//go:embed schema.sql
var schema string

// Schema retorna o DDL aplicado pelo comando de migração
func Schema() string {
	return schema
}

// Up aplica o schema em uma única transação
func Up(ctx context.Context, conn postgres.Conn) error {
	logrus.Info("Aplicando schema do banco de dados...")
	startTime := time.Now()

	err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, schema); err != nil {
			return fmt.Errorf("erro ao aplicar schema: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.Infof("Schema aplicado em %v", time.Since(startTime))
	return nil
}

// SeedData descreve a empresa de demonstração e suas lojas
type SeedData struct {
	Company string
	Stores  []string
}

// Seed insere uma empresa com suas lojas e devolve o ID da empresa criada
func Seed(ctx context.Context, conn postgres.Conn, data SeedData) (string, error) {
	if data.Company == "" {
		return "", fmt.Errorf("nome da empresa é obrigatório")
	}

	logrus.Infof("Iniciando inserção da empresa %s com %d lojas...", data.Company, len(data.Stores))
	startTime := time.Now()

	var companyID string
	err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			`INSERT INTO empresas (nome, ativo) VALUES ($1, TRUE) RETURNING id`,
			data.Company,
		).Scan(&companyID)
		if err != nil {
			return fmt.Errorf("erro ao inserir empresa: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `INSERT INTO lojas (empresa_id, nome, ativa) VALUES ($1, $2, TRUE)`)
		if err != nil {
			return fmt.Errorf("erro ao preparar statement para lojas: %w", err)
		}
		defer stmt.Close()

		for i, name := range data.Stores {
			if _, err := stmt.ExecContext(ctx, companyID, name); err != nil {
				return fmt.Errorf("erro ao inserir loja [%d/%d] %s: %w", i+1, len(data.Stores), name, err)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	logrus.Infof("Inserção concluída em %v. Empresa: %s, Lojas: %d", time.Since(startTime), companyID, len(data.Stores))
	return companyID, nil
}
