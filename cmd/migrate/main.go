package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/store-finance-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-finance-api/infrastructure/migration"
	"github.com/vfg2006/store-finance-api/internal/config"
	"github.com/vfg2006/store-finance-api/pkg/log"
)

func init() {
	rootCmd.AddCommand(upCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(schemaCmd)

	seedCmd.Flags().String("company", "", "Nome da empresa de demonstração")
	seedCmd.Flags().StringSlice("store", nil, "Nome de uma loja (pode ser repetido)")
	_ = seedCmd.MarkFlagRequired("company")
}

var rootCmd = &cobra.Command{
	Use:          "migrate",
	Short:        "Aplica o schema do banco e carrega dados de demonstração",
	SilenceUsage: true,
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Aplica o schema em uma única transação",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withConnection(cmd.Context(), func(ctx context.Context, conn postgres.Conn) error {
			return migration.Up(ctx, conn)
		})
	},
}

var seedCmd = &cobra.Command{
	Use:     "seed",
	Short:   "Insere uma empresa com suas lojas",
	Example: `  migrate seed --company "Ótica Centro" --store "Loja Shopping" --store "Loja Rua"`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		company, _ := cmd.Flags().GetString("company")
		stores, _ := cmd.Flags().GetStringSlice("store")

		return withConnection(cmd.Context(), func(ctx context.Context, conn postgres.Conn) error {
			companyID, err := migration.Seed(ctx, conn, migration.SeedData{Company: company, Stores: stores})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Empresa criada: %s\n", companyID)
			return nil
		})
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Imprime o DDL aplicado pelo comando up",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), migration.Schema())
	},
}

func withConnection(ctx context.Context, fn func(context.Context, postgres.Conn) error) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	log.Setup(cfg.App.LogLevel)

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
	}
	defer conn.Close()

	return fn(ctx, conn)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logrus.WithError(err).Error("Falha na migração")
		os.Exit(1)
	}
}
