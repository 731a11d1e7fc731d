package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-finance-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-finance-api/infrastructure/repository"
	"github.com/vfg2006/store-finance-api/internal/api"
	"github.com/vfg2006/store-finance-api/internal/api/handler"
	"github.com/vfg2006/store-finance-api/internal/config"
	"github.com/vfg2006/store-finance-api/internal/scheduler"
	"github.com/vfg2006/store-finance-api/internal/usecases/attainment"
	"github.com/vfg2006/store-finance-api/internal/usecases/auditing"
	"github.com/vfg2006/store-finance-api/internal/usecases/authenticating"
	"github.com/vfg2006/store-finance-api/internal/usecases/campaign"
	"github.com/vfg2006/store-finance-api/internal/usecases/closing"
	"github.com/vfg2006/store-finance-api/internal/usecases/dashboard"
	"github.com/vfg2006/store-finance-api/internal/usecases/planning"
	"github.com/vfg2006/store-finance-api/internal/usecases/ranking"
	"github.com/vfg2006/store-finance-api/internal/usecases/reconciling"
	"github.com/vfg2006/store-finance-api/internal/usecases/registry"
	"github.com/vfg2006/store-finance-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	companyRepo := repository.NewCompanyRepository(pgConn)
	storeRepo := repository.NewStoreRepository(pgConn)
	profileRepo := repository.NewProfileRepository(pgConn)
	employeeRepo := repository.NewEmployeeRepository(pgConn)
	closingRepo := repository.NewCashClosingRepository(pgConn)
	goalRepo := repository.NewGoalRepository(pgConn)
	ledgerRepo := repository.NewLedgerRepository(pgConn)
	reconciliationRepo := repository.NewReconciliationRepository(pgConn)
	rankingRepo := repository.NewStoreRankingRepository(pgConn)
	auditRepo := repository.NewAuditRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	maintenanceRepo := repository.NewMaintenanceRepository(pgConn)
	dreRepo := repository.NewDRERepository(pgConn)

	authenticator := authenticating.NewService(profileRepo, cfg)
	reconciliationService := reconciling.NewService(ledgerRepo, reconciliationRepo, storeRepo)
	rankingService := ranking.NewStoreRankingService(storeRepo, closingRepo, goalRepo, reconciliationRepo, rankingRepo)
	planningService := planning.NewService(dreRepo)

	dashboardService := dashboard.NewService(dashboard.Repositories{
		Stores:          storeRepo,
		Employees:       employeeRepo,
		Closings:        closingRepo,
		Ledger:          ledgerRepo,
		Audits:          auditRepo,
		Campaigns:       campaignRepo,
		Goals:           goalRepo,
		Reconciliations: reconciliationRepo,
	}, planningService, cfg)

	// Agendadores diários
	rankingSnapshotService := scheduler.NewRankingSnapshotService(companyRepo, rankingService, cfg)
	overdueSweepService := scheduler.NewOverdueSweepService(reconciliationService, cfg)

	if err := rankingSnapshotService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do ranking das lojas")
	} else {
		logrus.Info("Agendador do ranking das lojas iniciado com sucesso")
	}

	if err := overdueSweepService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de títulos atrasados")
	} else {
		logrus.Info("Agendador de títulos atrasados iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Database:       pgConn,
		Authenticator:  authenticator,
		Closing:        closing.NewService(closingRepo, storeRepo),
		Goals:          attainment.NewService(goalRepo, closingRepo, storeRepo),
		Reconciliation: reconciliationService,
		Ranking:        rankingService,
		Dashboard:      dashboardService,
		Planning:       planningService,
		Audits:         auditing.NewService(auditRepo, storeRepo),
		Campaigns:      campaign.NewService(campaignRepo, storeRepo),
		Companies:      registry.NewCompanyService(companyRepo),
		Stores:         registry.NewStoreService(storeRepo, companyRepo),
		Employees:      registry.NewEmployeeService(employeeRepo, storeRepo),
		Users:          registry.NewUserService(profileRepo, storeRepo),
		Maintenance:    registry.NewMaintenanceService(maintenanceRepo, storeRepo),
		CronJobs: handler.CronJobServices{
			RankingSnapshotService: rankingSnapshotService,
			OverdueSweepService:    overdueSweepService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
