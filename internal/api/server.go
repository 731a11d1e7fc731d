package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-finance-api/internal/api/handler"
	"github.com/vfg2006/store-finance-api/internal/api/handler/router"
	"github.com/vfg2006/store-finance-api/internal/config"
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
	"github.com/vfg2006/store-finance-api/pkg/metrics"
	"github.com/vfg2006/store-finance-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services reúne os casos de uso expostos pela API
type Services struct {
	Database       handler.Pinger
	Authenticator  authenticating.Authenticator
	Closing        closing.CashClosingService
	Goals          attainment.GoalService
	Reconciliation reconciling.ReconciliationService
	Ranking        ranking.RankingService
	Dashboard      dashboard.DashboardService
	Planning       planning.PlanningService
	Audits         auditing.AuditService
	Campaigns      campaign.CampaignService
	Companies      registry.CompanyService
	Stores         registry.StoreService
	Employees      registry.EmployeeService
	Users          registry.UserService
	Maintenance    registry.MaintenanceService
	CronJobs       handler.CronJobServices
}

type Server struct {
	httpServer *http.Server
}

// NewHandler monta as rotas com a cadeia global de middlewares
func NewHandler(cfg *config.Config, services Services) http.Handler {
	metrics.Init()

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Database)...),
		router.WithRoutes(handler.Me()...),
		router.WithRoutes(handler.CashClosings(services.Closing)...),
		router.WithRoutes(handler.Goals(services.Goals)...),
		router.WithRoutes(handler.Reconciliation(services.Reconciliation)...),
		router.WithRoutes(handler.StoreRanking(services.Ranking)...),
		router.WithRoutes(handler.Dashboards(services.Dashboard, services.Planning)...),
		router.WithRoutes(handler.Audits(services.Audits)...),
		router.WithRoutes(handler.Campaigns(services.Campaigns)...),
		router.WithRoutes(handler.Companies(services.Companies)...),
		router.WithRoutes(handler.Stores(services.Stores)...),
		router.WithRoutes(handler.Employees(services.Employees)...),
		router.WithRoutes(handler.Users(services.Users)...),
		router.WithRoutes(handler.Maintenance(services.Maintenance)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Cors.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, services Services) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
