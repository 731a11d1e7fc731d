package handler

import (
	"net/http"

	"github.com/vfg2006/store-finance-api/internal/api/handler/router"
	"github.com/vfg2006/store-finance-api/internal/domain"
	"github.com/vfg2006/store-finance-api/internal/usecases/attainment"
	"github.com/vfg2006/store-finance-api/internal/usecases/auditing"
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

// requires declara a tela exigida pela rota
func requires(view domain.View) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{middleware.RequireView(view)}
}

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Me() []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(),
			Middlewares: requires(domain.ViewNavigationLinks),
		},
		{
			Path:        "/v1/me/navigation",
			Method:      http.MethodGet,
			Handler:     GetNavigation(),
			Middlewares: requires(domain.ViewNavigationLinks),
		},
	}
}

func CashClosings(service closing.CashClosingService) []router.Route {
	return []router.Route{
		{Path: "/v1/cash-closings", Method: http.MethodGet, Handler: ListCashClosings(service), Middlewares: requires(domain.ViewCashClosing)},
		{Path: "/v1/cash-closings/summary", Method: http.MethodGet, Handler: GetCashClosingSummary(service), Middlewares: requires(domain.ViewCashClosing)},
		{Path: "/v1/cash-closings", Method: http.MethodPost, Handler: CreateCashClosing(service), Middlewares: requires(domain.ViewCashClosing)},
		{Path: "/v1/cash-closings/:id", Method: http.MethodPut, Handler: UpdateCashClosing(service), Middlewares: requires(domain.ViewCashClosing)},
		{Path: "/v1/cash-closings/:id", Method: http.MethodDelete, Handler: DeleteCashClosing(service), Middlewares: requires(domain.ViewCashClosing)},
	}
}

func Goals(service attainment.GoalService) []router.Route {
	return []router.Route{
		{Path: "/v1/goals", Method: http.MethodGet, Handler: ListGoals(service), Middlewares: requires(domain.ViewGoals)},
		{Path: "/v1/goals", Method: http.MethodPut, Handler: SaveGoal(service), Middlewares: requires(domain.ViewGoals)},
		{Path: "/v1/goals/:id", Method: http.MethodDelete, Handler: DeleteGoal(service), Middlewares: requires(domain.ViewGoals)},
		{Path: "/v1/goals-attainment", Method: http.MethodGet, Handler: GetGoalAttainment(service), Middlewares: requires(domain.ViewGoals)},
		{Path: "/v1/weekly-goals", Method: http.MethodGet, Handler: ListWeeklyGoals(service), Middlewares: requires(domain.ViewWeeklyGoals)},
		{Path: "/v1/weekly-goals", Method: http.MethodPut, Handler: SaveWeeklyGoal(service), Middlewares: requires(domain.ViewWeeklyGoals)},
		{Path: "/v1/weekly-goals/:id", Method: http.MethodDelete, Handler: DeleteWeeklyGoal(service), Middlewares: requires(domain.ViewWeeklyGoals)},
		{Path: "/v1/weekly-goals-progress", Method: http.MethodGet, Handler: GetWeeklyProgress(service), Middlewares: requires(domain.ViewWeeklyGoals)},
	}
}

// ledgerRoutes monta o CRUD de contas a pagar ou a receber sob o prefixo informado
func ledgerRoutes(service reconciling.ReconciliationService, prefix string, direction domain.LedgerDirection, view domain.View) []router.Route {
	return []router.Route{
		{Path: prefix, Method: http.MethodGet, Handler: ListLedger(service, direction), Middlewares: requires(view)},
		{Path: prefix, Method: http.MethodPost, Handler: CreateLedger(service, direction), Middlewares: requires(view)},
		{Path: prefix + "/:id/status", Method: http.MethodPatch, Handler: UpdateLedgerStatus(service, direction), Middlewares: requires(view)},
		{Path: prefix + "/:id", Method: http.MethodDelete, Handler: DeleteLedger(service, direction), Middlewares: requires(view)},
	}
}

func Reconciliation(service reconciling.ReconciliationService) []router.Route {
	routes := ledgerRoutes(service, "/v1/payables", domain.DirectionOutflow, domain.ViewPayables)
	routes = append(routes, ledgerRoutes(service, "/v1/receivables", domain.DirectionInflow, domain.ViewReceivables)...)

	return append(routes,
		router.Route{Path: "/v1/reconciliation/timeline", Method: http.MethodGet, Handler: GetReconciliationTimeline(service), Middlewares: requires(domain.ViewReconciliation)},
		router.Route{Path: "/v1/reconciliations", Method: http.MethodGet, Handler: ListStoreReconciliations(service), Middlewares: requires(domain.ViewReconciliation)},
		router.Route{Path: "/v1/reconciliations", Method: http.MethodPost, Handler: CreateStoreReconciliation(service), Middlewares: requires(domain.ViewReconciliation)},
		router.Route{Path: "/v1/reconciliations/:id/status", Method: http.MethodPatch, Handler: UpdateStoreReconciliationStatus(service), Middlewares: requires(domain.ViewReconciliation)},
	)
}

func StoreRanking(service ranking.RankingService) []router.Route {
	return []router.Route{
		{Path: "/v1/ranking", Method: http.MethodGet, Handler: GetStoreRanking(service), Middlewares: requires(domain.ViewRanking)},
		{Path: "/v1/ranking/snapshot", Method: http.MethodGet, Handler: GetStoreRankingSnapshot(service), Middlewares: requires(domain.ViewRanking)},
	}
}

func Audits(service auditing.AuditService) []router.Route {
	return []router.Route{
		{Path: "/v1/audits", Method: http.MethodGet, Handler: ListAudits(service), Middlewares: requires(domain.ViewAudits)},
		{Path: "/v1/audits/summary", Method: http.MethodGet, Handler: GetAuditSummary(service), Middlewares: requires(domain.ViewAudits)},
		{Path: "/v1/audits", Method: http.MethodPost, Handler: CreateAudit(service), Middlewares: requires(domain.ViewAudits)},
		{Path: "/v1/audits/:id/status", Method: http.MethodPatch, Handler: UpdateAuditStatus(service), Middlewares: requires(domain.ViewAudits)},
	}
}

func Campaigns(service campaign.CampaignService) []router.Route {
	return []router.Route{
		{Path: "/v1/campaigns", Method: http.MethodGet, Handler: ListCampaigns(service), Middlewares: requires(domain.ViewCampaigns)},
		{Path: "/v1/campaigns", Method: http.MethodPost, Handler: CreateCampaign(service), Middlewares: requires(domain.ViewCampaigns)},
		{Path: "/v1/campaigns/:id/progress", Method: http.MethodPatch, Handler: UpdateCampaignProgress(service), Middlewares: requires(domain.ViewCampaigns)},
		{Path: "/v1/campaigns/:id/active", Method: http.MethodPatch, Handler: SetCampaignActive(service), Middlewares: requires(domain.ViewCampaigns)},
	}
}

func Employees(service registry.EmployeeService) []router.Route {
	return []router.Route{
		{Path: "/v1/employees", Method: http.MethodGet, Handler: ListEmployees(service), Middlewares: requires(domain.ViewEmployees)},
		{Path: "/v1/employees", Method: http.MethodPost, Handler: CreateEmployee(service), Middlewares: requires(domain.ViewEmployees)},
		{Path: "/v1/employees/:id/active", Method: http.MethodPatch, Handler: SetEmployeeActive(service), Middlewares: requires(domain.ViewEmployees)},
		{Path: "/v1/payroll", Method: http.MethodGet, Handler: GetPayroll(service), Middlewares: requires(domain.ViewPayroll)},
	}
}

func Maintenance(service registry.MaintenanceService) []router.Route {
	return []router.Route{
		{Path: "/v1/maintenance", Method: http.MethodGet, Handler: ListMaintenance(service), Middlewares: requires(domain.ViewMaintenance)},
		{Path: "/v1/maintenance", Method: http.MethodPost, Handler: CreateMaintenance(service), Middlewares: requires(domain.ViewMaintenance)},
		{Path: "/v1/maintenance/:id/status", Method: http.MethodPatch, Handler: UpdateMaintenanceStatus(service), Middlewares: requires(domain.ViewMaintenance)},
	}
}

func Companies(service registry.CompanyService) []router.Route {
	return []router.Route{
		{Path: "/v1/companies", Method: http.MethodGet, Handler: ListCompanies(service), Middlewares: requires(domain.ViewCompanies)},
		{Path: "/v1/companies", Method: http.MethodPost, Handler: CreateCompany(service), Middlewares: requires(domain.ViewCompanies)},
		{Path: "/v1/companies/:id/active", Method: http.MethodPatch, Handler: SetCompanyActive(service), Middlewares: requires(domain.ViewCompanies)},
	}
}

func Stores(service registry.StoreService) []router.Route {
	return []router.Route{
		{Path: "/v1/stores", Method: http.MethodGet, Handler: ListStores(service), Middlewares: requires(domain.ViewStores)},
		{Path: "/v1/stores", Method: http.MethodPost, Handler: CreateStore(service), Middlewares: requires(domain.ViewStores)},
		{Path: "/v1/stores/:id/active", Method: http.MethodPatch, Handler: SetStoreActive(service), Middlewares: requires(domain.ViewStores)},
	}
}

func Users(service registry.UserService) []router.Route {
	return []router.Route{
		{Path: "/v1/users", Method: http.MethodGet, Handler: ListUsers(service), Middlewares: requires(domain.ViewUsers)},
		{Path: "/v1/users/:id/link", Method: http.MethodPut, Handler: UpdateUserLink(service), Middlewares: requires(domain.ViewUsers)},
		{Path: "/v1/users/:id/active", Method: http.MethodPatch, Handler: SetUserActive(service), Middlewares: requires(domain.ViewUsers)},
	}
}

func Dashboards(service dashboard.DashboardService, planningService planning.PlanningService) []router.Route {
	return []router.Route{
		{Path: "/v1/dashboard/admin", Method: http.MethodGet, Handler: GetAdminDashboard(service), Middlewares: requires(domain.ViewAdminDashboard)},
		{Path: "/v1/dashboard/store", Method: http.MethodGet, Handler: GetStoreDashboard(service), Middlewares: requires(domain.ViewStoreDashboard)},
		{Path: "/v1/dashboard/board", Method: http.MethodGet, Handler: GetBoardDashboard(service), Middlewares: requires(domain.ViewBoardDashboard)},
		{Path: "/v1/planning", Method: http.MethodGet, Handler: GetPlanning(planningService), Middlewares: requires(domain.ViewPlanning)},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: requires(domain.ViewScheduledJobs),
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: requires(domain.ViewScheduledJobs),
		},
	}
}
