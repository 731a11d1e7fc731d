package domain

type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleBoard     Role = "DIRETORIA"
	RoleFinance   Role = "FINANCEIRO"
	RoleHR        Role = "RH"
	RoleStore     Role = "LOJA"
	RoleUndefined Role = ""
)

// rolePriority define qual papel prevalece quando o usuário tem mais de um
var rolePriority = []Role{RoleAdmin, RoleBoard, RoleFinance, RoleStore, RoleHR}

type View string

const (
	ViewAdminDashboard  View = "admin_dashboard"
	ViewStoreDashboard  View = "store_dashboard"
	ViewBoardDashboard  View = "board_dashboard"
	ViewMaintenance     View = "maintenance"
	ViewCashClosing     View = "cash_closing"
	ViewReconciliation  View = "reconciliation"
	ViewGoals           View = "goals"
	ViewWeeklyGoals     View = "weekly_goals"
	ViewPayables        View = "payables"
	ViewReceivables     View = "receivables"
	ViewAudits          View = "audits"
	ViewEmployees       View = "employees"
	ViewCampaigns       View = "campaigns"
	ViewPayroll         View = "payroll"
	ViewPlanning        View = "planning"
	ViewRanking         View = "ranking"
	ViewCompanies       View = "companies"
	ViewStores          View = "stores"
	ViewUsers           View = "users"
	ViewScheduledJobs   View = "scheduled_jobs"
	ViewNavigationLinks View = "navigation"
)

// NavigationItem é uma entrada do menu exibido para o papel do usuário
type NavigationItem struct {
	View  View   `json:"view"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

var navigationItems = map[View]NavigationItem{
	ViewAdminDashboard: {ViewAdminDashboard, "Painel Macro", "/admin/dashboard"},
	ViewStoreDashboard: {ViewStoreDashboard, "Visão Geral (Loja)", "/loja/dashboard"},
	ViewBoardDashboard: {ViewBoardDashboard, "Visão Geral (Macro)", "/diretoria/dashboard"},
	ViewMaintenance:    {ViewMaintenance, "Manutenção", "/loja/manutencao"},
	ViewCashClosing:    {ViewCashClosing, "Caixa Diário", "/loja/caixa"},
	ViewReconciliation: {ViewReconciliation, "Conciliação", "/financeiro/conciliacao"},
	ViewGoals:          {ViewGoals, "Metas", "/financeiro/metas"},
	ViewWeeklyGoals:    {ViewWeeklyGoals, "Metas Semanais", "/financeiro/metas-semanais"},
	ViewPayables:       {ViewPayables, "Contas a Pagar", "/financeiro/contas-pagar"},
	ViewReceivables:    {ViewReceivables, "Contas a Receber", "/financeiro/contas-receber"},
	ViewAudits:         {ViewAudits, "Auditoria", "/financeiro/auditoria"},
	ViewEmployees:      {ViewEmployees, "Funcionários", "/financeiro/funcionarios"},
	ViewCampaigns:      {ViewCampaigns, "Campanhas", "/financeiro/campanhas"},
	ViewPayroll:        {ViewPayroll, "Folha & DRE", "/financeiro/folha"},
	ViewPlanning:       {ViewPlanning, "Planejamento DRE", "/diretoria/planejamento"},
	ViewRanking:        {ViewRanking, "Ranking de Lojas", "/ranking"},
	ViewCompanies:      {ViewCompanies, "Empresas", "/admin/empresas"},
	ViewStores:         {ViewStores, "Lojas", "/admin/lojas"},
	ViewUsers:          {ViewUsers, "Usuários", "/admin/usuarios"},
}

// RoleViews é a tabela de permissões: quais telas cada papel pode acessar.
// A ordem de cada lista é a ordem do menu.
var RoleViews = map[Role][]View{
	RoleAdmin: {
		ViewAdminDashboard, ViewStoreDashboard, ViewMaintenance, ViewCashClosing, ViewReconciliation,
		ViewGoals, ViewWeeklyGoals, ViewPayables, ViewReceivables, ViewAudits, ViewEmployees,
		ViewCampaigns, ViewPayroll, ViewPlanning, ViewRanking, ViewBoardDashboard, ViewCompanies,
		ViewStores, ViewUsers, ViewScheduledJobs, ViewNavigationLinks,
	},
	RoleStore: {
		ViewStoreDashboard, ViewMaintenance, ViewCashClosing, ViewNavigationLinks,
	},
	RoleFinance: {
		ViewStoreDashboard, ViewMaintenance, ViewCashClosing, ViewReconciliation, ViewGoals,
		ViewWeeklyGoals, ViewPayables, ViewReceivables, ViewAudits, ViewEmployees, ViewCampaigns,
		ViewPayroll, ViewPlanning, ViewRanking, ViewStores, ViewNavigationLinks,
	},
	RoleBoard: {
		ViewBoardDashboard, ViewPlanning, ViewRanking, ViewNavigationLinks,
	},
	RoleHR: {
		ViewEmployees, ViewPayroll, ViewNavigationLinks,
	},
}

// PrimaryRole escolhe o papel de maior prioridade entre os papéis do usuário
func PrimaryRole(roles []Role) Role {
	for _, candidate := range rolePriority {
		for _, role := range roles {
			if role == candidate {
				return candidate
			}
		}
	}
	return RoleUndefined
}

// CanAccess indica se o papel tem acesso à tela
func CanAccess(role Role, view View) bool {
	for _, v := range RoleViews[role] {
		if v == view {
			return true
		}
	}
	return false
}

// Navigation monta o menu do papel a partir da tabela de permissões
func Navigation(role Role) []NavigationItem {
	items := make([]NavigationItem, 0, len(RoleViews[role]))
	for _, view := range RoleViews[role] {
		if item, ok := navigationItems[view]; ok {
			items = append(items, item)
		}
	}
	return items
}
