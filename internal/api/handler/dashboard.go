package handler

import (
	"net/http"

	"github.com/vfg2006/store-finance-api/internal/usecases/dashboard"
	"github.com/vfg2006/store-finance-api/internal/usecases/planning"
)

// GetAdminDashboard retorna o painel macro da empresa no mês
func GetAdminDashboard(service dashboard.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		result, err := service.Admin(r.Context(), p, r.URL.Query().Get("month"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao carregar painel macro")
			return
		}
		writeOK(w, result)
	}
}

// GetStoreDashboard retorna o painel do dia da loja com o histórico de days dias
func GetStoreDashboard(service dashboard.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}
		days, ok := queryInt(w, r, "days")
		if !ok {
			return
		}

		result, err := service.Store(r.Context(), p, r.URL.Query().Get("store_id"), days)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao carregar painel da loja")
			return
		}
		writeOK(w, result)
	}
}

func GetBoardDashboard(service dashboard.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}
		year, ok := queryInt(w, r, "year")
		if !ok {
			return
		}

		result, err := service.Board(r.Context(), p, year)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao carregar painel da diretoria")
			return
		}
		writeOK(w, result)
	}
}

// GetPlanning retorna o planejamento de 12 meses, opcionalmente filtrado por loja
func GetPlanning(service planning.PlanningService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}
		year, ok := queryInt(w, r, "year")
		if !ok {
			return
		}

		result, err := service.Planning(r.Context(), p, year, r.URL.Query().Get("store"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao carregar planejamento")
			return
		}
		writeOK(w, result)
	}
}
