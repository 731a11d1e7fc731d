package handler

import (
	"net/http"

	"github.com/vfg2006/store-finance-api/internal/domain"
	"github.com/vfg2006/store-finance-api/internal/usecases/attainment"
)

func ListGoals(service attainment.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		q := r.URL.Query()
		goals, err := service.ListMonthly(r.Context(), p, q.Get("store_id"), q.Get("month"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar metas")
			return
		}
		writeOK(w, goals)
	}
}

// SaveGoal cria ou atualiza a meta mensal da loja no mês
func SaveGoal(service attainment.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		var goal domain.Goal
		if !decodeBody(w, r, &goal) {
			return
		}

		saved, err := service.SaveMonthly(r.Context(), p, &goal)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao salvar meta")
			return
		}
		writeOK(w, saved)
	}
}

func DeleteGoal(service attainment.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		id := param(r, "id")
		if err := service.DeleteMonthly(r.Context(), p, id); err != nil {
			writeServiceError(w, r, err, "Erro ao excluir meta")
			return
		}
		writeOK(w, map[string]string{"id": id})
	}
}

// GetGoalAttainment retorna o atingimento das metas mensais por loja
func GetGoalAttainment(service attainment.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		q := r.URL.Query()
		result, err := service.MonthlyAttainment(r.Context(), p, q.Get("store_id"), q.Get("month"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular atingimento das metas")
			return
		}
		writeOK(w, result)
	}
}

func ListWeeklyGoals(service attainment.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		q := r.URL.Query()
		goals, err := service.ListWeekly(r.Context(), p, q.Get("store_id"), q.Get("month"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar metas semanais")
			return
		}
		writeOK(w, goals)
	}
}

func SaveWeeklyGoal(service attainment.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		var goal domain.WeeklyGoal
		if !decodeBody(w, r, &goal) {
			return
		}

		saved, err := service.SaveWeekly(r.Context(), p, &goal)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao salvar meta semanal")
			return
		}
		writeOK(w, saved)
	}
}

func DeleteWeeklyGoal(service attainment.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		id := param(r, "id")
		if err := service.DeleteWeekly(r.Context(), p, id); err != nil {
			writeServiceError(w, r, err, "Erro ao excluir meta semanal")
			return
		}
		writeOK(w, map[string]string{"id": id})
	}
}

// GetWeeklyProgress retorna o progresso real por semana e a estimativa de distribuição
func GetWeeklyProgress(service attainment.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		q := r.URL.Query()
		result, err := service.WeeklyAttainment(r.Context(), p, q.Get("store_id"), q.Get("month"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular progresso semanal")
			return
		}
		writeOK(w, result)
	}
}
