package handler

import (
	"net/http"

	"github.com/vfg2006/store-finance-api/internal/domain"
	"github.com/vfg2006/store-finance-api/internal/usecases/closing"
	"github.com/vfg2006/store-finance-api/pkg/log"
)

// closingFilter monta o filtro de fechamentos a partir da query string
func closingFilter(w http.ResponseWriter, r *http.Request) (domain.CashClosingFilter, bool) {
	start, end, ok := dateRange(w, r)
	if !ok {
		return domain.CashClosingFilter{}, false
	}
	return domain.CashClosingFilter{
		CompanyID: r.URL.Query().Get("company_id"),
		StoreID:   r.URL.Query().Get("store_id"),
		StartDate: start,
		EndDate:   end,
	}, true
}

func ListCashClosings(service closing.CashClosingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}
		filter, ok := closingFilter(w, r)
		if !ok {
			return
		}

		closings, err := service.List(r.Context(), p, filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar fechamentos de caixa")
			return
		}
		writeOK(w, closings)
	}
}

// GetCashClosingSummary retorna os totais por loja e gerais dos fechamentos filtrados
func GetCashClosingSummary(service closing.CashClosingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}
		filter, ok := closingFilter(w, r)
		if !ok {
			return
		}

		summary, err := service.Summary(r.Context(), p, filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao resumir fechamentos de caixa")
			return
		}
		writeOK(w, summary)
	}
}

func CreateCashClosing(service closing.CashClosingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - CreateCashClosing")

		p, ok := principal(w, r)
		if !ok {
			return
		}

		var c domain.CashClosing
		if !decodeBody(w, r, &c) {
			return
		}

		created, err := service.Create(r.Context(), p, &c)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar fechamento de caixa")
			return
		}
		writeCreated(w, created)
	}
}

func UpdateCashClosing(service closing.CashClosingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		var c domain.CashClosing
		if !decodeBody(w, r, &c) {
			return
		}
		c.ID = param(r, "id")

		updated, err := service.Update(r.Context(), p, &c)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar fechamento de caixa")
			return
		}
		writeOK(w, updated)
	}
}

func DeleteCashClosing(service closing.CashClosingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		id := param(r, "id")
		if err := service.Delete(r.Context(), p, id); err != nil {
			writeServiceError(w, r, err, "Erro ao excluir fechamento de caixa")
			return
		}
		writeOK(w, map[string]string{"id": id})
	}
}
