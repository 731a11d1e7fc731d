package handler

import (
	"net/http"

	"github.com/vfg2006/store-finance-api/internal/domain"
	"github.com/vfg2006/store-finance-api/internal/usecases/reconciling"
)

func ledgerFilter(w http.ResponseWriter, r *http.Request) (domain.LedgerFilter, bool) {
	start, end, ok := dateRange(w, r)
	if !ok {
		return domain.LedgerFilter{}, false
	}
	q := r.URL.Query()
	return domain.LedgerFilter{
		CompanyID: q.Get("company_id"),
		StoreID:   q.Get("store_id"),
		Status:    domain.LedgerStatus(q.Get("status")),
		StartDate: start,
		EndDate:   end,
	}, true
}

// ListLedger lista contas a pagar (SAIDA) ou a receber (ENTRADA)
func ListLedger(service reconciling.ReconciliationService, direction domain.LedgerDirection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}
		filter, ok := ledgerFilter(w, r)
		if !ok {
			return
		}

		entries, err := service.ListLedger(r.Context(), p, direction, filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar lançamentos")
			return
		}
		writeOK(w, entries)
	}
}

func CreateLedger(service reconciling.ReconciliationService, direction domain.LedgerDirection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		var entry domain.LedgerEntry
		if !decodeBody(w, r, &entry) {
			return
		}
		entry.Direction = direction

		created, err := service.CreateLedger(r.Context(), p, &entry)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar lançamento")
			return
		}
		writeCreated(w, created)
	}
}

func UpdateLedgerStatus(service reconciling.ReconciliationService, direction domain.LedgerDirection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}
		req, ok := decodeStatus(w, r)
		if !ok {
			return
		}

		id := param(r, "id")
		err := service.UpdateLedgerStatus(r.Context(), p, direction, id, domain.LedgerStatus(req.Status))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar status do lançamento")
			return
		}
		writeOK(w, map[string]string{"id": id, "status": req.Status})
	}
}

func DeleteLedger(service reconciling.ReconciliationService, direction domain.LedgerDirection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		id := param(r, "id")
		if err := service.DeleteLedger(r.Context(), p, direction, id); err != nil {
			writeServiceError(w, r, err, "Erro ao excluir lançamento")
			return
		}
		writeOK(w, map[string]string{"id": id})
	}
}

// GetReconciliationTimeline funde contas a pagar e a receber do período
func GetReconciliationTimeline(service reconciling.ReconciliationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}
		filter, ok := ledgerFilter(w, r)
		if !ok {
			return
		}

		timeline, err := service.Timeline(r.Context(), p, filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar conciliação")
			return
		}
		writeOK(w, timeline)
	}
}

func ListStoreReconciliations(service reconciling.ReconciliationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}
		start, end, ok := dateRange(w, r)
		if !ok {
			return
		}

		q := r.URL.Query()
		filter := domain.ReconciliationFilter{
			CompanyID: q.Get("company_id"),
			StoreID:   q.Get("store_id"),
			Status:    domain.ReconciliationStatus(q.Get("status")),
			StartDate: start,
			EndDate:   end,
		}

		recs, err := service.ListReconciliations(r.Context(), p, filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar conferências")
			return
		}
		writeOK(w, recs)
	}
}

func CreateStoreReconciliation(service reconciling.ReconciliationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		var rec domain.StoreReconciliation
		if !decodeBody(w, r, &rec) {
			return
		}

		created, err := service.CreateReconciliation(r.Context(), p, &rec)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar conferência")
			return
		}
		writeCreated(w, created)
	}
}

func UpdateStoreReconciliationStatus(service reconciling.ReconciliationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}
		req, ok := decodeStatus(w, r)
		if !ok {
			return
		}

		id := param(r, "id")
		err := service.UpdateReconciliationStatus(r.Context(), p, id, domain.ReconciliationStatus(req.Status), req.Notes)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar conferência")
			return
		}
		writeOK(w, map[string]string{"id": id, "status": req.Status})
	}
}
