package handler

import (
	"net/http"

	"github.com/vfg2006/store-finance-api/internal/domain"
	"github.com/vfg2006/store-finance-api/internal/usecases/auditing"
)

// ListAudits lista as ocorrências; status aceita todos, aberto ou concluido
func ListAudits(service auditing.AuditService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		q := r.URL.Query()
		audits, err := service.List(r.Context(), p, q.Get("store_id"), q.Get("status"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar auditorias")
			return
		}
		writeOK(w, audits)
	}
}

func GetAuditSummary(service auditing.AuditService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		summary, err := service.Summary(r.Context(), p, r.URL.Query().Get("store_id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao resumir auditorias")
			return
		}
		writeOK(w, summary)
	}
}

func CreateAudit(service auditing.AuditService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		var audit domain.AuditOccurrence
		if !decodeBody(w, r, &audit) {
			return
		}

		created, err := service.Create(r.Context(), p, &audit)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao registrar auditoria")
			return
		}
		writeCreated(w, created)
	}
}

func UpdateAuditStatus(service auditing.AuditService) http.HandlerFunc {
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
		if err := service.UpdateStatus(r.Context(), p, id, domain.AuditStatus(req.Status)); err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar auditoria")
			return
		}
		writeOK(w, map[string]string{"id": id, "status": req.Status})
	}
}
