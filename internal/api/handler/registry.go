package handler

import (
	"net/http"

	"github.com/vfg2006/store-finance-api/internal/domain"
	"github.com/vfg2006/store-finance-api/internal/usecases/registry"
)

func ListCompanies(service registry.CompanyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companies, err := service.List(r.Context(), queryBool(r, "active"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar empresas")
			return
		}
		writeOK(w, companies)
	}
}

func CreateCompany(service registry.CompanyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var company domain.Company
		if !decodeBody(w, r, &company) {
			return
		}

		created, err := service.Create(r.Context(), &company)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar empresa")
			return
		}
		writeCreated(w, created)
	}
}

func SetCompanyActive(service registry.CompanyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		active, ok := decodeActive(w, r)
		if !ok {
			return
		}

		id := param(r, "id")
		if err := service.SetActive(r.Context(), id, active); err != nil {
			writeServiceError(w, r, err, "Erro ao alterar empresa")
			return
		}
		writeOK(w, map[string]any{"id": id, "active": active})
	}
}

func ListStores(service registry.StoreService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		stores, err := service.List(r.Context(), p, r.URL.Query().Get("company_id"), queryBool(r, "active"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar lojas")
			return
		}
		writeOK(w, stores)
	}
}

func CreateStore(service registry.StoreService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		var store domain.Store
		if !decodeBody(w, r, &store) {
			return
		}

		created, err := service.Create(r.Context(), p, &store)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar loja")
			return
		}
		writeCreated(w, created)
	}
}

func SetStoreActive(service registry.StoreService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}
		active, ok := decodeActive(w, r)
		if !ok {
			return
		}

		id := param(r, "id")
		if err := service.SetActive(r.Context(), p, id, active); err != nil {
			writeServiceError(w, r, err, "Erro ao alterar loja")
			return
		}
		writeOK(w, map[string]any{"id": id, "active": active})
	}
}

func ListEmployees(service registry.EmployeeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		employees, err := service.List(r.Context(), p, r.URL.Query().Get("store_id"), queryBool(r, "active"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar funcionários")
			return
		}
		writeOK(w, employees)
	}
}

func CreateEmployee(service registry.EmployeeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		var employee domain.Employee
		if !decodeBody(w, r, &employee) {
			return
		}

		created, err := service.Create(r.Context(), p, &employee)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao cadastrar funcionário")
			return
		}
		writeCreated(w, created)
	}
}

func SetEmployeeActive(service registry.EmployeeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}
		active, ok := decodeActive(w, r)
		if !ok {
			return
		}

		id := param(r, "id")
		if err := service.SetActive(r.Context(), p, id, active); err != nil {
			writeServiceError(w, r, err, "Erro ao alterar funcionário")
			return
		}
		writeOK(w, map[string]any{"id": id, "active": active})
	}
}

// GetPayroll retorna o resumo da folha dos funcionários ativos
func GetPayroll(service registry.EmployeeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		summary, err := service.Payroll(r.Context(), p, r.URL.Query().Get("store_id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular folha")
			return
		}
		writeOK(w, summary)
	}
}

func ListMaintenance(service registry.MaintenanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		q := r.URL.Query()
		tickets, err := service.List(r.Context(), p, q.Get("store_id"), domain.MaintenanceStatus(q.Get("status")))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar manutenções")
			return
		}
		writeOK(w, tickets)
	}
}

func CreateMaintenance(service registry.MaintenanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		var ticket domain.MaintenanceTicket
		if !decodeBody(w, r, &ticket) {
			return
		}

		created, err := service.Create(r.Context(), p, &ticket)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao abrir manutenção")
			return
		}
		writeCreated(w, created)
	}
}

func UpdateMaintenanceStatus(service registry.MaintenanceService) http.HandlerFunc {
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
		if err := service.UpdateStatus(r.Context(), p, id, domain.MaintenanceStatus(req.Status)); err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar manutenção")
			return
		}
		writeOK(w, map[string]string{"id": id, "status": req.Status})
	}
}
