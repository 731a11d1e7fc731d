package handler

import (
	"net/http"

	"github.com/vfg2006/store-finance-api/internal/domain"
	"github.com/vfg2006/store-finance-api/internal/usecases/registry"
)

// ListUsers lista os perfis da empresa
func ListUsers(service registry.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		users, err := service.List(r.Context(), p, r.URL.Query().Get("company_id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar usuários")
			return
		}
		writeOK(w, users)
	}
}

// UpdateUserLink vincula o usuário a uma empresa e loja
func UpdateUserLink(service registry.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		var req domain.UpdateProfileRequest
		if !decodeBody(w, r, &req) {
			return
		}
		req.UserID = param(r, "id")

		if err := service.UpdateLink(r.Context(), p, &req); err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar vínculo do usuário")
			return
		}
		writeOK(w, req)
	}
}

func SetUserActive(service registry.UserService) http.HandlerFunc {
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
			writeServiceError(w, r, err, "Erro ao alterar usuário")
			return
		}
		writeOK(w, map[string]any{"id": id, "active": active})
	}
}
