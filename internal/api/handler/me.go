package handler

import (
	"net/http"

	"github.com/vfg2006/store-finance-api/internal/domain"
)

type meResponse struct {
	*domain.Principal
	Views []domain.View `json:"views"`
}

// GetMe retorna o usuário autenticado com as telas liberadas para o seu papel
func GetMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		views := domain.RoleViews[p.PrimaryRole]
		if views == nil {
			views = []domain.View{}
		}
		writeOK(w, meResponse{Principal: p, Views: views})
	}
}

// GetNavigation retorna o menu do papel principal do usuário
func GetNavigation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		writeOK(w, domain.Navigation(p.PrimaryRole))
	}
}
