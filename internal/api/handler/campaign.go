package handler

import (
	"net/http"

	"github.com/vfg2006/store-finance-api/internal/domain"
	"github.com/vfg2006/store-finance-api/internal/usecases/campaign"
	"github.com/vfg2006/store-finance-api/pkg/apiErrors"
)

func ListCampaigns(service campaign.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		campaigns, err := service.List(r.Context(), p, r.URL.Query().Get("store_id"), queryBool(r, "active"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar campanhas")
			return
		}
		writeOK(w, campaigns)
	}
}

func CreateCampaign(service campaign.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		var c domain.Campaign
		if !decodeBody(w, r, &c) {
			return
		}

		created, err := service.Create(r.Context(), p, &c)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar campanha")
			return
		}
		writeCreated(w, created)
	}
}

type progressRequest struct {
	Progress *int `json:"progress"`
}

func UpdateCampaignProgress(service campaign.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		var req progressRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Progress == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Progresso é obrigatório", nil)
			return
		}

		updated, err := service.UpdateProgress(r.Context(), p, param(r, "id"), *req.Progress)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar progresso da campanha")
			return
		}
		writeOK(w, updated)
	}
}

func SetCampaignActive(service campaign.CampaignService) http.HandlerFunc {
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
			writeServiceError(w, r, err, "Erro ao alterar campanha")
			return
		}
		writeOK(w, map[string]any{"id": id, "active": active})
	}
}
