package handler

import (
	"net/http"

	"github.com/vfg2006/store-finance-api/internal/usecases/ranking"
)

// GetStoreRanking retorna o ranking das lojas calculado no momento para o mês
func GetStoreRanking(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		result, err := service.GetStoreRanking(r.Context(), p, r.URL.Query().Get("month"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar ranking das lojas")
			return
		}
		writeOK(w, result)
	}
}

// GetStoreRankingSnapshot retorna o último ranking gravado pelo agendador
func GetStoreRankingSnapshot(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		result, err := service.GetSnapshot(r.Context(), p, r.URL.Query().Get("month"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar ranking gravado")
			return
		}
		writeOK(w, result)
	}
}
