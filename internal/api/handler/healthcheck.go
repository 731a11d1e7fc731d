package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/store-finance-api/pkg/apiErrors"
	"github.com/vfg2006/store-finance-api/pkg/log"
)

const healthcheckTimeout = 2 * time.Second

// Pinger verifica a disponibilidade do banco de dados
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthcheckHandler responde com o horário do servidor e o estado do banco.
// Sem banco configurado apenas confirma que o processo está no ar.
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		}

		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("Healthcheck: banco de dados indisponível")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Banco de dados indisponível", nil)
				return
			}
			status["database"] = "ok"
		}

		apiErrors.WriteResult(w, http.StatusOK, status)
	})
}
