package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/orders-backoffice-api/pkg/apiErrors"
	"github.com/vfg2006/orders-backoffice-api/pkg/log"
)

// Pinger verifica se uma dependência está acessível
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthcheckHandler responde com o horário atual e o estado do banco de dados
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := db.PingContext(ctx); err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("Banco de dados indisponível no healthcheck")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Banco de dados indisponível", nil)
				return
			}
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
}
