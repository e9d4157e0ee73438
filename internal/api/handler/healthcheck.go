package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Pinger é implementado pela conexão com o banco
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthcheckHandler responde 503 apenas quando o banco está habilitado e não responde
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := http.StatusOK
		body := map[string]any{
			"status":   "ok",
			"time":     time.Now().Format(time.RFC3339),
			"database": "disabled",
		}

		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			body["database"] = "ok"
			if err := db.Ping(ctx); err != nil {
				logrus.WithError(err).Warn("error responding to healthcheck")
				status = http.StatusServiceUnavailable
				body["status"] = "degraded"
				body["database"] = "error"
			}
		}

		writeJSON(w, status, body)
	})
}
