package handler

import (
	"net/http"
	"time"

	"github.com/orbicity/hotel-ops-api/internal/config"
	"github.com/orbicity/hotel-ops-api/pkg/apiErrors"
	"github.com/orbicity/hotel-ops-api/pkg/log"
)

// HealthcheckHandler responde à sonda de liveness. Não toca na API do Rows:
// informa apenas se a origem do Instagram está configurada.
func HealthcheckHandler(cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, configured := cfg.Rows.Source()

		writeJSON(w, r, http.StatusOK, map[string]any{
			"status":                 "ok",
			"time":                   time.Now().UTC(),
			"instagram_configured":   configured,
			"authentication_enabled": cfg.Auth.Secret != "",
		})
	})
}

// NotFoundHandler usa o envelope padrão para rotas inexistentes
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).WithField("path", r.URL.Path).Debug("http: route not found")
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Rota não encontrada", nil)
	})
}

// MethodNotAllowedHandler usa o envelope padrão para métodos não aceitos
func MethodNotAllowedHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não permitido", nil)
	})
}
