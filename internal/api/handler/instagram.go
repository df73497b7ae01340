package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/orbicity/hotel-ops-api/internal/domain"
	"github.com/orbicity/hotel-ops-api/internal/usecases/instagram"
	"github.com/orbicity/hotel-ops-api/pkg/apiErrors"
	"github.com/orbicity/hotel-ops-api/pkg/log"
	"github.com/orbicity/hotel-ops-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func GetInstagramMetrics(service instagram.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result := service.GetMetrics(r.Context())

		log.ForContext(r.Context()).WithFields(log.Fields{
			"source": result.Source,
			"reason": result.Reason,
		}).Debug("instagram: metrics served")

		writeSourced(w, r, result.Source, result)
	})
}

func GetInstagramPosts(service instagram.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, err := parseLimit(r.URL.Query().Get("limit"))
		if err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"limit": r.URL.Query().Get("limit"),
			}).Warn("instagram: invalid limit parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "O parâmetro limit deve ser um inteiro positivo", nil)
			return
		}

		result := service.GetPosts(r.Context(), limit)

		log.ForContext(r.Context()).WithFields(log.Fields{
			"source": result.Source,
			"reason": result.Reason,
			"count":  len(result.Data),
		}).Debug("instagram: posts served")

		writeSourced(w, r, result.Source, result)
	})
}

func GetInstagramDashboard(service instagram.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result := service.GetDashboard(r.Context())

		source := domain.SourceLive
		if result.Metrics.Source != domain.SourceLive || result.Posts.Source != domain.SourceLive {
			source = domain.SourceFallback
		}

		writeSourced(w, r, source, result)
	})
}

func GetInstagramStatus(service instagram.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.Status(r.Context()))
	})
}

// parseLimit aceita ausência (0, tamanho padrão) ou um inteiro não negativo
func parseLimit(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if limit < 0 {
		return 0, strconv.ErrRange
	}

	return limit, nil
}

func writeSourced(w http.ResponseWriter, r *http.Request, source domain.DataSource, body any) {
	w.Header().Set(middleware.DataSourceHeader, string(source))
	writeJSON(w, r, http.StatusOK, body)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("http: failed to encode response")
	}
}
