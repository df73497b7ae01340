package handler

import (
	"net/http"

	"github.com/orbicity/hotel-ops-api/internal/api/handler/router"
	"github.com/orbicity/hotel-ops-api/internal/config"
	"github.com/orbicity/hotel-ops-api/internal/usecases/authenticating"
	"github.com/orbicity/hotel-ops-api/internal/usecases/instagram"
	"github.com/orbicity/hotel-ops-api/pkg/middleware"
)

func Healthcheck(cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(cfg),
		},
	}
}

func Instagram(service instagram.Insighter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/instagram/metrics",
			Method:      http.MethodGet,
			Handler:     GetInstagramMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
		{
			Path:        "/v1/instagram/posts",
			Method:      http.MethodGet,
			Handler:     GetInstagramPosts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
		{
			Path:        "/v1/instagram/dashboard",
			Method:      http.MethodGet,
			Handler:     GetInstagramDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
		{
			Path:        "/v1/instagram/status",
			Method:      http.MethodGet,
			Handler:     GetInstagramStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
	}
}

func CronJobs(probe ProbeRunner) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/probe/run",
			Method:      http.MethodPost,
			Handler:     RunSourceProbe(probe),
			Middlewares: []func(http.Handler) http.Handler{middleware.RoleMiddleware([]string{authenticating.RoleService})},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(probe),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
	}
}
