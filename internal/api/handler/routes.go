package handler

import (
	"net/http"

	"github.com/allansduarte/placas-mundi-vendas/internal/api/handler/router"
	"github.com/allansduarte/placas-mundi-vendas/internal/usecases/authenticating"
	"github.com/allansduarte/placas-mundi-vendas/internal/usecases/dashboarding"
	"github.com/allansduarte/placas-mundi-vendas/pkg/metrics"
	"github.com/allansduarte/placas-mundi-vendas/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Uploads(service dashboarding.DashboardService, maxBytes int64) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/uploads",
			Method:  http.MethodPost,
			Handler: UploadDashboard(service, maxBytes),
		},
	}
}

// Sessions exige o token emitido no upload e que ele pertença à sessão da URL
func Sessions(service dashboarding.DashboardService, authenticator authenticating.Authenticator) []router.Route {
	sessionMiddlewares := []func(http.Handler) http.Handler{
		middleware.SessionAuth(authenticator),
		middleware.SessionOwner(),
	}

	return []router.Route{
		{
			Path:        "/v1/sessions/:id/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: sessionMiddlewares,
		},
		{
			Path:        "/v1/sessions/:id/records",
			Method:      http.MethodGet,
			Handler:     GetRecords(service),
			Middlewares: sessionMiddlewares,
		},
		{
			Path:        "/v1/sessions/:id/aggregates/:grouping",
			Method:      http.MethodGet,
			Handler:     GetAggregate(service),
			Middlewares: sessionMiddlewares,
		},
		{
			Path:        "/v1/sessions/:id/consultants",
			Method:      http.MethodGet,
			Handler:     GetConsultants(service),
			Middlewares: sessionMiddlewares,
		},
		{
			Path:        "/v1/sessions/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteSession(service),
			Middlewares: sessionMiddlewares,
		},
	}
}

func CronJobs(services CronJobServices, adminKey string) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(adminKey)},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(adminKey)},
		},
	}
}

func Metrics(m *metrics.Metrics) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: m.Handler(),
		},
	}
}
