package handler

import (
	"net/http"

	"github.com/vfg2006/comunica-ads-api/internal/api/handler/router"
	"github.com/vfg2006/comunica-ads-api/internal/usecases/campaigning"
)

func Root() []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: RootHandler(),
		},
	}
}

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Campaigns(service campaigning.CampaignService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaigns(service),
		},
	}
}

func Dashboard(board DashboardBoard) []router.Route {
	return []router.Route{
		{
			Path:    "/api/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(board),
		},
		{
			Path:    "/api/dashboard/export.xlsx",
			Method:  http.MethodGet,
			Handler: ExportDashboard(board),
		},
		{
			Path:    "/dashboard",
			Method:  http.MethodGet,
			Handler: RenderDashboard(board),
		},
	}
}

func Metrics(handler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: handler,
		},
	}
}

// CronJobs usa caminho estático para a execução manual: o httprouter não
// aceita /v1/cron/:type/run ao lado de /v1/cron/status
func CronJobs(job TokenCheckJob) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/token-check/run",
			Method:  http.MethodPost,
			Handler: RunTokenCheck(job),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(job),
		},
	}
}
