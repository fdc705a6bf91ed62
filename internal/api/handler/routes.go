package handler

import (
	"net/http"

	"github.com/salonops/salon-manager-api/internal/api/handler/router"
	"github.com/salonops/salon-manager-api/internal/usecases/costing"
	"github.com/salonops/salon-manager-api/internal/usecases/detecting"
	"github.com/salonops/salon-manager-api/internal/usecases/importing"
	"github.com/salonops/salon-manager-api/internal/usecases/reporting"
	"github.com/salonops/salon-manager-api/internal/usecases/revenue"
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

func Sessions(service revenue.RevenueService, importService importing.ImportService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sessions",
			Method:  http.MethodPost,
			Handler: CreateSession(service),
		},
		{
			Path:    "/v1/sessions",
			Method:  http.MethodGet,
			Handler: ListSessions(service),
		},
		{
			Path:    "/v1/sessions/validate",
			Method:  http.MethodPost,
			Handler: ValidateSessionData(service),
		},
		{
			Path:    "/v1/sessions/bulk-import",
			Method:  http.MethodPost,
			Handler: BulkImportSessions(importService),
		},
		{
			Path:    "/v1/sessions/:id",
			Method:  http.MethodGet,
			Handler: GetSession(service),
		},
		{
			Path:    "/v1/sessions/:id",
			Method:  http.MethodPut,
			Handler: UpdateSession(service),
		},
	}
}

func Costs(service costing.CostService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/costs",
			Method:  http.MethodPost,
			Handler: CreateCostEntry(service),
		},
		{
			Path:    "/v1/costs",
			Method:  http.MethodGet,
			Handler: ListCostEntries(service),
		},
		{
			Path:    "/v1/costs/validate",
			Method:  http.MethodPost,
			Handler: ValidateCostData(service),
		},
		{
			Path:    "/v1/costs/:id",
			Method:  http.MethodGet,
			Handler: GetCostEntry(service),
		},
		{
			Path:    "/v1/costs/:id",
			Method:  http.MethodPut,
			Handler: UpdateCostEntry(service),
		},
		{
			Path:    "/v1/costs/:id",
			Method:  http.MethodDelete,
			Handler: DeleteCostEntry(service),
		},
	}
}

func Exceptions(service detecting.ExceptionService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/exceptions",
			Method:  http.MethodGet,
			Handler: ListExceptions(service),
		},
		{
			Path:    "/v1/exceptions/stats",
			Method:  http.MethodGet,
			Handler: ExceptionStats(service),
		},
		{
			Path:    "/v1/exceptions/:id/resolve",
			Method:  http.MethodPost,
			Handler: ResolveException(service),
		},
	}
}

func Reports(service reporting.ReportService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/daily",
			Method:  http.MethodGet,
			Handler: GetDailyReport(service),
		},
		{
			Path:    "/v1/reports/summary",
			Method:  http.MethodGet,
			Handler: GetReportSummary(service),
		},
		{
			Path:    "/v1/reports/export",
			Method:  http.MethodGet,
			Handler: ExportReport(service),
		},
		{
			Path:    "/v1/reports/daily-summaries",
			Method:  http.MethodGet,
			Handler: ListDailySummaries(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
