package handler

import (
	"net/http"

	"github.com/vfg2006/orders-backoffice-api/internal/api/handler/router"
	"github.com/vfg2006/orders-backoffice-api/internal/usecases/cataloging"
	"github.com/vfg2006/orders-backoffice-api/internal/usecases/exporting"
	"github.com/vfg2006/orders-backoffice-api/internal/usecases/importing"
	"github.com/vfg2006/orders-backoffice-api/internal/usecases/ordering"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Orders(service ordering.OrderService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/orders",
			Method:  http.MethodGet,
			Handler: ListOrders(service),
		},
		{
			Path:    "/v1/orders",
			Method:  http.MethodPost,
			Handler: CreateOrder(service),
		},
		{
			Path:    "/v1/orders/:id",
			Method:  http.MethodGet,
			Handler: GetOrder(service),
		},
		{
			Path:    "/v1/orders/:id",
			Method:  http.MethodPut,
			Handler: UpdateOrder(service),
		},
		{
			Path:    "/v1/orders/:id",
			Method:  http.MethodDelete,
			Handler: DeleteOrder(service),
		},
		{
			Path:    "/v1/orders/:id/invoices/:party/:kind",
			Method:  http.MethodPut,
			Handler: UploadInvoice(service),
		},
		{
			Path:    "/v1/orders/bulk/complete",
			Method:  http.MethodPost,
			Handler: BulkCompleteOrders(service),
		},
		{
			Path:    "/v1/orders/bulk/delete",
			Method:  http.MethodPost,
			Handler: BulkDeleteOrders(service),
		},
		{
			Path:    "/v1/stats/orders",
			Method:  http.MethodGet,
			Handler: GetOrderStats(service),
		},
	}
}

func OrderExport(exporter exporting.OrderExporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/exports/orders",
			Method:  http.MethodGet,
			Handler: ExportOrders(exporter),
		},
	}
}

func Sites(service cataloging.SiteService, importer importing.SiteImporter, maxFileSize int64) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sites",
			Method:  http.MethodGet,
			Handler: ListSites(service),
		},
		{
			Path:    "/v1/sites",
			Method:  http.MethodPost,
			Handler: CreateSite(service),
		},
		{
			Path:    "/v1/sites/:id",
			Method:  http.MethodGet,
			Handler: GetSite(service),
		},
		{
			Path:    "/v1/sites/:id",
			Method:  http.MethodPut,
			Handler: UpdateSite(service),
		},
		{
			Path:    "/v1/sites/:id",
			Method:  http.MethodDelete,
			Handler: DeleteSite(service),
		},
		{
			Path:    "/v1/sites/bulk/delete",
			Method:  http.MethodPost,
			Handler: BulkDeleteSites(service),
		},
		{
			Path:    "/v1/sites/import",
			Method:  http.MethodPost,
			Handler: ImportSites(importer, maxFileSize),
		},
	}
}

func OrderTypes(service cataloging.OrderTypeService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/order-types",
			Method:  http.MethodGet,
			Handler: ListOrderTypes(service),
		},
		{
			Path:    "/v1/order-types",
			Method:  http.MethodPost,
			Handler: CreateOrderType(service),
		},
		{
			Path:    "/v1/order-types/:id",
			Method:  http.MethodGet,
			Handler: GetOrderType(service),
		},
		{
			Path:    "/v1/order-types/:id",
			Method:  http.MethodPut,
			Handler: UpdateOrderType(service),
		},
		{
			Path:    "/v1/order-types/:id",
			Method:  http.MethodDelete,
			Handler: DeleteOrderType(service),
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
