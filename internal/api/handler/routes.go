package handler

import (
	"net/http"

	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/api/handler/router"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/scheduler"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/usecases/authenticating"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/usecases/registering"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/usecases/reporting"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/pkg/middleware"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Branches(service registering.Registrar, store BranchLister) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/branches",
			Method:      http.MethodGet,
			Handler:     ListBranches(store),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/branches",
			Method:      http.MethodPost,
			Handler:     RegisterBranch(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/products",
			Method:      http.MethodGet,
			Handler:     ListProducts(store),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Sales(service registering.Registrar) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sales",
			Method:      http.MethodPost,
			Handler:     RecordSale(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			// Any static sibling of :id would conflict in the route tree,
			// so the all-branches report lives under its own prefix.
			Path:        "/v1/reports/all-branches/monthly",
			Method:      http.MethodGet,
			Handler:     GetAllBranchesMonthlySales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/branches/:id/monthly",
			Method:      http.MethodGet,
			Handler:     GetBranchMonthlySales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/products/:id/price",
			Method:      http.MethodGet,
			Handler:     GetProductPriceStats(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/network/weekly",
			Method:      http.MethodGet,
			Handler:     GetNetworkWeeklySales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/network/total",
			Method:      http.MethodGet,
			Handler:     GetNetworkTotalSales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(service *scheduler.DailySummaryService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/daily-summary/run",
			Method:      http.MethodPost,
			Handler:     RunDailySummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
