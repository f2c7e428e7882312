package handler

import (
	"net/http"
	"time"

	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/usecases/reporting"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/pkg/apiErrors"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/pkg/log"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/pkg/utils"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
)

// timeNow is swapped in tests.
var timeNow = time.Now

// ProductPriceStatsResponse rounds the statistics for presentation; the
// engine itself returns unrounded values.
type ProductPriceStatsResponse struct {
	ProductID string  `json:"product_id"`
	Mean      float64 `json:"mean"`
	Max       float64 `json:"max"`
	Min       float64 `json:"min"`
	Median    float64 `json:"median"`
}

func GetBranchMonthlySales(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		branchID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if branchID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Branch ID is required", nil)
			return
		}

		report, err := service.BranchMonthlySales(branchID)
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	})
}

func GetProductPriceStats(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		productID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if productID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Product ID is required", nil)
			return
		}

		report, err := service.ProductPriceStats(productID)
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ProductPriceStatsResponse{
			ProductID: report.ProductID,
			Mean:      utils.RoundWithTwoDecimalPlace(report.Mean),
			Max:       report.Max,
			Min:       report.Min,
			Median:    utils.RoundWithTwoDecimalPlace(report.Median),
		})
	})
}

// GetNetworkWeeklySales reports the Monday-to-Sunday week containing the
// optional ?date= parameter, defaulting to today.
func GetNetworkWeeklySales(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		referenceDate := timeNow()

		if dateParam := r.URL.Query().Get("date"); dateParam != "" {
			parsed, err := reporting.ParseDate(dateParam)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrUnrecognizedDateFormat, err.Error(), nil)
				return
			}
			referenceDate = parsed
		}

		report, err := service.NetworkWeeklySales(referenceDate)
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	})
}

func GetNetworkTotalSales(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		report, err := service.NetworkTotalSales()
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	})
}

func GetAllBranchesMonthlySales(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		report, err := service.AllBranchesMonthlySales()
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	})
}

// writeReportError maps engine failures to API error responses. An empty
// dataset is the expected "no data for this key" answer, never a 500.
func writeReportError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, reporting.ErrEmptyDataset):
		apiErrors.WriteError(w, apiErrors.ErrEmptyDataset, "No sales information is present for this key", nil)
	case errors.Is(err, reporting.ErrUnrecognizedDateFormat):
		apiErrors.WriteError(w, apiErrors.ErrUnrecognizedDateFormat, err.Error(), nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error("error computing report")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error computing report", nil)
	}
}
