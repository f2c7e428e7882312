package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/domain"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/usecases/reporting"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/usecases/reporting/mocks"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func serveReportRoute(t *testing.T, method, pattern string, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	router := httprouter.New()
	router.Handler(method, pattern, h)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(method, target, nil))
	return recorder
}

func TestGetBranchMonthlySales(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)

	reporter.EXPECT().BranchMonthlySales("1").Return(&domain.BranchMonthlyReport{
		BranchID: "1",
		Samples:  []int64{100, 50},
	}, nil)

	recorder := serveReportRoute(t, http.MethodGet, "/v1/reports/branches/:id/monthly",
		GetBranchMonthlySales(reporter), "/v1/reports/branches/1/monthly")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"branch_id":"1","samples":[100,50]}`, recorder.Body.String())
}

func TestGetBranchMonthlySalesEmptyDataset(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)

	reporter.EXPECT().BranchMonthlySales("99").Return(nil, reporting.ErrEmptyDataset)

	recorder := serveReportRoute(t, http.MethodGet, "/v1/reports/branches/:id/monthly",
		GetBranchMonthlySales(reporter), "/v1/reports/branches/99/monthly")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "RPT_001")
}

func TestGetProductPriceStatsRoundsForPresentation(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)

	reporter.EXPECT().ProductPriceStats("10").Return(&domain.ProductPriceReport{
		ProductID: "10",
		Mean:      166.66666666666666,
		Max:       300,
		Min:       50,
		Median:    150,
	}, nil)

	recorder := serveReportRoute(t, http.MethodGet, "/v1/reports/products/:id/price",
		GetProductPriceStats(reporter), "/v1/reports/products/10/price")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"product_id":"10","mean":166.67,"max":300,"min":50,"median":150}`, recorder.Body.String())
}

func TestGetNetworkWeeklySalesWithDateParam(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)

	wednesday := time.Date(2024, time.January, 17, 0, 0, 0, 0, time.UTC)
	reporter.EXPECT().NetworkWeeklySales(wednesday).Return(&domain.NetworkWeeklyReport{
		WeekStart:     time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		WeekEnd:       time.Date(2024, time.January, 21, 0, 0, 0, 0, time.UTC),
		Total:         150,
		AveragePerDay: 50,
	}, nil)

	recorder := serveReportRoute(t, http.MethodGet, "/v1/reports/network/weekly",
		GetNetworkWeeklySales(reporter), "/v1/reports/network/weekly?date=2024-01-17")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"total":150`)
	assert.Contains(t, recorder.Body.String(), `"average_per_day":50`)
}

func TestGetNetworkWeeklySalesDefaultsToToday(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)

	fixed := time.Date(2024, time.March, 6, 10, 30, 0, 0, time.UTC)
	originalNow := timeNow
	timeNow = func() time.Time { return fixed }
	defer func() { timeNow = originalNow }()

	reporter.EXPECT().NetworkWeeklySales(fixed).Return(&domain.NetworkWeeklyReport{}, nil)

	recorder := serveReportRoute(t, http.MethodGet, "/v1/reports/network/weekly",
		GetNetworkWeeklySales(reporter), "/v1/reports/network/weekly")

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestGetNetworkWeeklySalesBadDateParam(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)

	recorder := serveReportRoute(t, http.MethodGet, "/v1/reports/network/weekly",
		GetNetworkWeeklySales(reporter), "/v1/reports/network/weekly?date=17-01-2024")

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "RPT_002")
}

func TestGetNetworkWeeklySalesUnparseableLogDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)

	reporter.EXPECT().NetworkWeeklySales(gomock.Any()).Return(nil, reporting.ErrUnrecognizedDateFormat)

	recorder := serveReportRoute(t, http.MethodGet, "/v1/reports/network/weekly",
		GetNetworkWeeklySales(reporter), "/v1/reports/network/weekly?date=2024-01-17")

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
}

func TestGetNetworkTotalSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)

	reporter.EXPECT().NetworkTotalSales().Return(&domain.NetworkTotalReport{Total: 350}, nil)

	recorder := serveReportRoute(t, http.MethodGet, "/v1/reports/network/total",
		GetNetworkTotalSales(reporter), "/v1/reports/network/total")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"total":350}`, recorder.Body.String())
}

func TestGetAllBranchesMonthlySales(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)

	reporter.EXPECT().AllBranchesMonthlySales().Return(&domain.AllBranchesMonthlyReport{
		Totals: map[string]int64{"1": 150, "2": 0},
	}, nil)

	recorder := serveReportRoute(t, http.MethodGet, "/v1/reports/all-branches/monthly",
		GetAllBranchesMonthlySales(reporter), "/v1/reports/all-branches/monthly")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"totals":{"1":150,"2":0}}`, recorder.Body.String())
}
