package reporting

import (
	"testing"
	"time"

	"github.com/Kusalthilina2/Food-City-Supermarket-System/infrastructure/recordstore/mocks"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_BranchMonthlySales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockReader(ctrl)
	service := NewService(mockStore)

	sales := []domain.SaleRecord{
		{BranchID: "1", ProductID: "P1", Amount: 100, Date: "2024-01-05"},
		{BranchID: "2", ProductID: "P1", Amount: 999, Date: "2024-01-05"},
		{BranchID: "1", ProductID: "P2", Amount: 50, Date: "2024-01-06"},
	}

	t.Run("collects all amounts for the branch", func(t *testing.T) {
		mockStore.EXPECT().ListSales().Return(sales, nil)

		report, err := service.BranchMonthlySales("1")
		require.NoError(t, err)

		assert.Equal(t, "1", report.BranchID)
		assert.Equal(t, []int64{100, 50}, report.Samples)
	})

	t.Run("no sales for the branch", func(t *testing.T) {
		mockStore.EXPECT().ListSales().Return(sales, nil)

		report, err := service.BranchMonthlySales("nonexistent")
		assert.ErrorIs(t, err, ErrEmptyDataset)
		assert.Nil(t, report)
	})
}

func TestService_ProductPriceStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockReader(ctrl)
	service := NewService(mockStore)

	t.Run("single sale in the slash date form", func(t *testing.T) {
		mockStore.EXPECT().ListSales().Return([]domain.SaleRecord{
			{BranchID: "1", ProductID: "1", Amount: 300, Date: "01/05/2024"},
		}, nil)

		report, err := service.ProductPriceStats("1")
		require.NoError(t, err)

		assert.Equal(t, 300.0, report.Mean)
		assert.Equal(t, 300.0, report.Max)
		assert.Equal(t, 300.0, report.Min)
		assert.Equal(t, 300.0, report.Median)
	})

	t.Run("several sales", func(t *testing.T) {
		mockStore.EXPECT().ListSales().Return([]domain.SaleRecord{
			{BranchID: "1", ProductID: "P9", Amount: 100, Date: "2024-01-05"},
			{BranchID: "2", ProductID: "P9", Amount: 200, Date: "2024-01-06"},
			{BranchID: "1", ProductID: "P9", Amount: 600, Date: "2024-01-07"},
			{BranchID: "1", ProductID: "other", Amount: 9999, Date: "2024-01-07"},
		}, nil)

		report, err := service.ProductPriceStats("P9")
		require.NoError(t, err)

		assert.Equal(t, 300.0, report.Mean)
		assert.Equal(t, 600.0, report.Max)
		assert.Equal(t, 100.0, report.Min)
		assert.Equal(t, 200.0, report.Median)
	})

	t.Run("unknown product", func(t *testing.T) {
		mockStore.EXPECT().ListSales().Return([]domain.SaleRecord{
			{BranchID: "1", ProductID: "1", Amount: 300, Date: "2024-01-05"},
		}, nil)

		report, err := service.ProductPriceStats("nonexistent")
		assert.ErrorIs(t, err, ErrEmptyDataset)
		assert.Nil(t, report)
	})
}

func TestService_NetworkWeeklySales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockReader(ctrl)
	service := NewService(mockStore)

	// Wednesday; the surrounding week is Mon 2024-01-15 .. Sun 2024-01-21.
	wednesday := time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC)

	t.Run("sums only the in-window amounts", func(t *testing.T) {
		mockStore.EXPECT().ListSales().Return([]domain.SaleRecord{
			{BranchID: "1", ProductID: "P1", Amount: 100, Date: "2024-01-15"}, // in (start)
			{BranchID: "2", ProductID: "P2", Amount: 40, Date: "01/17/2024"}, // in (slash form)
			{BranchID: "1", ProductID: "P3", Amount: 10, Date: "2024-01-21"}, // in (end)
			{BranchID: "1", ProductID: "P4", Amount: 500, Date: "2024-01-14"},
			{BranchID: "1", ProductID: "P5", Amount: 500, Date: "2024-02-01"},
		}, nil)

		report, err := service.NetworkWeeklySales(wednesday)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), report.WeekStart)
		assert.Equal(t, time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC), report.WeekEnd)
		assert.Equal(t, int64(150), report.Total)
		// Arithmetic mean of the three matching amounts, not total/7.
		assert.Equal(t, 50.0, report.AveragePerDay)
	})

	t.Run("empty window yields zeros", func(t *testing.T) {
		mockStore.EXPECT().ListSales().Return([]domain.SaleRecord{
			{BranchID: "1", ProductID: "P1", Amount: 100, Date: "2023-06-01"},
		}, nil)

		report, err := service.NetworkWeeklySales(wednesday)
		require.NoError(t, err)

		assert.Equal(t, int64(0), report.Total)
		assert.Equal(t, 0.0, report.AveragePerDay)
	})

	t.Run("unparseable date aborts the report", func(t *testing.T) {
		mockStore.EXPECT().ListSales().Return([]domain.SaleRecord{
			{BranchID: "1", ProductID: "P1", Amount: 100, Date: "17.01.2024"},
		}, nil)

		report, err := service.NetworkWeeklySales(wednesday)
		assert.ErrorIs(t, err, ErrUnrecognizedDateFormat)
		assert.Nil(t, report)
	})
}

func TestService_NetworkTotalSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockReader(ctrl)
	service := NewService(mockStore)

	t.Run("sums the whole log", func(t *testing.T) {
		mockStore.EXPECT().ListSales().Return([]domain.SaleRecord{
			{BranchID: "1", Amount: 100},
			{BranchID: "2", Amount: 250},
		}, nil)

		report, err := service.NetworkTotalSales()
		require.NoError(t, err)
		assert.Equal(t, int64(350), report.Total)
	})

	t.Run("empty log is a valid zero, not an error", func(t *testing.T) {
		mockStore.EXPECT().ListSales().Return(nil, nil)

		report, err := service.NetworkTotalSales()
		require.NoError(t, err)
		assert.Equal(t, int64(0), report.Total)
	})
}

func TestService_AllBranchesMonthlySales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockReader(ctrl)
	service := NewService(mockStore)

	t.Run("totals per registered branch", func(t *testing.T) {
		mockStore.EXPECT().ListBranches().Return([]domain.Branch{
			{ID: "1", Name: "A", Location: "X"},
		}, nil)
		mockStore.EXPECT().ListSales().Return([]domain.SaleRecord{
			{BranchID: "1", ProductID: "1", Amount: 100, Date: "2024-01-05"},
			{BranchID: "1", ProductID: "2", Amount: 50, Date: "2024-01-06"},
		}, nil)

		report, err := service.AllBranchesMonthlySales()
		require.NoError(t, err)

		assert.Equal(t, map[string]int64{"1": 150}, report.Totals)
	})

	t.Run("covers every branch, zero included, and drops unknown branch IDs", func(t *testing.T) {
		mockStore.EXPECT().ListBranches().Return([]domain.Branch{
			{ID: "1", Name: "A", Location: "X"},
			{ID: "2", Name: "B", Location: "Y"},
		}, nil)
		mockStore.EXPECT().ListSales().Return([]domain.SaleRecord{
			{BranchID: "1", ProductID: "1", Amount: 100, Date: "2024-01-05"},
			{BranchID: "99", ProductID: "1", Amount: 777, Date: "2024-01-05"},
		}, nil)

		report, err := service.AllBranchesMonthlySales()
		require.NoError(t, err)

		assert.Equal(t, map[string]int64{"1": 100, "2": 0}, report.Totals)
	})
}
