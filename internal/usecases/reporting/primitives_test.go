package reporting

import (
	"testing"
	"time"

	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterByKey(t *testing.T) {
	records := []domain.SaleRecord{
		{BranchID: "1", ProductID: "P1", Amount: 100, Date: "2024-01-05"},
		{BranchID: "2", ProductID: "P2", Amount: 50, Date: "2024-01-06"},
		{BranchID: "1", ProductID: "P3", Amount: 75, Date: "2024-01-07"},
	}

	collect := func() []int64 {
		var amounts []int64
		for record := range filterByKey(records, byBranch, "1") {
			amounts = append(amounts, record.Amount)
		}
		return amounts
	}

	// Original order preserved.
	assert.Equal(t, []int64{100, 75}, collect())

	// Restartable: a second evaluation yields the same sequence.
	assert.Equal(t, []int64{100, 75}, collect())
}

func TestFilterByKey_NoMatch(t *testing.T) {
	records := []domain.SaleRecord{{BranchID: "1", Amount: 100}}

	count := 0
	for range filterByKey(records, byBranch, "99") {
		count++
	}
	assert.Zero(t, count)
}

func TestFilterByDateWindow(t *testing.T) {
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC)

	t.Run("inclusive bounds, mixed formats", func(t *testing.T) {
		records := []domain.SaleRecord{
			{BranchID: "1", Amount: 10, Date: "2024-01-14"}, // day before
			{BranchID: "1", Amount: 20, Date: "2024-01-15"}, // window start
			{BranchID: "1", Amount: 30, Date: "01/18/2024"}, // mid-window, slash form
			{BranchID: "1", Amount: 40, Date: "2024-01-21"}, // window end
			{BranchID: "1", Amount: 50, Date: "2024-01-22"}, // day after
		}

		matched, err := filterByDateWindow(records, start, end)
		require.NoError(t, err)

		var amounts []int64
		for _, record := range matched {
			amounts = append(amounts, record.Amount)
		}
		assert.Equal(t, []int64{20, 30, 40}, amounts)
	})

	t.Run("one bad date aborts the whole filter", func(t *testing.T) {
		records := []domain.SaleRecord{
			{BranchID: "1", Amount: 20, Date: "2024-01-15"},
			{BranchID: "1", Amount: 30, Date: "not-a-date"},
		}

		matched, err := filterByDateWindow(records, start, end)
		assert.ErrorIs(t, err, ErrUnrecognizedDateFormat)
		assert.Nil(t, matched)
	})
}

func TestGroupSum(t *testing.T) {
	records := []domain.SaleRecord{
		{BranchID: "1", Amount: 100},
		{BranchID: "1", Amount: 50},
		{BranchID: "3", Amount: 999}, // not in allKeys, dropped
	}

	totals := groupSum(records, byBranch, saleAmount, []string{"1", "2"})

	assert.Equal(t, map[string]int64{
		"1": 150,
		"2": 0,
	}, totals)
}

func TestReduceStats(t *testing.T) {
	tests := []struct {
		name   string
		values []int64
		want   summaryStats
	}{
		{
			name:   "single value",
			values: []int64{300},
			want:   summaryStats{mean: 300, max: 300, min: 300, median: 300},
		},
		{
			name:   "odd length",
			values: []int64{5, 1, 9},
			want:   summaryStats{mean: 5, max: 9, min: 1, median: 5},
		},
		{
			name:   "even length median averages the middle pair",
			values: []int64{4, 1, 3, 2},
			want:   summaryStats{mean: 2.5, max: 4, min: 1, median: 2.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reduceStats(tt.values)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReduceStats_Empty(t *testing.T) {
	_, err := reduceStats(nil)
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestReduceStats_Ordering(t *testing.T) {
	// min <= median <= max, and mean within [min, max].
	samples := [][]int64{
		{7},
		{1, 2},
		{10, 0, 10},
		{3, 3, 3, 3},
		{100, 1, 50, 2, 99},
	}

	for _, values := range samples {
		stats, err := reduceStats(values)
		require.NoError(t, err)

		assert.LessOrEqual(t, stats.min, stats.median)
		assert.LessOrEqual(t, stats.median, stats.max)
		assert.GreaterOrEqual(t, stats.mean, stats.min)
		assert.LessOrEqual(t, stats.mean, stats.max)
	}
}
