package reporting

import (
	"iter"
	"sort"
	"time"

	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/domain"
)

// filterByKey yields the records whose key equals targetKey, in their
// original order. The sequence is restartable: ranging over it again
// re-evaluates the filter against the same snapshot.
func filterByKey(records []domain.SaleRecord, keyFn func(domain.SaleRecord) string, targetKey string) iter.Seq[domain.SaleRecord] {
	return func(yield func(domain.SaleRecord) bool) {
		for _, record := range records {
			if keyFn(record) != targetKey {
				continue
			}
			if !yield(record) {
				return
			}
		}
	}
}

// filterByDateWindow keeps the records whose parsed date falls in
// [start, end], bounds inclusive. A single unparseable date fails the whole
// operation; there is no partial success.
func filterByDateWindow(records []domain.SaleRecord, start, end time.Time) ([]domain.SaleRecord, error) {
	var matched []domain.SaleRecord
	for _, record := range records {
		date, err := ParseDate(record.Date)
		if err != nil {
			return nil, err
		}

		if !date.Before(start) && !date.After(end) {
			matched = append(matched, record)
		}
	}

	return matched, nil
}

// groupSum sums valueFn per key over the records, seeded with every key in
// allKeys at zero. Records whose key is not in allKeys are dropped.
func groupSum(
	records []domain.SaleRecord,
	keyFn func(domain.SaleRecord) string,
	valueFn func(domain.SaleRecord) int64,
	allKeys []string,
) map[string]int64 {
	totals := make(map[string]int64, len(allKeys))
	for _, key := range allKeys {
		totals[key] = 0
	}

	for _, record := range records {
		key := keyFn(record)
		if _, known := totals[key]; known {
			totals[key] += valueFn(record)
		}
	}

	return totals
}

type summaryStats struct {
	mean   float64
	max    float64
	min    float64
	median float64
}

// reduceStats computes mean, max, min and median over a non-empty sequence.
// The median of an even-length sequence is the average of the two middle
// values.
func reduceStats(values []int64) (summaryStats, error) {
	if len(values) == 0 {
		return summaryStats{}, ErrEmptyDataset
	}

	sorted := make([]int64, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum int64
	for _, v := range sorted {
		sum += v
	}

	n := len(sorted)
	var median float64
	if n%2 == 0 {
		median = float64(sorted[n/2-1]+sorted[n/2]) / 2
	} else {
		median = float64(sorted[n/2])
	}

	return summaryStats{
		mean:   float64(sum) / float64(n),
		max:    float64(sorted[n-1]),
		min:    float64(sorted[0]),
		median: median,
	}, nil
}
