// Package reporting is the aggregation engine: pure computations that turn a
// snapshot of the sale log into the five report types. The engine does no I/O
// of its own beyond pulling one snapshot per call from the injected store
// reader, holds no state across calls and offers no internal locking.
package reporting

import (
	"time"

	"github.com/Kusalthilina2/Food-City-Supermarket-System/infrastructure/recordstore"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Reporter is the engine's public surface: the five report generators.
type Reporter interface {
	BranchMonthlySales(branchID string) (*domain.BranchMonthlyReport, error)
	ProductPriceStats(productID string) (*domain.ProductPriceReport, error)
	NetworkWeeklySales(referenceDate time.Time) (*domain.NetworkWeeklyReport, error)
	NetworkTotalSales() (*domain.NetworkTotalReport, error)
	AllBranchesMonthlySales() (*domain.AllBranchesMonthlyReport, error)
}

type Service struct {
	store recordstore.Reader
}

func NewService(store recordstore.Reader) Reporter {
	return &Service{store: store}
}

// BranchMonthlySales returns the raw sale amounts recorded for one branch
// over the entire log. No month windowing is applied; the "monthly" framing
// is presentational and kept for compatibility.
func (s *Service) BranchMonthlySales(branchID string) (*domain.BranchMonthlyReport, error) {
	sales, err := s.store.ListSales()
	if err != nil {
		return nil, err
	}

	var samples []int64
	for sale := range filterByKey(sales, byBranch, branchID) {
		samples = append(samples, sale.Amount)
	}

	if len(samples) == 0 {
		return nil, errors.Wrapf(ErrEmptyDataset, "branch %s", branchID)
	}

	return &domain.BranchMonthlyReport{
		BranchID: branchID,
		Samples:  samples,
	}, nil
}

// ProductPriceStats summarizes the sale amounts of one product over the
// entire log.
func (s *Service) ProductPriceStats(productID string) (*domain.ProductPriceReport, error) {
	sales, err := s.store.ListSales()
	if err != nil {
		return nil, err
	}

	var amounts []int64
	for sale := range filterByKey(sales, byProduct, productID) {
		amounts = append(amounts, sale.Amount)
	}

	stats, err := reduceStats(amounts)
	if err != nil {
		return nil, errors.Wrapf(err, "product %s", productID)
	}

	return &domain.ProductPriceReport{
		ProductID: productID,
		Mean:      stats.mean,
		Max:       stats.max,
		Min:       stats.min,
		Median:    stats.median,
	}, nil
}

// NetworkWeeklySales aggregates the whole network over the Monday-to-Sunday
// week containing referenceDate, window bounds inclusive. AveragePerDay is
// the arithmetic mean of the matching amounts, not Total divided by seven;
// both are zero when nothing falls in the window.
func (s *Service) NetworkWeeklySales(referenceDate time.Time) (*domain.NetworkWeeklyReport, error) {
	sales, err := s.store.ListSales()
	if err != nil {
		return nil, err
	}

	weekStart, weekEnd := weekBounds(referenceDate)

	matched, err := filterByDateWindow(sales, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, sale := range matched {
		total += sale.Amount
	}

	average := 0.0
	if len(matched) > 0 {
		average = float64(total) / float64(len(matched))
	}

	logrus.WithFields(logrus.Fields{
		"week_start": FormatDate(weekStart),
		"week_end":   FormatDate(weekEnd),
		"matched":    len(matched),
	}).Debug("computed weekly sales window")

	return &domain.NetworkWeeklyReport{
		WeekStart:     weekStart,
		WeekEnd:       weekEnd,
		Total:         total,
		AveragePerDay: average,
	}, nil
}

// NetworkTotalSales sums the entire sale log. An empty log is a valid zero
// total, never an error.
func (s *Service) NetworkTotalSales() (*domain.NetworkTotalReport, error) {
	sales, err := s.store.ListSales()
	if err != nil {
		return nil, err
	}

	var total int64
	for _, sale := range sales {
		total += sale.Amount
	}

	return &domain.NetworkTotalReport{Total: total}, nil
}

// AllBranchesMonthlySales totals the entire log per registered branch.
// Every branch from the store appears in the result, zero included; sales
// recorded against unregistered branch IDs are dropped. As with the
// per-branch report, no month windowing is applied.
func (s *Service) AllBranchesMonthlySales() (*domain.AllBranchesMonthlyReport, error) {
	branches, err := s.store.ListBranches()
	if err != nil {
		return nil, err
	}

	sales, err := s.store.ListSales()
	if err != nil {
		return nil, err
	}

	branchIDs := make([]string, 0, len(branches))
	for _, branch := range branches {
		branchIDs = append(branchIDs, branch.ID)
	}

	totals := groupSum(sales, byBranch, saleAmount, branchIDs)

	return &domain.AllBranchesMonthlyReport{Totals: totals}, nil
}

func byBranch(sale domain.SaleRecord) string  { return sale.BranchID }
func byProduct(sale domain.SaleRecord) string { return sale.ProductID }
func saleAmount(sale domain.SaleRecord) int64 { return sale.Amount }
