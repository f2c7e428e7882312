package domain

import "time"

// BranchMonthlyReport carries the raw sale amounts recorded for one branch.
// Despite the name, it covers the entire available history for the branch,
// not a single month; the month framing is presentational only.
type BranchMonthlyReport struct {
	BranchID string  `json:"branch_id"`
	Samples  []int64 `json:"samples"`
}

// ProductPriceReport holds summary statistics over the sale amounts of one
// product. Values are unrounded; presentation decides the precision.
type ProductPriceReport struct {
	ProductID string  `json:"product_id"`
	Mean      float64 `json:"mean"`
	Max       float64 `json:"max"`
	Min       float64 `json:"min"`
	Median    float64 `json:"median"`
}

// NetworkWeeklyReport aggregates the whole network over the Monday-to-Sunday
// week containing the reference date. AveragePerDay is the arithmetic mean of
// the in-window sale amounts, not Total divided by seven.
type NetworkWeeklyReport struct {
	WeekStart     time.Time `json:"week_start"`
	WeekEnd       time.Time `json:"week_end"`
	Total         int64     `json:"total"`
	AveragePerDay float64   `json:"average_per_day"`
}

// NetworkTotalReport is the sum over the entire sale log. Zero is a valid
// answer for an empty log.
type NetworkTotalReport struct {
	Total int64 `json:"total"`
}

// AllBranchesMonthlyReport maps every registered branch ID to its total sale
// amount, zero included. Sales recorded against branch IDs that were never
// registered do not appear here.
type AllBranchesMonthlyReport struct {
	Totals map[string]int64 `json:"totals"`
}
