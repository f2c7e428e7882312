package domain

// SaleRecord is one transaction line of the sale log. Records are append-only
// and never updated or deleted once written.
//
// Date keeps the raw persisted string (either "2006-01-02" or "01/02/2006");
// parsing it is the reporting engine's job, so a record with a malformed date
// can still be loaded and only fails the computations that need the date.
type SaleRecord struct {
	BranchID  string `json:"branch_id"`
	ProductID string `json:"product_id"`
	Amount    int64  `json:"amount"`
	Date      string `json:"date"`
}

// Branch is a physical retail location. The ID is the unique key; the
// reporting engine does not enforce referential integrity between sale
// records and registered branches.
type Branch struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Product is read-only reference data for the reporting engine.
type Product struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
