// Package recordstore defines the persistence boundary for branches,
// products, sales and users. The reporting engine depends only on Reader;
// the command layer (registering, authenticating) uses the full Store.
package recordstore

import (
	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/domain"
)

// Reader supplies snapshots of the record sets. Implementations must return
// fresh slices on every call so callers can treat the result as an immutable
// snapshot.
type Reader interface {
	ListBranches() ([]domain.Branch, error)
	ListProducts() ([]domain.Product, error)
	ListSales() ([]domain.SaleRecord, error)
}

// Store is the full persistence surface. Branch and sale records are
// append-only; nothing is ever updated or deleted.
type Store interface {
	Reader

	AppendBranch(branch domain.Branch) error
	AppendSale(sale domain.SaleRecord) error

	ListUsers() ([]domain.User, error)
	GetUserByUsername(username string) (*domain.User, error)
	AppendUser(user domain.User) error
}
