// Package csvstore persists records as delimited flat files with a header
// row, one file per entity kind. It is the default record store backend.
package csvstore

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/Kusalthilina2/Food-City-Supermarket-System/infrastructure/recordstore"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	branchesFile = "branches.csv"
	productsFile = "products.csv"
	salesFile    = "sales.csv"
	usersFile    = "users.csv"
)

var fileHeaders = map[string][]string{
	branchesFile: {"Branch ID", "Branch Name", "Location"},
	productsFile: {"Product ID", "Product Name"},
	salesFile:    {"Branch ID", "Product ID", "Amount Sold", "Date"},
	usersFile:    {"Username", "Password", "Role"},
}

// CSVStore implements recordstore.Store over flat CSV files. Appends and
// reads are serialized under a mutex, so a read never observes a partially
// flushed row; reads load the whole file and return a fresh slice, which
// gives callers the snapshot semantics the reporting engine relies on.
type CSVStore struct {
	dir string
	mu  sync.Mutex
}

func New(dir string) (*CSVStore, error) {
	s := &CSVStore{dir: dir}
	if err := s.bootstrap(); err != nil {
		return nil, err
	}
	return s, nil
}

// bootstrap creates the data directory and any missing entity file with its
// header row, mirroring first-run initialization.
func (s *CSVStore) bootstrap() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Wrap(err, "creating data directory")
	}

	for name, headers := range fileHeaders {
		path := filepath.Join(s.dir, name)
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return errors.Wrapf(err, "checking %s", name)
		}

		if err := s.writeRow(name, headers); err != nil {
			return err
		}
		logrus.WithField("file", path).Info("initialized record file")
	}

	return nil
}

func (s *CSVStore) readRows(name string) ([][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", name)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}

	if len(rows) <= 1 {
		return nil, nil
	}
	return rows[1:], nil // skip the header row
}

func (s *CSVStore) writeRow(name string, row []string) error {
	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "opening %s for append", name)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(row); err != nil {
		return errors.Wrapf(err, "appending to %s", name)
	}
	writer.Flush()

	return errors.Wrapf(writer.Error(), "flushing %s", name)
}

func (s *CSVStore) ListBranches() ([]domain.Branch, error) {
	rows, err := s.readRows(branchesFile)
	if err != nil {
		return nil, err
	}

	branches := make([]domain.Branch, 0, len(rows))
	for _, row := range rows {
		if len(row) < 3 {
			return nil, errors.Errorf("malformed branch row, want 3 fields got %d", len(row))
		}
		branches = append(branches, domain.Branch{ID: row[0], Name: row[1], Location: row[2]})
	}

	return branches, nil
}

func (s *CSVStore) ListProducts() ([]domain.Product, error) {
	rows, err := s.readRows(productsFile)
	if err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		if len(row) < 2 {
			return nil, errors.Errorf("malformed product row, want 2 fields got %d", len(row))
		}
		products = append(products, domain.Product{ID: row[0], Name: row[1]})
	}

	return products, nil
}

func (s *CSVStore) ListSales() ([]domain.SaleRecord, error) {
	rows, err := s.readRows(salesFile)
	if err != nil {
		return nil, err
	}

	sales := make([]domain.SaleRecord, 0, len(rows))
	for _, row := range rows {
		if len(row) < 4 {
			return nil, errors.Errorf("malformed sale row, want 4 fields got %d", len(row))
		}

		amount, err := strconv.ParseInt(row[2], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing sale amount %q", row[2])
		}

		sales = append(sales, domain.SaleRecord{
			BranchID:  row[0],
			ProductID: row[1],
			Amount:    amount,
			Date:      row[3],
		})
	}

	return sales, nil
}

func (s *CSVStore) AppendBranch(branch domain.Branch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeRow(branchesFile, []string{branch.ID, branch.Name, branch.Location})
}

func (s *CSVStore) AppendSale(sale domain.SaleRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeRow(salesFile, []string{
		sale.BranchID,
		sale.ProductID,
		strconv.FormatInt(sale.Amount, 10),
		sale.Date,
	})
}

func (s *CSVStore) ListUsers() ([]domain.User, error) {
	rows, err := s.readRows(usersFile)
	if err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		if len(row) < 3 {
			return nil, errors.Errorf("malformed user row, want 3 fields got %d", len(row))
		}
		users = append(users, domain.User{Username: row[0], PasswordHash: row[1], Role: row[2]})
	}

	return users, nil
}

func (s *CSVStore) GetUserByUsername(username string) (*domain.User, error) {
	users, err := s.ListUsers()
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		if user.Username == username {
			return &user, nil
		}
	}

	return nil, nil
}

func (s *CSVStore) AppendUser(user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeRow(usersFile, []string{user.Username, user.PasswordHash, user.Role})
}

var _ recordstore.Store = (*CSVStore)(nil)
