// Package postgres is the PostgreSQL record store backend. It keeps the same
// append-only semantics as the CSV backend; sale dates are stored as the raw
// text the client supplied so the reporting engine's date parsing is the only
// place format decisions are made.
package postgres

import (
	"database/sql"

	"github.com/Kusalthilina2/Food-City-Supermarket-System/infrastructure/recordstore"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/domain"
	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
)

const (
	branchesTable = "branches"
	productsTable = "products"
	salesTable    = "sales"
	usersTable    = "users"
)

type PostgresStore struct {
	conn *Connection
}

func NewStore(conn *Connection) *PostgresStore {
	return &PostgresStore{conn: conn}
}

func (s *PostgresStore) ListBranches() ([]domain.Branch, error) {
	query, args, err := squirrel.
		Select("id", "name", "location").
		From(branchesTable).
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "listing branches")
	}
	defer rows.Close()

	var branches []domain.Branch
	for rows.Next() {
		var branch domain.Branch
		if err := rows.Scan(&branch.ID, &branch.Name, &branch.Location); err != nil {
			return nil, err
		}
		branches = append(branches, branch)
	}

	return branches, rows.Err()
}

func (s *PostgresStore) ListProducts() ([]domain.Product, error) {
	query, args, err := squirrel.
		Select("id", "name").
		From(productsTable).
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "listing products")
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(&product.ID, &product.Name); err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

func (s *PostgresStore) ListSales() ([]domain.SaleRecord, error) {
	query, args, err := squirrel.
		Select("branch_id", "product_id", "amount", "sale_date").
		From(salesTable).
		OrderBy("recorded_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "listing sales")
	}
	defer rows.Close()

	var sales []domain.SaleRecord
	for rows.Next() {
		var sale domain.SaleRecord
		if err := rows.Scan(&sale.BranchID, &sale.ProductID, &sale.Amount, &sale.Date); err != nil {
			return nil, err
		}
		sales = append(sales, sale)
	}

	return sales, rows.Err()
}

func (s *PostgresStore) AppendBranch(branch domain.Branch) error {
	query, args, err := squirrel.
		Insert(branchesTable).
		Columns("id", "name", "location").
		Values(branch.ID, branch.Name, branch.Location).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = s.conn.Exec(query, args...)
	return errors.Wrap(err, "appending branch")
}

func (s *PostgresStore) AppendSale(sale domain.SaleRecord) error {
	query, args, err := squirrel.
		Insert(salesTable).
		Columns("branch_id", "product_id", "amount", "sale_date").
		Values(sale.BranchID, sale.ProductID, sale.Amount, sale.Date).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = s.conn.Exec(query, args...)
	return errors.Wrap(err, "appending sale")
}

func (s *PostgresStore) ListUsers() ([]domain.User, error) {
	query, args, err := squirrel.
		Select("username", "password_hash", "role").
		From(usersTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "listing users")
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.Username, &user.PasswordHash, &user.Role); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func (s *PostgresStore) GetUserByUsername(username string) (*domain.User, error) {
	query, args, err := squirrel.
		Select("username", "password_hash", "role").
		From(usersTable).
		Where(squirrel.Eq{"username": username}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var user domain.User
	err = s.conn.QueryRow(query, args...).Scan(&user.Username, &user.PasswordHash, &user.Role)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "getting user")
	}

	return &user, nil
}

func (s *PostgresStore) AppendUser(user domain.User) error {
	query, args, err := squirrel.
		Insert(usersTable).
		Columns("username", "password_hash", "role").
		Values(user.Username, user.PasswordHash, user.Role).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = s.conn.Exec(query, args...)
	return errors.Wrap(err, "appending user")
}

var _ recordstore.Store = (*PostgresStore)(nil)
