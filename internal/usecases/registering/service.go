// Package registering is the command side of the system: it validates and
// appends new branches and sale records. The reporting engine never depends
// on it.
package registering

import (
	"errors"
	"time"

	"github.com/Kusalthilina2/Food-City-Supermarket-System/infrastructure/recordstore"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/domain"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/usecases/reporting"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/pkg/log"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/pkg/utils"
)

var (
	ErrMissingRequiredData = errors.New("required data is missing")
	ErrNegativeAmount      = errors.New("sale amount must not be negative")
	ErrDuplicateBranch     = errors.New("branch ID is already registered")
)

type Registrar interface {
	RegisterBranch(branch domain.Branch) error
	RecordSale(sale domain.SaleRecord) (domain.SaleRecord, string, error)
}

type Service struct {
	store recordstore.Store
}

func NewService(store recordstore.Store) Registrar {
	return &Service{store: store}
}

// RegisterBranch appends a new branch after checking the ID is present and
// not already taken.
func (s *Service) RegisterBranch(branch domain.Branch) error {
	if branch.ID == "" || branch.Name == "" {
		return ErrMissingRequiredData
	}

	branches, err := s.store.ListBranches()
	if err != nil {
		return err
	}

	for _, existing := range branches {
		if existing.ID == branch.ID {
			return ErrDuplicateBranch
		}
	}

	if err := s.store.AppendBranch(branch); err != nil {
		return err
	}

	log.L.WithFields(log.Fields{
		"branch_id": branch.ID,
		"name":      branch.Name,
	}).Info("branch registered")

	return nil
}

// RecordSale validates and appends one sale record. A missing date defaults
// to today in the canonical ISO form; a supplied date must parse under the
// accepted formats. It returns the record as persisted (with the applied
// date) and a short receipt reference for the caller's acknowledgment; the
// reference is not persisted.
func (s *Service) RecordSale(sale domain.SaleRecord) (domain.SaleRecord, string, error) {
	if sale.BranchID == "" || sale.ProductID == "" {
		return domain.SaleRecord{}, "", ErrMissingRequiredData
	}

	if sale.Amount < 0 {
		return domain.SaleRecord{}, "", ErrNegativeAmount
	}

	if sale.Date == "" {
		sale.Date = reporting.FormatDate(time.Now())
	} else if _, err := reporting.ParseDate(sale.Date); err != nil {
		return domain.SaleRecord{}, "", err
	}

	if err := s.store.AppendSale(sale); err != nil {
		return domain.SaleRecord{}, "", err
	}

	reference, err := utils.GenerateReference()
	if err != nil {
		// The sale is already persisted; an acknowledgment without a
		// reference beats a false failure.
		log.L.WithError(err).Warn("could not generate sale reference")
		reference = ""
	}

	log.L.WithFields(log.Fields{
		"branch_id":  sale.BranchID,
		"product_id": sale.ProductID,
		"amount":     sale.Amount,
		"date":       sale.Date,
		"reference":  reference,
	}).Info("sale recorded")

	return sale, reference, nil
}
