package handler

import (
	"net/http"

	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/domain"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/usecases/registering"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/pkg/apiErrors"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/pkg/log"
	"github.com/pkg/errors"
)

// BranchLister is the slice of the record store the read-only listing
// handlers need.
type BranchLister interface {
	ListBranches() ([]domain.Branch, error)
	ListProducts() ([]domain.Product, error)
}

type RegisterBranchRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

func ListBranches(store BranchLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		branches, err := store.ListBranches()
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("error listing branches")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Error listing branches", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(branches)
	}
}

func ListProducts(store BranchLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := store.ListProducts()
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("error listing products")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Error listing products", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(products)
	}
}

func RegisterBranch(service registering.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterBranchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		branch := domain.Branch{ID: req.ID, Name: req.Name, Location: req.Location}

		err := service.RegisterBranch(branch)
		switch {
		case errors.Is(err, registering.ErrMissingRequiredData):
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Branch ID and name are required", nil)
		case errors.Is(err, registering.ErrDuplicateBranch):
			apiErrors.WriteError(w, apiErrors.ErrDuplicateEntity, "Branch ID is already registered", nil)
		case err != nil:
			log.ForContext(r.Context()).WithError(err).Error("error registering branch")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Error registering branch", nil)
		default:
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(branch)
		}
	}
}
