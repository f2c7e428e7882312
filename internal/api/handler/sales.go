package handler

import (
	"net/http"

	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/domain"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/usecases/registering"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/usecases/reporting"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/pkg/apiErrors"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/pkg/log"
	"github.com/pkg/errors"
)

type RecordSaleRequest struct {
	BranchID  string `json:"branch_id"`
	ProductID string `json:"product_id"`
	Amount    int64  `json:"amount"`
	Date      string `json:"date"` // optional, defaults to today
}

type RecordSaleResponse struct {
	Reference string            `json:"reference,omitempty"`
	Sale      domain.SaleRecord `json:"sale"`
}

func RecordSale(service registering.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RecordSaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		sale := domain.SaleRecord{
			BranchID:  req.BranchID,
			ProductID: req.ProductID,
			Amount:    req.Amount,
			Date:      req.Date,
		}

		persisted, reference, err := service.RecordSale(sale)
		switch {
		case errors.Is(err, registering.ErrMissingRequiredData):
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Branch ID and product ID are required", nil)
		case errors.Is(err, registering.ErrNegativeAmount):
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Amount must not be negative", nil)
		case errors.Is(err, reporting.ErrUnrecognizedDateFormat):
			apiErrors.WriteError(w, apiErrors.ErrUnrecognizedDateFormat, err.Error(), nil)
		case err != nil:
			log.ForContext(r.Context()).WithError(err).Error("error recording sale")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Error recording sale", nil)
		default:
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(RecordSaleResponse{
				Reference: reference,
				Sale:      persisted,
			})
		}
	}
}
