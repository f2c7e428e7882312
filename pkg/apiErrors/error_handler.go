package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes returned to API clients.
const (
	// Authentication (AUTH_xxx)
	ErrInvalidCredentials    = "AUTH_001"
	ErrUserNotFound          = "AUTH_002"
	ErrInvalidToken          = "AUTH_003"
	ErrInsufficientPrivilege = "AUTH_004"
	ErrUserAlreadyExists     = "AUTH_005"

	// Validation (VAL_xxx)
	ErrInvalidRequest      = "VAL_001"
	ErrMissingRequiredData = "VAL_002"
	ErrInvalidFormat       = "VAL_003"
	ErrDuplicateEntity     = "VAL_004"

	// Reporting (RPT_xxx)
	ErrEmptyDataset           = "RPT_001"
	ErrUnrecognizedDateFormat = "RPT_002"

	// Server (SRV_xxx)
	ErrInternalServer = "SRV_001"
	ErrStoreOperation = "SRV_002"
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:     http.StatusUnauthorized,
	ErrUserNotFound:           http.StatusNotFound,
	ErrInvalidToken:           http.StatusUnauthorized,
	ErrInsufficientPrivilege:  http.StatusForbidden,
	ErrUserAlreadyExists:      http.StatusBadRequest,
	ErrInvalidRequest:         http.StatusBadRequest,
	ErrMissingRequiredData:    http.StatusBadRequest,
	ErrInvalidFormat:          http.StatusBadRequest,
	ErrDuplicateEntity:        http.StatusConflict,
	ErrEmptyDataset:           http.StatusNotFound,
	ErrUnrecognizedDateFormat: http.StatusUnprocessableEntity,
	ErrInternalServer:         http.StatusInternalServerError,
	ErrStoreOperation:         http.StatusInternalServerError,
}

// APIError is the standard error payload.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standard error payload with the HTTP status mapped
// from the code.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}
