package handler

import (
	"net/http"

	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/usecases/authenticating"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/pkg/apiErrors"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/pkg/log"
	"github.com/pkg/errors"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		token, err := service.LoginUser(req.Username, req.Password)
		if err != nil {
			writeAuthError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"token": token,
		})
	}
}

func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		user, err := service.CreateUser(req.Username, req.Password, req.Role)
		if err != nil {
			writeAuthError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(user)
	}
}

// writeAuthError maps authentication failures to API error responses. The
// use case attaches the code, so no string matching is needed here.
func writeAuthError(w http.ResponseWriter, r *http.Request, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("unexpected authentication error")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Internal error during authentication", nil)
}
