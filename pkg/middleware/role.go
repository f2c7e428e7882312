package middleware

import (
	"net/http"

	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/domain"
	"github.com/Kusalthilina2/Food-City-Supermarket-System/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// RoleMiddleware restricts a route to the given roles. The authenticated
// user's claims must already be in the request context.
func RoleMiddleware(allowedRoles []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
			if !ok {
				logrus.Warning("access attempt without authentication")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User is not authenticated", nil)
				return
			}

			isAllowed := false
			for _, role := range allowedRoles {
				if userClaims.Role == role {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warningf("access denied for user %q with role %q", userClaims.Username, userClaims.Role)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "You do not have permission to access this resource", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly allows access for administrators only.
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]string{domain.RoleAdmin})
}

// AllRoles allows access for every authenticated user.
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]string{domain.RoleAdmin, domain.RoleStaff})
}
