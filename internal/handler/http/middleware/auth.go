package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/kasirku/pos-backend-go/internal/domain/auth"
	"github.com/kasirku/pos-backend-go/internal/domain/employee"
	"github.com/kasirku/pos-backend-go/internal/handler/http/response"
)

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// RequireManager requires manager or owner role. Schedule publishing
// and payroll runs are management actions; cashiers only clock and
// operate the drawer.
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Manager access required")
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.Forbidden(w, "Manager access required")
			return
		}

		role := employee.Role(roleStr)
		if role != employee.RoleManager && role != employee.RoleOwner {
			response.Forbidden(w, "Manager access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// EmployeeID extracts the authenticated employee from the verified
// token claims.
func EmployeeID(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	id, ok := claims["employee_id"].(string)
	return id, ok && id != ""
}

// BranchID extracts the branch the token was issued for.
func BranchID(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	id, ok := claims["branch_id"].(string)
	return id, ok && id != ""
}
