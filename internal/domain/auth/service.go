package auth

import "context"

// AuthService verifies a cashier PIN against the branch's active
// employees and issues the terminal token. This core trusts the
// resulting employee identity; it never re-verifies it downstream.
type AuthService interface {
	PINLogin(ctx context.Context, req PINLoginRequest) (PINLoginResponse, error)
}
