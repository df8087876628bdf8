package http

import (
	"encoding/json"
	"net/http"

	"github.com/kasirku/pos-backend-go/internal/domain/auth"
	"github.com/kasirku/pos-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	PINLogin(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &authHandlerImpl{
		authService: authService,
	}
}

// PINLogin implements AuthHandler.
func (h *authHandlerImpl) PINLogin(w http.ResponseWriter, r *http.Request) {
	var req auth.PINLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.authService.PINLogin(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Login successful", resp)
}
