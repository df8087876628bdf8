package auth

import (
	"github.com/kasirku/pos-backend-go/internal/pkg/validator"
)

type PINLoginRequest struct {
	BranchID string `json:"branch_id"`
	PIN      string `json:"pin"`
}

func (r *PINLoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BranchID) {
		errs = append(errs, validator.ValidationError{
			Field:   "branch_id",
			Message: "branch_id is required",
		})
	}

	if !validator.IsValidPIN(r.PIN) {
		errs = append(errs, validator.ValidationError{
			Field:   "pin",
			Message: "pin must be 4 to 6 digits",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PINLoginResponse struct {
	AccessToken  string `json:"access_token"`
	ExpiresAt    int64  `json:"expires_at"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Role         string `json:"role"`
	BranchID     string `json:"branch_id"`
}
