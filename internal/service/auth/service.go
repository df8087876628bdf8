package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/kasirku/pos-backend-go/internal/domain/auth"
	"github.com/kasirku/pos-backend-go/internal/domain/employee"
	"github.com/kasirku/pos-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	employee.EmployeeRepository
	jwtService jwt.Service
}

func NewAuthService(employeeRepo employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		EmployeeRepository: employeeRepo,
		jwtService:         jwtService,
	}
}

// PINLogin implements auth.AuthService. The PIN is shared-terminal
// style: it identifies the employee within the branch, so uniqueness
// of PINs per branch is an operational requirement, not a schema one.
func (a *AuthServiceImpl) PINLogin(ctx context.Context, req auth.PINLoginRequest) (auth.PINLoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.PINLoginResponse{}, err
	}

	employees, err := a.EmployeeRepository.ListActiveByBranch(ctx, req.BranchID)
	if err != nil {
		return auth.PINLoginResponse{}, fmt.Errorf("failed to list branch employees: %w", err)
	}

	var matched *employee.Employee
	for i := range employees {
		emp := &employees[i]
		if emp.PINHash == "" {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(emp.PINHash), []byte(req.PIN)) == nil {
			matched = emp
			break
		}
	}
	if matched == nil {
		return auth.PINLoginResponse{}, auth.ErrInvalidPIN
	}

	token, expiresAt, err := a.jwtService.GenerateAccessToken(matched.ID, matched.BranchID, matched.Role)
	if err != nil {
		return auth.PINLoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.PINLoginResponse{
		AccessToken:  token,
		ExpiresAt:    expiresAt,
		EmployeeID:   matched.ID,
		EmployeeName: matched.FullName,
		Role:         string(matched.Role),
		BranchID:     matched.BranchID,
	}, nil
}
