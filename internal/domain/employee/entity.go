package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is owned by the employee-management module; this core reads
// it for identity, schedule matching and payroll figures only.
type Employee struct {
	ID              string
	FullName        string
	Role            Role
	BranchID        string
	PINHash         string
	BaseSalary      decimal.Decimal
	DeductionAmount decimal.Decimal
	JoinDate        time.Time
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Role string

const (
	RoleCashier Role = "cashier"
	RoleManager Role = "manager"
	RoleOwner   Role = "owner"
)

var RoleValues = []string{
	string(RoleCashier),
	string(RoleManager),
	string(RoleOwner),
}
