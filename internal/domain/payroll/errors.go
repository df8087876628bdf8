package payroll

import "errors"

var (
	ErrPayrollRecordNotFound = errors.New("payroll record not found")
	ErrInvalidPeriod         = errors.New("invalid payroll period")
	ErrInvalidStatus         = errors.New("payroll status must be draft or paid")
)
