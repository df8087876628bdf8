package payroll

import "context"

type PayrollService interface {
	// ComputeMonth produces one row per active shift employee for
	// the month. Finalized records are returned as stored; everyone
	// else is computed live from attendance and schedule data.
	ComputeMonth(ctx context.Context, req ComputeMonthRequest) (MonthResponse, error)

	// Finalize freezes the current computation into a stored record.
	// Status paid stamps the payment time.
	Finalize(ctx context.Context, req FinalizeRequest) (PayrollRow, error)

	// Reset deletes the finalized record, reverting the employee to
	// live draft computation for the month.
	Reset(ctx context.Context, req ResetRequest) error
}
