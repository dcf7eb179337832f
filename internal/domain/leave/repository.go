package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository reads approved absence records. All methods include
// companyID to prevent cross-company data access.
type LeaveRequestRepository interface {
	// GetApprovedOverlapping returns approved requests whose date range
	// overlaps [periodStart, periodEnd] (inclusive on both ends).
	GetApprovedOverlapping(ctx context.Context, companyID, employeeID string, periodStart, periodEnd time.Time) ([]LeaveRequest, error)
}

type LeaveTypeRepository interface {
	GetByID(ctx context.Context, id string, companyID string) (LeaveType, error)
	// GetPaymentRule returns the tiered schedule for a reduced_pay leave
	// type, tiers ordered by sort_order. ErrPaymentRuleNotFound when the
	// leave type has no rule configured.
	GetPaymentRule(ctx context.Context, leaveTypeID string, companyID string) (PaymentRule, error)
}

type TransactionRepository interface {
	// ReplaceForPeriod deletes any prior transactions for the employee and
	// pay period, then inserts the given rows, all in one transaction.
	ReplaceForPeriod(ctx context.Context, companyID, employeeID, payPeriodID string, transactions []PayrollTransaction) error
	GetByPayrollRun(ctx context.Context, payrollRunID string, companyID string) ([]PayrollTransaction, error)
}
