package payroll

import (
	"context"
	"time"
)

// PayPeriodRepository reads the payroll calendar. All methods include
// companyID to prevent cross-company data access.
type PayPeriodRepository interface {
	GetByID(ctx context.Context, id string, companyID string) (PayPeriod, error)
	// GetInRange returns the pay group's periods fully contained in
	// [start, end], ordered by start date.
	GetInRange(ctx context.Context, companyID, payGroupID string, start, end time.Time) ([]PayPeriod, error)
}

// EmployeePayrollRepository reads historical finalized payroll records.
type EmployeePayrollRepository interface {
	// GetFinalizedByPeriods returns records for the given pay periods with
	// status in FinalizedStatuses.
	GetFinalizedByPeriods(ctx context.Context, companyID string, payPeriodIDs []string) ([]EmployeePayroll, error)
}
