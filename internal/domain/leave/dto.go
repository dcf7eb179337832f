package leave

import (
	"github.com/cmlabs-hris/payroll-adjust-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type TransactionResponse struct {
	LeaveRequestID    string          `json:"leave_request_id"`
	LeaveTypeName     string          `json:"leave_type_name"`
	Type              string          `json:"transaction_type"`
	Days              float64         `json:"days"`
	DailyRate         decimal.Decimal `json:"daily_rate"`
	GrossAmount       decimal.Decimal `json:"gross_amount"`
	PaymentPercentage decimal.Decimal `json:"payment_percentage"`
	NetAmount         decimal.Decimal `json:"net_amount"`
	Description       string          `json:"description,omitempty"`
}

type PayrollSummaryResponse struct {
	EmployeeID           string                `json:"employee_id"`
	PayPeriodID          string                `json:"pay_period_id"`
	TotalUnpaidDays      float64               `json:"total_unpaid_days"`
	TotalUnpaidDeduction decimal.Decimal       `json:"total_unpaid_deduction"`
	TotalPaidLeaveDays   float64               `json:"total_paid_leave_days"`
	TotalPaidLeaveAmount decimal.Decimal       `json:"total_paid_leave_amount"`
	Transactions         []TransactionResponse `json:"transactions"`
}

type PayrollTransactionResponse struct {
	ID                string          `json:"id"`
	EmployeeID        string          `json:"employee_id"`
	PayPeriodID       string          `json:"pay_period_id"`
	PayrollRunID      *string         `json:"payroll_run_id,omitempty"`
	LeaveRequestID    string          `json:"leave_request_id"`
	Type              string          `json:"transaction_type"`
	LeaveDays         float64         `json:"leave_days"`
	LeaveHours        float64         `json:"leave_hours"`
	DailyRate         decimal.Decimal `json:"daily_rate"`
	HourlyRate        decimal.Decimal `json:"hourly_rate"`
	GrossAmount       decimal.Decimal `json:"gross_amount"`
	PaymentPercentage decimal.Decimal `json:"payment_percentage"`
	NetAmount         decimal.Decimal `json:"net_amount"`
	Description       string          `json:"description,omitempty"`
}

type GetPayrollSummaryRequest struct {
	EmployeeID  string
	PayPeriodID string
}

func (r *GetPayrollSummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.PayPeriodID) {
		errs = append(errs, validator.ValidationError{Field: "pay_period_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SaveTransactionsRequest struct {
	EmployeeID   string  `json:"employee_id"`
	PayPeriodID  string  `json:"pay_period_id"`
	PayrollRunID *string `json:"payroll_run_id,omitempty"`
}

func (r *SaveTransactionsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.PayPeriodID) {
		errs = append(errs, validator.ValidationError{Field: "pay_period_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
