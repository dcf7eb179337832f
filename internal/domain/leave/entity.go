package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

type LeaveRequestStatus string

const (
	LeaveRequestStatusWaitingApproval LeaveRequestStatus = "waiting_approval"
	LeaveRequestStatusApproved        LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected        LeaveRequestStatus = "rejected"
	LeaveRequestStatusCancelled       LeaveRequestStatus = "cancelled"
)

// PaymentMethod maps to leave_payment_method_enum in DB
type PaymentMethod string

const (
	PaymentMethodFullPay    PaymentMethod = "full_pay"
	PaymentMethodUnpaid     PaymentMethod = "unpaid"
	PaymentMethodReducedPay PaymentMethod = "reduced_pay"
	PaymentMethodStatutory  PaymentMethod = "statutory"
)

// LeaveType entity. Payment policy metadata only; quota and approval rules
// live in the main HRIS service.
type LeaveType struct {
	ID        string
	CompanyID string
	Name      string
	Code      *string

	IsPaid        bool
	PaymentMethod PaymentMethod

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PaymentTier is one row of a reduced-pay schedule. ToDay nil means the
// range is open-ended.
type PaymentTier struct {
	ID                string
	PaymentRuleID     string
	FromDay           int
	ToDay             *int
	PaymentPercentage decimal.Decimal
	SortOrder         int
}

// PaymentRule holds the tiered schedule for a reduced_pay leave type.
// Tiers are disjoint day ranges ordered by SortOrder.
type PaymentRule struct {
	ID          string
	CompanyID   string
	LeaveTypeID string
	Tiers       []PaymentTier

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LeaveRequest entity. Read-only to this service; requests are created and
// approved in the main HRIS service.
type LeaveRequest struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string

	StartDate time.Time
	EndDate   time.Time
	TotalDays float64

	Status LeaveRequestStatus

	SubmittedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relationships (for responses)
	LeaveTypeName *string
}

type TransactionType string

const (
	TransactionTypeUnpaidDeduction TransactionType = "unpaid_deduction"
	TransactionTypePaidLeave       TransactionType = "paid_leave"
	TransactionTypeReducedPayLeave TransactionType = "reduced_pay_leave"
	TransactionTypeSickStatutory   TransactionType = "sick_leave_statutory"
)

// Transaction is one computed payroll impact for a (leave request, pay period)
// overlap. It is not persisted until SaveTransactions is called.
type Transaction struct {
	LeaveRequestID    string
	LeaveTypeID       string
	LeaveTypeName     string
	Type              TransactionType
	Days              float64
	DailyRate         decimal.Decimal
	GrossAmount       decimal.Decimal
	PaymentPercentage decimal.Decimal
	NetAmount         decimal.Decimal
	Description       string
}

// PayrollTransaction is the persisted form of a Transaction, linked to a pay
// period and optionally to the payroll run that consumed it.
type PayrollTransaction struct {
	ID             string
	CompanyID      string
	EmployeeID     string
	PayPeriodID    string
	PayrollRunID   *string
	LeaveRequestID string

	Type              TransactionType
	LeaveDays         float64
	LeaveHours        float64
	DailyRate         decimal.Decimal
	HourlyRate        decimal.Decimal
	GrossAmount       decimal.Decimal
	PaymentPercentage decimal.Decimal
	NetAmount         decimal.Decimal
	Description       string

	ProcessedAt *time.Time
	CreatedAt   time.Time
}

// PayrollSummary aggregates the leave impact for one employee and pay period.
type PayrollSummary struct {
	EmployeeID string

	TotalUnpaidDays      float64
	TotalUnpaidDeduction decimal.Decimal
	TotalPaidLeaveDays   float64
	TotalPaidLeaveAmount decimal.Decimal

	Transactions []Transaction
}

// NewPayrollSummary returns a summary with zero-valued decimal fields so
// callers never see the decimal zero-value wrapper uninitialized.
func NewPayrollSummary(employeeID string) PayrollSummary {
	return PayrollSummary{
		EmployeeID:           employeeID,
		TotalUnpaidDeduction: decimal.Zero,
		TotalPaidLeaveAmount: decimal.Zero,
	}
}
