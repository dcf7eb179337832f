package retro

import (
	"github.com/cmlabs-hris/payroll-adjust-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CalculationResponse struct {
	ID               string          `json:"id"`
	ConfigID         string          `json:"config_id"`
	EmployeeID       string          `json:"employee_id"`
	PayPeriodID      string          `json:"pay_period_id"`
	PayYear          int             `json:"pay_year"`
	PayCycleNumber   int             `json:"pay_cycle_number"`
	PayElementID     string          `json:"pay_element_id"`
	OriginalAmount   decimal.Decimal `json:"original_amount"`
	IncreaseType     string          `json:"increase_type"`
	IncreaseValue    decimal.Decimal `json:"increase_value"`
	AdjustmentAmount decimal.Decimal `json:"adjustment_amount"`
}

type GenerationResultResponse struct {
	ConfigID        string                `json:"config_id"`
	Count           int                   `json:"count"`
	TotalAdjustment decimal.Decimal       `json:"total_adjustment"`
	Calculations    []CalculationResponse `json:"calculations"`
}

type PendingAmountResponse struct {
	EmployeeID       string          `json:"employee_id"`
	PayElementID     string          `json:"pay_element_id"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	CalculationCount int             `json:"calculation_count"`
}

type EmployeePendingItemResponse struct {
	ConfigID         string          `json:"config_id"`
	ConfigName       string          `json:"config_name"`
	PayElementID     string          `json:"pay_element_id"`
	Amount           decimal.Decimal `json:"amount"`
	CalculationCount int             `json:"calculation_count"`
}

type EmployeePendingResponse struct {
	EmployeeID  string                        `json:"employee_id"`
	TotalAmount decimal.Decimal               `json:"total_amount"`
	Items       []EmployeePendingItemResponse `json:"items"`
}

type MarkProcessedRequest struct {
	EmployeeID   string `json:"employee_id"`
	PayGroupID   string `json:"pay_group_id"`
	PayrollRunID string `json:"payroll_run_id"`
}

func (r *MarkProcessedRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.PayGroupID) {
		errs = append(errs, validator.ValidationError{Field: "pay_group_id", Message: "is required"})
	}
	if validator.IsEmpty(r.PayrollRunID) {
		errs = append(errs, validator.ValidationError{Field: "payroll_run_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkProcessedResponse struct {
	EmployeeID   string `json:"employee_id"`
	PayrollRunID string `json:"payroll_run_id"`
	RowsMarked   int64  `json:"rows_marked"`
}
