package payroll

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// PayPeriod is one calendar window of a pay group's payroll calendar.
type PayPeriod struct {
	ID          string
	CompanyID   string
	PayGroupID  string
	StartDate   time.Time
	EndDate     time.Time
	PayYear     int
	CycleNumber int
	Status      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type ElementType string

const (
	ElementTypeEarning   ElementType = "earning"
	ElementTypeDeduction ElementType = "deduction"
)

// PayElement is a named payroll line-item category identified by code.
type PayElement struct {
	ID        string
	CompanyID string
	Code      string
	Name      string
	Type      ElementType
	IsActive  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

type PayrollStatus string

const (
	PayrollStatusDraft      PayrollStatus = "draft"
	PayrollStatusCalculated PayrollStatus = "calculated"
	PayrollStatusApproved   PayrollStatus = "approved"
	PayrollStatusPaid       PayrollStatus = "paid"
)

// FinalizedStatuses are the employee payroll statuses eligible for
// retroactive adjustment. Draft runs are never retro-adjusted.
var FinalizedStatuses = []PayrollStatus{
	PayrollStatusCalculated,
	PayrollStatusApproved,
	PayrollStatusPaid,
}

// EarningLine is one line of the calculation_details earnings array.
type EarningLine struct {
	Code   string          `json:"code"`
	Amount decimal.Decimal `json:"amount"`
}

// CalculationDetails represents the JSONB breakdown of a finalized payroll
// calculation.
type CalculationDetails struct {
	Earnings []EarningLine `json:"earnings,omitempty"`
}

// Value implements driver.Valuer for database storage
func (cd CalculationDetails) Value() (driver.Value, error) {
	if len(cd.Earnings) == 0 {
		return nil, nil
	}
	return json.Marshal(cd)
}

// Scan implements sql.Scanner for database retrieval
func (cd *CalculationDetails) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan CalculationDetails: invalid type")
	}

	return json.Unmarshal(bytes, cd)
}

// EmployeePayroll is a historical payroll record per employee per pay period.
// Read-only to this service; records are produced by the payroll run
// orchestrator.
type EmployeePayroll struct {
	ID             string
	CompanyID      string
	EmployeeID     string
	PayPeriodID    string
	PayYear        int
	PayCycleNumber int
	EmployeeStatus string
	Status         PayrollStatus

	GrossPay           decimal.Decimal
	NetPay             decimal.Decimal
	CalculationDetails CalculationDetails

	CreatedAt time.Time
	UpdatedAt time.Time
}
