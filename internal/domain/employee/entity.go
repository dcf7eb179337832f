package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayFrequency maps to pay_frequency_enum in DB
type PayFrequency string

const (
	PayFrequencyHourly      PayFrequency = "hourly"
	PayFrequencyDaily       PayFrequency = "daily"
	PayFrequencyWeekly      PayFrequency = "weekly"
	PayFrequencyBiweekly    PayFrequency = "biweekly"
	PayFrequencySemimonthly PayFrequency = "semimonthly"
	PayFrequencyMonthly     PayFrequency = "monthly"
	PayFrequencyAnnual      PayFrequency = "annual"
)

// Compensation is one pay record for an employee. The primary active record
// is the basis for daily and hourly rate derivation.
type Compensation struct {
	ID         string
	CompanyID  string
	EmployeeID string

	Amount       decimal.Decimal
	PayFrequency PayFrequency
	IsPrimary    bool
	IsActive     bool

	EffectiveDate time.Time
	EndDate       *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
