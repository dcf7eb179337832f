package retro

import (
	"time"

	"github.com/shopspring/decimal"
)

type ConfigStatus string

const (
	ConfigStatusDraft    ConfigStatus = "draft"
	ConfigStatusApproved ConfigStatus = "approved"
	ConfigStatusArchived ConfigStatus = "archived"
)

type IncreaseType string

const (
	IncreaseTypePercentage IncreaseType = "percentage"
	IncreaseTypeFixed      IncreaseType = "fixed"
)

// Config is a named, approved retroactive adjustment definition scoped to a
// pay group and effective date range. Targeting fields control which payroll
// runs may consume its calculations.
type Config struct {
	ID         string
	CompanyID  string
	PayGroupID string
	Name       string

	EffectiveStartDate time.Time
	EffectiveEndDate   time.Time
	Status             ConfigStatus

	// TargetRunTypes restricts which payroll run types the adjustment
	// applies to; empty means any run type.
	TargetRunTypes []string
	// TargetPayPeriodID restricts consumption to a single pay period.
	TargetPayPeriodID *string
	// AutoInclude marks the config for automatic pickup by payroll runs;
	// false requires manual inclusion.
	AutoInclude bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ConfigItem targets one pay element of the parent config.
type ConfigItem struct {
	ID             string
	ConfigID       string
	PayElementID   string
	PayElementCode string

	IncreaseType  IncreaseType
	IncreaseValue decimal.Decimal
	MinAmount     *decimal.Decimal
	MaxAmount     *decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Calculation is one materialized adjustment per (config, employee,
// historical pay period, pay element). Pending until ProcessedInRunID is set.
type Calculation struct {
	ID          string
	ConfigID    string
	CompanyID   string
	EmployeeID  string
	PayPeriodID string

	PayYear        int
	PayCycleNumber int
	PayElementID   string

	OriginalAmount   decimal.Decimal
	IncreaseType     IncreaseType
	IncreaseValue    decimal.Decimal
	AdjustmentAmount decimal.Decimal

	EmployeeStatus  string
	CalculationDate time.Time

	ProcessedInRunID *string
	ProcessedAt      *time.Time

	CreatedAt time.Time
}

// PendingAmount is the aggregate of unprocessed calculations for one
// (employee, pay element) pair across the surviving configs.
type PendingAmount struct {
	EmployeeID       string
	PayElementID     string
	TotalAmount      decimal.Decimal
	CalculationCount int
}

// EmployeePendingItem is the per-(config, pay element) breakdown for a single
// employee.
type EmployeePendingItem struct {
	ConfigID         string
	ConfigName       string
	PayElementID     string
	Amount           decimal.Decimal
	CalculationCount int
}

// EmployeePending is an employee's total unprocessed retro amount with its
// itemized breakdown.
type EmployeePending struct {
	EmployeeID  string
	TotalAmount decimal.Decimal
	Items       []EmployeePendingItem
}

// GenerationResult reports one materialization pass over a config.
type GenerationResult struct {
	ConfigID        string
	Count           int
	TotalAdjustment decimal.Decimal
	Calculations    []Calculation
}

// PendingOptions filter which approved configs contribute to pending
// amounts.
type PendingOptions struct {
	// RunType, when set, excludes configs whose TargetRunTypes do not
	// include it.
	RunType string
	// PayPeriodID is matched against configs carrying a TargetPayPeriodID.
	PayPeriodID string
	// IncludeManual also considers configs with AutoInclude = false.
	IncludeManual bool
}
