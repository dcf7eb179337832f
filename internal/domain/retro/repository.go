package retro

import "context"

// ConfigRepository reads retroactive pay configurations. All methods include
// companyID to prevent cross-company data access.
type ConfigRepository interface {
	GetByID(ctx context.Context, id string, companyID string) (Config, error)
	GetItems(ctx context.Context, configID string, companyID string) ([]ConfigItem, error)
	// GetApprovedByPayGroup returns approved configs for the pay group.
	// Configs with AutoInclude = false are returned only when includeManual
	// is set.
	GetApprovedByPayGroup(ctx context.Context, companyID, payGroupID string, includeManual bool) ([]Config, error)
}

// CalculationRepository owns the materialized adjustment rows.
type CalculationRepository interface {
	// ReplaceByConfig deletes all rows for the config and inserts the given
	// set, in one transaction. The config row is locked for the duration so
	// concurrent regenerations of the same config serialize.
	ReplaceByConfig(ctx context.Context, configID string, companyID string, calculations []Calculation) error
	// HasProcessed reports whether any row for the config has been consumed
	// by a payroll run.
	HasProcessed(ctx context.Context, configID string, companyID string) (bool, error)
	// GetPendingByConfigs returns unprocessed rows for the given configs.
	// employeeID narrows to one employee when non-empty.
	GetPendingByConfigs(ctx context.Context, companyID string, configIDs []string, employeeID string) ([]Calculation, error)
	// MarkProcessed stamps the employee's unprocessed rows under the pay
	// group's approved configs with the run ID. Idempotent: already
	// processed rows are excluded by the processed_in_run_id IS NULL guard.
	MarkProcessed(ctx context.Context, companyID, employeeID, payGroupID, payrollRunID string) (int64, error)
}
