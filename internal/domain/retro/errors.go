package retro

import "errors"

var (
	ErrConfigNotFound                  = errors.New("retroactive pay config not found")
	ErrNoConfigItems                   = errors.New("retroactive pay config has no items")
	ErrNoPayPeriodsInRange          = errors.New("no pay periods found in effective date range")
	ErrCalculationsAlreadyProcessed = errors.New("config has calculations already processed in a payroll run")
)
