package employee

import "context"

type CompensationRepository interface {
	// GetPrimaryActive returns the employee's primary active compensation
	// record. ErrCompensationNotFound when none exists.
	GetPrimaryActive(ctx context.Context, employeeID string, companyID string) (Compensation, error)
}
