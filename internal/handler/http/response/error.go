package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/payroll-adjust-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-adjust-go/internal/domain/leave"
	"github.com/cmlabs-hris/payroll-adjust-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-adjust-go/internal/domain/retro"
	"github.com/cmlabs-hris/payroll-adjust-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrInvalidPeriodRange):
		BadRequest(w, "Pay period start date is after end date", nil)
	case errors.Is(err, leave.ErrNegativeDailyRate):
		BadRequest(w, "Daily rate must be non-negative", nil)

	// Payroll reference data errors
	case errors.Is(err, payroll.ErrPayPeriodNotFound):
		NotFound(w, "Pay period not found")
	case errors.Is(err, payroll.ErrPayElementNotFound):
		NotFound(w, "Pay element not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrCompensationNotFound):
		NotFound(w, "No primary active compensation record found")

	// Retro domain errors
	case errors.Is(err, retro.ErrConfigNotFound):
		NotFound(w, "Retroactive pay config not found")
	case errors.Is(err, retro.ErrNoConfigItems):
		BadRequest(w, "Retroactive pay config has no items", nil)
	case errors.Is(err, retro.ErrNoPayPeriodsInRange):
		BadRequest(w, "No pay periods found in effective date range", nil)
	case errors.Is(err, retro.ErrCalculationsAlreadyProcessed):
		Conflict(w, "Config has calculations already processed in a payroll run")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
