package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrLeaveTypeNotFound    = errors.New("leave type not found")
	ErrPaymentRuleNotFound  = errors.New("leave payment rule not found")
	ErrInvalidPeriodRange   = errors.New("pay period start date is after end date")
	ErrNegativeDailyRate    = errors.New("daily rate must be non-negative")
)
