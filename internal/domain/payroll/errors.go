package payroll

import "errors"

var (
	ErrPayPeriodNotFound  = errors.New("pay period not found")
	ErrPayElementNotFound = errors.New("pay element not found")
)
