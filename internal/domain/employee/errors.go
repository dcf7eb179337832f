package employee

import "errors"

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrCompensationNotFound = errors.New("no primary active compensation record found")
)
