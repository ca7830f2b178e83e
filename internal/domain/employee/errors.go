package employee

import "errors"

var (
	ErrNotFound    = errors.New("employee not found")
	ErrDuplicate   = errors.New("employee id or email already in use")
	ErrImmutableID = errors.New("employeeId is immutable")
)
