package billing

import "errors"

// Error kinds surfaced by the billing core. Callers wrap them with %w and
// match with errors.Is.
var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrInvalidInstallments = errors.New("invalid installments")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
)
