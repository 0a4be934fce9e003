package engine

import "errors"

var (
	// ErrNotAdministrator rejects admin-only operations from other callers.
	ErrNotAdministrator = errors.New("caller is not the administrator")

	// ErrServiceDisabled rejects mint and renew while the gate is off.
	ErrServiceDisabled = errors.New("service is disabled")
)
