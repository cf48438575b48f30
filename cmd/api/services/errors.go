package services

import "errors"

// Outcomes handlers translate into status codes with errors.Is. Services wrap
// them with detail, e.g. fmt.Errorf("%w: title is required", ErrValidation).
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUpstream means a remote resource, such as an imported feed, failed.
	ErrUpstream = errors.New("upstream unavailable")
)
