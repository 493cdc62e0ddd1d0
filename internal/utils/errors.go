package utils

import "errors"

// Common application errors used across services.
var (
	ErrMissingRequiredField = errors.New("MISSING_REQUIRED_FIELD")
	ErrNotFound             = errors.New("NOT_FOUND")
	ErrInvalidIdentifier    = errors.New("INVALID_IDENTIFIER")
	ErrStoreUnavailable     = errors.New("STORE_UNAVAILABLE")
	ErrInvalidStatus        = errors.New("INVALID_STATUS")
	ErrInvalidToken         = errors.New("INVALID_TOKEN")
)
