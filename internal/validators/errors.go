package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidAPIID     = errors.New("API ID must be a valid 32-bit number")
	ErrEmptyAPIHash     = errors.New("API hash is required")
	ErrEmptySelection   = errors.New("at least one number is required")
	ErrInvalidSelection = errors.New("invalid selection")
)
