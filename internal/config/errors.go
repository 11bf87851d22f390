package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid interpreter settings
	// (for example, a negative send delay or a zero copy limit).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates a missing record or session path.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
