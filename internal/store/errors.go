package store

import "errors"

// Sentinel errors returned (wrapped) by the file-backed store. Load never
// returns them; they are logged and turned into an absent record.
var (
	// ErrConfigNotFound is returned when the record file does not exist.
	ErrConfigNotFound = errors.New("configuration record not found")

	// ErrConfigCorrupted is returned when the record file exists but cannot
	// be decoded.
	ErrConfigCorrupted = errors.New("configuration record is corrupted")
)
