package adapter

import "errors"

var (
	// ErrSecondFactorRequired signals that the account has two-factor
	// authentication enabled and a password must be submitted.
	ErrSecondFactorRequired = errors.New("second factor required")

	// ErrUnauthorized signals rejected credentials or login data.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrNotConnected is returned by calls made before Connect succeeded.
	ErrNotConnected = errors.New("messenger is not connected")

	// ErrConversationNotFound is returned for identifiers the session has
	// not seen in its dialog list.
	ErrConversationNotFound = errors.New("conversation not found")

	// ErrClientPanicked is reported when the background transport client
	// panics. The session cannot be used afterwards.
	ErrClientPanicked = errors.New("transport client panicked")

	// ErrUserNotFound is returned when a sender cannot be resolved.
	ErrUserNotFound = errors.New("user not found")
)
