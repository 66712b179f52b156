package common

import "errors"

var (
	// Storage errors. They are logged by the safe store and never reach callers
	// of the key-value contract.
	ErrStorageUnavailable = errors.New("persistent storage unavailable")

	// Token errors.
	ErrInvalidToken = errors.New("invalid token")

	// UI state errors.
	ErrUnknownTheme = errors.New("unknown theme")

	// Input errors.
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrEmptyInput       = errors.New("empty input")
)
