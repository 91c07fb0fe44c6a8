package models

import "errors"

var (
	// ErrStorageUnavailable means no document store connection is configured.
	// Read paths swallow it and return empty results; write paths surface it.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrInvalidMode means a question referenced a mode outside the fixed set.
	ErrInvalidMode = errors.New("invalid mode")
)
