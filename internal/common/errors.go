package common

import "errors"

var (
	// ErrEmptyAPIKey is returned when the user submits a blank key.
	ErrEmptyAPIKey = errors.New("api key must not be empty")

	// ErrInvalidMode is returned for a mode hint that is neither test nor prod.
	ErrInvalidMode = errors.New("invalid mode")

	// ErrAborted marks a flow the user backed out of.
	ErrAborted = errors.New("aborted")
)
