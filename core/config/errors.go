package config

import "errors"

var (
	// ErrInvalidConfigType indicates Load received something other than a
	// non-nil pointer to a struct.
	ErrInvalidConfigType = errors.New("config must be a non-nil struct pointer")

	// ErrParseFailed indicates environment parsing failed, typically a
	// missing required variable or an unparsable value.
	ErrParseFailed = errors.New("failed to parse environment")
)
