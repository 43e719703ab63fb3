package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrInvalidInput  = errors.New("invalid input")
	ErrNoValidTexts  = errors.New("no valid texts found")
)
