package template

import (
	"errors"
)

var (
	// ErrMissingExpectedField is returned when an intermediate response lacks a field required by the next step.
	ErrMissingExpectedField = errors.New("missing expected field")
)
