package extract

import (
	"errors"
)

var (
	// ErrMissingField is returned when a key path is absent from a response.
	ErrMissingField = errors.New("missing field")
	errNotMapping   = errors.New("not a mapping")
)
