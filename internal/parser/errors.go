package parser

import (
	"errors"
)

// ErrInvalidGUID ...
var ErrInvalidGUID = errors.New("invalid guid")
