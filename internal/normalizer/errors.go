package normalizer

import (
	"errors"
)

var (
	// ErrInvalidRoleShape is returned for a role entry that is not a single-key mapping.
	ErrInvalidRoleShape = errors.New("invalid role shape")
	// ErrInvalidMergeFieldShape is returned for a merge field entry that is not a single-key mapping to a scalar.
	ErrInvalidMergeFieldShape = errors.New("invalid merge field shape")
	// ErrInvalidTagShape is returned for a tag entry that is neither a string nor a single-key mapping.
	ErrInvalidTagShape = errors.New("invalid tag shape")
)
