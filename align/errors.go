package align

import "errors"

// Sentinel errors for align operations.
var (
	// ErrEmptyText indicates one of the input texts has no sentences.
	ErrEmptyText = errors.New("align: both texts must contain at least one sentence")
	// ErrBadOptions indicates an out-of-range configuration value.
	ErrBadOptions = errors.New("align: AnchorThreshold must be >= 1 and MaxCycles >= 0")
)
