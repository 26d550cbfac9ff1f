package engine

import "errors"

// Error kinds surfaced by the engine. Store failures are wrapped and
// propagated as-is.
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrNotFound       = errors.New("product not found")
	ErrNoPriceData    = errors.New("no price data")
)
