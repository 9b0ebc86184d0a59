package advisor

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when an input is out of its documented range.
// Inputs are rejected before any computation, never silently clamped.
var ErrInvalidInput = errors.New("invalid input")

// ErrDataUnavailable is returned by external collaborators (market data,
// currency rates) when a lookup failed or returned nothing.
var ErrDataUnavailable = errors.New("data not available")

// invalidf formats an error wrapping ErrInvalidInput.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
