package color

import (
	"errors"
	"fmt"
)

// ErrResolution is the sentinel every *ResolutionError matches.
var ErrResolution = errors.New("cannot resolve to color/gradient/pattern")

// ResolutionError reports a raw value that fits none of the color variants,
// or a gradient or pattern mapping whose fields failed validation.
type ResolutionError struct {
	Value any
	Err   error
}

func (e *ResolutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %#v: %v", ErrResolution, e.Value, e.Err)
	}

	return fmt.Sprintf("%v: %#v", ErrResolution, e.Value)
}

func (e *ResolutionError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrResolution, e.Err}
	}

	return []error{ErrResolution}
}
