package statics

import (
	"errors"
	"fmt"
)

// ErrDegenerateBeam reports a beam whose span is zero or negative.
var ErrDegenerateBeam = errors.New("statics: beam span must be positive")

// ErrStationCount reports a discretization too coarse to describe the span.
var ErrStationCount = errors.New("statics: station count must be at least 2")

// ErrUnknownChannel reports a diagram channel tag that is neither shear nor moment.
var ErrUnknownChannel = errors.New("statics: unknown diagram channel")

// A ValidationError describes the first load descriptor that violates the
// beam geometry. Index is the position of the descriptor in the input
// sequence, counting from zero.
type ValidationError struct {
	Index  int
	Kind   Kind
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("statics: load %d (%s): %s", e.Index, e.Kind, e.Reason)
}
