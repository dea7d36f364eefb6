package envelope

import "errors"

// ErrUnboundedValue is returned when the optimistic-bound linear
// program reports no finite optimum. Under the documented preconditions
// (uniform dimensionality, non-negative known values) this cannot
// happen, so it indicates a breached caller contract rather than a
// runtime condition to recover from.
var ErrUnboundedValue = errors.New("envelope: optimistic bound has no finite optimum")

// Options tunes FindVertices.
//   - Epsilon: tolerance of the unit-interval filter on vertex
//     coordinates. The default is the exact closed interval [0, 1]
//     (Epsilon = 0); a small positive value such as 1e-9 keeps vertices
//     that sit on a boundary face but drift outside it by
//     floating-point error.
type Options struct {
	Epsilon float64
}

// DefaultOptions returns the exact [0, 1] coordinate filter.
func DefaultOptions() Options {
	return Options{Epsilon: 0}
}
