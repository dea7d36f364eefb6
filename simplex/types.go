package simplex

import "errors"

// ErrEmptyInput is returned when a range of vectors is empty or the
// vectors themselves have zero length.
var ErrEmptyInput = errors.New("simplex: empty input")

// ErrDimensionMismatch is returned when vectors that must share a
// dimensionality do not.
var ErrDimensionMismatch = errors.New("simplex: dimension mismatch")

// Point is a point of the S-dimensional probability simplex: S real
// coordinates, conventionally non-negative and summing to 1.
type Point []float64

// Hyperplane is a linear functional over the simplex, represented by
// its S coefficients. Its value at a Point p is the dot product.
type Hyperplane []float64

// Vertex pairs a Point with the value the deriving hyperplane subset
// assigns to it. The value is valid only relative to that subset:
// re-deriving the same geometric point from different hyperplanes may
// yield a different value.
type Vertex struct {
	Point Point
	Value float64
}
