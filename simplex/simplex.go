package simplex

import (
	"gonum.org/v1/gonum/floats"
)

// Dim returns the dimensionality shared by every vector in vecs.
//
// Returns ErrEmptyInput if vecs is empty or the common length is 0, and
// ErrDimensionMismatch if any two vectors differ in length.
//
// Complexity: O(len(vecs)).
func Dim[T ~[]float64](vecs []T) (int, error) {
	if len(vecs) == 0 {
		return 0, ErrEmptyInput
	}
	s := len(vecs[0])
	if s == 0 {
		return 0, ErrEmptyInput
	}
	for _, v := range vecs[1:] {
		if len(v) != s {
			return 0, ErrDimensionMismatch
		}
	}

	return s, nil
}

// Uniform returns the uniform distribution over n coordinates, i.e. the
// barycenter of the (n-1)-simplex. Returns nil for n <= 0.
func Uniform(n int) Point {
	if n <= 0 {
		return nil
	}
	p := make(Point, n)
	w := 1.0 / float64(n)
	for i := range p {
		p[i] = w
	}

	return p
}

// Project maps an arbitrary vector onto the probability simplex:
// negative coordinates are clamped to zero and the remainder is
// renormalized to sum to 1. When nothing positive remains (all entries
// zero or negative) the result degenerates to the uniform distribution.
//
// The input is never mutated; a fresh slice is returned. Returns nil
// for an empty input.
//
// Complexity: O(n).
func Project(v []float64) Point {
	if len(v) == 0 {
		return nil
	}
	p := make(Point, len(v))
	for i, x := range v {
		if x > 0 {
			p[i] = x
		}
	}
	sum := floats.Sum(p)
	if sum <= 0 {
		return Uniform(len(v))
	}
	floats.Scale(1/sum, p)

	return p
}

// IsDistribution reports whether p lies on the probability simplex
// within tolerance eps: every coordinate >= -eps and the total within
// eps of 1. An empty point is not a distribution.
func IsDistribution(p Point, eps float64) bool {
	if len(p) == 0 {
		return false
	}
	for _, x := range p {
		if x < -eps {
			return false
		}
	}
	sum := floats.Sum(p)

	return sum >= 1-eps && sum <= 1+eps
}
