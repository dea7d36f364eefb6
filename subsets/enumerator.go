package subsets

import (
	"errors"

	"gonum.org/v1/gonum/stat/combin"
)

// ErrBadInterval is returned when the interval bounds are inverted.
var ErrBadInterval = errors.New("subsets: interval upper bound below lower bound")

// ErrBadSubsetSize is returned when the subset size is negative or
// exceeds the interval length.
var ErrBadSubsetSize = errors.New("subsets: subset size out of range")

// Enumerator walks all k-subsets of the integer interval [lo, hi) in
// lexicographic order. The zero value is not usable; construct with New.
type Enumerator struct {
	k, lo, n int

	gen   *combin.CombinationGenerator
	cur   []int // current combination over [0, n), ascending
	prev  []int // previous combination, for change detection
	out   []int // offset-mapped view handed to callers
	valid bool
}

// New returns an Enumerator over the k-subsets of [lo, hi), positioned
// on the lexicographically first subset.
func New(k, lo, hi int) (*Enumerator, error) {
	if hi < lo {
		return nil, ErrBadInterval
	}
	if k < 0 || k > hi-lo {
		return nil, ErrBadSubsetSize
	}
	e := &Enumerator{
		k:    k,
		lo:   lo,
		n:    hi - lo,
		cur:  make([]int, k),
		prev: make([]int, k),
		out:  make([]int, k),
	}
	e.Reset()

	return e, nil
}

// Reset repositions the enumerator on the first subset.
func (e *Enumerator) Reset() {
	e.valid = true
	if e.k == 0 {
		// A single empty subset; the generator below requires k > 0.
		e.gen = nil

		return
	}
	e.gen = combin.NewCombinationGenerator(e.n, e.k)
	e.gen.Next()
	e.gen.Combination(e.cur)
}

// Valid reports whether the enumerator currently points at a subset.
// It becomes false once Advance exhausts the enumeration.
func (e *Enumerator) Valid() bool {
	return e.valid
}

// Size returns k, the number of elements per subset.
func (e *Enumerator) Size() int {
	return e.k
}

// At returns the i-th (ascending) index of the current subset, already
// mapped into [lo, hi). It must not be called when Valid is false.
func (e *Enumerator) At(i int) int {
	return e.lo + e.cur[i]
}

// Subset returns the current subset as ascending indices in [lo, hi).
// The returned slice is reused by subsequent calls; copy it to retain.
// It must not be called when Valid is false.
func (e *Enumerator) Subset() []int {
	for i, v := range e.cur {
		e.out[i] = e.lo + v
	}

	return e.out
}

// Advance steps to the lexicographic successor and returns the first
// position whose index differs from the previous subset (positions
// before it are unchanged, positions after it always change too). When
// the enumeration is exhausted Advance invalidates the enumerator and
// returns 0; check Valid before using the result.
func (e *Enumerator) Advance() int {
	if !e.valid {
		return 0
	}
	if e.k == 0 || !e.next() {
		e.valid = false

		return 0
	}
	for i, v := range e.cur {
		if v != e.prev[i] {
			return i
		}
	}

	// Unreachable: successors always differ somewhere.
	return 0
}

// next saves the current combination and pulls the following one from
// the generator, reporting whether one existed.
func (e *Enumerator) next() bool {
	copy(e.prev, e.cur)
	if !e.gen.Next() {
		return false
	}
	e.gen.Combination(e.cur)

	return true
}
