// Package simplex defines the shared geometric vocabulary for value
// functions over the probability simplex, plus the small numeric
// helpers every other package leans on.
//
// # Vocabulary
//
//   - Point      — an S-dimensional belief/weighting point; by convention
//     non-negative with coordinates summing to 1, though the library does
//     not enforce this (callers guarantee it).
//   - Hyperplane — S real coefficients of a linear functional over the
//     simplex; in decision-theoretic terms, the expected value of a fixed
//     policy as a function of belief.
//   - Vertex     — a (Point, value) pair; a corner of the upper envelope
//     of some hyperplane subset, valid only relative to that subset.
//
// All three are plain slices or slice-holding structs: freely copyable,
// no ownership entanglement, no hidden state.
//
// # Helpers
//
//   - Dim            — shared dimensionality of a vector range, with
//     strict validation.
//   - Uniform        — the uniform distribution of a given size.
//   - Project        — projection of an arbitrary vector onto the
//     probability simplex (clamp negatives, renormalize; degenerate
//     inputs fall back to uniform).
//   - IsDistribution — tolerance check that a point lies on the simplex.
//
// # Errors
//
//	ErrEmptyInput        - zero vectors supplied, or dimensionality 0.
//	ErrDimensionMismatch - vectors of differing lengths in one range.
//
// All functions are pure and deterministic; none of them mutates its
// arguments.
package simplex
