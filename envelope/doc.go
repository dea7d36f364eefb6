// Package envelope computes the geometric structure of piecewise-linear
// convex value functions: the upper envelope of a set of hyperplanes
// over the probability simplex.
//
// Two independent entry points share the vocabulary of package simplex:
//
// # FindVertices
//
// Given "new" hyperplanes to explore and "existing" hyperplanes already
// known, FindVertices returns every candidate corner obtained by
// intersecting one new hyperplane with S−1 further constraints drawn
// from the existing hyperplanes and the S simplex boundary faces.
//
// Method, per new hyperplane h:
//  1. Enumerate (S−1)-subsets of the unified index universe
//     {0 … len(existing)+S−1} in lexicographic order (package subsets);
//     an index below len(existing) selects an existing hyperplane, any
//     other selects boundary face index−len(existing). The split is a
//     plain threshold comparison; no constraint polymorphism.
//  2. Assemble a square (S+1)×(S+1) system over the unknowns
//     (x₁…x_S, v): the row h|−1, one row per selected hyperplane, one
//     xᵢ = 0 row per selected face, and the closing Σxᵢ = 1 row.
//  3. Solve by QR least squares (gonum/mat). Singular systems are not
//     errors: their non-finite or out-of-range solutions simply fail
//     the filter.
//  4. Keep (x, v) only when every coordinate of x lies in [0, 1]
//     (widened to [−ε, 1+ε] by Options.Epsilon).
//  5. Stop early once the subset's smallest index selects a boundary
//     face: the remaining subsets are boundary-only and the simplex
//     corners are assumed known by other means.
//
// The result is deliberately non-unique (a corner shared by more than
// S hyperplanes is reported once per deriving subset) and each value
// is valid only for the subset that produced it.
//
// Complexity: O(|new| · C(|existing|+S, S−1) · S³) worst case.
//
// # OptimisticValue
//
// Given a query point and known (point, value) pairs, OptimisticValue
// returns the largest value the point could still achieve under any
// hyperplane consistent with the evidence: it maximizes point·h over
// free coefficients h subject to q·h ≤ v for every known pair (q, v)
// (package linprog). No known pairs means no claimed value: the bound
// is 0. An infeasible or unbounded program signals a broken caller
// contract (mismatched dimensions, negative known values) and surfaces
// as ErrUnboundedValue.
//
// # Errors
//
//	simplex.ErrEmptyInput        - zero-dimensional inputs.
//	simplex.ErrDimensionMismatch - hyperplanes/points of differing S.
//	ErrUnboundedValue            - the optimistic-bound LP failed.
//
// Both routines are pure: no package state, no input mutation, all
// working storage call-local. Calls may be parallelized freely by the
// caller (one goroutine per new hyperplane or per query point) with no
// coordination beyond collecting results.
package envelope
