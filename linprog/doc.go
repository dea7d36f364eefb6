// Package linprog builds and solves small dense linear programs.
//
// It wraps gonum's Danzig simplex (gonum.org/v1/gonum/optimize/convex/lp)
// behind a builder suited to callers that assemble one throwaway LP per
// query: declare variables once, stage an objective and constraint rows,
// solve, discard.
//
//	prog, err := linprog.New(2)
//	prog.SetObjective([]float64{3, 4}, linprog.Maximize)
//	prog.AddConstraint([]float64{1, 1}, linprog.LessEqual, 10)
//	x, obj, err := prog.Solve()
//
// # Standard-form conversion
//
// gonum's Simplex consumes the standard form (minimize cᵀx subject to
// Ax = b, x ≥ 0). Solve performs the conversion in-package:
//
//   - maximize objectives are negated;
//   - each LessEqual/GreaterEqual row gains a non-negative slack column
//     (+1/−1); Equal rows gain none;
//   - variables declared free via SetUnbounded are sign-split into a
//     positive and a negative part; bounded variables keep a single
//     column, preserving their implicit x ≥ 0;
//   - all-zero constraint rows are checked for trivial infeasibility and
//     dropped; all-zero columns are dropped when their cost cannot push
//     the objective (otherwise they witness an unbounded ray), since the
//     underlying solver rejects degenerate rows and columns outright.
//
// The reported solution and objective are mapped back to the original
// variables and sense.
//
// # Errors
//
//	ErrNoVariables       - constructed with a non-positive variable count.
//	ErrNoObjective       - Solve called before SetObjective.
//	ErrDimensionMismatch - a staged row has the wrong length.
//	ErrVariableIndex     - SetUnbounded index out of range.
//	ErrBadRelation       - unknown constraint relation.
//	ErrInfeasible        - no assignment satisfies the constraints.
//	ErrUnbounded         - the objective can be improved without limit.
//	ErrSolveFailed       - the simplex failed numerically.
//
// A Program is a plain value with no background state; distinct
// Programs may be built and solved concurrently, but a single Program
// must not be shared between goroutines.
package linprog
