package envelope

import (
	"github.com/favorart/polytope/linprog"
	"github.com/favorart/polytope/simplex"
)

// OptimisticValue returns the tightest upper bound on the value
// achievable at p given the convex upper envelope implied by the known
// (point, value) pairs: the maximum of p·h over hyperplane coefficients
// h, free in sign, subject to q·h <= v for every known (q, v).
//
// An empty known set carries no information and bounds the value at
// exactly 0. The optimal hyperplane itself is discarded; only its value
// at p is reported.
//
// ErrUnboundedValue indicates a breached caller contract: with uniform
// dimensionality and non-negative known values the program is always
// feasible (h = 0) and bounded.
func OptimisticValue(p simplex.Point, known []simplex.Vertex) (float64, error) {
	if len(known) == 0 {
		return 0, nil
	}
	s := len(p)
	if s == 0 {
		return 0, simplex.ErrEmptyInput
	}
	for _, kv := range known {
		if len(kv.Point) != s {
			return 0, simplex.ErrDimensionMismatch
		}
	}

	prog, err := linprog.New(s)
	if err != nil {
		return 0, err
	}
	if err = prog.SetObjective(p, linprog.Maximize); err != nil {
		return 0, err
	}
	// The optimistic hyperplane may need to go negative at some states.
	for i := 0; i < s; i++ {
		if err = prog.SetUnbounded(i); err != nil {
			return 0, err
		}
	}
	for _, kv := range known {
		if err = prog.AddConstraint(kv.Point, linprog.LessEqual, kv.Value); err != nil {
			return 0, err
		}
	}

	_, obj, err := prog.Solve()
	if err != nil {
		return 0, ErrUnboundedValue
	}

	return obj, nil
}
