package linprog

import "errors"

var (
	// ErrNoVariables is returned by New for a non-positive variable count.
	ErrNoVariables = errors.New("linprog: number of variables must be positive")

	// ErrNoObjective is returned by Solve when no objective was set.
	ErrNoObjective = errors.New("linprog: objective not set")

	// ErrDimensionMismatch is returned when a staged row's length does
	// not match the number of variables.
	ErrDimensionMismatch = errors.New("linprog: row length mismatch")

	// ErrVariableIndex is returned when a variable index is out of range.
	ErrVariableIndex = errors.New("linprog: variable index out of range")

	// ErrBadRelation is returned for an unknown constraint relation.
	ErrBadRelation = errors.New("linprog: unknown constraint relation")

	// ErrInfeasible is returned when no assignment satisfies all
	// constraints.
	ErrInfeasible = errors.New("linprog: problem is infeasible")

	// ErrUnbounded is returned when the objective can be improved
	// without limit.
	ErrUnbounded = errors.New("linprog: problem is unbounded")

	// ErrSolveFailed is returned when the underlying simplex fails for
	// numeric reasons despite a well-posed problem statement.
	ErrSolveFailed = errors.New("linprog: simplex solve failed")
)

// Relation is the comparison of a constraint row against its bound.
type Relation int

const (
	// LessEqual constrains row·x <= bound.
	LessEqual Relation = iota

	// GreaterEqual constrains row·x >= bound.
	GreaterEqual

	// Equal constrains row·x == bound.
	Equal
)

// Sense is the optimization direction of the objective.
type Sense int

const (
	// Minimize seeks the smallest objective value.
	Minimize Sense = iota

	// Maximize seeks the largest objective value.
	Maximize
)
