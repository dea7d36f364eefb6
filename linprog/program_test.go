package linprog_test

import (
	"testing"

	"github.com/favorart/polytope/linprog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProgram_MaximizeBounded solves max 3x+4y s.t. x+y<=10, x<=6 with
// the default non-negativity bounds.
func TestProgram_MaximizeBounded(t *testing.T) {
	prog, err := linprog.New(2)
	require.NoError(t, err)
	require.NoError(t, prog.SetObjective([]float64{3, 4}, linprog.Maximize))
	require.NoError(t, prog.AddConstraint([]float64{1, 1}, linprog.LessEqual, 10))
	require.NoError(t, prog.AddConstraint([]float64{1, 0}, linprog.LessEqual, 6))

	x, obj, err := prog.Solve()
	require.NoError(t, err)
	assert.InDelta(t, 40.0, obj, 1e-9, "all weight goes to y")
	assert.InDelta(t, 0.0, x[0], 1e-9)
	assert.InDelta(t, 10.0, x[1], 1e-9)
}

// TestProgram_MinimizeGreaterEqual solves min x+y s.t. x+y >= 1.
func TestProgram_MinimizeGreaterEqual(t *testing.T) {
	prog, err := linprog.New(2)
	require.NoError(t, err)
	require.NoError(t, prog.SetObjective([]float64{1, 1}, linprog.Minimize))
	require.NoError(t, prog.AddConstraint([]float64{1, 1}, linprog.GreaterEqual, 1))

	_, obj, err := prog.Solve()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, obj, 1e-9)
}

// TestProgram_FreeVariable verifies that an unbounded variable may go
// negative: max x s.t. x <= -5 has optimum x = -5.
func TestProgram_FreeVariable(t *testing.T) {
	prog, err := linprog.New(1)
	require.NoError(t, err)
	require.NoError(t, prog.SetUnbounded(0))
	require.NoError(t, prog.SetObjective([]float64{1}, linprog.Maximize))
	require.NoError(t, prog.AddConstraint([]float64{1}, linprog.LessEqual, -5))

	x, obj, err := prog.Solve()
	require.NoError(t, err)
	assert.InDelta(t, -5.0, x[0], 1e-9)
	assert.InDelta(t, -5.0, obj, 1e-9)
}

// TestProgram_Equality solves min x+2y s.t. x+y = 3.
func TestProgram_Equality(t *testing.T) {
	prog, err := linprog.New(2)
	require.NoError(t, err)
	require.NoError(t, prog.SetObjective([]float64{1, 2}, linprog.Minimize))
	require.NoError(t, prog.AddConstraint([]float64{1, 1}, linprog.Equal, 3))

	x, obj, err := prog.Solve()
	require.NoError(t, err)
	assert.InDelta(t, 3.0, obj, 1e-9)
	assert.InDelta(t, 3.0, x[0], 1e-9)
	assert.InDelta(t, 0.0, x[1], 1e-9)
}

// TestProgram_Unbounded detects the unconstrained-maximization ray:
// max x with the only constraint touching y.
func TestProgram_Unbounded(t *testing.T) {
	prog, err := linprog.New(2)
	require.NoError(t, err)
	require.NoError(t, prog.SetObjective([]float64{1, 0}, linprog.Maximize))
	require.NoError(t, prog.AddConstraint([]float64{0, 1}, linprog.LessEqual, 1))

	_, _, err = prog.Solve()
	assert.ErrorIs(t, err, linprog.ErrUnbounded)
}

// TestProgram_Infeasible detects x <= -1 against the implicit x >= 0.
func TestProgram_Infeasible(t *testing.T) {
	prog, err := linprog.New(1)
	require.NoError(t, err)
	require.NoError(t, prog.SetObjective([]float64{1}, linprog.Minimize))
	require.NoError(t, prog.AddConstraint([]float64{1}, linprog.LessEqual, -1))

	_, _, err = prog.Solve()
	assert.ErrorIs(t, err, linprog.ErrInfeasible)
}

// TestProgram_ZeroRowInfeasible catches the trivially unsatisfiable
// all-zero row 0 >= 1 before it reaches the solver.
func TestProgram_ZeroRowInfeasible(t *testing.T) {
	prog, err := linprog.New(1)
	require.NoError(t, err)
	require.NoError(t, prog.SetObjective([]float64{1}, linprog.Minimize))
	require.NoError(t, prog.AddConstraint([]float64{0}, linprog.GreaterEqual, 1))

	_, _, err = prog.Solve()
	assert.ErrorIs(t, err, linprog.ErrInfeasible)
}

// TestProgram_ZeroRowDropped ensures a satisfiable all-zero row is
// ignored rather than rejected.
func TestProgram_ZeroRowDropped(t *testing.T) {
	prog, err := linprog.New(1)
	require.NoError(t, err)
	require.NoError(t, prog.SetObjective([]float64{1}, linprog.Maximize))
	require.NoError(t, prog.AddConstraint([]float64{0}, linprog.LessEqual, 2))
	require.NoError(t, prog.AddConstraint([]float64{1}, linprog.LessEqual, 7))

	x, obj, err := prog.Solve()
	require.NoError(t, err)
	assert.InDelta(t, 7.0, x[0], 1e-9)
	assert.InDelta(t, 7.0, obj, 1e-9)
}

// TestProgram_NoConstraints pins every variable to zero when nothing
// pushes the objective.
func TestProgram_NoConstraints(t *testing.T) {
	prog, err := linprog.New(2)
	require.NoError(t, err)
	require.NoError(t, prog.SetObjective([]float64{1, 1}, linprog.Minimize))

	x, obj, err := prog.Solve()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, x)
	assert.Equal(t, 0.0, obj)
}

// TestProgram_Validation exercises the builder sentinels.
func TestProgram_Validation(t *testing.T) {
	_, err := linprog.New(0)
	assert.ErrorIs(t, err, linprog.ErrNoVariables)

	prog, err := linprog.New(2)
	require.NoError(t, err)

	_, _, err = prog.Solve()
	assert.ErrorIs(t, err, linprog.ErrNoObjective)

	assert.ErrorIs(t, prog.SetObjective([]float64{1}, linprog.Minimize), linprog.ErrDimensionMismatch)
	assert.ErrorIs(t, prog.AddConstraint([]float64{1, 2, 3}, linprog.LessEqual, 0), linprog.ErrDimensionMismatch)
	assert.ErrorIs(t, prog.AddConstraint([]float64{1, 2}, linprog.Relation(42), 0), linprog.ErrBadRelation)
	assert.ErrorIs(t, prog.SetUnbounded(-1), linprog.ErrVariableIndex)
	assert.ErrorIs(t, prog.SetUnbounded(2), linprog.ErrVariableIndex)
}

// TestProgram_StagedRowsCopied ensures later mutation of a staged slice
// does not leak into the program.
func TestProgram_StagedRowsCopied(t *testing.T) {
	prog, err := linprog.New(1)
	require.NoError(t, err)

	row := []float64{1}
	require.NoError(t, prog.SetObjective(row, linprog.Maximize))
	require.NoError(t, prog.AddConstraint(row, linprog.LessEqual, 4))
	row[0] = -100

	x, obj, err := prog.Solve()
	require.NoError(t, err)
	assert.InDelta(t, 4.0, x[0], 1e-9)
	assert.InDelta(t, 4.0, obj, 1e-9)
}
