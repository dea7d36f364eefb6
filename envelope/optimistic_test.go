package envelope_test

import (
	"testing"

	"github.com/favorart/polytope/envelope"
	"github.com/favorart/polytope/simplex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOptimisticValue_EmptyKnown verifies that no information bounds
// the value at exactly zero.
func TestOptimisticValue_EmptyKnown(t *testing.T) {
	got, err := envelope.OptimisticValue(simplex.Point{0.5, 0.5}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got, "exact zero, not approximately zero")
}

// TestOptimisticValue_SinglePairExact checks that querying the known
// point itself recovers the known value: the optimal hyperplane lies
// flat against the single constraint.
func TestOptimisticValue_SinglePairExact(t *testing.T) {
	known := []simplex.Vertex{
		{Point: simplex.Point{0.3, 0.7}, Value: 2.5},
	}
	got, err := envelope.OptimisticValue(simplex.Point{0.3, 0.7}, known)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, got, 1e-9)
}

// TestOptimisticValue_MonotoneTightening verifies that adding knowledge
// can only lower the bound.
func TestOptimisticValue_MonotoneTightening(t *testing.T) {
	corners := []simplex.Vertex{
		{Point: simplex.Point{1, 0}, Value: 1},
		{Point: simplex.Point{0, 1}, Value: 1},
	}
	p := simplex.Point{0.5, 0.5}

	loose, err := envelope.OptimisticValue(p, corners)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, loose, 1e-9, "corner caps alone allow the flat hyperplane at 1")

	tightened := append(corners, simplex.Vertex{Point: simplex.Point{0.5, 0.5}, Value: 0.6})
	tight, err := envelope.OptimisticValue(p, tightened)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, tight, 1e-9)
	assert.LessOrEqual(t, tight, loose)
}

// TestOptimisticValue_CornerQuery checks a query sitting on a simplex
// corner: only that corner's cap binds.
func TestOptimisticValue_CornerQuery(t *testing.T) {
	known := []simplex.Vertex{
		{Point: simplex.Point{1, 0}, Value: 1},
		{Point: simplex.Point{0, 1}, Value: 3},
	}
	got, err := envelope.OptimisticValue(simplex.Point{1, 0}, known)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-9)
}

// TestOptimisticValue_ZeroCoordinate verifies that a coefficient
// touched by neither the query nor any constraint is pinned to zero
// rather than derailing the solve.
func TestOptimisticValue_ZeroCoordinate(t *testing.T) {
	known := []simplex.Vertex{
		{Point: simplex.Point{1, 0}, Value: 2},
	}
	got, err := envelope.OptimisticValue(simplex.Point{1, 0}, known)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, 1e-9)
}

// TestOptimisticValue_Unbounded triggers the breached-contract path: a
// query weighing a coordinate no constraint caps has no finite optimum.
func TestOptimisticValue_Unbounded(t *testing.T) {
	known := []simplex.Vertex{
		{Point: simplex.Point{1, 0}, Value: 1},
	}
	_, err := envelope.OptimisticValue(simplex.Point{0.5, 0.5}, known)
	assert.ErrorIs(t, err, envelope.ErrUnboundedValue)
}

// TestOptimisticValue_Validation covers the cheap entry checks.
func TestOptimisticValue_Validation(t *testing.T) {
	known := []simplex.Vertex{
		{Point: simplex.Point{1}, Value: 1},
	}
	_, err := envelope.OptimisticValue(simplex.Point{}, known)
	assert.ErrorIs(t, err, simplex.ErrEmptyInput)

	_, err = envelope.OptimisticValue(simplex.Point{0.5, 0.5}, known)
	assert.ErrorIs(t, err, simplex.ErrDimensionMismatch)
}

// TestOptimisticValue_Idempotent ensures repeated queries reproduce
// identical bounds.
func TestOptimisticValue_Idempotent(t *testing.T) {
	known := []simplex.Vertex{
		{Point: simplex.Point{1, 0, 0}, Value: 1},
		{Point: simplex.Point{0, 1, 0}, Value: 2},
		{Point: simplex.Point{0, 0, 1}, Value: 3},
		{Point: simplex.Point{0.2, 0.3, 0.5}, Value: 1.5},
	}
	p := simplex.Point{0.1, 0.4, 0.5}

	first, err := envelope.OptimisticValue(p, known)
	require.NoError(t, err)
	second, err := envelope.OptimisticValue(p, known)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
