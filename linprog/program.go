package linprog

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// simplexTol is the reduced-cost tolerance handed to gonum's Simplex.
const simplexTol = 1e-10

// Program is an in-construction linear program over a fixed set of
// variables. Variables are non-negative unless declared free with
// SetUnbounded. The zero value is not usable; construct with New.
type Program struct {
	nVars     int
	sense     Sense
	objective []float64
	free      []bool

	rows [][]float64
	rels []Relation
	rhs  []float64
}

// New returns an empty Program over nVars decision variables.
func New(nVars int) (*Program, error) {
	if nVars <= 0 {
		return nil, ErrNoVariables
	}

	return &Program{
		nVars: nVars,
		free:  make([]bool, nVars),
	}, nil
}

// NumVariables returns the number of decision variables.
func (p *Program) NumVariables() int {
	return p.nVars
}

// SetObjective stages the objective row and optimization sense. The row
// is copied; later mutation of the argument does not affect the program.
func (p *Program) SetObjective(row []float64, sense Sense) error {
	if len(row) != p.nVars {
		return ErrDimensionMismatch
	}
	p.objective = append([]float64(nil), row...)
	p.sense = sense

	return nil
}

// SetUnbounded declares variable i free: it may take any sign instead
// of the default x >= 0.
func (p *Program) SetUnbounded(i int) error {
	if i < 0 || i >= p.nVars {
		return ErrVariableIndex
	}
	p.free[i] = true

	return nil
}

// AddConstraint appends the constraint row·x rel bound. The row is
// copied.
func (p *Program) AddConstraint(row []float64, rel Relation, bound float64) error {
	if len(row) != p.nVars {
		return ErrDimensionMismatch
	}
	if rel != LessEqual && rel != GreaterEqual && rel != Equal {
		return ErrBadRelation
	}
	p.rows = append(p.rows, append([]float64(nil), row...))
	p.rels = append(p.rels, rel)
	p.rhs = append(p.rhs, bound)

	return nil
}

// Solve converts the program to standard form, runs the simplex and
// maps the result back: x is the optimal assignment of the original
// variables and obj the objective value under the original sense.
//
// Complexity: conversion O(m·n); solve cost per gonum's Simplex.
func (p *Program) Solve() (x []float64, obj float64, err error) {
	if p.objective == nil {
		return nil, 0, ErrNoObjective
	}

	// Column layout of the standard form: one column per variable, a
	// second (negated) column per free variable, one slack column per
	// inequality row.
	m := len(p.rows)
	posCol := make([]int, p.nVars)
	negCol := make([]int, p.nVars)
	nCols := 0
	for j := 0; j < p.nVars; j++ {
		posCol[j] = nCols
		nCols++
		negCol[j] = -1
		if p.free[j] {
			negCol[j] = nCols
			nCols++
		}
	}
	slackCol := make([]int, m)
	for i, rel := range p.rels {
		slackCol[i] = -1
		if rel != Equal {
			slackCol[i] = nCols
			nCols++
		}
	}

	// Minimization costs: negate when maximizing, mirror on negated
	// columns, zero on slacks.
	c := make([]float64, nCols)
	for j, v := range p.objective {
		if p.sense == Maximize {
			v = -v
		}
		c[posCol[j]] = v
		if negCol[j] >= 0 {
			c[negCol[j]] = -v
		}
	}

	// Dense standard-form constraint matrix.
	a := mat.NewDense(max(m, 1), nCols, nil)
	for i, row := range p.rows {
		for j, v := range row {
			a.Set(i, posCol[j], v)
			if negCol[j] >= 0 {
				a.Set(i, negCol[j], -v)
			}
		}
		switch p.rels[i] {
		case LessEqual:
			a.Set(i, slackCol[i], 1)
		case GreaterEqual:
			a.Set(i, slackCol[i], -1)
		}
	}

	// Drop all-zero rows, failing fast when such a row is trivially
	// unsatisfiable. The underlying solver rejects zero rows outright.
	keepRow := make([]bool, m)
	mKept := 0
	for i := range p.rows {
		zero := true
		for _, v := range p.rows[i] {
			if v != 0 {
				zero = false

				break
			}
		}
		if !zero {
			keepRow[i] = true
			mKept++

			continue
		}
		b := p.rhs[i]
		switch p.rels[i] {
		case LessEqual:
			if b < 0 {
				return nil, 0, ErrInfeasible
			}
		case GreaterEqual:
			if b > 0 {
				return nil, 0, ErrInfeasible
			}
		case Equal:
			if b != 0 {
				return nil, 0, ErrInfeasible
			}
		}
	}

	// Drop all-zero columns: a zero column with negative cost is an
	// unbounded ray; with non-negative cost its variable sits at 0.
	keepCol := make([]bool, nCols)
	nKept := 0
	for col := 0; col < nCols; col++ {
		zero := true
		for i := 0; i < m; i++ {
			if keepRow[i] && a.At(i, col) != 0 {
				zero = false

				break
			}
		}
		if !zero {
			keepCol[col] = true
			nKept++

			continue
		}
		if c[col] < 0 {
			return nil, 0, ErrUnbounded
		}
	}

	// Fully determined without a solve: every variable pinned to 0.
	if mKept == 0 || nKept == 0 {
		return make([]float64, p.nVars), 0, nil
	}
	if mKept > nKept {
		// Simplex requires at least as many columns as rows.
		return nil, 0, ErrSolveFailed
	}

	cc, aa, bb, colIdx := p.compact(a, c, keepRow, keepCol, mKept, nKept)

	_, xStd, err := lp.Simplex(cc, aa, bb, simplexTol, nil)
	if err != nil {
		switch err {
		case lp.ErrInfeasible:
			return nil, 0, ErrInfeasible
		case lp.ErrUnbounded:
			return nil, 0, ErrUnbounded
		default:
			return nil, 0, ErrSolveFailed
		}
	}

	// Map the standard-form solution back onto the declared variables.
	full := make([]float64, nCols)
	for k, col := range colIdx {
		full[col] = xStd[k]
	}
	x = make([]float64, p.nVars)
	for j := 0; j < p.nVars; j++ {
		x[j] = full[posCol[j]]
		if negCol[j] >= 0 {
			x[j] -= full[negCol[j]]
		}
	}

	return x, floats.Dot(p.objective, x), nil
}

// compact assembles the kept rows and columns into the dense system
// handed to the simplex, returning the kept column indices for mapping
// the solution back.
func (p *Program) compact(a *mat.Dense, c []float64, keepRow, keepCol []bool, mKept, nKept int) (cc []float64, aa *mat.Dense, bb []float64, colIdx []int) {
	colIdx = make([]int, 0, nKept)
	for col, keep := range keepCol {
		if keep {
			colIdx = append(colIdx, col)
		}
	}
	cc = make([]float64, nKept)
	for k, col := range colIdx {
		cc[k] = c[col]
	}
	aa = mat.NewDense(mKept, nKept, nil)
	bb = make([]float64, 0, mKept)
	row := 0
	for i, keep := range keepRow {
		if !keep {
			continue
		}
		for k, col := range colIdx {
			aa.Set(row, k, a.At(i, col))
		}
		bb = append(bb, p.rhs[i])
		row++
	}

	return cc, aa, bb, colIdx
}
