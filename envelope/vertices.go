package envelope

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/favorart/polytope/simplex"
	"github.com/favorart/polytope/subsets"
)

// FindVertices enumerates the candidate vertices obtained by
// intersecting each hyperplane of newPlanes with S−1 constraints drawn
// from existing hyperplanes and simplex boundary faces. See the package
// documentation for the full method.
//
// An empty existing set yields an empty result: there is nothing to
// intersect against. The output may contain duplicates, and each
// vertex value is valid only for the hyperplane subset that derived
// it. Inputs are never mutated. A nil opts means DefaultOptions.
func FindVertices(newPlanes, existing []simplex.Hyperplane, opts *Options) ([]simplex.Vertex, error) {
	if len(existing) == 0 || len(newPlanes) == 0 {
		return nil, nil
	}
	s, err := simplex.Dim(existing)
	if err != nil {
		return nil, err
	}
	for _, h := range newPlanes {
		if len(h) != s {
			return nil, simplex.ErrDimensionMismatch
		}
	}
	eps := DefaultOptions().Epsilon
	if opts != nil {
		eps = opts.Epsilon
	}

	// Unified index universe: [0, n) existing hyperplanes, [n, n+s)
	// boundary faces.
	n := len(existing)
	enum, err := subsets.New(s-1, 0, n+s)
	if err != nil {
		return nil, err
	}

	// One square system per subset, over unknowns (x_1..x_s, v). The
	// right-hand side never changes: constraint rows are homogeneous
	// and the closing sum row equals 1. Storage is reused throughout.
	a := mat.NewDense(s+1, s+1, nil)
	b := mat.NewVecDense(s+1, nil)
	b.SetVec(s, 1)
	x := mat.NewVecDense(s+1, nil)
	var qr mat.QR

	var found []simplex.Vertex
	for _, h := range newPlanes {
		setPlaneRow(a, 0, h)
		enum.Reset()
		for enum.Valid() {
			// Subset indices are ascending, so hyperplane rows land
			// before face rows; the closing sum row occupies index s.
			row := 1
			for i := 0; i < enum.Size(); i++ {
				if idx := enum.At(i); idx < n {
					setPlaneRow(a, row, existing[idx])
				} else {
					setFaceRow(a, row, s, idx-n)
				}
				row++
			}
			setSumRow(a, s)

			qr.Factorize(a)
			if solved(qr.SolveVecTo(x, false, b)) && inUnitBox(x, s, eps) {
				pt := make(simplex.Point, s)
				for i := range pt {
					pt[i] = x.AtVec(i)
				}
				found = append(found, simplex.Vertex{Point: pt, Value: x.AtVec(s)})
			}

			enum.Advance()
			if !enum.Valid() {
				break
			}
			// Once the smallest index selects a boundary face, every
			// remaining subset is boundary-only; the simplex corners
			// are assumed known by other means.
			if enum.At(0) >= n {
				break
			}
		}
	}

	return found, nil
}

// setPlaneRow writes a hyperplane constraint h·x − v = 0 into row r.
func setPlaneRow(a *mat.Dense, r int, h simplex.Hyperplane) {
	for j, v := range h {
		a.Set(r, j, v)
	}
	a.Set(r, len(h), -1)
}

// setFaceRow writes the boundary constraint x_face = 0 into row r.
func setFaceRow(a *mat.Dense, r, s, face int) {
	for j := 0; j <= s; j++ {
		a.Set(r, j, 0)
	}
	a.Set(r, face, 1)
}

// setSumRow writes the closing normalization Σ x_i = 1 into row s.
func setSumRow(a *mat.Dense, s int) {
	for j := 0; j < s; j++ {
		a.Set(s, j, 1)
	}
	a.Set(s, s, 0)
}

// solved interprets the QR solve outcome: a finite condition warning
// still carries a usable least-squares solution, an exactly singular
// system does not.
func solved(err error) bool {
	if err == nil {
		return true
	}
	var cond mat.Condition
	if !errors.As(err, &cond) {
		return false
	}

	return !math.IsInf(float64(cond), 1)
}

// inUnitBox reports whether the first s solution entries all lie in
// [-eps, 1+eps]. NaN entries fail the comparison and are rejected.
func inUnitBox(x *mat.VecDense, s int, eps float64) bool {
	for i := 0; i < s; i++ {
		v := x.AtVec(i)
		if !(v >= -eps && v <= 1+eps) {
			return false
		}
	}

	return true
}
