package solver

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/fieldsim/internal/assembly"
)

// Cholesky solves the system with a dense symmetric Cholesky
// factorization (gonum mat.Cholesky). Simple and robust; memory grows
// with the square of the unknown count, so prefer the banded backend
// for large grids.
type Cholesky struct{}

func (c *Cholesky) Name() string { return "cholesky" }

func (c *Cholesky) Solve(sys *assembly.System) ([]float64, error) {
	if len(sys.RHS) != sys.N {
		return nil, ErrSizeMismatch
	}

	// Accumulate the upper triangle, summing duplicate (row,col)
	// entries. The lower-triangle triplets mirror the upper ones by
	// construction, so one triangle carries the full matrix.
	sym := mat.NewSymDense(sys.N, nil)
	for _, t := range sys.Coeffs {
		if t.Row > t.Col {
			continue
		}
		sym.SetSym(t.Row, t.Col, sym.At(t.Row, t.Col)+t.Val)
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(sym); !ok {
		return nil, ErrNotPositiveDefinite
	}

	var x mat.VecDense
	if err := chol.SolveVecTo(&x, mat.NewVecDense(sys.N, sys.RHS)); err != nil {
		return nil, fmt.Errorf("solver: cholesky solve: %w", err)
	}

	out := make([]float64, sys.N)
	for i := range out {
		out[i] = x.AtVec(i)
	}
	if !checkFinite(out) {
		return nil, ErrNonFiniteSolution
	}
	return out, nil
}
