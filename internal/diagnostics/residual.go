// Package diagnostics computes post-solve quality measures reported in
// run metadata.
package diagnostics

import (
	"math"

	"github.com/san-kum/fieldsim/internal/assembly"
)

// ResidualInf computes the infinity norm of A*x - b directly from the
// coefficient triplets, independent of the solver's own matrix
// assembly. Duplicate (row,col) entries sum naturally.
func ResidualInf(sys *assembly.System, x []float64) float64 {
	r := make([]float64, sys.N)
	for _, t := range sys.Coeffs {
		r[t.Row] += t.Val * x[t.Col]
	}

	max := 0.0
	for i, b := range sys.RHS {
		if d := math.Abs(r[i] - b); d > max {
			max = d
		}
	}
	return max
}
