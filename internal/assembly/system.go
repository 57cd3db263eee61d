// Package assembly turns grid geometry and boundary data into a sparse
// coefficient list and right-hand-side vector via the 5-point
// finite-difference stencil.
package assembly

// Triplet is one sparse-matrix contribution. Multiple triplets for the
// same (Row, Col) are expected; the solver sums them, never overwrites.
type Triplet struct {
	Row, Col int
	Val      float64
}

// System is the assembled linear system: the coefficient triplet list
// and the dense right-hand side, sized to the unknown count. It is
// built once per solve and consumed immediately; append-only during
// assembly, read-only afterwards.
type System struct {
	N      int
	Coeffs []Triplet
	RHS    []float64
}

func newSystem(n int) *System {
	return &System{
		N:      n,
		Coeffs: make([]Triplet, 0, 5*n),
		RHS:    make([]float64, n),
	}
}

func (s *System) addCoeff(row, col int, w float64) {
	s.Coeffs = append(s.Coeffs, Triplet{Row: row, Col: col, Val: w})
}
