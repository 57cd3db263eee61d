package assembly

import (
	"context"

	"github.com/san-kum/fieldsim/internal/geometry"
)

// The 5-point stencil discretizes the Laplacian at each node:
//
//	4u(i,j) - u(i-1,j) - u(i+1,j) - u(i,j-1) - u(i,j+1) = 0
//
// Known values (box edges, circle nodes) move to the right-hand side;
// free neighbors contribute matrix coefficients.
const (
	weightSelf     = 4.0
	weightNeighbor = -1.0
)

// Builder assembles the sparse linear system for one problem geometry.
type Builder struct {
	grid geometry.Grid
	box  geometry.BoxBoundary
	cls  *geometry.Classifier
}

// NewBuilder wires a builder over an immutable geometry. The circle
// list keeps its input order; overlap tie-breaks depend on it.
func NewBuilder(grid geometry.Grid, box geometry.BoxBoundary, circles []geometry.Circle) *Builder {
	return &Builder{
		grid: grid,
		box:  box,
		cls:  geometry.NewClassifier(grid, circles),
	}
}

// Build walks every node (j outer, i inner) and produces the full
// coefficient list and right-hand side. The context is checked between
// grid rows so a large assembly can be abandoned.
func (b *Builder) Build(ctx context.Context) (*System, error) {
	sys := newSystem(b.grid.NumNodes())

	for j := 0; j < b.grid.Ny; j++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for i := 0; i < b.grid.Nx; i++ {
			id := b.grid.Index(i, j)

			// A node inside a circle degenerates to the identity
			// equation u(id) = value; no stencil expansion happens.
			if cl := b.cls.Classify(i, j); cl.Kind == geometry.KindCircle {
				sys.addCoeff(id, id, 1)
				sys.RHS[id] = b.cls.CircleValue(cl.Circle)
				continue
			}

			// Fixed neighbor order: left, right, up, down, self.
			// Correctness does not depend on it, but coefficient
			// fixtures in tests reproduce byte-for-byte.
			b.insert(sys, id, i-1, j, weightNeighbor)
			b.insert(sys, id, i+1, j, weightNeighbor)
			b.insert(sys, id, i, j-1, weightNeighbor)
			b.insert(sys, id, i, j+1, weightNeighbor)
			b.insert(sys, id, i, j, weightSelf)
		}
	}
	return sys, nil
}

// insert routes one stencil term: a free neighbor becomes a matrix
// coefficient, a known one folds into the right-hand side.
func (b *Builder) insert(sys *System, id, ni, nj int, w float64) {
	switch cl := b.cls.Classify(ni, nj); cl.Kind {
	case geometry.KindOutside:
		sys.RHS[id] -= w * b.box.Value(cl.Side)
	case geometry.KindCircle:
		sys.RHS[id] -= w * b.cls.CircleValue(cl.Circle)
	default:
		sys.addCoeff(id, b.grid.Index(ni, nj), w)
	}
}
