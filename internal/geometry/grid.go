package geometry

import "errors"

// Domain errors for geometry construction.
var (
	// ErrGridSize indicates a non-positive node count along an axis.
	ErrGridSize = errors.New("geometry: grid node counts must be positive")

	// ErrGridBounds indicates degenerate physical extents.
	ErrGridBounds = errors.New("geometry: grid bounds must satisfy xmax > xmin and ymax > ymin")

	// ErrCircleRadius indicates a negative circle radius.
	ErrCircleRadius = errors.New("geometry: circle radius must not be negative")
)

// Grid is the rectangular node mesh: Nx by Ny nodes over the physical
// box [XMin,XMax] x [YMin,YMax]. Immutable after construction.
type Grid struct {
	Nx, Ny                 int
	XMin, XMax, YMin, YMax float64
}

// NewGrid validates and constructs a grid. Nx*Ny is the number of
// unknowns of the linear system built over it.
func NewGrid(nx, ny int, xmin, xmax, ymin, ymax float64) (Grid, error) {
	if nx <= 0 || ny <= 0 {
		return Grid{}, ErrGridSize
	}
	if xmax <= xmin || ymax <= ymin {
		return Grid{}, ErrGridBounds
	}
	return Grid{Nx: nx, Ny: ny, XMin: xmin, XMax: xmax, YMin: ymin, YMax: ymax}, nil
}

// NumNodes is the total unknown count.
func (g Grid) NumNodes() int { return g.Nx * g.Ny }

// Dx is the node spacing along x.
func (g Grid) Dx() float64 { return (g.XMax - g.XMin) / float64(g.Nx) }

// Dy is the node spacing along y.
func (g Grid) Dy() float64 { return (g.YMax - g.YMin) / float64(g.Ny) }

// X maps a column index to its physical coordinate.
func (g Grid) X(i int) float64 { return g.XMin + float64(i)*g.Dx() }

// Y maps a row index to its physical coordinate.
func (g Grid) Y(j int) float64 { return g.YMin + float64(j)*g.Dy() }

// Index is the flattening bijection between node coordinates and the
// linear unknown index. Matrix rows, matrix columns, the right-hand
// side, and the reshaped field all go through this single function.
func (g Grid) Index(i, j int) int { return i + j*g.Nx }

// Coords is the inverse of Index.
func (g Grid) Coords(id int) (i, j int) { return id % g.Nx, id / g.Nx }

// InRange reports whether (i,j) names a node of the grid, as opposed to
// a stencil neighbor beyond its edges.
func (g Grid) InRange(i, j int) bool {
	return i >= 0 && i < g.Nx && j >= 0 && j < g.Ny
}
