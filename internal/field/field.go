// Package field wraps a flattened solution vector as a 2D grid-ordered
// view. Reshaping reuses the grid's Index bijection, so assembly and
// output can never disagree about node order.
package field

import (
	"errors"
	"math"

	"github.com/san-kum/fieldsim/internal/geometry"
)

// ErrSizeMismatch indicates the value vector does not cover the grid.
var ErrSizeMismatch = errors.New("field: value count does not match grid size")

// Field is a solved scalar field over a grid. Read-only after
// construction.
type Field struct {
	grid   geometry.Grid
	values []float64
}

// New wraps a flattened solution vector. The vector is retained, not
// copied; callers hand over ownership.
func New(grid geometry.Grid, values []float64) (*Field, error) {
	if len(values) != grid.NumNodes() {
		return nil, ErrSizeMismatch
	}
	return &Field{grid: grid, values: values}, nil
}

// Grid returns the geometry the field is defined on.
func (f *Field) Grid() geometry.Grid { return f.grid }

// Values returns the flattened vector in unknown-index order.
func (f *Field) Values() []float64 { return f.values }

// At reads the value at node (i,j).
func (f *Field) At(i, j int) float64 { return f.values[f.grid.Index(i, j)] }

// Row returns row j with values in i-order.
func (f *Field) Row(j int) []float64 {
	row := make([]float64, f.grid.Nx)
	for i := range row {
		row[i] = f.At(i, j)
	}
	return row
}

// Column returns column i with values in j-order.
func (f *Field) Column(i int) []float64 {
	col := make([]float64, f.grid.Ny)
	for j := range col {
		col[j] = f.At(i, j)
	}
	return col
}

// Rows materializes the full field as F[j][i].
func (f *Field) Rows() [][]float64 {
	rows := make([][]float64, f.grid.Ny)
	for j := range rows {
		rows[j] = f.Row(j)
	}
	return rows
}

// Min returns the smallest field value.
func (f *Field) Min() float64 {
	min := math.Inf(1)
	for _, v := range f.values {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the largest field value.
func (f *Field) Max() float64 {
	max := math.Inf(-1)
	for _, v := range f.values {
		if v > max {
			max = v
		}
	}
	return max
}

// Mean returns the average field value.
func (f *Field) Mean() float64 {
	sum := 0.0
	for _, v := range f.values {
		sum += v
	}
	return sum / float64(len(f.values))
}
