// Package problem wires geometry, assembly, and the solver into one
// solve operation. Either a complete field comes back or an error;
// there are no partial results.
package problem

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/fieldsim/internal/assembly"
	"github.com/san-kum/fieldsim/internal/diagnostics"
	"github.com/san-kum/fieldsim/internal/field"
	"github.com/san-kum/fieldsim/internal/geometry"
	"github.com/san-kum/fieldsim/internal/solver"
)

// Problem is one steady-state diffusion problem: the grid, the box-edge
// Dirichlet values, and the ordered fixed-value circles. Immutable once
// constructed.
type Problem struct {
	Grid     geometry.Grid
	Boundary geometry.BoxBoundary
	Circles  []geometry.Circle
}

// Stats describes one completed solve.
type Stats struct {
	Unknowns     int
	Coefficients int
	AssemblyTime time.Duration
	SolveTime    time.Duration
	Residual     float64
	Min          float64
	Max          float64
	Mean         float64
}

// Metrics flattens the stats into the name->value map stored in run
// metadata.
func (s Stats) Metrics() map[string]float64 {
	return map[string]float64{
		"unknowns":     float64(s.Unknowns),
		"coefficients": float64(s.Coefficients),
		"assembly_ms":  float64(s.AssemblyTime.Microseconds()) / 1000,
		"solve_ms":     float64(s.SolveTime.Microseconds()) / 1000,
		"residual_inf": s.Residual,
		"field_min":    s.Min,
		"field_max":    s.Max,
		"field_mean":   s.Mean,
	}
}

// Result is a completed solve: the reshaped field plus its stats.
type Result struct {
	Field *field.Field
	Stats Stats
}

// New constructs a problem over an already-validated grid.
func New(grid geometry.Grid, box geometry.BoxBoundary, circles []geometry.Circle) *Problem {
	return &Problem{Grid: grid, Boundary: box, Circles: circles}
}

// Solve assembles the linear system and solves it with the given
// backend. A non-positive-definite system or a non-finite solution
// surfaces as an error from the solver; it is not retried, since the
// system is deterministic and would fail identically.
func (p *Problem) Solve(ctx context.Context, s solver.Solver) (*Result, error) {
	start := time.Now()
	sys, err := assembly.NewBuilder(p.Grid, p.Boundary, p.Circles).Build(ctx)
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}
	assembled := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	x, err := s.Solve(sys)
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	solved := time.Now()

	f, err := field.New(p.Grid, x)
	if err != nil {
		return nil, err
	}

	return &Result{
		Field: f,
		Stats: Stats{
			Unknowns:     sys.N,
			Coefficients: len(sys.Coeffs),
			AssemblyTime: assembled.Sub(start),
			SolveTime:    solved.Sub(assembled),
			Residual:     diagnostics.ResidualInf(sys, x),
			Min:          f.Min(),
			Max:          f.Max(),
			Mean:         f.Mean(),
		},
	}, nil
}
