package problem

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/fieldsim/internal/geometry"
	"github.com/san-kum/fieldsim/internal/solver"
)

func solveWith(t *testing.T, name string, p *Problem) *Result {
	t.Helper()
	s, err := solver.New(name)
	if err != nil {
		t.Fatal(err)
	}
	res, err := p.Solve(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

// A 3x3 grid over [0,3]x[0,3] with top=1 and the other sides 0 has a
// hand-computable solution. Eliminating the 9x9 system by the
// left/right mirror symmetry gives exact fractions per row:
// edge and center values (3/7, 59/112), (3/16, 1/4), (1/14, 11/112).
func TestSolveHotTopPlate(t *testing.T) {
	grid, err := geometry.NewGrid(3, 3, 0, 3, 0, 3)
	if err != nil {
		t.Fatal(err)
	}
	p := New(grid, geometry.BoxBoundary{Top: 1}, nil)

	want := [][]float64{
		{3.0 / 7, 59.0 / 112, 3.0 / 7},
		{3.0 / 16, 1.0 / 4, 3.0 / 16},
		{1.0 / 14, 11.0 / 112, 1.0 / 14},
	}

	for _, name := range solver.List() {
		res := solveWith(t, name, p)
		for j := range want {
			for i := range want[j] {
				got := res.Field.At(i, j)
				if math.Abs(got-want[j][i]) > 1e-12 {
					t.Errorf("%s: F[%d][%d] expected %v, got %v", name, j, i, want[j][i], got)
				}
			}
		}

		// Smooth and monotonic away from the hot edge.
		for i := 0; i < 3; i++ {
			if !(res.Field.At(i, 0) > res.Field.At(i, 1) && res.Field.At(i, 1) > res.Field.At(i, 2)) {
				t.Errorf("%s: column %d not monotonic along j", name, i)
			}
		}
		if res.Stats.Residual > 1e-12 {
			t.Errorf("%s: residual too large: %v", name, res.Stats.Residual)
		}
	}
}

func TestSolveCircleHoldsItsValue(t *testing.T) {
	grid, err := geometry.NewGrid(3, 3, 0, 3, 0, 3)
	if err != nil {
		t.Fatal(err)
	}
	circles := []geometry.Circle{{CX: 1, CY: 1, R: 0.4, Value: 5}}
	p := New(grid, geometry.BoxBoundary{Top: 1}, circles)

	for _, name := range solver.List() {
		res := solveWith(t, name, p)

		// The circle node's equation is the identity u = 5; nothing
		// couples back into it, so the solve returns it untouched.
		if got := res.Field.At(1, 1); math.Abs(got-5) > 1e-12 {
			t.Errorf("%s: circle node expected 5, got %v", name, got)
		}
		if res.Stats.Max < 5 {
			t.Errorf("%s: field max should include the circle value", name)
		}
	}
}

func TestSolveOverlapTieBreak(t *testing.T) {
	grid, err := geometry.NewGrid(3, 3, 0, 3, 0, 3)
	if err != nil {
		t.Fatal(err)
	}

	first := []geometry.Circle{
		{CX: 1, CY: 1, R: 0.5, Value: 2},
		{CX: 1, CY: 1, R: 0.5, Value: 9},
	}
	p := New(grid, geometry.BoxBoundary{}, first)
	res := solveWith(t, "cholesky", p)
	if got := res.Field.At(1, 1); math.Abs(got-2) > 1e-12 {
		t.Errorf("expected earlier circle to win with 2, got %v", got)
	}

	// Swapping the list order flips the winner.
	p = New(grid, geometry.BoxBoundary{}, []geometry.Circle{first[1], first[0]})
	res = solveWith(t, "cholesky", p)
	if got := res.Field.At(1, 1); math.Abs(got-9) > 1e-12 {
		t.Errorf("expected earlier circle to win with 9, got %v", got)
	}
}

func TestSolveUniformBoundary(t *testing.T) {
	// A constant boundary forces a constant interior.
	grid, err := geometry.NewGrid(5, 5, 0, 1, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	p := New(grid, geometry.BoxBoundary{Top: 2, Bottom: 2, Left: 2, Right: 2}, nil)

	res := solveWith(t, "banded", p)
	for _, v := range res.Field.Values() {
		if math.Abs(v-2) > 1e-10 {
			t.Fatalf("expected constant field 2, got %v", v)
		}
	}
}

func TestSolveCanceled(t *testing.T) {
	grid, err := geometry.NewGrid(4, 4, 0, 1, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	s, _ := solver.New("cholesky")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := New(grid, geometry.BoxBoundary{}, nil).Solve(ctx, s); err == nil {
		t.Error("expected error from canceled context")
	}
}

func TestStatsMetrics(t *testing.T) {
	grid, err := geometry.NewGrid(3, 3, 0, 3, 0, 3)
	if err != nil {
		t.Fatal(err)
	}
	res := solveWith(t, "cholesky", New(grid, geometry.BoxBoundary{Top: 1}, nil))

	m := res.Stats.Metrics()
	if m["unknowns"] != 9 {
		t.Errorf("expected 9 unknowns, got %v", m["unknowns"])
	}
	if m["coefficients"] == 0 {
		t.Error("expected non-zero coefficient count")
	}
	if m["field_max"] <= m["field_min"] {
		t.Error("expected max > min for a non-constant field")
	}
}
