package solver

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/fieldsim/internal/assembly"
)

// Domain errors for the direct solve.
var (
	// ErrNotPositiveDefinite indicates the Cholesky factorization failed;
	// usually a malformed boundary setup (e.g. a disconnected node).
	ErrNotPositiveDefinite = errors.New("solver: system is not positive definite")

	// ErrNonFiniteSolution indicates the factorization produced NaN or Inf.
	ErrNonFiniteSolution = errors.New("solver: solution contains non-finite values")

	// ErrSizeMismatch indicates the right-hand side does not match the
	// system size.
	ErrSizeMismatch = errors.New("solver: right-hand side length does not match system size")
)

// Solver factors the assembled symmetric system and solves it for one
// right-hand side. Deterministic: a failed solve is never retried.
type Solver interface {
	Name() string
	Solve(sys *assembly.System) ([]float64, error)
}

var backends = map[string]func() Solver{
	"cholesky": func() Solver { return &Cholesky{} },
	"banded":   func() Solver { return &BandedCholesky{} },
}

// New returns the named solver backend.
func New(name string) (Solver, error) {
	fn, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown solver: %s", name)
	}
	return fn(), nil
}

// List returns the registered backend names, sorted.
func List() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func checkFinite(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
