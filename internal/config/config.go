package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/fieldsim/internal/geometry"
	"github.com/san-kum/fieldsim/internal/problem"
)

const (
	DefaultNx     = 64
	DefaultNy     = 64
	DefaultSolver = "banded"
)

// Config is the yaml problem description.
type Config struct {
	Grid     GridConfig     `yaml:"grid"`
	Boundary BoundaryConfig `yaml:"boundary"`
	Circles  []CircleConfig `yaml:"circles"`
	Solver   string         `yaml:"solver"`
	Output   string         `yaml:"output"`
}

type GridConfig struct {
	Nx   int     `yaml:"nx"`
	Ny   int     `yaml:"ny"`
	XMin float64 `yaml:"xmin"`
	XMax float64 `yaml:"xmax"`
	YMin float64 `yaml:"ymin"`
	YMax float64 `yaml:"ymax"`
}

type BoundaryConfig struct {
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
}

// CircleConfig entries keep their list position; the order is the
// overlap tie-break.
type CircleConfig struct {
	CX    float64 `yaml:"cx"`
	CY    float64 `yaml:"cy"`
	R     float64 `yaml:"r"`
	Value float64 `yaml:"value"`
}

func DefaultConfig() *Config {
	return &Config{
		Grid: GridConfig{
			Nx: DefaultNx, Ny: DefaultNy,
			XMin: 0, XMax: 1, YMin: 0, YMax: 1,
		},
		Solver: DefaultSolver,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Problem validates the configuration and builds the solve input.
func (c *Config) Problem() (*problem.Problem, error) {
	grid, err := geometry.NewGrid(c.Grid.Nx, c.Grid.Ny, c.Grid.XMin, c.Grid.XMax, c.Grid.YMin, c.Grid.YMax)
	if err != nil {
		return nil, err
	}

	circles := make([]geometry.Circle, 0, len(c.Circles))
	for _, cc := range c.Circles {
		if cc.R < 0 {
			return nil, geometry.ErrCircleRadius
		}
		circles = append(circles, geometry.Circle{CX: cc.CX, CY: cc.CY, R: cc.R, Value: cc.Value})
	}

	box := geometry.BoxBoundary{
		Top:    c.Boundary.Top,
		Bottom: c.Boundary.Bottom,
		Left:   c.Boundary.Left,
		Right:  c.Boundary.Right,
	}
	return problem.New(grid, box, circles), nil
}
