package config

var Presets = map[string]*Config{
	// Parallel plates: hot top edge, grounded bottom.
	"plates": {
		Grid:     GridConfig{Nx: 64, Ny: 64, XMin: 0, XMax: 1, YMin: 0, YMax: 1},
		Boundary: BoundaryConfig{Top: 1},
		Solver:   DefaultSolver,
	},
	// A charged conductor between grounded walls.
	"conductor": {
		Grid:   GridConfig{Nx: 96, Ny: 96, XMin: 0, XMax: 1, YMin: 0, YMax: 1},
		Solver: DefaultSolver,
		Circles: []CircleConfig{
			{CX: 0.5, CY: 0.5, R: 0.12, Value: 10},
		},
	},
	// Two opposite conductors, dipole-like field.
	"dipole": {
		Grid:   GridConfig{Nx: 96, Ny: 96, XMin: 0, XMax: 1, YMin: 0, YMax: 1},
		Solver: DefaultSolver,
		Circles: []CircleConfig{
			{CX: 0.3, CY: 0.5, R: 0.08, Value: 5},
			{CX: 0.7, CY: 0.5, R: 0.08, Value: -5},
		},
	},
	// A conductor shadowing the gap between biased plates.
	"shielded": {
		Grid:     GridConfig{Nx: 128, Ny: 128, XMin: 0, XMax: 2, YMin: 0, YMax: 2},
		Boundary: BoundaryConfig{Top: 1, Bottom: -1},
		Solver:   DefaultSolver,
		Circles: []CircleConfig{
			{CX: 1, CY: 1, R: 0.25, Value: 0},
		},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
