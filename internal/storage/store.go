package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/fieldsim/internal/export"
	"github.com/san-kum/fieldsim/internal/field"
	"github.com/san-kum/fieldsim/internal/geometry"
	"github.com/san-kum/fieldsim/internal/problem"
)

// Store keeps solved runs on disk, one directory per run holding
// metadata.json, field.csv, and the plain-text field.txt.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Solver    string             `json:"solver"`
	Nx        int                `json:"nx"`
	Ny        int                `json:"ny"`
	XMin      float64            `json:"xmin"`
	XMax      float64            `json:"xmax"`
	YMin      float64            `json:"ymin"`
	YMax      float64            `json:"ymax"`
	Circles   int                `json:"circles"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save persists one completed solve and returns its run id.
func (s *Store) Save(solverName string, p *problem.Problem, res *problem.Result) (string, error) {
	runID := fmt.Sprintf("%dx%d_%d", p.Grid.Nx, p.Grid.Ny, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Solver:    solverName,
		Nx:        p.Grid.Nx,
		Ny:        p.Grid.Ny,
		XMin:      p.Grid.XMin,
		XMax:      p.Grid.XMax,
		YMin:      p.Grid.YMin,
		YMax:      p.Grid.YMax,
		Circles:   len(p.Circles),
		Metrics:   res.Stats.Metrics(),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "field.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()
	if err := export.WriteCSV(csvFile, res.Field); err != nil {
		return "", err
	}

	if err := export.SaveText(filepath.Join(runDir, "field.txt"), res.Field); err != nil {
		return "", err
	}

	return runID, nil
}

// Load reads the metadata of one run.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// List returns all stored runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

// LoadField rebuilds a run's field from its csv.
func (s *Store) LoadField(runID string) (*field.Field, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	grid, err := geometry.NewGrid(meta.Nx, meta.Ny, meta.XMin, meta.XMax, meta.YMin, meta.YMax)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.baseDir, runID, "field.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) != grid.NumNodes()+1 {
		return nil, fmt.Errorf("storage: run %s: expected %d field records, got %d",
			runID, grid.NumNodes(), len(records)-1)
	}

	values := make([]float64, grid.NumNodes())
	for _, rec := range records[1:] {
		j, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, err
		}
		i, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, err
		}
		v, err := strconv.ParseFloat(rec[4], 64)
		if err != nil {
			return nil, err
		}
		values[grid.Index(i, j)] = v
	}
	return field.New(grid, values)
}
