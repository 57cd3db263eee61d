// Package export serializes solved fields. The plain-text format is
// one grid row per line, values in i-order, which must match the field
// reshaper exactly for downstream compatibility.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/fieldsim/internal/field"
)

// WriteText writes the field row per line, space separated, i-order
// within each line.
func WriteText(w io.Writer, f *field.Field) error {
	for _, row := range f.Rows() {
		for i, v := range row {
			if i > 0 {
				if _, err := io.WriteString(w, " "); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// SaveText writes the plain-text field to a file.
func SaveText(path string, f *field.Field) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteText(file, f)
}

// WriteCSV writes one record per node with its indices and physical
// coordinates.
func WriteCSV(w io.Writer, f *field.Field) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"j", "i", "x", "y", "value"}); err != nil {
		return err
	}

	g := f.Grid()
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			rec := []string{
				strconv.Itoa(j),
				strconv.Itoa(i),
				strconv.FormatFloat(g.X(i), 'f', 6, 64),
				strconv.FormatFloat(g.Y(j), 'f', 6, 64),
				strconv.FormatFloat(f.At(i, j), 'g', -1, 64),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportData is the JSON export shape.
type ExportData struct {
	Nx      int                `json:"nx"`
	Ny      int                `json:"ny"`
	XMin    float64            `json:"xmin"`
	XMax    float64            `json:"xmax"`
	YMin    float64            `json:"ymin"`
	YMax    float64            `json:"ymax"`
	Values  [][]float64        `json:"values"`
	Metrics map[string]float64 `json:"metrics,omitempty"`
}

// WriteJSON writes the field as row-major nested arrays plus metrics.
func WriteJSON(w io.Writer, f *field.Field, metrics map[string]float64) error {
	g := f.Grid()
	data := ExportData{
		Nx: g.Nx, Ny: g.Ny,
		XMin: g.XMin, XMax: g.XMax,
		YMin: g.YMin, YMax: g.YMax,
		Values:  f.Rows(),
		Metrics: metrics,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// Describe returns a one-line summary used by CLI listings.
func Describe(f *field.Field) string {
	g := f.Grid()
	return fmt.Sprintf("%dx%d field over [%g,%g]x[%g,%g], min %.6g max %.6g",
		g.Nx, g.Ny, g.XMin, g.XMax, g.YMin, g.YMax, f.Min(), f.Max())
}
