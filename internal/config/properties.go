package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Errors for the legacy properties format.
var (
	// ErrPropertiesHeader indicates the grid or boundary header is
	// incomplete.
	ErrPropertiesHeader = errors.New("config: properties file needs grid bounds, sizes, and four boundary values")

	// ErrPropertiesCircle indicates a trailing partial circle record.
	ErrPropertiesCircle = errors.New("config: circle records need exactly four values (cx cy r value)")
)

// LoadProperties reads the legacy whitespace-separated properties
// format:
//
//	xmin xmax nx
//	ymin ymax ny
//	top bottom left right
//	cx cy r value   (zero or more circle records)
//
// Tokens are free-form whitespace separated; line breaks carry no
// meaning. Exactly the well-formed circle records present are parsed; a
// partial trailing record is an error, not silently dropped.
func LoadProperties(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)

	var tokens []float64
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("config: bad number %q in %s", sc.Text(), path)
		}
		tokens = append(tokens, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	const header = 10 // 6 grid values + 4 boundary values
	if len(tokens) < header {
		return nil, ErrPropertiesHeader
	}
	if (len(tokens)-header)%4 != 0 {
		return nil, ErrPropertiesCircle
	}

	cfg := DefaultConfig()
	cfg.Grid = GridConfig{
		XMin: tokens[0], XMax: tokens[1], Nx: int(tokens[2]),
		YMin: tokens[3], YMax: tokens[4], Ny: int(tokens[5]),
	}
	cfg.Boundary = BoundaryConfig{
		Top: tokens[6], Bottom: tokens[7], Left: tokens[8], Right: tokens[9],
	}

	for at := header; at < len(tokens); at += 4 {
		cfg.Circles = append(cfg.Circles, CircleConfig{
			CX: tokens[at], CY: tokens[at+1], R: tokens[at+2], Value: tokens[at+3],
		})
	}
	return cfg, nil
}
