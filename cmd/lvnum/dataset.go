package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// errNoPoints is returned for a dataset file without points.
var errNoPoints = errors.New("dataset has no points")

// Point is one (x, y) sample of a dataset file.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Dataset is the YAML layout read by the interp subcommand:
//
//	points:
//	  - {x: -1, y: 1}
//	  - {x: 0, y: -1}
//	  - {x: 2, y: 7}
type Dataset struct {
	Points []Point `yaml:"points"`
}

// XY splits the points into node and value slices.
func (d Dataset) XY() (xi, yi []float64) {
	xi = make([]float64, len(d.Points))
	yi = make([]float64, len(d.Points))
	for i, p := range d.Points {
		xi[i], yi[i] = p.X, p.Y
	}
	return xi, yi
}

// loadDataset reads and decodes a dataset file.
func loadDataset(path string) (Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, err
	}
	var d Dataset
	if err = yaml.Unmarshal(raw, &d); err != nil {
		return Dataset{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(d.Points) == 0 {
		return Dataset{}, fmt.Errorf("%s: %w", path, errNoPoints)
	}
	return d, nil
}

// parseCoeffs parses a comma-separated coefficient list, lowest degree first.
func parseCoeffs(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("coefficient %q: %w", p, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty coefficient list %q", s)
	}
	return out, nil
}
