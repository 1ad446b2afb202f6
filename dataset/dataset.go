package dataset

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/quantlab/matrix"
)

var (
	// ErrNoRows indicates a table with fewer than two observations.
	ErrNoRows = errors.New("dataset: need at least two rows")

	// ErrNoFeatures indicates an empty feature list.
	ErrNoFeatures = errors.New("dataset: need at least one feature")

	// ErrRowWidth indicates a row whose length differs from the feature count.
	ErrRowWidth = errors.New("dataset: row width does not match feature count")

	// ErrNonFinite indicates a NaN or ±Inf entry.
	ErrNonFinite = errors.New("dataset: non-finite value")
)

// Dataset is a named rectangular observation table: rows are observations,
// columns are the named features.
type Dataset struct {
	Name     string      `yaml:"name"`
	Features []string    `yaml:"features"`
	Rows     [][]float64 `yaml:"rows"`
}

// Validate checks the table is usable for the statistical recipes: at least
// one named feature, at least two rows, rectangular rows, finite values.
func (d *Dataset) Validate() error {
	if len(d.Features) == 0 {
		return ErrNoFeatures
	}
	if len(d.Rows) < 2 {
		return ErrNoRows
	}
	c := len(d.Features)
	for i, row := range d.Rows {
		if len(row) != c {
			return fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), c, ErrRowWidth)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("row %d, feature %q: %w", i, d.Features[j], ErrNonFinite)
			}
		}
	}

	return nil
}

// ToMatrix validates the table and copies it into a Dense observation matrix.
func (d *Dataset) ToMatrix() (*matrix.Dense, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	m, err := matrix.NewDenseFromRows(d.Rows)
	if err != nil {
		return nil, fmt.Errorf("dataset %q: %w", d.Name, err)
	}

	return m, nil
}

// Parse decodes a YAML dataset document and validates it.
func Parse(raw []byte) (*Dataset, error) {
	var d Dataset
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("dataset: parse: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

// Load reads and parses a YAML dataset file.
func Load(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}

	return Parse(raw)
}

// Canonical returns the embedded 10×2 walkthrough table: ten observations of
// two strongly correlated features with means 1.81 and 1.91. Its eigenpairs
// (λ ≈ 1.2840 and 0.0491, dominant axis ≈ (0.678, 0.735)) are the reference
// values every PCA walkthrough in this repository reproduces.
func Canonical() *Dataset {
	return &Dataset{
		Name:     "walkthrough-10x2",
		Features: []string{"x", "y"},
		Rows: [][]float64{
			{2.5, 2.4},
			{0.5, 0.7},
			{2.2, 2.9},
			{1.9, 2.2},
			{3.1, 3.0},
			{2.3, 2.7},
			{2.0, 1.6},
			{1.0, 1.1},
			{1.5, 1.6},
			{1.1, 0.9},
		},
	}
}
