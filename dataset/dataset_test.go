package dataset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quantlab/dataset"
)

// TestCanonical pins the embedded walkthrough table.
func TestCanonical(t *testing.T) {
	ds := dataset.Canonical()

	require.NoError(t, ds.Validate())
	assert.Equal(t, []string{"x", "y"}, ds.Features)
	require.Len(t, ds.Rows, 10)
	assert.Equal(t, []float64{2.5, 2.4}, ds.Rows[0])

	m, err := ds.ToMatrix()
	require.NoError(t, err)
	assert.Equal(t, 10, m.Rows())
	assert.Equal(t, 2, m.Cols())
}

func TestParse_Valid(t *testing.T) {
	raw := []byte(`
name: tiny
features: [a, b]
rows:
  - [1.0, 2.0]
  - [3.0, 4.0]
`)
	ds, err := dataset.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "tiny", ds.Name)
	assert.Equal(t, []string{"a", "b"}, ds.Features)
	require.Len(t, ds.Rows, 2)
	assert.Equal(t, 4.0, ds.Rows[1][1])
}

func TestParse_Invalid(t *testing.T) {
	for name, tc := range map[string]struct {
		raw  string
		want error
	}{
		"no features": {
			raw:  "name: x\nrows:\n  - [1.0]\n  - [2.0]\n",
			want: dataset.ErrNoFeatures,
		},
		"one row": {
			raw:  "name: x\nfeatures: [a]\nrows:\n  - [1.0]\n",
			want: dataset.ErrNoRows,
		},
		"ragged row": {
			raw:  "name: x\nfeatures: [a, b]\nrows:\n  - [1.0, 2.0]\n  - [3.0]\n",
			want: dataset.ErrRowWidth,
		},
		"non-finite": {
			raw:  "name: x\nfeatures: [a]\nrows:\n  - [.nan]\n  - [2.0]\n",
			want: dataset.ErrNonFinite,
		},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := dataset.Parse([]byte(tc.raw))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := dataset.Parse([]byte("rows: {not: a-list}"))
	assert.Error(t, err, "malformed YAML must error")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: pts
features: [x, y]
rows:
  - [0.0, 1.0]
  - [1.0, 0.0]
  - [2.0, 2.0]
`), 0o600))

	ds, err := dataset.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "pts", ds.Name)
	require.Len(t, ds.Rows, 3)

	_, err = dataset.Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err, "missing file must error")
}
