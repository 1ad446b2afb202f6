// Package matrix_test: spectral tests for the Jacobi eigensolver, including
// a cross-check against gonum's dense symmetric eigensolver.
package matrix_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/quantlab/matrix"
)

const eigTol = 1e-9

// TestEigen_Identity verifies the trivial spectrum of the identity matrix.
func TestEigen_Identity(t *testing.T) {
	id := mustFromRows(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})

	values, vectors, err := matrix.Eigen(id, 0, 0)
	require.NoError(t, err)
	require.Len(t, values, 3)
	for _, v := range values {
		assert.InDelta(t, 1.0, v, eigTol, "identity eigenvalues must all be 1")
	}
	require.Equal(t, 3, vectors.Rows())
	require.Equal(t, 3, vectors.Cols())
}

// TestEigen_Known2x2 checks the walkthrough covariance matrix against its
// textbook eigenpairs.
func TestEigen_Known2x2(t *testing.T) {
	cov := mustFromRows(t, [][]float64{
		{0.616555556, 0.615444444},
		{0.615444444, 0.716555556},
	})

	values, vectors, err := matrix.Eigen(cov, 0, 0)
	require.NoError(t, err)

	assert.InDelta(t, 1.284027712, values[0], 1e-6, "dominant eigenvalue")
	assert.InDelta(t, 0.049083399, values[1], 1e-6, "minor eigenvalue")

	// Columns are eigenvectors; sign convention makes the dominant one
	// strictly positive in both components.
	assert.InDelta(t, 0.6778734, mustAt(t, vectors, 0, 0), 1e-6)
	assert.InDelta(t, 0.7351787, mustAt(t, vectors, 1, 0), 1e-6)
	assert.InDelta(t, 0.7351787, mustAt(t, vectors, 0, 1), 1e-6)
	assert.InDelta(t, -0.6778734, mustAt(t, vectors, 1, 1), 1e-6)
}

// TestEigen_SortedAndOrthonormal verifies descending order, unit length and
// mutual orthogonality on a larger symmetric matrix.
func TestEigen_SortedAndOrthonormal(t *testing.T) {
	m := mustFromRows(t, [][]float64{
		{4, 1, 0.5, 0},
		{1, 3, 0.25, 0.75},
		{0.5, 0.25, 2, 1},
		{0, 0.75, 1, 1},
	})

	values, vectors, err := matrix.Eigen(m, 0, 0)
	require.NoError(t, err)

	require.True(t, sort.SliceIsSorted(values, func(i, j int) bool { return values[i] > values[j] }),
		"eigenvalues must be sorted descending: %v", values)

	n := len(values)
	for a := 0; a < n; a++ {
		for b := a; b < n; b++ {
			dot := 0.0
			for i := 0; i < n; i++ {
				dot += mustAt(t, vectors, i, a) * mustAt(t, vectors, i, b)
			}
			if a == b {
				assert.InDelta(t, 1.0, dot, eigTol, "eigenvector %d must be unit length", a)
			} else {
				assert.InDelta(t, 0.0, dot, eigTol, "eigenvectors %d and %d must be orthogonal", a, b)
			}
		}
	}

	// Σ·v = λ·v for every pair.
	for k := 0; k < n; k++ {
		v := vectors.Col(k)
		mv, errMV := matrix.MatVec(m, v)
		require.NoError(t, errMV)
		for i := 0; i < n; i++ {
			assert.InDelta(t, values[k]*v[i], mv[i], 1e-8, "Σv = λv violated for pair %d, row %d", k, i)
		}
	}
}

// TestEigen_CrossCheckGonum runs the Jacobi solver and gonum's EigenSym on
// the same symmetric matrix and demands matching spectra and axes.
func TestEigen_CrossCheckGonum(t *testing.T) {
	raw := []float64{
		2.0, 0.6, -0.3,
		0.6, 1.5, 0.2,
		-0.3, 0.2, 0.9,
	}
	ours := mustFromRows(t, [][]float64{
		{2.0, 0.6, -0.3},
		{0.6, 1.5, 0.2},
		{-0.3, 0.2, 0.9},
	})

	values, vectors, err := matrix.Eigen(ours, 0, 0)
	require.NoError(t, err)

	var es mat.EigenSym
	require.True(t, es.Factorize(mat.NewSymDense(3, raw), true), "gonum factorization must succeed")
	ref := es.Values(nil) // ascending
	var refVec mat.Dense
	es.VectorsTo(&refVec)

	for k := 0; k < 3; k++ {
		assert.InDelta(t, ref[2-k], values[k], 1e-9, "eigenvalue %d disagrees with gonum", k)

		// Compare axes via |cos| to stay agnostic to each solver's sign choice.
		dot := 0.0
		for i := 0; i < 3; i++ {
			dot += mustAt(t, vectors, i, k) * refVec.At(i, 2-k)
		}
		assert.InDelta(t, 1.0, math.Abs(dot), 1e-9, "eigenvector %d axis disagrees with gonum", k)
	}
}

// TestEigen_Validation covers the fail-fast paths.
func TestEigen_Validation(t *testing.T) {
	_, _, err := matrix.Eigen(nil, 0, 0)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix, "nil input must error")

	rect := mustDense(t, 2, 3)
	_, _, err = matrix.Eigen(rect, 0, 0)
	assert.ErrorIs(t, err, matrix.ErrNonSquare, "rectangular input must error")

	asym := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	_, _, err = matrix.Eigen(asym, 0, 0)
	assert.ErrorIs(t, err, matrix.ErrAsymmetry, "asymmetric input must error")
}

// TestEigen_InterfaceInput ensures the solver accepts any Matrix, not only
// *Dense.
func TestEigen_InterfaceInput(t *testing.T) {
	m := mustFromRows(t, [][]float64{{2, 1}, {1, 2}})

	values, _, err := matrix.Eigen(hide{m}, 0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, values[0], eigTol)
	assert.InDelta(t, 1.0, values[1], eigTol)
}
