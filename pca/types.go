// Package pca defines options and result types for Principal Component
// Analysis.
package pca

import "github.com/katalvlaran/quantlab/matrix"

// Options configures a PCA fit.
//
// Fields:
//   - Components — number of principal components to retain.
//     0 keeps every component (full basis); otherwise must lie in 1..cols.
//   - Tol — convergence tolerance forwarded to the symmetric eigensolver;
//     0 selects matrix.DefaultEigenTol.
//   - MaxIter — eigensolver sweep budget; 0 selects
//     matrix.DefaultEigenMaxIter.
//
// Example:
//
//	opts := pca.DefaultOptions()
//	opts.Components = 1 // keep only the dominant axis
//	res, err := pca.Fit(X, opts)
type Options struct {
	Components int
	Tol        float64
	MaxIter    int
}

// DefaultOptions returns the canonical configuration: keep all components
// and run the eigensolver with its package defaults.
func DefaultOptions() Options {
	return Options{
		Components: 0,
		Tol:        matrix.DefaultEigenTol,
		MaxIter:    matrix.DefaultEigenMaxIter,
	}
}

// Result holds every artifact the four-step recipe derives from the input
// table. All fields are fully populated by Fit; none is lazily computed.
//
// Shapes (r observations, c features, k retained components):
//   - Means        — len c, per-feature mean of the input.
//   - Centered     — r×c, input minus Means.
//   - Covariance   — c×c, sample covariance of the centered input.
//   - Eigenvalues  — len c, FULL spectrum sorted descending (kept even when
//     k < c so explained-variance shares use the true total).
//   - Components   — c×k, eigenvectors as columns, ordered by eigenvalue.
//   - Scores       — r×k, Centered expressed in the component basis.
type Result struct {
	Means       []float64
	Centered    *matrix.Dense
	Covariance  *matrix.Dense
	Eigenvalues []float64
	Components  *matrix.Dense
	Scores      *matrix.Dense
}
