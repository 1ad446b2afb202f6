// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the statistical transforms (centering, covariance, correlation)
//     as deterministic compositions over the canonical kernels.
//   - Treat every matrix as an observation table: rows are observations,
//     columns are features.
//
// Exposed API:
//   - ColumnMeans(X)   -> means            // per-feature mean, len = cols
//   - CenterColumns(X) -> (Xc, means)      // subtract per-column mean
//   - Covariance(X)    -> (Cov, means)     // sample covariance: Xcᵀ·Xc/(r−1)
//   - Correlation(X)   -> (Corr, means, stds) // Pearson correlation
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast paths operate on the row-major flat buffer directly.
//   - Covariance fills the upper triangle once and mirrors it, so the output
//     is symmetric BY CONSTRUCTION, not merely up to rounding.

package matrix

import "math"

// ColumnMeans returns the per-column mean of X: means[j] = Σ_i X[i,j] / r.
//
// Errors: ErrNilMatrix, ErrBadShape (no columns), ErrTooFewRows (< 2 rows —
// a single observation has no spread to analyze downstream).
// Complexity: O(r*c) time, O(c) space.
func ColumnMeans(X Matrix) ([]float64, error) {
	if err := ValidateTable(X); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}

	r, c := X.Rows(), X.Cols()
	means := make([]float64, c)

	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c
			for j := 0; j < c; j++ {
				means[j] += d.data[base+j]
			}
		}
	} else {
		var v float64
		var err error
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				if v, err = X.At(i, j); err != nil {
					return nil, matrixErrorf(opColumnMeans, err)
				}
				means[j] += v
			}
		}
	}

	invR := 1.0 / float64(r)
	for j := 0; j < c; j++ {
		means[j] *= invR
	}

	return means, nil
}

// CenterColumns subtracts the per-column mean from every element, producing a
// zero-mean copy of X (column-wise centering). X is not mutated.
//
// Returns the centered copy and the column means, so callers can un-center
// later (reconstruction adds the means back).
//
// Errors: as ColumnMeans. Complexity: O(r*c) time and space.
func CenterColumns(X Matrix) (*Dense, []float64, error) {
	means, err := ColumnMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	r, c := X.Rows(), X.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c
			for j := 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] - means[j]
			}
		}

		return out, means, nil
	}

	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, nil, matrixErrorf(opCenterColumns, err)
			}
			out.data[i*c+j] = v - means[j]
		}
	}

	return out, means, nil
}

// Covariance computes the SAMPLE covariance matrix of the columns of X:
//
//	Cov = Xcᵀ·Xc / (r−1), where Xc is the column-centered X.
//
// The (j,k) entry is the covariance between feature j and feature k; the
// diagonal holds per-feature variances. The result is symmetric by
// construction and positive semidefinite up to rounding.
//
// Returns the c×c covariance matrix and the column means.
//
// Errors: ErrNilMatrix, ErrBadShape, ErrTooFewRows.
// Complexity: O(r*c²) time, O(c²) space.
func Covariance(X Matrix) (*Dense, []float64, error) {
	Xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	r, c := Xc.r, Xc.c
	cov, err := NewDense(c, c)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	// Upper triangle (including diagonal) once; mirror below.
	inv := 1.0 / float64(r-1)
	for j := 0; j < c; j++ {
		for k := j; k < c; k++ {
			sum := 0.0
			for i := 0; i < r; i++ {
				base := i * c
				sum += Xc.data[base+j] * Xc.data[base+k]
			}
			sum *= inv
			cov.data[j*c+k] = sum
			cov.data[k*c+j] = sum
		}
	}

	return cov, means, nil
}

// Correlation computes the Pearson correlation matrix of the columns of X by
// rescaling the sample covariance: Corr[j,k] = Cov[j,k]/(std[j]·std[k]).
//
// Degenerate zero-variance features yield a zeroed row/column (no correlation
// is defined for a constant feature) with a unit diagonal entry preserved.
//
// Returns the c×c correlation matrix, the column means, and the per-column
// sample standard deviations.
//
// Errors: as Covariance. Complexity: O(r*c²) time, O(c²) space.
func Correlation(X Matrix) (*Dense, []float64, []float64, error) {
	cov, means, err := Covariance(X)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}

	c := cov.c
	stds := make([]float64, c)
	for j := 0; j < c; j++ {
		stds[j] = math.Sqrt(cov.data[j*c+j])
	}

	corr, err := NewDense(c, c)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	for j := 0; j < c; j++ {
		for k := 0; k < c; k++ {
			switch {
			case j == k:
				corr.data[j*c+k] = 1.0
			case stds[j] == 0 || stds[k] == 0:
				corr.data[j*c+k] = 0.0
			default:
				corr.data[j*c+k] = cov.data[j*c+k] / (stds[j] * stds[k])
			}
		}
	}

	return corr, means, stds, nil
}
