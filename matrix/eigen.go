// SPDX-License-Identifier: MIT
// Package matrix: symmetric eigendecomposition via Jacobi rotations.
//
// Purpose:
//   - Provide the spectral kernel the PCA recipe stands on: for a symmetric
//     matrix Σ, find eigenvalues λ and orthonormal eigenvectors V with Σv = λv.
//   - Guarantee deterministic output: eigenvalues sorted DESCENDING, and each
//     eigenvector sign-fixed so its largest-magnitude component is positive.
//
// Algorithm Outline (classical Jacobi):
//  1. Copy the input into a working matrix A; initialize Q = identity.
//  2. Find the off-diagonal pivot (p,q) maximizing |A[p,q]|.
//  3. If |A[p,q]| < tol, stop: the diagonal of A holds the eigenvalues and
//     the columns of Q the eigenvectors.
//  4. Compute the rotation (c,s) that zeroes A[p,q], apply it to A from both
//     sides and accumulate it into Q. Go to 2.
//
// Complexity: O(n²) per rotation for the pivot scan and update; symmetric
// covariance matrices in this package are small (features × features), so the
// classical max-pivot variant is the right trade-off over cyclic sweeps.

package matrix

import (
	"math"
	"sort"
)

// Eigen defaults. DefaultEigenTol targets ~1e-12 residual off-diagonal mass,
// tight enough that orthonormality checks at 1e-9 pass comfortably.
const (
	DefaultEigenTol     = 1e-12
	DefaultEigenMaxIter = 100
)

// Eigen computes the eigendecomposition of a symmetric matrix m.
//
// Returns eigenvalues sorted in DESCENDING order and a dense matrix whose
// COLUMNS are the matching orthonormal eigenvectors, in the same order.
// Each eigenvector is sign-normalized: the component with the largest
// absolute value is made positive, so repeated runs (and different solvers)
// agree on more than just the spanned axis.
//
// Inputs:
//   - m: symmetric matrix (validated within tol).
//   - tol: convergence threshold on the largest off-diagonal |A[p,q]|;
//     pass tol <= 0 to use DefaultEigenTol.
//   - maxIter: rotation budget; pass maxIter <= 0 to use DefaultEigenMaxIter
//     full sweeps (n·(n−1)/2 rotations each).
//
// Errors:
//   - ErrNilMatrix / ErrNonSquare / ErrAsymmetry from validation.
//   - ErrNoConvergence when the rotation budget is exhausted before the
//     off-diagonal mass drops below tol.
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, *Dense, error) {
	if tol <= 0 {
		tol = DefaultEigenTol
	}
	if maxIter <= 0 {
		maxIter = DefaultEigenMaxIter
	}

	// Validate: notNil, square, symmetric within tol.
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	// Prepare a working copy A and the orthogonal accumulator Q = I.
	n := m.Rows()
	a, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	q, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	for i := 0; i < n; i++ {
		q.data[i*n+i] = 1.0
	}

	// Total rotation budget: maxIter full sweeps.
	budget := maxIter * n * (n - 1) / 2
	if n == 1 {
		budget = 1 // trivial diagonal, loop exits on first pivot scan
	}

	var (
		p, qi          int     // current pivot indices
		maxOff, off    float64 // current max |A[p,q]| and scan temporary
		app, aqq, apq  float64 // pivot-block entries of A
		theta, t, c, s float64 // rotation parameters
	)
	converged := false
	for iter := 0; iter < budget; iter++ {
		// Pivot scan: largest |A[i,j]| above the diagonal.
		maxOff = 0
		for i := 0; i < n; i++ {
			base := i * n
			for j := i + 1; j < n; j++ {
				off = math.Abs(a.data[base+j])
				if off > maxOff {
					maxOff, p, qi = off, i, j
				}
			}
		}
		if maxOff < tol {
			converged = true
			break
		}

		// Rotation parameters from A[p,p], A[q,q], A[p,q].
		app = a.data[p*n+p]
		aqq = a.data[qi*n+qi]
		apq = a.data[p*n+qi]
		// θ = (aqq−app)/(2·apq); t = sign(θ)/(|θ|+√(θ²+1)); c = 1/√(1+t²); s = t·c.
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// Apply the rotation to rows/columns p and q of A (symmetric update)
		// and accumulate into Q.
		for i := 0; i < n; i++ {
			if i != p && i != qi {
				aip := a.data[i*n+p]
				aiq := a.data[i*n+qi]
				a.data[i*n+p] = c*aip - s*aiq
				a.data[p*n+i] = a.data[i*n+p]
				a.data[i*n+qi] = c*aiq + s*aip
				a.data[qi*n+i] = a.data[i*n+qi]
			}
			qip := q.data[i*n+p]
			qiq := q.data[i*n+qi]
			q.data[i*n+p] = c*qip - s*qiq
			q.data[i*n+qi] = c*qiq + s*qip
		}
		a.data[p*n+p] = app - t*apq
		a.data[qi*n+qi] = aqq + t*apq
		a.data[p*n+qi] = 0
		a.data[qi*n+p] = 0
	}
	if !converged {
		return nil, nil, matrixErrorf(opEigen, ErrNoConvergence)
	}

	// Extract the diagonal and order eigenpairs by descending eigenvalue.
	values := make([]float64, n)
	order := make([]int, n)
	for i := 0; i < n; i++ {
		values[i] = a.data[i*n+i]
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool { return values[order[x]] > values[order[y]] })

	sortedValues := make([]float64, n)
	vectors, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	for k, src := range order {
		sortedValues[k] = values[src]

		// Sign convention: flip the column so its largest-|.| entry is positive.
		lead, flip := 0.0, 1.0
		for i := 0; i < n; i++ {
			if v := math.Abs(q.data[i*n+src]); v > lead {
				lead = v
				if q.data[i*n+src] < 0 {
					flip = -1.0
				} else {
					flip = 1.0
				}
			}
		}
		for i := 0; i < n; i++ {
			vectors.data[i*n+k] = flip * q.data[i*n+src]
		}
	}

	return sortedValues, vectors, nil
}

// toDense returns m as a *Dense, copying through the interface when the
// concrete type is something else.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		cp := d.Clone()

		return cp.(*Dense), nil
	}

	r, c := m.Rows(), m.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}
