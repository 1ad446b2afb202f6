// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric core of quantlab: row-major
// float64 matrices for data tables (rows = observations, columns = features),
// canonical linear-algebra kernels, a symmetric eigensolver, and the
// statistical transforms the PCA recipe is built from.
//
// 🚀 What is matrix?
//
//	A strict, deterministic, dependency-light matrix layer:
//	  • Dense — flat row-major storage, O(1) At/Set, cache friendly
//	  • Kernels — Add, Sub, Mul, Transpose, Scale, MatVec
//	  • Spectral — Eigen: Jacobi rotations for symmetric matrices,
//	    eigenvalues sorted descending, deterministic eigenvector signs
//	  • Statistics — ColumnMeans, CenterColumns, Covariance, Correlation
//
// ⚙️ Conventions:
//
//   - Fail-fast validation: every kernel validates shapes up front and
//     returns a plain sentinel (ErrDimensionMismatch, ErrNonSquare, …)
//     wrapped with the operation name; match with errors.Is.
//   - Determinism: fixed i→j traversal, no randomness, no global state.
//   - Immutability: kernels never mutate operands; results are fresh Dense
//     values.
//   - Numeric policy: NaN and ±Inf are rejected on ingestion (Set,
//     NewDenseFromRows) so downstream statistics never silently propagate
//     poison values.
//
// Complexity is documented per function; everything here is O(r·c) or
// better except Eigen (O(n³) per sweep, small n by design).
package matrix
